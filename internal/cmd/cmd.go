package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lineio/internal/application"
	"lineio/internal/domain"
	"lineio/internal/infrastructure/dblib"
	"lineio/internal/infrastructure/fsys"
	"lineio/internal/infrastructure/tui"

	_ "github.com/mattn/go-sqlite3"
)

type AppBuilder struct {
	auditDBPath string
	noAudit     bool
	maxBytes    int
	fs          fsys.FS
	app         *application.App
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

func (b *AppBuilder) WithAuditDBPath(path string) *AppBuilder {
	b.auditDBPath = path
	return b
}

func (b *AppBuilder) WithNoAudit(noAudit bool) *AppBuilder {
	b.noAudit = noAudit
	return b
}

func (b *AppBuilder) WithMaxBytes(maxBytes int) *AppBuilder {
	b.maxBytes = maxBytes
	return b
}

func (b *AppBuilder) WithFS(fs fsys.FS) *AppBuilder {
	b.fs = fs
	return b
}

func (b *AppBuilder) Build() error {
	if b.fs == nil {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %v", err)
		}
		b.fs = fsys.NewOSFS(wd)
	}

	var queries *dblib.Queries
	if !b.noAudit {
		dir := filepath.Dir(b.auditDBPath)
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create database directory %s: %v", dir, err)
		}
		db, err := sql.Open("sqlite3", b.auditDBPath)
		if err != nil {
			return err
		}
		queries = dblib.New(db)
	}

	b.app = application.NewApp(queries, b.fs, nil, b.maxBytes)
	return nil
}

func (b *AppBuilder) App(ctx context.Context) (*application.App, error) {
	if err := b.app.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize audit database: %v", err)
	}
	return b.app, nil
}

func RootCmd(appBuilder *AppBuilder) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "lineio",
		Short: "lineio reads and writes single lines of text files",
		Long:  "lineio reads and writes single lines of text files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(verbose)
			noAudit, _ := cmd.Flags().GetBool("no-audit")
			maxBytes, _ := cmd.Flags().GetInt("max-bytes")
			appBuilder.
				WithAuditDBPath(cmd.Flag("audit-db").Value.String()).
				WithNoAudit(noAudit).
				WithMaxBytes(maxBytes)
			return appBuilder.Build()
		},
	}
	rootFlags := pflag.NewFlagSet("root", pflag.ContinueOnError)
	rootFlags.String("audit-db", getDefaultAuditDBPath(), "Path to SQLite audit history file")
	rootFlags.Bool("no-audit", false, "Disable audit history recording")
	rootFlags.Int("max-bytes", domain.DefaultLineCapacity, "Line buffer capacity in bytes, terminator slot included")
	rootCmd.PersistentFlags().AddFlagSet(rootFlags)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(readCmd(appBuilder))
	rootCmd.AddCommand(writeCmd(appBuilder))
	rootCmd.AddCommand(historyCmd(appBuilder))

	return rootCmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level,
		NoColor: !tui.IsTerminal(os.Stderr.Fd()),
	})))
}

func getDefaultAuditDBPath() string {
	// Use standard user config directory
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to current directory if config dir is not available
		return "./lineio.db"
	}

	lineioDir := filepath.Join(configDir, "lineio")
	if err := os.MkdirAll(lineioDir, 0700); err != nil {
		// Fallback to current directory if we can't create config dir
		return "./lineio.db"
	}

	return filepath.Join(lineioDir, "lineio.db")
}
