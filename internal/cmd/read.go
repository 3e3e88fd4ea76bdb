package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// defaultReadPath is the file read when no argument is given.
const defaultReadPath = "test.txt"

func readCmd(appBuilder *AppBuilder) *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Read the first line of a file",
		Long:  "Read the first line of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultReadPath
			if len(args) == 1 {
				path = args[0]
			}
			app, err := appBuilder.App(cmd.Context())
			if err != nil {
				return err
			}
			result, err := app.ReadFirstLine(cmd.Context(), path)
			if err != nil {
				return err
			}
			if result.Truncated {
				slog.Warn("line truncated to buffer capacity", "path", path, "bytes", result.Bytes)
			}

			fmt.Printf("Read: %s\n", result.Line)
			return nil
		},
	}

	return readCmd
}
