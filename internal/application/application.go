package application

import (
	"context"
	"log/slog"
	"time"

	"lineio/internal/domain"
	"lineio/internal/infrastructure/dblib"
	"lineio/internal/infrastructure/fsys"
)

type App struct {
	db           *dblib.Queries // nil when audit history is disabled
	fs           fsys.FS
	clock        Clock
	lineCapacity int
}

func NewApp(db *dblib.Queries, fs fsys.FS, clock Clock, lineCapacity int) *App {
	if clock == nil {
		clock = time.Now
	}
	if lineCapacity <= 0 {
		lineCapacity = domain.DefaultLineCapacity
	}
	return &App{
		db:           db,
		fs:           fs,
		clock:        clock,
		lineCapacity: lineCapacity,
	}
}

func (app *App) Initialize(ctx context.Context) error {
	if app.db == nil {
		return nil
	}
	return app.db.InitializeDatabase(ctx)
}

// recordAudit stores one history row for a completed operation. The file
// operation already succeeded at this point, so a failed insert is logged
// and swallowed rather than turned into an operation failure.
func (app *App) recordAudit(ctx context.Context, entry *domain.AuditEntry) {
	if app.db == nil {
		return
	}
	entry.RecordedAt = app.clock().UTC()
	if _, err := app.db.CreateAuditEntry(ctx, entry); err != nil {
		slog.Warn("failed to record audit entry",
			"operation", entry.Operation,
			"path", entry.Path,
			"error", err)
	}
}
