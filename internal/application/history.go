package application

import (
	"context"
	"fmt"

	"lineio/internal/domain"
)

// History returns recorded file operations, newest first. An empty path
// returns everything.
func (app *App) History(ctx context.Context, path string) ([]*domain.AuditEntry, error) {
	if app.db == nil {
		return nil, fmt.Errorf("audit history is disabled")
	}
	if path != "" {
		return app.db.AuditEntriesByPath(ctx, path)
	}
	return app.db.AllAuditEntries(ctx)
}

// ClearHistory deletes every recorded file operation and returns the number
// of deleted entries.
func (app *App) ClearHistory(ctx context.Context) (int64, error) {
	if app.db == nil {
		return 0, fmt.Errorf("audit history is disabled")
	}

	tx := app.db.Begin(ctx)
	defer tx.Rollback()

	deleted, err := tx.DeleteAllAuditEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %v", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %v", err)
	}
	return deleted, nil
}
