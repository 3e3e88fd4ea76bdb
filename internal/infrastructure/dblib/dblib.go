package dblib

import "context"

//go:generate sqlc generate

const schemaDefinition = `
CREATE TABLE IF NOT EXISTS audit_entry (
	id INTEGER PRIMARY KEY,
	operation TEXT NOT NULL,
	path TEXT NOT NULL,
	bytes INTEGER NOT NULL,
	truncated INTEGER NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_entry_path ON audit_entry (path);
`

func (q *Queries) InitializeDatabase(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, schemaDefinition)
	return err
}
