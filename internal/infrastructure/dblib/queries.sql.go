package dblib

import (
	"context"

	"lineio/internal/domain"
)

const allAuditEntries = `-- name: AllAuditEntries :many
SELECT
    id, operation, path, bytes, truncated, recorded_at
FROM audit_entry
ORDER BY id DESC
`

func (q *Queries) AllAuditEntries(ctx context.Context) ([]*domain.AuditEntry, error) {
	rows, err := q.db.QueryContext(ctx, allAuditEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.AuditEntry
	for rows.Next() {
		var i domain.AuditEntry
		if err := rows.Scan(
			&i.ID,
			&i.Operation,
			&i.Path,
			&i.Bytes,
			&i.Truncated,
			&i.RecordedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const auditEntriesByPath = `-- name: AuditEntriesByPath :many
SELECT
    id, operation, path, bytes, truncated, recorded_at
FROM audit_entry
WHERE path = ?
ORDER BY id DESC
`

func (q *Queries) AuditEntriesByPath(ctx context.Context, path string) ([]*domain.AuditEntry, error) {
	rows, err := q.db.QueryContext(ctx, auditEntriesByPath, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*domain.AuditEntry
	for rows.Next() {
		var i domain.AuditEntry
		if err := rows.Scan(
			&i.ID,
			&i.Operation,
			&i.Path,
			&i.Bytes,
			&i.Truncated,
			&i.RecordedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createAuditEntry = `-- name: CreateAuditEntry :one
INSERT INTO audit_entry (
    operation, path, bytes, truncated, recorded_at
) VALUES (
    ?, ?, ?, ?, ?
)
RETURNING id, operation, path, bytes, truncated, recorded_at
`

func (q *Queries) CreateAuditEntry(ctx context.Context, arg *domain.AuditEntry) (*domain.AuditEntry, error) {
	row := q.db.QueryRowContext(ctx, createAuditEntry,
		arg.Operation,
		arg.Path,
		arg.Bytes,
		arg.Truncated,
		arg.RecordedAt,
	)
	var i domain.AuditEntry
	err := row.Scan(
		&i.ID,
		&i.Operation,
		&i.Path,
		&i.Bytes,
		&i.Truncated,
		&i.RecordedAt,
	)
	return &i, err
}

const deleteAllAuditEntries = `-- name: DeleteAllAuditEntries :execrows
DELETE FROM audit_entry
`

func (q *Queries) DeleteAllAuditEntries(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllAuditEntries)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
