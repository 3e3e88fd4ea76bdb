package dblib

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type Tx struct {
	*Queries
	tx *sql.Tx
}

func (q *Queries) Begin(ctx context.Context) *Tx {
	tx, err := q.db.(*sql.DB).BeginTx(ctx, nil)
	if err != nil {
		panic(err)
	}
	return &Tx{
		Queries: &Queries{db: tx},
		tx:      tx,
	}
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
