package db

import (
	"context"
	"database/sql"
)

// DBTX is what the juku repositories query through. Both the pooled
// *sql.DB and a *sql.Tx from UnitOfWork satisfy it, so a repository built
// inside WithinTx writes as part of that transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
