// Package dbx holds the minimal database/sql surface shared by local
// storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the settings repository uses. Both
// *sql.DB and *sql.Tx satisfy it, so the same repository can run stand-alone
// or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
