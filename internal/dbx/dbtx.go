// Package dbx defines the minimal database handle shared by storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the stores need. Both *sql.DB and
// *sql.Tx satisfy it, so store methods can run standalone or inside a
// caller-managed transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
