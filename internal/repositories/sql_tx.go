package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// dbRunner is the query surface shared by *sql.DB and *sql.Tx. Repository
// methods resolve it per call so the same code runs inside and outside
// Atomic.
type dbRunner interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// bindTx carries an open transaction down through the Atomic callback.
func bindTx(ctx context.Context, db dbRunner) context.Context {
	return context.WithValue(ctx, txKey{}, db)
}

func (r *Repository) txOrWrite(ctx context.Context) dbRunner {
	if db, ok := ctx.Value(txKey{}).(dbRunner); ok {
		return db
	}
	return r.dbWrite
}

func (r *Repository) txOrRead(ctx context.Context) dbRunner {
	if db, ok := ctx.Value(txKey{}).(dbRunner); ok {
		return db
	}
	return r.dbRead
}
