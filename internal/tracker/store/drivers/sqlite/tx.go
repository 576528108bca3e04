package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tasktab/tasktab/internal/tracker/store"
)

var (
	errNestedTx    = errors.New("sqlite: nested transactions are not supported")
	errMigrateInTx = errors.New("sqlite: cannot apply migrations inside a transaction")
)

// storeTx is a Tx-scoped Store: the same repos bound to a *sql.Tx.
type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) Users() store.Users       { return &usersRepo{q: t.tx} }
func (t *storeTx) Projects() store.Projects { return &projectsRepo{q: t.tx} }
func (t *storeTx) Tasks() store.Tasks       { return &tasksRepo{q: t.tx} }

func (t *storeTx) ApplyMigrations() error { return errMigrateInTx }

func (t *storeTx) Tx(ctx context.Context) (store.Tx, error) { return nil, errNestedTx }

// WithTx runs fn against the already-open transaction; commit/rollback stays
// with the outer caller.
func (t *storeTx) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(t)
}

func (t *storeTx) Close() error                   { return t.tx.Rollback() }
func (t *storeTx) Ping(ctx context.Context) error { return nil }

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }
