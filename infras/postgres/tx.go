package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Querier is the statement surface shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
}

// Transactor runs fn inside a database transaction carried by the context.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type txState struct {
	tx    *sqlx.Tx
	hooks []func(ctx context.Context)
}

// WithTx begins a transaction, stores it in the context handed to fn and commits
// when fn returns nil. A context that already carries a transaction joins it, so
// only the outermost call commits or rolls back.
func (c *Connection) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	state := &txState{tx: tx}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, hook := range state.hooks {
		hook(ctx)
	}

	return nil
}

// AfterCommit registers hook to run once the outermost transaction in ctx commits.
// Hooks are dropped on rollback. Without a transaction the hook runs immediately.
func AfterCommit(ctx context.Context, hook func(ctx context.Context)) {
	state, ok := ctx.Value(txKey{}).(*txState)
	if !ok {
		hook(ctx)

		return
	}

	state.hooks = append(state.hooks, hook)
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*txState)

	return ok
}

// Writer returns the transaction in ctx, or the write pool.
func (c *Connection) Writer(ctx context.Context) Querier {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		return state.tx
	}

	return c.Write
}

// Reader returns the transaction in ctx so reads observe uncommitted writes
// and row locks, or the read pool.
func (c *Connection) Reader(ctx context.Context) Querier {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		return state.tx
	}

	return c.Read
}
