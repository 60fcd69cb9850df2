package mocks

import (
	"context"
	"sync/atomic"
	"tripseat/infras/postgres"
)

// Transactor runs fn directly with the caller's context. AfterCommit hooks
// registered by fn run immediately since no transaction is carried.
type Transactor struct {
	calls atomic.Int64
}

// WithTx implements postgres.Transactor.
func (t *Transactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls.Add(1)

	return fn(ctx)
}

// Calls returns how many times WithTx was entered.
func (t *Transactor) Calls() int64 {
	return t.calls.Load()
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

var _ postgres.Transactor = (*Transactor)(nil)
