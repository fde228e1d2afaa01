// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Store implements the API's persistence operations over a PoolManager.
type Store struct {
	pool    *PoolManager
	timeout time.Duration
	now     func() time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now for timestamps the store generates and for
// the deferred production windows.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithStatementTimeout bounds every statement from the client side. The
// server-side statement_timeout set on the pool still applies.
func WithStatementTimeout(d time.Duration) StoreOption {
	return func(s *Store) { s.timeout = d }
}

// NewStore creates a store backed by pm.
func NewStore(pm *PoolManager, opts ...StoreOption) *Store {
	s := &Store{pool: pm, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pool returns the underlying manager.
func (s *Store) Pool() *PoolManager {
	return s.pool
}

func (s *Store) clock() time.Time {
	return s.now().UTC()
}

// executor returns an Executor on the shared pool.
func (s *Store) executor(ctx context.Context) (*Executor, error) {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return newExecutor(pool, s.timeout), nil
}

// inTx runs fn in a transaction that commits when fn returns nil and rolls
// back otherwise.
func (s *Store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	return classify("transaction", pgx.BeginFunc(ctx, pool, fn))
}

// inTxExec is inTx with an Executor bound to the transaction.
func (s *Store) inTxExec(ctx context.Context, fn func(e *Executor) error) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		return fn(newExecutor(tx, s.timeout))
	})
}

// Ping verifies the database answers a trivial query.
func (s *Store) Ping(ctx context.Context) error {
	pool, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}
