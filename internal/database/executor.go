// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/wellbore/internal/logging"
	"github.com/tomtom215/wellbore/internal/metrics"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Op labels a statement for metrics and error reports.
type Op struct {
	Name  string // select, insert, upsert, update, delete
	Table string
}

func (o Op) String() string {
	return o.Name + " " + o.Table
}

// Executor runs bound statements against a pool or a transaction.
type Executor struct {
	q       querier
	timeout time.Duration
}

func newExecutor(q querier, timeout time.Duration) *Executor {
	return &Executor{q: q, timeout: timeout}
}

func (e *Executor) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// Exec runs a statement and returns the number of rows it affected.
func (e *Executor) Exec(ctx context.Context, op Op, stmt string, params Params) (int64, error) {
	args, err := params.Bind()
	if err != nil {
		return 0, err
	}

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	start := time.Now()
	tag, err := e.q.Exec(ctx, stmt, args)
	err = e.finish(ctx, op, start, err)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Query runs a statement and maps every row with scan.
func Query[T any](ctx context.Context, e *Executor, op Op, stmt string, params Params, scan pgx.RowToFunc[T]) ([]T, error) {
	args, err := params.Bind()
	if err != nil {
		return nil, err
	}

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	start := time.Now()
	rows, err := e.q.Query(ctx, stmt, args)
	if err != nil {
		return nil, e.finish(ctx, op, start, err)
	}
	out, err := pgx.CollectRows(rows, scan)
	if err = e.finish(ctx, op, start, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// QueryOne runs a statement expected to return one row. pgx.ErrNoRows is
// returned unwrapped when there is none.
func QueryOne[T any](ctx context.Context, e *Executor, op Op, stmt string, params Params, scan pgx.RowToFunc[T]) (T, error) {
	var zero T
	args, err := params.Bind()
	if err != nil {
		return zero, err
	}

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	start := time.Now()
	rows, err := e.q.Query(ctx, stmt, args)
	if err != nil {
		return zero, e.finish(ctx, op, start, err)
	}
	out, err := pgx.CollectExactlyOneRow(rows, scan)
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordDBQuery(op.Name, op.Table, time.Since(start), "")
		return zero, pgx.ErrNoRows
	}
	if err = e.finish(ctx, op, start, err); err != nil {
		return zero, err
	}
	return out, nil
}

// finish records the statement and classifies its error.
func (e *Executor) finish(ctx context.Context, op Op, start time.Time, err error) error {
	duration := time.Since(start)
	if err == nil {
		metrics.RecordDBQuery(op.Name, op.Table, duration, "")
		return nil
	}
	err = classify(op.String(), err)
	metrics.RecordDBQuery(op.Name, op.Table, duration, errorType(err))
	logging.Ctx(ctx).Warn().Err(err).Str("operation", op.String()).Dur("duration", duration).Msg("Statement failed")
	return err
}
