// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	gobreaker "github.com/sony/gobreaker/v2"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// ErrNoFields is returned by partial updates that would change nothing.
var ErrNoFields = errors.New("No fields to update") //nolint:staticcheck // surfaced verbatim to API clients

// NotFoundError reports that a delete or update target matched no row.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// ConnectionError reports that the store could not be reached or refused
// the handshake.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError carries the store's message for a failed statement.
type QueryError struct {
	Operation string
	Code      string // SQLSTATE when the server reported one
	Err       error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the statement was cancelled by its deadline.
func (e *QueryError) IsTimeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded) || e.Code == pgerrQueryCanceled
}

// IsConflict reports a unique constraint violation, such as reopening a
// downtime record while the well already has an open one.
func (e *QueryError) IsConflict() bool {
	return e.Code == pgerrUniqueViolation
}

// SQLSTATE codes handled explicitly.
const (
	pgerrUniqueViolation = "23505"
	pgerrQueryCanceled   = "57014"
	pgerrUndefinedTable  = "42P01"
)

// isUndefinedTable reports a statement against a table that does not exist.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrUndefinedTable
}

// classify converts a driver error into ConnectionError or QueryError.
// Typed errors from this package pass through unchanged.
func classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var (
		nf   *NotFoundError
		ce   *ConnectionError
		qe   *QueryError
		pErr *ParamError
	)
	if errors.As(err, &nf) || errors.As(err, &ce) || errors.As(err, &qe) || errors.As(err, &pErr) {
		return err
	}
	if isConnectionError(err) {
		return &ConnectionError{Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &QueryError{Operation: operation, Code: pgErr.Code, Err: err}
	}
	return &QueryError{Operation: operation, Err: err}
}

// isConnectionError reports failures to establish or keep a session.
func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 (connection exception) and 28 (invalid authorization).
		return len(pgErr.Code) == 5 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "28")
	}
	var netErr net.Error
	return errors.As(err, &netErr) && !errors.Is(err, context.DeadlineExceeded)
}

// errorType is the metrics label for a classified error.
func errorType(err error) string {
	var ce *ConnectionError
	if errors.As(err, &ce) {
		return "connection"
	}
	var qe *QueryError
	if errors.As(err, &qe) && qe.IsTimeout() {
		return "timeout"
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return ""
	}
	return "query"
}
