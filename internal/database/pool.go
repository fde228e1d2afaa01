// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/wellbore/internal/config"
	"github.com/tomtom215/wellbore/internal/logging"
	"github.com/tomtom215/wellbore/internal/metrics"
)

// Dialer opens and verifies a pool. Tests substitute it.
type Dialer func(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error)

// dialAndPing creates the pool and proves the handshake with one ping.
func dialAndPing(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// PoolManager lazily creates one pool and returns it for every later call.
// Failed attempts are not remembered, so the next Acquire dials again.
type PoolManager struct {
	cfg     config.DatabaseConfig
	dial    Dialer
	breaker *gobreaker.CircuitBreaker[any]
	group   singleflight.Group

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

// PoolOption customizes a PoolManager.
type PoolOption func(*PoolManager)

// WithDialer replaces the function that opens the pool.
func WithDialer(d Dialer) PoolOption {
	return func(pm *PoolManager) { pm.dial = d }
}

// WithBreakerTimeout sets how long the dial breaker stays open.
func WithBreakerTimeout(d time.Duration) PoolOption {
	return func(pm *PoolManager) { pm.breaker = newDialBreaker(d) }
}

// NewPoolManager captures cfg; nothing is dialed until Acquire.
func NewPoolManager(cfg config.DatabaseConfig, opts ...PoolOption) *PoolManager {
	pm := &PoolManager{cfg: cfg, dial: dialAndPing}
	for _, opt := range opts {
		opt(pm)
	}
	if pm.breaker == nil {
		pm.breaker = newDialBreaker(30 * time.Second)
	}
	return pm
}

// Acquire returns the process-wide pool, creating it on first use.
// Concurrent first callers wait on a single dial.
func (pm *PoolManager) Acquire(ctx context.Context) (*pgxpool.Pool, error) {
	if pool := pm.current(); pool != nil {
		return pool, nil
	}

	// The dial runs on a context detached from any one request so that a
	// cancelled caller does not fail the others sharing the flight.
	ch := pm.group.DoChan("pool", func() (any, error) {
		if pool := pm.current(); pool != nil {
			return pool, nil
		}
		dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pm.cfg.ConnectTimeout)
		defer cancel()
		return pm.create(dialCtx)
	})

	select {
	case <-ctx.Done():
		return nil, &ConnectionError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		pool, _ := res.Val.(*pgxpool.Pool)
		return pool, nil
	}
}

func (pm *PoolManager) current() *pgxpool.Pool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.pool
}

func (pm *PoolManager) create(ctx context.Context) (*pgxpool.Pool, error) {
	poolCfg, err := pm.poolConfig()
	if err != nil {
		metrics.DBPoolInitializations.WithLabelValues("failure").Inc()
		return nil, &ConnectionError{Err: err}
	}

	result, err := pm.breaker.Execute(func() (any, error) {
		return pm.dial(ctx, poolCfg)
	})
	recordBreakerResult(err)
	if err != nil {
		metrics.DBPoolInitializations.WithLabelValues("failure").Inc()
		logging.Error().Err(err).Str("target", pm.cfg.Redacted()).Msg("Database connection failed")
		return nil, &ConnectionError{Err: err}
	}
	pool, _ := result.(*pgxpool.Pool)

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.pool != nil {
		// First writer wins; a pool created concurrently is discarded.
		pool.Close()
		return pm.pool, nil
	}
	pm.pool = pool
	metrics.DBPoolInitializations.WithLabelValues("success").Inc()
	logging.Info().
		Str("target", pm.cfg.Redacted()).
		Int32("max_conns", poolCfg.MaxConns).
		Int32("min_conns", poolCfg.MinConns).
		Msg("Database pool ready")
	return pool, nil
}

// poolConfig builds the pgxpool configuration from the database settings.
func (pm *PoolManager) poolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(pm.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	poolCfg.MaxConns = pm.cfg.MaxConns
	poolCfg.MinConns = pm.cfg.MinConns
	poolCfg.MaxConnIdleTime = pm.cfg.MaxConnIdleTime
	poolCfg.ConnConfig.ConnectTimeout = pm.cfg.ConnectTimeout
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(pm.cfg.StatementTimeout.Milliseconds(), 10)
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "wellbore"
	poolCfg.ConnConfig.RuntimeParams["timezone"] = "UTC"
	return poolCfg, nil
}

// Stats publishes pool gauges. It is a no-op before the pool exists.
func (pm *PoolManager) Stats() {
	pool := pm.current()
	if pool == nil {
		return
	}
	s := pool.Stat()
	metrics.UpdatePoolStats(s.AcquiredConns(), s.IdleConns(), s.TotalConns())
}

// Close releases the pool. The manager can dial again afterwards.
func (pm *PoolManager) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.pool != nil {
		pm.pool.Close()
		pm.pool = nil
	}
}
