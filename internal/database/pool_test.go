// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/wellbore/internal/config"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:             "db.invalid",
		Port:             5432,
		Name:             "workover",
		User:             "wellbore",
		Password:         "s3cret",
		SSLMode:          "disable",
		ConnectTimeout:   2 * time.Second,
		StatementTimeout: 30 * time.Second,
		MaxConns:         4,
		MaxConnIdleTime:  30 * time.Second,
	}
}

// lazyDialer builds a real pool without connecting; pgxpool only dials
// when a connection is first acquired.
func lazyDialer(calls *atomic.Int32, delay time.Duration) Dialer {
	return func(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
		calls.Add(1)
		time.Sleep(delay)
		return pgxpool.NewWithConfig(ctx, cfg)
	}
}

func TestPoolManager_ConcurrentAcquireDialsOnce(t *testing.T) {
	var calls atomic.Int32
	pm := NewPoolManager(testDatabaseConfig(), WithDialer(lazyDialer(&calls, 50*time.Millisecond)))
	t.Cleanup(pm.Close)

	const callers = 32
	pools := make([]*pgxpool.Pool, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool, err := pm.Acquire(context.Background())
			assert.NoError(t, err)
			pools[i] = pool
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, p := range pools {
		assert.Same(t, pools[0], p)
	}

	again, err := pm.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, pools[0], again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPoolManager_FailureIsNotMemoized(t *testing.T) {
	var calls atomic.Int32
	var fail atomic.Bool
	fail.Store(true)
	pm := NewPoolManager(testDatabaseConfig(), WithDialer(func(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
		calls.Add(1)
		if fail.Load() {
			return nil, errors.New("connection refused")
		}
		return pgxpool.NewWithConfig(ctx, cfg)
	}))
	t.Cleanup(pm.Close)

	_, err := pm.Acquire(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	fail.Store(false)
	pool, err := pm.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pool)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPoolManager_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int32
	pm := NewPoolManager(testDatabaseConfig(),
		WithBreakerTimeout(time.Hour),
		WithDialer(func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
			calls.Add(1)
			return nil, errors.New("no route to host")
		}))

	for range 5 {
		_, err := pm.Acquire(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, int32(5), calls.Load())

	_, err := pm.Acquire(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(5), calls.Load(), "open breaker must not dial")
}

func TestPoolManager_CallerCancelDoesNotCancelDial(t *testing.T) {
	var calls atomic.Int32
	pm := NewPoolManager(testDatabaseConfig(), WithDialer(lazyDialer(&calls, 100*time.Millisecond)))
	t.Cleanup(pm.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := pm.Acquire(ctx)
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)

	pool, err := pm.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, pool)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPoolManager_PoolConfig(t *testing.T) {
	pm := NewPoolManager(testDatabaseConfig())
	cfg, err := pm.poolConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(4), cfg.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.MaxConnIdleTime)
	assert.Equal(t, "db.invalid", cfg.ConnConfig.Host)
	assert.Equal(t, "s3cret", cfg.ConnConfig.Password)
	assert.Equal(t, "30000", cfg.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "UTC", cfg.ConnConfig.RuntimeParams["timezone"])
}

func TestPoolManager_CloseAllowsRedial(t *testing.T) {
	var calls atomic.Int32
	pm := NewPoolManager(testDatabaseConfig(), WithDialer(lazyDialer(&calls, 0)))

	first, err := pm.Acquire(context.Background())
	require.NoError(t, err)
	pm.Stats()
	pm.Close()

	second, err := pm.Acquire(context.Background())
	require.NoError(t, err)
	t.Cleanup(pm.Close)
	assert.NotSame(t, first, second)
	assert.Equal(t, int32(2), calls.Load())
}
