// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package services

import (
	"context"
	"time"
)

// DefaultPoolStatsInterval is how often pool gauges are refreshed.
const DefaultPoolStatsInterval = 15 * time.Second

// StatsPublisher publishes connection pool gauges.
//
// Satisfied by *database.PoolManager.
type StatsPublisher interface {
	Stats()
}

// PoolStatsService refreshes the database pool gauges on a fixed interval
// so /metrics reflects idle and acquired connections between requests.
type PoolStatsService struct {
	publisher StatsPublisher
	interval  time.Duration
	name      string
}

// NewPoolStatsService creates the service. A non-positive interval uses
// DefaultPoolStatsInterval.
func NewPoolStatsService(publisher StatsPublisher, interval time.Duration) *PoolStatsService {
	if interval <= 0 {
		interval = DefaultPoolStatsInterval
	}
	return &PoolStatsService{
		publisher: publisher,
		interval:  interval,
		name:      "db-pool-stats",
	}
}

// Serve implements suture.Service. Gauges are published once at start and
// then on every tick until ctx is cancelled.
func (s *PoolStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publisher.Stats()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publisher.Stats()
		}
	}
}

func (s *PoolStatsService) String() string {
	return s.name
}
