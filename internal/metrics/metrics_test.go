// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery_CountsErrorsOnlyOnFailure(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("exec", "rigs_test", "query"))

	RecordDBQuery("exec", "rigs_test", 5*time.Millisecond, "")
	RecordDBQuery("exec", "rigs_test", 5*time.Millisecond, "query")

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("exec", "rigs_test", "query"))
	if after-before != 1 {
		t.Errorf("expected one error recorded, got %v", after-before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/rigs_test", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/rigs_test", "200", 10*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("APIRequestsTotal delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active after dec = %v, want %v", got, before)
	}
}

func TestUpdatePoolStats(t *testing.T) {
	UpdatePoolStats(3, 2, 5)
	if got := testutil.ToFloat64(DBPoolTotalConns); got != 5 {
		t.Errorf("total conns = %v, want 5", got)
	}
	if got := testutil.ToFloat64(DBPoolAcquiredConns); got != 3 {
		t.Errorf("acquired conns = %v, want 3", got)
	}
}
