// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import (
	"fmt"
	"strings"
	"time"
)

// flexLayouts are the timestamp layouts accepted in request bodies, tried in order.
var flexLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime is a request-side timestamp accepting RFC 3339 or a bare date.
// Values without a zone are taken as UTC.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON parses a quoted timestamp; null leaves the value zero.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: expected RFC 3339 or YYYY-MM-DD", s)
}

// TimeOr returns the parsed time, or fallback when f is nil or zero.
func (f *FlexTime) TimeOr(fallback time.Time) time.Time {
	if f == nil || f.IsZero() {
		return fallback
	}
	return f.Time
}
