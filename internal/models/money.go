// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package models

import (
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits of every NUMERIC(10,2) column.
const MoneyScale = 2

// Money is a fixed-point NUMERIC(10,2) value. It scans from PostgreSQL
// through decimal.Decimal's sql.Scanner and marshals as an unquoted JSON
// number with exactly two fraction digits.
type Money struct {
	decimal.Decimal
}

// NewMoney returns value rounded to two fraction digits.
func NewMoney(value decimal.Decimal) Money {
	return Money{value.Round(MoneyScale)}
}

// MoneyFromFloat is a convenience for tests and defaults.
func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromInt returns n with zero fraction digits.
func MoneyFromInt(n int64) Money {
	return Money{decimal.NewFromInt(n)}
}

// MarshalJSON renders 1500 as 1500.00.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(MoneyScale)), nil
}

// UnmarshalJSON accepts numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// String returns the fixed two-digit rendering.
func (m Money) String() string {
	return m.StringFixed(MoneyScale)
}

// Ptr returns a pointer to a copy of m.
func (m Money) Ptr() *Money {
	return &m
}

// OrZero dereferences m, treating nil as zero.
func (m *Money) OrZero() Money {
	if m == nil {
		return Money{}
	}
	return *m
}
