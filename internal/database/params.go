// Wellbore - Oilfield Production and Workover API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wellbore

package database

import (
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tomtom215/wellbore/internal/models"
)

// ParamType is the declared SQL type of a bound parameter.
type ParamType int

const (
	TypeText ParamType = iota
	TypeInt32
	TypeDecimal // NUMERIC(10,2)
	TypeDate
	TypeTimestamp
	TypeBool
)

func (t ParamType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInt32:
		return "int32"
	case TypeDecimal:
		return "decimal(10,2)"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("ParamType(%d)", int(t))
	}
}

// decimalLimit is the exclusive magnitude bound of NUMERIC(10,2).
var decimalLimit = decimal.New(1, 8)

// Param is one named, typed value. A nil Value binds SQL NULL.
type Param struct {
	Name  string
	Type  ParamType
	Value any
}

// ParamError reports a value that does not match its declared type. It
// indicates a programming error or an out-of-range input.
type ParamError struct {
	Name   string
	Type   ParamType
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter @%s (%s): %s", e.Name, e.Type, e.Reason)
}

// Params is an ordered parameter list.
type Params []Param

// Bind checks every value against its declared type and returns the
// pgx.NamedArgs consumed by statements written with @name placeholders.
func (ps Params) Bind() (pgx.NamedArgs, error) {
	args := make(pgx.NamedArgs, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			return nil, &ParamError{Name: "?", Type: p.Type, Reason: "empty name"}
		}
		if _, dup := args[p.Name]; dup {
			return nil, &ParamError{Name: p.Name, Type: p.Type, Reason: "bound twice"}
		}
		v, err := p.coerce()
		if err != nil {
			return nil, err
		}
		args[p.Name] = v
	}
	return args, nil
}

func (p Param) coerce() (any, error) {
	if p.Value == nil {
		return nil, nil
	}
	fail := func(reason string) (any, error) {
		return nil, &ParamError{Name: p.Name, Type: p.Type, Reason: reason}
	}

	switch p.Type {
	case TypeText:
		if s, ok := p.Value.(string); ok {
			return s, nil
		}
	case TypeInt32:
		var n int64
		switch v := p.Value.(type) {
		case int:
			n = int64(v)
		case int32:
			n = int64(v)
		case int64:
			n = v
		default:
			return fail(fmt.Sprintf("unexpected %T", p.Value))
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fail(fmt.Sprintf("%d out of range", n))
		}
		return int32(n), nil
	case TypeDecimal:
		var d decimal.Decimal
		switch v := p.Value.(type) {
		case models.Money:
			d = v.Decimal
		case decimal.Decimal:
			d = v
		default:
			return fail(fmt.Sprintf("unexpected %T", p.Value))
		}
		d = d.Round(models.MoneyScale)
		if d.Abs().GreaterThanOrEqual(decimalLimit) {
			return fail(d.String() + " exceeds 8 integer digits")
		}
		return d, nil
	case TypeDate:
		if t, ok := p.Value.(time.Time); ok {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	case TypeTimestamp:
		if t, ok := p.Value.(time.Time); ok {
			return t.UTC(), nil
		}
	case TypeBool:
		if b, ok := p.Value.(bool); ok {
			return b, nil
		}
	}
	return fail(fmt.Sprintf("unexpected %T", p.Value))
}

// Text binds a string.
func Text(name, v string) Param { return Param{Name: name, Type: TypeText, Value: v} }

// NullableText binds *v, or NULL when v is nil.
func NullableText(name string, v *string) Param {
	if v == nil {
		return Param{Name: name, Type: TypeText}
	}
	return Text(name, *v)
}

// Int32 binds an integer checked against the int4 range.
func Int32(name string, v int64) Param { return Param{Name: name, Type: TypeInt32, Value: v} }

// Decimal binds a NUMERIC(10,2) value.
func Decimal(name string, v models.Money) Param {
	return Param{Name: name, Type: TypeDecimal, Value: v}
}

// NullableDecimal binds *v, or NULL when v is nil.
func NullableDecimal(name string, v *models.Money) Param {
	if v == nil {
		return Param{Name: name, Type: TypeDecimal}
	}
	return Decimal(name, *v)
}

// Date binds the UTC calendar date of v.
func Date(name string, v time.Time) Param { return Param{Name: name, Type: TypeDate, Value: v} }

// Timestamp binds v in UTC.
func Timestamp(name string, v time.Time) Param {
	return Param{Name: name, Type: TypeTimestamp, Value: v}
}

// NullableTimestamp binds *v, or NULL when v is nil.
func NullableTimestamp(name string, v *time.Time) Param {
	if v == nil {
		return Param{Name: name, Type: TypeTimestamp}
	}
	return Timestamp(name, *v)
}
