package dsl

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/i18n"
)

// Coercers accept loosely-typed input (strings, numbers, booleans) and
// normalize it to a target primitive before applying the same range checks
// a strict leaf would. Normalization failure is invalid_coercion; bound
// violations are too_small/too_big, each emitted independently.

// BoolCoercer coerces heterogeneous input to bool.
type BoolCoercer struct{}

// CoerceBool returns the boolean coercion schema. Native bools pass
// through; integers 1/0 map to true/false; trimmed, case-insensitive
// strings in {"true","1","yes","on"} and {"false","0","no","off"} map to
// their boolean.
func CoerceBool() BoolCoercer { return BoolCoercer{} }

var (
	boolTrueWords  = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "on": {}}
	boolFalseWords = map[string]struct{}{"false": {}, "0": {}, "no": {}, "off": {}}
)

func (BoolCoercer) Validate(v any) valis.Result[bool] {
	switch t := v.(type) {
	case bool:
		return valis.Success(t)
	case int:
		return boolFromInt(int64(t), v)
	case int64:
		return boolFromInt(t, v)
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			return boolFromInt(i64, v)
		}
	case string:
		w := strings.ToLower(strings.TrimSpace(t))
		if _, ok := boolTrueWords[w]; ok {
			return valis.Success(true)
		}
		if _, ok := boolFalseWords[w]; ok {
			return valis.Success(false)
		}
	}
	return valis.Failure[bool](valis.Issues{invalidCoercion(v, "bool")})
}

func boolFromInt(n int64, orig any) valis.Result[bool] {
	switch n {
	case 1:
		return valis.Success(true)
	case 0:
		return valis.Success(false)
	}
	return valis.Failure[bool](valis.Issues{invalidCoercion(orig, "bool")})
}

func (c BoolCoercer) ValidateCtx(_ context.Context, v any) valis.Result[bool] {
	return c.Validate(v)
}

// IntCoercer coerces heterogeneous input to int64 with optional inclusive
// bounds.
type IntCoercer struct {
	min, max *int64
}

// CoerceInt returns the integer coercion schema. Native integers pass
// through; a float coerces only when its truncation equals itself; strings
// are trimmed and parsed as base-10 integers.
func CoerceInt() IntCoercer { return IntCoercer{} }

// Min returns a copy with an inclusive lower bound.
func (c IntCoercer) Min(n int64) IntCoercer { c.min = &n; return c }

// Max returns a copy with an inclusive upper bound.
func (c IntCoercer) Max(n int64) IntCoercer { c.max = &n; return c }

func (c IntCoercer) Validate(v any) valis.Result[int64] {
	return c.ValidateCtx(context.Background(), v)
}

func (c IntCoercer) ValidateCtx(_ context.Context, v any) valis.Result[int64] {
	n, ok := coerceInt64(v)
	if !ok {
		return valis.Failure[int64](valis.Issues{invalidCoercion(v, "int")})
	}
	if iss := c.checkBounds(n, v); len(iss) > 0 {
		return valis.Failure[int64](iss)
	}
	return valis.Success(n)
}

// checkBounds runs both bound checks; each violation is its own issue.
func (c IntCoercer) checkBounds(n int64, orig any) valis.Issues {
	var iss valis.Issues
	if c.min != nil && n < *c.min {
		params := map[string]any{"min": *c.min, "actual": n}
		iss = valis.AppendIssues(iss, valis.Issue{Code: valis.CodeTooSmall, Message: i18n.T(valis.CodeTooSmall, params), Value: orig, Params: params})
	}
	if c.max != nil && n > *c.max {
		params := map[string]any{"max": *c.max, "actual": n}
		iss = valis.AppendIssues(iss, valis.Issue{Code: valis.CodeTooBig, Message: i18n.T(valis.CodeTooBig, params), Value: orig, Params: params})
	}
	return iss
}

func coerceInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return intFromFloat(float64(t))
	case float64:
		return intFromFloat(t)
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			return i64, true
		}
		if f, err := t.Float64(); err == nil {
			return intFromFloat(f)
		}
		return 0, false
	case string:
		i64, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return i64, true
	default:
		return 0, false
	}
}

func intFromFloat(f float64) (int64, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int64(f), true
}

// FloatCoercer coerces heterogeneous input to float64 with optional
// inclusive bounds, mirroring IntCoercer's bound policy.
type FloatCoercer struct {
	min, max *float64
}

// CoerceFloat returns the floating-point coercion schema.
func CoerceFloat() FloatCoercer { return FloatCoercer{} }

// Min returns a copy with an inclusive lower bound.
func (c FloatCoercer) Min(n float64) FloatCoercer { c.min = &n; return c }

// Max returns a copy with an inclusive upper bound.
func (c FloatCoercer) Max(n float64) FloatCoercer { c.max = &n; return c }

func (c FloatCoercer) Validate(v any) valis.Result[float64] {
	return c.ValidateCtx(context.Background(), v)
}

func (c FloatCoercer) ValidateCtx(_ context.Context, v any) valis.Result[float64] {
	f, ok := coerceFloat64(v)
	if !ok {
		return valis.Failure[float64](valis.Issues{invalidCoercion(v, "float")})
	}
	var iss valis.Issues
	if c.min != nil && f < *c.min {
		params := map[string]any{"min": *c.min, "actual": f}
		iss = valis.AppendIssues(iss, valis.Issue{Code: valis.CodeTooSmall, Message: i18n.T(valis.CodeTooSmall, params), Value: v, Params: params})
	}
	if c.max != nil && f > *c.max {
		params := map[string]any{"max": *c.max, "actual": f}
		iss = valis.AppendIssues(iss, valis.Issue{Code: valis.CodeTooBig, Message: i18n.T(valis.CodeTooBig, params), Value: v, Params: params})
	}
	if len(iss) > 0 {
		return valis.Failure[float64](iss)
	}
	return valis.Success(f)
}

func coerceFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// StringCoercer coerces any input to its textual representation.
type StringCoercer struct{}

// CoerceString returns the string coercion schema. It only fails when the
// conversion itself faults (a panicking Stringer); the fault surfaces as
// invalid_coercion rather than unwinding.
func CoerceString() StringCoercer { return StringCoercer{} }

func (StringCoercer) Validate(v any) (res valis.Result[string]) {
	defer func() {
		if r := recover(); r != nil {
			res = valis.Failure[string](valis.Issues{invalidCoercion(nil, "string")})
		}
	}()
	switch t := v.(type) {
	case string:
		return valis.Success(t)
	case json.Number:
		return valis.Success(string(t))
	default:
		return valis.Success(fmt.Sprint(v))
	}
}

func (c StringCoercer) ValidateCtx(_ context.Context, v any) valis.Result[string] {
	return c.Validate(v)
}
