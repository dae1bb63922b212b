package dsl

import (
	"context"
	"encoding/json"

	valis "github.com/reoring/valis"
)

// String returns the strict string leaf schema.
func String() valis.AnySchema[string] { return stringSchema{} }

// Bool returns the strict bool leaf schema.
func Bool() valis.AnySchema[bool] { return boolSchema{} }

// Int returns the strict integer leaf schema. It accepts Go integers and
// integral json.Number values; anything else is invalid_type.
func Int() valis.AnySchema[int64] { return intSchema{} }

// Float returns the strict floating-point leaf schema. Integers widen.
func Float() valis.AnySchema[float64] { return floatSchema{} }

// Any accepts every input unchanged.
func Any() valis.AnySchema[any] { return anySchema{} }

type stringSchema struct{}

func (stringSchema) Validate(v any) valis.Result[string] {
	s, ok := v.(string)
	if !ok {
		return valis.Failure[string](valis.Issues{invalidType(v, "string")})
	}
	return valis.Success(s)
}

func (stringSchema) ValidateCtx(_ context.Context, v any) valis.Result[string] {
	return stringSchema{}.Validate(v)
}

type boolSchema struct{}

func (boolSchema) Validate(v any) valis.Result[bool] {
	b, ok := v.(bool)
	if !ok {
		return valis.Failure[bool](valis.Issues{invalidType(v, "bool")})
	}
	return valis.Success(b)
}

func (boolSchema) ValidateCtx(_ context.Context, v any) valis.Result[bool] {
	return boolSchema{}.Validate(v)
}

type intSchema struct{}

func (intSchema) Validate(v any) valis.Result[int64] {
	switch t := v.(type) {
	case int:
		return valis.Success(int64(t))
	case int8:
		return valis.Success(int64(t))
	case int16:
		return valis.Success(int64(t))
	case int32:
		return valis.Success(int64(t))
	case int64:
		return valis.Success(t)
	case uint:
		return valis.Success(int64(t))
	case uint8:
		return valis.Success(int64(t))
	case uint16:
		return valis.Success(int64(t))
	case uint32:
		return valis.Success(int64(t))
	case uint64:
		// Best-effort downcast; overflow wraps into Go's int64 range.
		return valis.Success(int64(t))
	case json.Number:
		if i64, err := t.Int64(); err == nil {
			return valis.Success(i64)
		}
	}
	return valis.Failure[int64](valis.Issues{invalidType(v, "int")})
}

func (intSchema) ValidateCtx(_ context.Context, v any) valis.Result[int64] {
	return intSchema{}.Validate(v)
}

type floatSchema struct{}

func (floatSchema) Validate(v any) valis.Result[float64] {
	switch t := v.(type) {
	case float64:
		return valis.Success(t)
	case float32:
		return valis.Success(float64(t))
	case int:
		return valis.Success(float64(t))
	case int64:
		return valis.Success(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return valis.Success(f)
		}
	}
	return valis.Failure[float64](valis.Issues{invalidType(v, "float")})
}

func (floatSchema) ValidateCtx(_ context.Context, v any) valis.Result[float64] {
	return floatSchema{}.Validate(v)
}

type anySchema struct{}

func (anySchema) Validate(v any) valis.Result[any] { return valis.Success(v) }

func (anySchema) ValidateCtx(_ context.Context, v any) valis.Result[any] {
	return valis.Success(v)
}
