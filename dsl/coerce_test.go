package dsl_test

import (
	"encoding/json"
	"math"
	"testing"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/dsl"
)

func TestCoerceBool(t *testing.T) {
	c := dsl.CoerceBool()
	truthy := []any{true, 1, int64(1), json.Number("1"), "true", " YES ", "On", "1"}
	for _, v := range truthy {
		if r := c.Validate(v); r.IsFailure() || !r.Value() {
			t.Fatalf("%#v should coerce to true: %v", v, r)
		}
	}
	falsy := []any{false, 0, int64(0), json.Number("0"), "false", "no", " OFF ", "0"}
	for _, v := range falsy {
		if r := c.Validate(v); r.IsFailure() || r.Value() {
			t.Fatalf("%#v should coerce to false: %v", v, r)
		}
	}
	for _, v := range []any{2, "maybe", "tru e", 1.5, nil} {
		r := c.Validate(v)
		if !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidCoercion {
			t.Fatalf("%#v should fail with invalid_coercion: %v", v, r)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	c := dsl.CoerceInt()
	cases := []struct {
		in   any
		want int64
	}{
		{7, 7},
		{uint32(9), 9},
		{3.0, 3},
		{float32(4), 4},
		{json.Number("42"), 42},
		{json.Number("5.0"), 5},
		{"  12  ", 12},
		{"-8", -8},
	}
	for _, tc := range cases {
		r := c.Validate(tc.in)
		if r.IsFailure() || r.Value() != tc.want {
			t.Fatalf("%#v: expected %d, got %v", tc.in, tc.want, r)
		}
	}
	for _, v := range []any{3.5, math.NaN(), math.Inf(1), "12.3", "x", nil, true} {
		r := c.Validate(v)
		if !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidCoercion {
			t.Fatalf("%#v should fail with invalid_coercion: %v", v, r)
		}
	}
}

func TestCoerceInt_Bounds(t *testing.T) {
	c := dsl.CoerceInt().Min(10).Max(20)

	if r := c.Validate(15); r.IsFailure() {
		t.Fatalf("in-range value should pass: %v", r.Issues())
	}
	if r := c.Validate(10); r.IsFailure() {
		t.Fatalf("bounds are inclusive: %v", r.Issues())
	}

	low := c.Validate(5)
	if !low.IsFailure() || len(low.Issues()) != 1 || low.Issues()[0].Code != valis.CodeTooSmall {
		t.Fatalf("below min should yield exactly one too_small: %v", low)
	}
	if low.Issues()[0].Params["min"] != int64(10) || low.Issues()[0].Params["actual"] != int64(5) {
		t.Fatalf("unexpected too_small params: %v", low.Issues()[0].Params)
	}

	high := c.Validate("25")
	if !high.IsFailure() || len(high.Issues()) != 1 || high.Issues()[0].Code != valis.CodeTooBig {
		t.Fatalf("above max should yield exactly one too_big: %v", high)
	}
}

func TestCoerceInt_BuilderCopies(t *testing.T) {
	base := dsl.CoerceInt()
	bounded := base.Min(10)
	if r := base.Validate(1); r.IsFailure() {
		t.Fatalf("Min must not mutate the receiver: %v", r.Issues())
	}
	if r := bounded.Validate(1); !r.IsFailure() {
		t.Fatalf("derived coercer should enforce the bound")
	}
}

func TestCoerceFloat(t *testing.T) {
	c := dsl.CoerceFloat()
	cases := []struct {
		in   any
		want float64
	}{
		{2.5, 2.5},
		{3, 3.0},
		{json.Number("1.25"), 1.25},
		{" 0.5 ", 0.5},
	}
	for _, tc := range cases {
		r := c.Validate(tc.in)
		if r.IsFailure() || r.Value() != tc.want {
			t.Fatalf("%#v: expected %v, got %v", tc.in, tc.want, r)
		}
	}
	if r := c.Validate("abc"); !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidCoercion {
		t.Fatalf("non-numeric string should fail: %v", r)
	}

	bounded := dsl.CoerceFloat().Min(0).Max(1)
	if r := bounded.Validate(-0.5); !r.IsFailure() || r.Issues()[0].Code != valis.CodeTooSmall {
		t.Fatalf("below min: %v", r)
	}
	if r := bounded.Validate(1.5); !r.IsFailure() || r.Issues()[0].Code != valis.CodeTooBig {
		t.Fatalf("above max: %v", r)
	}
}

func TestCoerceString(t *testing.T) {
	c := dsl.CoerceString()
	cases := []struct {
		in   any
		want string
	}{
		{"x", "x"},
		{json.Number("1.50"), "1.50"}, // textual form preserved, no reformat
		{42, "42"},
		{true, "true"},
		{nil, "<nil>"},
	}
	for _, tc := range cases {
		r := c.Validate(tc.in)
		if r.IsFailure() || r.Value() != tc.want {
			t.Fatalf("%#v: expected %q, got %v", tc.in, tc.want, r)
		}
	}
}
