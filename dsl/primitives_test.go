package dsl_test

import (
	"encoding/json"
	"testing"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/dsl"
)

func TestString_Strict(t *testing.T) {
	if r := dsl.String().Validate("hi"); r.IsFailure() || r.Value() != "hi" {
		t.Fatalf("string should accept string: %v", r)
	}
	r := dsl.String().Validate(42)
	if !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidType {
		t.Fatalf("string must reject non-string with invalid_type: %v", r)
	}
}

func TestBool_Strict(t *testing.T) {
	if r := dsl.Bool().Validate(true); r.IsFailure() || !r.Value() {
		t.Fatalf("bool should accept bool: %v", r)
	}
	if r := dsl.Bool().Validate("true"); !r.IsFailure() {
		t.Fatalf("strict bool must reject strings")
	}
}

func TestInt_Strict(t *testing.T) {
	if r := dsl.Int().Validate(7); r.IsFailure() || r.Value() != 7 {
		t.Fatalf("int should accept int: %v", r)
	}
	if r := dsl.Int().Validate(json.Number("12")); r.IsFailure() || r.Value() != 12 {
		t.Fatalf("int should accept integral json.Number: %v", r)
	}
	if r := dsl.Int().Validate(json.Number("1.5")); !r.IsFailure() {
		t.Fatalf("fractional json.Number must be rejected by the strict leaf")
	}
	if r := dsl.Int().Validate(3.0); !r.IsFailure() {
		t.Fatalf("strict int must reject float64")
	}
}

func TestFloat_Strict(t *testing.T) {
	if r := dsl.Float().Validate(2.5); r.IsFailure() || r.Value() != 2.5 {
		t.Fatalf("float should accept float64: %v", r)
	}
	if r := dsl.Float().Validate(3); r.IsFailure() || r.Value() != 3.0 {
		t.Fatalf("float should widen int: %v", r)
	}
	if r := dsl.Float().Validate("3"); !r.IsFailure() {
		t.Fatalf("strict float must reject strings")
	}
}

func TestAny_AcceptsEverything(t *testing.T) {
	for _, v := range []any{nil, 1, "x", []any{1}, map[string]any{}} {
		if r := dsl.Any().Validate(v); r.IsFailure() {
			t.Fatalf("any must accept %v", v)
		}
	}
}
