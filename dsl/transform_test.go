package dsl_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/dsl"
)

func TestPipe_Chains(t *testing.T) {
	upper := valis.Func(func(s string) valis.Result[string] {
		return valis.Success(strings.ToUpper(s))
	})
	sch := dsl.Pipe[string, string](dsl.String(), upper)
	r := sch.Validate("abc")
	if r.IsFailure() || r.Value() != "ABC" {
		t.Fatalf("unexpected pipe result: %v", r)
	}
}

func TestPipe_ShortCircuits(t *testing.T) {
	called := false
	second := valis.Func(func(s string) valis.Result[string] {
		called = true
		return valis.Success(s)
	})
	sch := dsl.Pipe[string, string](dsl.String(), second)
	r := sch.Validate(42)
	if !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidType {
		t.Fatalf("stage-one failure should propagate: %v", r)
	}
	if called {
		t.Fatalf("stage two must not run after stage-one failure")
	}
}

func TestPipe_StageTwoAfterSuspendingStageOne(t *testing.T) {
	resolved := false
	first := valis.FuncCtx(func(ctx context.Context, v any) valis.Result[string] {
		select {
		case <-ctx.Done():
			return valis.Failure[string](valis.Issues{{Code: valis.CodeCustom, Message: ctx.Err().Error()}})
		default:
		}
		resolved = true
		return valis.Success(v.(string))
	})
	second := valis.Func(func(s string) valis.Result[int] {
		if !resolved {
			t.Fatalf("stage two began before stage one resolved")
		}
		return valis.Success(len(s))
	})
	sch := dsl.Pipe[string, int](first, second)
	r := sch.ValidateCtx(context.Background(), "four")
	if r.IsFailure() || r.Value() != 4 {
		t.Fatalf("unexpected piped result: %v", r)
	}
}

func TestTransform(t *testing.T) {
	sch := dsl.Transform[string, int](dsl.String(), func(s string) (int, error) {
		return len(s), nil
	})
	if r := sch.Validate("four"); r.IsFailure() || r.Value() != 4 {
		t.Fatalf("unexpected transform result: %v", r)
	}
	// base failure propagates, fn never runs
	if r := sch.Validate(9); !r.IsFailure() || r.Issues()[0].Code != valis.CodeInvalidType {
		t.Fatalf("base failure should pass through: %v", r)
	}
}

func TestTransform_FaultBecomesTransformError(t *testing.T) {
	erring := dsl.Transform[string, int](dsl.String(), func(string) (int, error) {
		return 0, errors.New("nope")
	})
	r := erring.Validate("x")
	if !r.IsFailure() || r.Issues()[0].Code != valis.CodeTransformError {
		t.Fatalf("fn error must become transform_error: %v", r)
	}

	panicking := dsl.Transform[string, int](dsl.String(), func(string) (int, error) {
		panic("boom")
	})
	r = panicking.Validate("x")
	if !r.IsFailure() || r.Issues()[0].Code != valis.CodeTransformError {
		t.Fatalf("fn panic must become transform_error: %v", r)
	}
}

func TestPreprocess(t *testing.T) {
	trim := dsl.Preprocess[string](func(v any) (any, error) {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s), nil
		}
		return v, nil
	}, dsl.String())
	if r := trim.Validate("  hi  "); r.IsFailure() || r.Value() != "hi" {
		t.Fatalf("unexpected preprocess result: %v", r)
	}
}

func TestPreprocess_FaultBecomesPreprocessError(t *testing.T) {
	baseRan := false
	probe := valis.Func(func(v any) valis.Result[any] {
		baseRan = true
		return valis.Success(v)
	})
	sch := dsl.Preprocess[any](func(any) (any, error) {
		panic("boom")
	}, probe)
	r := sch.Validate("x")
	if !r.IsFailure() || r.Issues()[0].Code != valis.CodePreprocessError {
		t.Fatalf("preprocess fault must become preprocess_error: %v", r)
	}
	if baseRan {
		t.Fatalf("base must not run after a preprocess fault")
	}
}
