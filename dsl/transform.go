package dsl

import (
	"context"

	valis "github.com/reoring/valis"
)

// Pipe runs first, then feeds its success value into second. Stage-one
// failure short-circuits; stage two never begins before stage one resolves,
// including a context-suspending first stage (FuncCtx doing an external
// lookup).
func Pipe[A, B any](first valis.AnySchema[A], second valis.Schema[A, B]) valis.AnySchema[B] {
	return pipeSchema[A, B]{first: first, second: second}
}

type pipeSchema[A, B any] struct {
	first  valis.AnySchema[A]
	second valis.Schema[A, B]
}

func (p pipeSchema[A, B]) Validate(v any) valis.Result[B] {
	return p.ValidateCtx(context.Background(), v)
}

func (p pipeSchema[A, B]) ValidateCtx(ctx context.Context, v any) valis.Result[B] {
	r := p.first.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Failure[B](r.Issues())
	}
	return p.second.ValidateCtx(ctx, r.Value())
}

// Transform maps the success value of base through fn. Base failure
// propagates untouched; a fault raised by fn yields a single
// transform_error issue.
func Transform[A, B any](base valis.AnySchema[A], fn func(A) (B, error)) valis.AnySchema[B] {
	return transformSchema[A, B]{base: base, fn: fn}
}

type transformSchema[A, B any] struct {
	base valis.AnySchema[A]
	fn   func(A) (B, error)
}

func (t transformSchema[A, B]) Validate(v any) valis.Result[B] {
	return t.ValidateCtx(context.Background(), v)
}

func (t transformSchema[A, B]) ValidateCtx(ctx context.Context, v any) valis.Result[B] {
	r := t.base.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Failure[B](r.Issues())
	}
	out, err := guard(t.fn, r.Value())
	if err != nil {
		return valis.Failure[B](valis.Issues{issueOf(valis.CodeTransformError, v, map[string]any{"error": err.Error()})})
	}
	return valis.Success(out)
}

// Preprocess maps the raw input through fn before base runs. A fault raised
// by fn yields preprocess_error and base never runs.
func Preprocess[O any](fn func(any) (any, error), base valis.AnySchema[O]) valis.AnySchema[O] {
	return preprocessSchema[O]{fn: fn, base: base}
}

type preprocessSchema[O any] struct {
	fn   func(any) (any, error)
	base valis.AnySchema[O]
}

func (p preprocessSchema[O]) Validate(v any) valis.Result[O] {
	return p.ValidateCtx(context.Background(), v)
}

func (p preprocessSchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	mapped, err := guard(p.fn, v)
	if err != nil {
		return valis.Failure[O](valis.Issues{issueOf(valis.CodePreprocessError, v, map[string]any{"error": err.Error()})})
	}
	return p.base.ValidateCtx(ctx, mapped)
}
