package dsl

import (
	"context"
	"fmt"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/i18n"
)

// AnyAdapter erases a Schema[any, O] to an any-valued validator so object
// shapes can hold children of heterogeneous output types.
type AnyAdapter struct {
	validate func(context.Context, any) valis.Result[any]
}

// SchemaOf wraps a typed schema as an AnyAdapter for use as an object field.
func SchemaOf[O any](s valis.AnySchema[O]) AnyAdapter {
	return AnyAdapter{validate: func(ctx context.Context, v any) valis.Result[any] {
		r := s.ValidateCtx(ctx, v)
		if r.IsFailure() {
			return valis.Failure[any](r.Issues())
		}
		return valis.Success[any](r.Value())
	}}
}

// guard invokes a user-supplied function, converting a panic into an error
// so faults stop at the combinator boundary instead of unwinding past it.
func guard[A, B any](fn func(A) (B, error), in A) (out B, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(in)
}

// issueOf builds an issue at the root path with a rendered default message.
func issueOf(code string, v any, params map[string]any) valis.Issue {
	return valis.Issue{Code: code, Message: i18n.T(code, params), Value: v, Params: params}
}

func invalidType(v any, expected string) valis.Issue {
	return issueOf(valis.CodeInvalidType, v, map[string]any{"expected": expected})
}

func invalidCoercion(v any, expected string) valis.Issue {
	return issueOf(valis.CodeInvalidCoercion, v, map[string]any{"expected": expected})
}
