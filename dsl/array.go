package dsl

import (
	"context"

	valis "github.com/reoring/valis"
)

// Array returns a schema validating sequential input element-wise against
// elem. Failing elements contribute issues prefixed with their index; all
// elements are visited before failing.
func Array[E any](elem valis.AnySchema[E]) ArraySchema[E] {
	return ArraySchema[E]{elem: elem}
}

// ArrayOf adapts Array[E] to an AnyAdapter for use as an object field.
func ArrayOf[E any](elem valis.AnySchema[E]) AnyAdapter {
	return SchemaOf[[]E](Array(elem))
}

// ArraySchema validates []any (or already-typed []E) input.
type ArraySchema[E any] struct {
	elem valis.AnySchema[E]
}

func (a ArraySchema[E]) Validate(v any) valis.Result[[]E] {
	return a.ValidateCtx(context.Background(), v)
}

func (a ArraySchema[E]) ValidateCtx(ctx context.Context, v any) valis.Result[[]E] {
	switch src := v.(type) {
	case []any:
		return a.validateElems(ctx, src)
	case []E:
		anys := make([]any, len(src))
		for i := range src {
			anys[i] = src[i]
		}
		return a.validateElems(ctx, anys)
	default:
		return valis.Failure[[]E](valis.Issues{invalidType(v, "array")})
	}
}

func (a ArraySchema[E]) validateElems(ctx context.Context, src []any) valis.Result[[]E] {
	out := make([]E, 0, len(src))
	var iss valis.Issues
	for i := range src {
		r := a.elem.ValidateCtx(ctx, src[i])
		if r.IsFailure() {
			iss = append(iss, r.Issues().PrefixPath(valis.Index(i))...)
			continue
		}
		out = append(out, r.Value())
	}
	if len(iss) > 0 {
		return valis.Failure[[]E](iss)
	}
	return valis.Success(out)
}
