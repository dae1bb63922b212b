package valis

import "context"

// Schema is the single validator contract: validate an input of type I and
// return a Result[O]. Concrete leaves and every combinator implement this
// one interface and compose by wrapping child schemas.
//
// Schemas are immutable after construction and safe to reuse across any
// number of validations, including the same instance validating unrelated
// inputs concurrently. No schema may mutate shared state during validation.
type Schema[I, O any] interface {
	// Validate runs synchronously and never suspends.
	Validate(in I) Result[O]
	// ValidateCtx is the context-aware variant with identical semantics.
	// Most implementations simply validate synchronously; only stages that
	// genuinely suspend (external lookups behind FuncCtx, chained through
	// dsl.Pipe) consult the context.
	ValidateCtx(ctx context.Context, in I) Result[O]
}

// AnySchema validates untyped runtime input (decoded maps, slices, scalars).
type AnySchema[O any] = Schema[any, O]

type funcSchema[I, O any] struct {
	fn func(context.Context, I) Result[O]
}

func (s funcSchema[I, O]) Validate(in I) Result[O] {
	return s.fn(context.Background(), in)
}

func (s funcSchema[I, O]) ValidateCtx(ctx context.Context, in I) Result[O] {
	return s.fn(ctx, in)
}

// Func adapts a plain function into a Schema.
func Func[I, O any](fn func(I) Result[O]) Schema[I, O] {
	return funcSchema[I, O]{fn: func(_ context.Context, in I) Result[O] { return fn(in) }}
}

// FuncCtx adapts a context-aware function into a Schema, for stages whose
// upstream computation suspends (e.g. an external lookup).
func FuncCtx[I, O any](fn func(context.Context, I) Result[O]) Schema[I, O] {
	return funcSchema[I, O]{fn: fn}
}

// Is reports whether in conforms to the schema.
func Is[I, O any](s Schema[I, O], in I) bool { return s.Validate(in).IsSuccess() }

// Must validates in and panics on failure. Intended for static inputs known
// to be valid (fixtures, literals).
func Must[I, O any](s Schema[I, O], in I) O {
	r := s.Validate(in)
	if r.IsFailure() {
		panic(r.Issues().Error())
	}
	return r.Value()
}
