package dsl

import (
	"context"
	"sync"

	valis "github.com/reoring/valis"
)

// Catch runs base and, on failure, succeeds with handler's substitute value
// instead. It never fails. The handler must not panic.
func Catch[O any](base valis.AnySchema[O], handler func(valis.Issues) O) valis.AnySchema[O] {
	return catchSchema[O]{base: base, handler: handler}
}

type catchSchema[O any] struct {
	base    valis.AnySchema[O]
	handler func(valis.Issues) O
}

func (c catchSchema[O]) Validate(v any) valis.Result[O] {
	return c.ValidateCtx(context.Background(), v)
}

func (c catchSchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	r := c.base.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Success(c.handler(r.Issues()))
	}
	return r
}

// Default succeeds with value on nil input without invoking base, and also
// falls back to value when a non-nil input fails base. Defaulting masks
// base validation failure entirely: the issues are discarded, never
// surfaced. Compose Catch with a custom handler to observe them instead.
func Default[O any](base valis.AnySchema[O], value O) valis.AnySchema[O] {
	return defaultSchema[O]{base: base, value: value}
}

type defaultSchema[O any] struct {
	base  valis.AnySchema[O]
	value O
}

func (d defaultSchema[O]) Validate(v any) valis.Result[O] {
	return d.ValidateCtx(context.Background(), v)
}

func (d defaultSchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	if v == nil {
		return valis.Success(d.value)
	}
	r := d.base.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Success(d.value)
	}
	return r
}

// Nullable fails with an empty issue list on nil input, signaling "absent,
// not wrong": enclosing aggregates drop the field silently instead of
// recording an error. Non-nil input delegates entirely to base.
func Nullable[O any](base valis.AnySchema[O]) valis.AnySchema[O] {
	return nullableSchema[O]{base: base}
}

type nullableSchema[O any] struct {
	base valis.AnySchema[O]
}

func (n nullableSchema[O]) Validate(v any) valis.Result[O] {
	return n.ValidateCtx(context.Background(), v)
}

func (n nullableSchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	if v == nil {
		return valis.Failure[O](nil)
	}
	return n.base.ValidateCtx(ctx, v)
}

// Lazy defers schema construction until first use and caches the result,
// enabling self-referential schema graphs without infinite construction.
func Lazy[O any](factory func() valis.AnySchema[O]) valis.AnySchema[O] {
	return &lazySchema[O]{factory: factory}
}

type lazySchema[O any] struct {
	once    sync.Once
	factory func() valis.AnySchema[O]
	inner   valis.AnySchema[O]
}

func (l *lazySchema[O]) resolve() valis.AnySchema[O] {
	l.once.Do(func() { l.inner = l.factory() })
	return l.inner
}

func (l *lazySchema[O]) Validate(v any) valis.Result[O] {
	return l.resolve().Validate(v)
}

func (l *lazySchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	return l.resolve().ValidateCtx(ctx, v)
}

// Branded tags an underlying value with the phantom type B. Two Branded
// instantiations over the same O but different B are distinct Go types, so
// semantically different values of one representation cannot mix.
type Branded[O, B any] struct {
	Value O
}

// Brand reboxes base's success value as Branded[O, B]. Failure passes
// through untouched; the underlying value is never altered.
func Brand[B any, O any](base valis.AnySchema[O]) valis.AnySchema[Branded[O, B]] {
	return brandSchema[O, B]{base: base}
}

type brandSchema[O, B any] struct {
	base valis.AnySchema[O]
}

func (b brandSchema[O, B]) Validate(v any) valis.Result[Branded[O, B]] {
	return b.ValidateCtx(context.Background(), v)
}

func (b brandSchema[O, B]) ValidateCtx(ctx context.Context, v any) valis.Result[Branded[O, B]] {
	r := b.base.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Failure[Branded[O, B]](r.Issues())
	}
	return valis.Success(Branded[O, B]{Value: r.Value()})
}

// Refine adds a post-success predicate to base. A false result emits one
// issue with the given code (CodeCustom when empty); a fault inside check
// downgrades to transform_error.
func Refine[O any](base valis.AnySchema[O], code string, check func(O) bool) valis.AnySchema[O] {
	if code == "" {
		code = valis.CodeCustom
	}
	return refineSchema[O]{base: base, code: code, check: check}
}

type refineSchema[O any] struct {
	base  valis.AnySchema[O]
	code  string
	check func(O) bool
}

func (r refineSchema[O]) Validate(v any) valis.Result[O] {
	return r.ValidateCtx(context.Background(), v)
}

func (r refineSchema[O]) ValidateCtx(ctx context.Context, v any) valis.Result[O] {
	res := r.base.ValidateCtx(ctx, v)
	if res.IsFailure() {
		return res
	}
	ok, err := guard(func(val O) (bool, error) { return r.check(val), nil }, res.Value())
	if err != nil {
		return valis.Failure[O](valis.Issues{issueOf(valis.CodeTransformError, v, map[string]any{"error": err.Error()})})
	}
	if !ok {
		return valis.Failure[O](valis.Issues{issueOf(r.code, v, nil)})
	}
	return res
}
