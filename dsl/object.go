package dsl

import (
	"context"
	"sort"

	valis "github.com/reoring/valis"
	"github.com/reoring/valis/i18n"
)

// UnknownPolicy controls how input keys absent from the declared shape are
// handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Reject unknown keys with unknown_key.
	UnknownPassthrough                      // Fold unknown keys into a target field.
)

// ObjectBuilder accumulates the declared field shape before Build.
type ObjectBuilder struct {
	fields        map[string]AnyAdapter
	unknownPolicy UnknownPolicy
	unknownTarget string
}

// Object starts an object schema definition.
func Object() *ObjectBuilder {
	return &ObjectBuilder{fields: map[string]AnyAdapter{}}
}

// Field declares a child schema for the named key. A later Field with the
// same name overrides the earlier one.
func (b *ObjectBuilder) Field(name string, ad AnyAdapter) *ObjectBuilder {
	b.fields[name] = ad
	return b
}

// Strict rejects input keys not present in the declared shape.
func (b *ObjectBuilder) Strict() *ObjectBuilder {
	b.unknownPolicy = UnknownStrict
	return b
}

// Strip drops unknown input keys silently (the default).
func (b *ObjectBuilder) Strip() *ObjectBuilder {
	b.unknownPolicy = UnknownStrip
	return b
}

// Passthrough folds unknown input keys into a map under target in the
// output.
func (b *ObjectBuilder) Passthrough(target string) *ObjectBuilder {
	b.unknownPolicy = UnknownPassthrough
	b.unknownTarget = target
	return b
}

// Build freezes the declared shape into an immutable ObjectSchema.
func (b *ObjectBuilder) Build() *ObjectSchema {
	return newObjectSchema(b.fields, b.unknownPolicy, b.unknownTarget)
}

// ObjectSchema validates keyed mappings against a declared field shape.
// It visits every declared field and collects all issues; it never stops at
// the first failing field.
type ObjectSchema struct {
	fields        map[string]AnyAdapter
	unknownPolicy UnknownPolicy
	unknownTarget string
	sortedKeys    []string
}

var _ valis.AnySchema[map[string]any] = (*ObjectSchema)(nil)

func newObjectSchema(fields map[string]AnyAdapter, policy UnknownPolicy, target string) *ObjectSchema {
	cp := make(map[string]AnyAdapter, len(fields))
	keys := make([]string, 0, len(fields))
	for k, ad := range fields {
		cp[k] = ad
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &ObjectSchema{fields: cp, unknownPolicy: policy, unknownTarget: target, sortedKeys: keys}
}

func (o *ObjectSchema) Validate(v any) valis.Result[map[string]any] {
	return o.ValidateCtx(context.Background(), v)
}

func (o *ObjectSchema) ValidateCtx(ctx context.Context, v any) valis.Result[map[string]any] {
	src, ok := v.(map[string]any)
	if !ok {
		return valis.Failure[map[string]any](valis.Issues{invalidType(v, "object")})
	}
	out := make(map[string]any, len(o.fields))
	var iss valis.Issues
	for _, k := range o.sortedKeys {
		// Absent fields validate as nil so nullable/default children decide.
		r := o.fields[k].validate(ctx, src[k])
		if r.IsFailure() {
			// A zero-issue child failure means "absent, not wrong":
			// the key is omitted and nothing accumulates.
			iss = append(iss, r.Issues().PrefixPath(valis.Field(k))...)
			continue
		}
		out[k] = r.Value()
	}
	iss = append(iss, o.collectUnknown(src, out)...)
	if len(iss) > 0 {
		return valis.Failure[map[string]any](iss)
	}
	return valis.Success(out)
}

// collectUnknown applies the unknown-key policy in key-sorted order and may
// write into out for passthrough.
func (o *ObjectSchema) collectUnknown(src, out map[string]any) valis.Issues {
	var iss valis.Issues
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := o.fields[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	for _, k := range uks {
		switch o.unknownPolicy {
		case UnknownStrict:
			params := map[string]any{"key": k}
			iss = valis.AppendIssues(iss, valis.Issue{
				Code:    valis.CodeUnknownKey,
				Message: i18n.T(valis.CodeUnknownKey, params),
				Path:    valis.Path{valis.Field(k)},
				Value:   src[k],
				Params:  params,
			})
		case UnknownStrip:
			// drop
		case UnknownPassthrough:
			extra, _ := out[o.unknownTarget].(map[string]any)
			if extra == nil {
				extra = map[string]any{}
			}
			extra[k] = src[k]
			out[o.unknownTarget] = extra
		}
	}
	return iss
}

// Extend returns a new schema with more fields merged in; same-named later
// fields override earlier ones. The receiver is unchanged.
func (o *ObjectSchema) Extend(fields map[string]AnyAdapter) *ObjectSchema {
	merged := make(map[string]AnyAdapter, len(o.fields)+len(fields))
	for k, ad := range o.fields {
		merged[k] = ad
	}
	for k, ad := range fields {
		merged[k] = ad
	}
	return newObjectSchema(merged, o.unknownPolicy, o.unknownTarget)
}

// Pick returns a new schema keeping only the named fields; names not in the
// shape are skipped silently.
func (o *ObjectSchema) Pick(names ...string) *ObjectSchema {
	kept := make(map[string]AnyAdapter, len(names))
	for _, k := range names {
		if ad, ok := o.fields[k]; ok {
			kept[k] = ad
		}
	}
	return newObjectSchema(kept, o.unknownPolicy, o.unknownTarget)
}

// Omit returns a new schema without the named fields.
func (o *ObjectSchema) Omit(names ...string) *ObjectSchema {
	drop := make(map[string]struct{}, len(names))
	for _, k := range names {
		drop[k] = struct{}{}
	}
	kept := make(map[string]AnyAdapter, len(o.fields))
	for k, ad := range o.fields {
		if _, gone := drop[k]; !gone {
			kept[k] = ad
		}
	}
	return newObjectSchema(kept, o.unknownPolicy, o.unknownTarget)
}

// Construct maps the cleaned output mapping of an object schema through an
// output constructor. A fault raised by fn yields a single transform_error
// issue instead of propagating.
func Construct[T any](base valis.AnySchema[map[string]any], fn func(map[string]any) (T, error)) valis.AnySchema[T] {
	return constructSchema[T]{base: base, fn: fn}
}

type constructSchema[T any] struct {
	base valis.AnySchema[map[string]any]
	fn   func(map[string]any) (T, error)
}

func (c constructSchema[T]) Validate(v any) valis.Result[T] {
	return c.ValidateCtx(context.Background(), v)
}

func (c constructSchema[T]) ValidateCtx(ctx context.Context, v any) valis.Result[T] {
	r := c.base.ValidateCtx(ctx, v)
	if r.IsFailure() {
		return valis.Failure[T](r.Issues())
	}
	out, err := guard(c.fn, r.Value())
	if err != nil {
		return valis.Failure[T](valis.Issues{issueOf(valis.CodeTransformError, v, map[string]any{"error": err.Error()})})
	}
	return valis.Success(out)
}
