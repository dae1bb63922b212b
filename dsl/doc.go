// Package dsl provides the combinator set of the validator algebra:
// primitive leaves, coercers, object and array aggregation, and the
// transform/control combinators (Pipe, Transform, Preprocess, Catch,
// Default, Nullable, Lazy, Brand, Refine).
//
// Every constructor returns an immutable schema value. Chaining methods
// (Min, Max, builder steps) produce new values or operate before Build;
// built schemas are safe to share across concurrent validations.
//
// Typical usage:
//
//	user := dsl.Object().
//	    Field("name", dsl.SchemaOf[string](dsl.String())).
//	    Field("age", dsl.SchemaOf[int64](dsl.CoerceInt().Min(0))).
//	    Strict().
//	    Build()
//
//	r := user.Validate(input)
//	if r.IsFailure() {
//	    tree := valis.TreeOf(r.Issues())
//	    ...
//	}
package dsl
