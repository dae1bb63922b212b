// Package valis is a composable validator algebra for untyped runtime input.
//
// A Schema[I, O] validates an input of type I and returns a Result[O]:
// either a typed success value or an ordered list of structured Issues with
// full field paths from the validation root. Schemas are immutable values
// that compose by wrapping child schemas; the dsl package provides the
// combinator set (objects, arrays, coercion, pipe, transform, default,
// nullable, lazy, brand) while this package defines the contract, the
// result model, the issue pipeline and the formatting surface.
//
// Validation is synchronous by default. ValidateCtx is the context-aware
// variant; only combinators with genuinely suspending stages (see dsl.Pipe
// with a FuncCtx stage) do anything beyond threading the context through.
package valis
