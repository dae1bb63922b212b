package valis

import "fmt"

// Result is the outcome of one validation call: exactly one of success or
// failure holds. A success never carries issues and a failure never carries
// a value. Results are immutable after construction.
type Result[O any] struct {
	value  O
	issues Issues
	ok     bool
}

// Success wraps a validated value.
func Success[O any](v O) Result[O] { return Result[O]{value: v, ok: true} }

// Failure wraps the issues of a failed validation. The list may be empty;
// an empty failure signals "absent, not wrong" (see dsl.Nullable).
func Failure[O any](iss Issues) Result[O] { return Result[O]{issues: iss} }

// IsSuccess reports whether the result holds a value.
func (r Result[O]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the result holds issues.
func (r Result[O]) IsFailure() bool { return !r.ok }

// Value returns the success value. Calling it on a failure is a programming
// error and panics rather than substituting a zero value.
func (r Result[O]) Value() O {
	if !r.ok {
		panic(fmt.Sprintf("valis: Value called on failure result: %v", r.issues))
	}
	return r.value
}

// Issues returns the failure issues. Calling it on a success is a
// programming error and panics.
func (r Result[O]) Issues() Issues {
	if r.ok {
		panic("valis: Issues called on success result")
	}
	return r.issues
}

// Err returns nil on success and the Issues (as error) on failure.
// A zero-issue failure still reports a non-nil error.
func (r Result[O]) Err() error {
	if r.ok {
		return nil
	}
	return r.issues
}
