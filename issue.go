package valis

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType     = "invalid_type"
	CodeInvalidCoercion = "invalid_coercion"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeUnknownKey      = "unknown_key"
	CodeTransformError  = "transform_error"
	CodePreprocessError = "preprocess_error"
	CodeParseError      = "parse_error"
	CodeCustom          = "custom"
)

// Issue represents a single validation failure.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string // Rendered human message for the active locale.
	Path    Path   // Root-to-leaf location; empty means root level.
	Value   any    // Optional snapshot of the offending value.
	// Params carries structured parameters (e.g. {"min": 1, "actual": 42})
	// used to render the message and for observability.
	Params map[string]any
}

// WithMessage returns a copy of the issue carrying msg. The receiver is
// never mutated.
func (it Issue) WithMessage(msg string) Issue {
	it.Message = msg
	return it
}

// WithPathPrefix returns a copy of the issue with seg prepended to its path.
func (it Issue) WithPathPrefix(seg Segment) Issue {
	it.Path = it.Path.Prepend(seg)
	return it
}

// Issues is a collection of validation failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// PrefixPath returns a new list whose issues all carry seg prepended to
// their paths, preserving order.
func (iss Issues) PrefixPath(seg Segment) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		out[i] = it.WithPathPrefix(seg)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
