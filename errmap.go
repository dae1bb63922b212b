package valis

import (
	"sync"

	"github.com/reoring/valis/i18n"
)

// ErrorMapContext is handed to a custom error-map function alongside the
// issue itself.
type ErrorMapContext struct {
	Code           string
	DefaultMessage string
	Params         map[string]any
}

// ErrorMapFunc may return a replacement message for an issue, or decline
// (ok=false) to keep the default.
type ErrorMapFunc func(it Issue, ctx ErrorMapContext) (msg string, ok bool)

var (
	errMapMu sync.RWMutex
	errMap   ErrorMapFunc
)

// SetErrorMap registers the process-wide custom-message function.
// Last writer wins; reconfiguring mid-flight validations is the caller's
// synchronization problem, as with the locale configuration.
func SetErrorMap(fn ErrorMapFunc) {
	errMapMu.Lock()
	errMap = fn
	errMapMu.Unlock()
}

// ClearErrorMap removes the custom-message function.
func ClearErrorMap() { SetErrorMap(nil) }

// ApplyErrorMap runs the registered error map over the issues, producing a
// new list; issues the function declines keep their existing message. It is
// applied opt-in by the caller, never automatically inside validation.
func ApplyErrorMap(iss Issues) Issues {
	errMapMu.RLock()
	fn := errMap
	errMapMu.RUnlock()
	if fn == nil || len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		out[i] = it
		if msg, ok := fn(it, ErrorMapContext{Code: it.Code, DefaultMessage: it.Message, Params: it.Params}); ok {
			out[i] = it.WithMessage(msg)
		}
	}
	return out
}

// TranslateIssues re-renders every message from its code and params under
// the active locale, producing new issue values.
func TranslateIssues(iss Issues) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		out[i] = it.WithMessage(i18n.T(it.Code, it.Params))
	}
	return out
}
