package i18n

import (
	"fmt"
	"regexp"
)

// Codes here are literals rather than imports to keep this package free of
// dependencies on the issue model.
func defaultTable() map[string]Renderer {
	return map[string]Renderer{
		"invalid_type": func(p map[string]any) string {
			if e, ok := p["expected"]; ok {
				return fmt.Sprintf("invalid type: expected %v", e)
			}
			return "invalid type"
		},
		"invalid_coercion": func(p map[string]any) string {
			if e, ok := p["expected"]; ok {
				return fmt.Sprintf("cannot coerce value to %v", e)
			}
			return "cannot coerce value"
		},
		"too_small": func(p map[string]any) string {
			if m, ok := p["min"]; ok {
				return fmt.Sprintf("value must be at least %v", m)
			}
			return "value is too small"
		},
		"too_big": func(p map[string]any) string {
			if m, ok := p["max"]; ok {
				return fmt.Sprintf("value must be at most %v", m)
			}
			return "value is too big"
		},
		"unknown_key": func(p map[string]any) string {
			if k, ok := p["key"]; ok {
				return fmt.Sprintf("unknown key %q", fmt.Sprint(k))
			}
			return "unknown key"
		},
		"transform_error":  Static("transform failed"),
		"preprocess_error": Static("preprocess failed"),
		"parse_error":      Static("parse error"),
		"custom":           Static("invalid value"),
	}
}

var paramRe = regexp.MustCompile(`%\{([^}]+)\}`)

// Template returns a Renderer substituting %{name} placeholders from
// params. Unmatched placeholders are kept verbatim.
func Template(tmpl string) Renderer {
	return func(params map[string]any) string {
		return paramRe.ReplaceAllStringFunc(tmpl, func(match string) string {
			name := match[2 : len(match)-1]
			if v, ok := params[name]; ok {
				return fmt.Sprint(v)
			}
			return match
		})
	}
}
