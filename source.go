package valis

import (
	"bytes"
	"context"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// This file is the decode boundary: it turns serialized bytes into the
// native map/slice/scalar values the validator algebra operates on.
// Validation itself never tokenizes text.

// JSONBytes decodes JSON into a runtime value using go-json. Numbers
// surface as json.Number so precision survives until coercion decides.
func JSONBytes(b []byte) (any, error) { return JSONReader(bytes.NewReader(b)) }

// JSONReader decodes a JSON document from r.
func JSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes decodes YAML into a runtime value, rewriting map[any]any keys
// into map[string]any recursively so object schemas see JSON-like maps.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}

// ParseJSON decodes data and validates it against s. Decode failures
// surface as a single parse_error issue at the root.
func ParseJSON[O any](ctx context.Context, s AnySchema[O], data []byte) Result[O] {
	v, err := JSONBytes(data)
	if err != nil {
		return Failure[O](Issues{{Code: CodeParseError, Message: err.Error()}})
	}
	return s.ValidateCtx(ctx, v)
}

// ParseYAML decodes YAML data and validates it against s.
func ParseYAML[O any](ctx context.Context, s AnySchema[O], data []byte) Result[O] {
	v, err := YAMLBytes(data)
	if err != nil {
		return Failure[O](Issues{{Code: CodeParseError, Message: err.Error()}})
	}
	return s.ValidateCtx(ctx, v)
}
