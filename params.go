package rpcwire

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoParam is returned by [Params.Unmarshal] when the named parameter is
// not present.
var ErrNoParam = errors.New("parameter not present")

// Params represents the params member of a [Request]: a string-keyed map of
// arbitrary JSON values, each kept verbatim as a [json.RawMessage].
//
// A nil Params means the field was absent or an explicit JSON null; callers
// treat the two identically. Params must decode from a JSON object — the
// protocol's positional (array) form is not used by the tool-invocation
// surface this package serves, and any non-object, non-null value fails
// decoding with [ErrInvalidFieldType].
//
// Callers treat Params as a lookup table, not a sequence; key order from the
// input is not preserved.
type Params map[string]json.RawMessage

// NewParams builds Params from any map of JSON-marshalable values.
// It returns an error if a value cannot be marshaled.
//
// Example:
//
//	p, err := rpcwire.NewParams(map[string]any{"name": "get_posts"})
func NewParams[V any, M ~map[string]V](m M) (Params, error) {
	if m == nil {
		return nil, nil
	}

	p := make(Params, len(m))

	for k, v := range m {
		raw, err := Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}

		p[k] = raw
	}

	return p, nil
}

// Has returns true if the named parameter is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// TypeHint returns the [TypeHint] for the named parameter, or [TypeEmpty] if
// it is not present.
func (p Params) TypeHint(key string) TypeHint {
	return HintType(p[key])
}

// Unmarshal decodes the named parameter into v. It returns [ErrNoParam] if
// the parameter is not present.
func (p Params) Unmarshal(key string, v any) error {
	raw, ok := p[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoParam, key)
	}

	return Unmarshal(raw, v)
}

// IsZero returns true if no params were given. Used by the omitzero struct
// tag so an absent params field stays absent on re-serialization while an
// empty object survives as {}.
func (p Params) IsZero() bool {
	return p == nil
}
