package rpcwire

import (
	"encoding/json"
	"errors"
)

// ErrNotRawMessage is returned by [Result.Unmarshal] when the contained
// value was built programmatically from a Go value instead of decoded JSON.
var ErrNotRawMessage = errors.New("value is not a raw message")

// Result holds the result member of a success [Response]: an arbitrary JSON
// value kept verbatim, which may itself be null, a scalar, an array, or an
// object.
//
// When a Response is decoded, the result's raw JSON is stored internally.
// Use [Result.Unmarshal] to project it into a Go type, or
// [Result.RawMessage] to forward it untouched.
type Result struct {
	value   any
	present bool
}

// NewResult creates a Result containing the provided value, which must be
// marshalable to JSON. Use it when constructing responses programmatically.
func NewResult(v any) Result {
	return Result{present: true, value: v}
}

// IsZero returns true if no result value has been set. A decoded Response
// never carries a zero Result; the field is mandatory.
func (r *Result) IsZero() bool {
	return !r.present
}

// RawMessage returns the internally stored [json.RawMessage], or nil if the
// value is not raw JSON.
func (r *Result) RawMessage() json.RawMessage {
	if raw, ok := r.value.(json.RawMessage); ok {
		return raw
	}

	return nil
}

// Value returns the raw internal value: a [json.RawMessage] for decoded
// results, or whatever Go value was passed to [NewResult].
func (r *Result) Value() any {
	return r.value
}

// TypeHint returns a [TypeHint] for the contained JSON value, or
// [TypeUnknown] if the value is not raw JSON.
func (r *Result) TypeHint() TypeHint {
	if raw, ok := r.value.(json.RawMessage); ok {
		return HintType(raw)
	}

	return TypeUnknown
}

// Unmarshal decodes the internally stored [json.RawMessage] into v. It
// returns [ErrNotRawMessage] if the Result was built from a Go value.
func (r *Result) Unmarshal(v any) error {
	if raw, ok := r.value.(json.RawMessage); ok {
		return Unmarshal(raw, v)
	}

	return ErrNotRawMessage
}

// UnmarshalJSON implements [json.Unmarshaler], storing a copy of the raw
// JSON value for later projection.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw json.RawMessage
	if err := Unmarshal(data, &raw); err != nil {
		return err
	}

	r.value = raw
	r.present = true

	return nil
}

// MarshalJSON implements [json.Marshaler]. A zero Result marshals as JSON
// null.
func (r *Result) MarshalJSON() ([]byte, error) {
	if !r.present || r.value == nil {
		return []byte("null"), nil
	}

	return Marshal(r.value)
}
