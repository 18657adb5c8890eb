package rpcwire

import (
	"encoding/json"
)

// ID represents a JSON-RPC 2.0 message identifier: the correlation value
// echoed between a request and its matching response.
//
// An identifier is a string, a 64-bit signed integer, or null — never a
// float or a structured value. A JSON number with a fractional part or one
// outside the int64 range does not decode; it is rejected with
// [ErrInvalidID] rather than truncated.
//
// Use [NewID] (string or int64) and [NewNullID] to build IDs
// programmatically; the zero value means "no id field at all" and is
// distinct from an explicit null.
type ID struct {
	value   any  // string, int64, or nil.
	present bool // Set whenever the id was given, even as null.
}

// NewID creates an ID holding the given string or int64 value.
//
// Example:
//
//	idInt := rpcwire.NewID(int64(123))
//	idStr := rpcwire.NewID("request-5")
func NewID[V int64 | string](v V) ID {
	return ID{present: true, value: v}
}

// NewNullID creates an ID representing the JSON null value. This is distinct
// from a zero-value ID ([ID.IsZero] is true), which represents an absent id
// field.
func NewNullID() ID {
	return ID{present: true}
}

// IsZero returns true if the ID is the zero value, meaning no id field was
// present at all. An explicit null id is not zero.
func (id *ID) IsZero() bool {
	return !id.present
}

// IsNull returns true if the ID holds an explicit JSON null.
func (id *ID) IsNull() bool {
	return id.present && id.value == nil
}

// Equal reports whether two IDs correlate. Zero-value IDs never equal
// anything, including each other. Null equals null; string and integer IDs
// equal only an identical value of the same kind.
func (id *ID) Equal(t ID) bool {
	if id.IsZero() || t.IsZero() {
		return false
	}

	return id.value == t.value
}

// Value returns the underlying value: a string, an int64, or nil for both
// null and zero-value IDs.
func (id *ID) Value() any {
	return id.value
}

// String returns the ID value and true if the ID holds a string.
func (id *ID) String() (string, bool) {
	s, ok := id.value.(string)
	return s, ok
}

// Int64 returns the ID value and true if the ID holds an integer. String IDs
// are never parsed as numbers.
func (id *ID) Int64() (int64, bool) {
	n, ok := id.value.(int64)
	return n, ok
}

// UnmarshalJSON implements [json.Unmarshaler]. JSON strings, exactly
// integral JSON numbers, and null decode; any other JSON type, and any
// number without an exact int64 representation, fails with a [*DecodeError]
// matching [ErrInvalidID].
func (id *ID) UnmarshalJSON(data []byte) error {
	switch HintType(data) {
	case TypeNull:
		*id = NewNullID()
	case TypeString:
		var str string
		if err := Unmarshal(data, &str); err != nil {
			return errInvalidID()
		}

		*id = NewID(str)
	case TypeNumber:
		var num json.Number
		if err := Unmarshal(data, &num); err != nil {
			return errInvalidID()
		}

		// Rejects fractional and out-of-range numbers.
		n, err := num.Int64()
		if err != nil {
			return errInvalidID()
		}

		*id = NewID(n)
	default:
		return errInvalidID()
	}

	return nil
}

// MarshalJSON implements [json.Marshaler]. Null and zero-value IDs both
// marshal as JSON null.
func (id *ID) MarshalJSON() ([]byte, error) {
	if id.value == nil {
		return []byte("null"), nil
	}

	return Marshal(id.value)
}
