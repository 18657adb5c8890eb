package rpcwire

import (
	"bytes"
	"encoding/json"
)

// TypeHint classifies the likely top-level JSON type of a [json.RawMessage]
// from its first non-whitespace byte. The decoders use it to pick a
// validation path without unmarshalling a value twice.
//
// A hint is not a guarantee that the message contains valid JSON of that
// type; only a full parse establishes validity.
type TypeHint int

const (
	TypeUnknown TypeHint = iota // First byte matches no JSON value start.
	TypeObject                  // Starts with '{'.
	TypeArray                   // Starts with '['.
	TypeString                  // Starts with '"'.
	TypeNumber                  // Starts with '-' or a digit.
	TypeBool                    // Starts with 't' or 'f'.
	TypeNull                    // Starts with 'n'.
	TypeEmpty                   // Zero length after trimming whitespace.
)

// HintType returns the [TypeHint] for m. It inspects only the first
// non-whitespace byte and never validates the remainder of the message.
func HintType(m json.RawMessage) TypeHint {
	m = bytes.TrimSpace(m)

	if len(m) == 0 {
		return TypeEmpty
	}

	switch m[0] {
	case '{':
		return TypeObject
	case '[':
		return TypeArray
	case '"':
		return TypeString
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return TypeNumber
	case 't', 'f':
		return TypeBool
	case 'n':
		return TypeNull
	}

	return TypeUnknown
}
