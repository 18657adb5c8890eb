package rpcwire

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every way a decode can fail. Each error
// returned by this package's decoders is a [*DecodeError] matching exactly
// one of these under [errors.Is]. The set is closed: there is no generic
// "unknown error" escape hatch beyond the syntax diagnostic carried by
// [ErrInvalidJSON].
var (
	// ErrInvalidJSON indicates the input is not syntactically valid JSON,
	// or is valid JSON but not a top-level object.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrInvalidVersion indicates a jsonrpc field was found but its value
	// is not the literal string "2.0".
	ErrInvalidVersion = errors.New("invalid JSON-RPC version")
	// ErrMissingField indicates a required field is absent, or present
	// with the wrong JSON type where the lookup demands a string.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidFieldType indicates a field is present with a JSON type
	// incompatible with its required shape.
	ErrInvalidFieldType = errors.New("invalid field type")
	// ErrInvalidID indicates the id field is not representable as a
	// string, 64-bit integer, or null.
	ErrInvalidID = errors.New("invalid message ID")
)

// DecodeError is the error type returned by every decoder in this package.
// It wraps one of the sentinel errors above (test with [errors.Is]) and
// carries the context that sentinel calls for: the offending field name, the
// expected-type description, or the offending value/diagnostic text.
//
// A DecodeError is a terminal, immutable value. Decoders never return a
// partial record alongside one.
type DecodeError struct {
	kind  error
	field string
	want  string
	got   string
}

func errInvalidJSON(diag string) *DecodeError {
	return &DecodeError{kind: ErrInvalidJSON, got: diag}
}

func errInvalidVersion(got string) *DecodeError {
	return &DecodeError{kind: ErrInvalidVersion, got: got}
}

func errMissingField(field string) *DecodeError {
	return &DecodeError{kind: ErrMissingField, field: field}
}

func errInvalidFieldType(field, want string) *DecodeError {
	return &DecodeError{kind: ErrInvalidFieldType, field: field, want: want}
}

func errInvalidID() *DecodeError {
	return &DecodeError{kind: ErrInvalidID}
}

// Field returns the wire name of the offending field for [ErrMissingField]
// and [ErrInvalidFieldType] errors, and "" for the other kinds.
func (e *DecodeError) Field() string {
	return e.field
}

// Got returns the offending value for [ErrInvalidVersion] errors and the
// underlying parser diagnostic for [ErrInvalidJSON] errors, and "" for the
// other kinds.
func (e *DecodeError) Got() string {
	return e.got
}

// Error implements the error interface. For ErrMissingField and
// ErrInvalidFieldType the message names the field precisely; for
// ErrInvalidJSON the wording of the wrapped diagnostic follows the
// underlying JSON parser and is not part of the contract.
func (e *DecodeError) Error() string {
	switch e.kind {
	case ErrInvalidJSON:
		return fmt.Sprintf("invalid JSON: %s", e.got)
	case ErrInvalidVersion:
		return fmt.Sprintf("invalid JSON-RPC version: expected %q, got %q", ProtocolVersion, e.got)
	case ErrMissingField:
		return "missing required field: " + e.field
	case ErrInvalidFieldType:
		return fmt.Sprintf("invalid field type for %q: expected %s", e.field, e.want)
	case ErrInvalidID:
		return "invalid message ID: must be a string, integer, or null"
	}

	return e.kind.Error()
}

// Unwrap returns the sentinel error classifying this failure, enabling
// errors.Is(err, rpcwire.ErrMissingField) and friends.
func (e *DecodeError) Unwrap() error {
	return e.kind
}
