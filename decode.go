package rpcwire

import (
	"encoding/json"
	"errors"
)

// DecodeRequest validates and decodes a single JSON-RPC 2.0 request.
//
// Rules are checked in a fixed order so diagnostics are deterministic:
// syntactically valid JSON, top-level object, jsonrpc present as the string
// "2.0", id present and a valid [ID], method present as a non-empty string,
// and params absent, null, or an object. The first violated rule produces
// the error; decode is all-or-nothing and never returns a partial Request.
func DecodeRequest(data []byte) (*Request, error) {
	obj, derr := decodeObject(data)
	if derr != nil {
		return nil, derr
	}

	if derr := checkVersion(obj); derr != nil {
		return nil, derr
	}

	// Requests require the id field; even an explicit null satisfies
	// presence. Responses differ, see DecodeResponse.
	rawID, ok := obj[fieldID]
	if !ok {
		return nil, errMissingField(fieldID)
	}

	id, derr := decodeID(rawID)
	if derr != nil {
		return nil, derr
	}

	method, derr := decodeMethod(obj)
	if derr != nil {
		return nil, derr
	}

	params, derr := decodeParams(obj[fieldParams])
	if derr != nil {
		return nil, derr
	}

	return &Request{Jsonrpc: NewVersion(), ID: id, Method: method, Params: params}, nil
}

// DecodeResponse validates and decodes a single JSON-RPC 2.0 success
// response. The parse and version rules match [DecodeRequest]; the
// differences are that a missing id defaults to a null [ID] instead of
// failing, and that result is mandatory but may hold any JSON value,
// including null.
func DecodeResponse(data []byte) (*Response, error) {
	obj, derr := decodeObject(data)
	if derr != nil {
		return nil, derr
	}

	if derr := checkVersion(obj); derr != nil {
		return nil, derr
	}

	id, derr := decodeResponseID(obj)
	if derr != nil {
		return nil, derr
	}

	rawResult, ok := obj[fieldResult]
	if !ok {
		return nil, errMissingField(fieldResult)
	}

	var result Result
	if err := result.UnmarshalJSON(rawResult); err != nil {
		// rawResult came out of a successful object parse, so this is
		// unreachable with a conforming Unmarshal implementation.
		return nil, errInvalidJSON(err.Error())
	}

	return &Response{Jsonrpc: NewVersion(), ID: id, Result: result}, nil
}

// DecodeErrorResponse validates and decodes a single JSON-RPC 2.0 error
// response. The id follows the same missing-defaults-to-null rule as
// [DecodeResponse]. The error member must be an object carrying a code with
// an exact 32-bit signed integer representation, a string message, and an
// optional data value kept verbatim.
func DecodeErrorResponse(data []byte) (*ErrorResponse, error) {
	obj, derr := decodeObject(data)
	if derr != nil {
		return nil, derr
	}

	if derr := checkVersion(obj); derr != nil {
		return nil, derr
	}

	id, derr := decodeResponseID(obj)
	if derr != nil {
		return nil, derr
	}

	rawErr, ok := obj[fieldError]
	if !ok {
		return nil, errMissingField(fieldError)
	}

	eo, derr := decodeErrorObject(rawErr)
	if derr != nil {
		return nil, derr
	}

	return &ErrorResponse{Jsonrpc: NewVersion(), ID: id, Error: eo}, nil
}

// decodeObject parses data through the package [Unmarshal] seam into the
// generic field map every decoder walks. Syntax failures carry the parser's
// diagnostic verbatim; valid JSON that is not an object reports "expected
// object". Both collapse to [ErrInvalidJSON].
func decodeObject(data []byte) (map[string]json.RawMessage, *DecodeError) {
	var obj map[string]json.RawMessage

	if err := Unmarshal(data, &obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errInvalidJSON("expected object")
		}

		return nil, errInvalidJSON(err.Error())
	}

	// A top-level null parses into a nil map without error.
	if obj == nil {
		return nil, errInvalidJSON("expected object")
	}

	return obj, nil
}

// checkVersion enforces the jsonrpc member. A missing field and a
// non-string field report the same failure: the lookup for the version
// string found nothing. Only a present string that is not exactly "2.0"
// reports [ErrInvalidVersion], carrying the string actually found.
func checkVersion(obj map[string]json.RawMessage) *DecodeError {
	raw, ok := obj[fieldJsonrpc]
	if !ok || HintType(raw) != TypeString {
		return errMissingField(fieldJsonrpc)
	}

	var str string
	if err := Unmarshal(raw, &str); err != nil {
		return errMissingField(fieldJsonrpc)
	}

	if str != ProtocolVersion {
		return errInvalidVersion(str)
	}

	return nil
}

func decodeID(raw json.RawMessage) (ID, *DecodeError) {
	var id ID
	if err := id.UnmarshalJSON(raw); err != nil {
		return ID{}, errInvalidID()
	}

	return id, nil
}

// decodeResponseID applies the response-side id rule: absent defaults to
// null, present must still be a valid [ID].
func decodeResponseID(obj map[string]json.RawMessage) (ID, *DecodeError) {
	raw, ok := obj[fieldID]
	if !ok {
		return NewNullID(), nil
	}

	return decodeID(raw)
}

func decodeMethod(obj map[string]json.RawMessage) (string, *DecodeError) {
	raw, ok := obj[fieldMethod]
	if !ok || HintType(raw) != TypeString {
		return "", errMissingField(fieldMethod)
	}

	var method string
	if err := Unmarshal(raw, &method); err != nil {
		return "", errMissingField(fieldMethod)
	}

	if method == "" {
		return "", errInvalidFieldType(fieldMethod, "non-empty string")
	}

	return method, nil
}

// decodeParams copies each key/value pair of a params object into an owned
// [Params] map. Absent and explicit null both mean "no params" and yield
// nil.
func decodeParams(raw json.RawMessage) (Params, *DecodeError) {
	switch HintType(raw) {
	case TypeEmpty, TypeNull:
		return nil, nil
	case TypeObject:
		var p Params
		if err := Unmarshal(raw, &p); err != nil {
			return nil, errInvalidFieldType(fieldParams, "object or null")
		}

		return p, nil
	default:
		return nil, errInvalidFieldType(fieldParams, "object or null")
	}
}

// decodeErrorObject enforces the error member's shape. code must carry an
// exact int32 value; fractional or out-of-range codes are rejected, not
// truncated.
func decodeErrorObject(raw json.RawMessage) (ErrorObject, *DecodeError) {
	if HintType(raw) != TypeObject {
		return ErrorObject{}, errInvalidFieldType(fieldError, "object")
	}

	var obj map[string]json.RawMessage
	if err := Unmarshal(raw, &obj); err != nil {
		return ErrorObject{}, errInvalidFieldType(fieldError, "object")
	}

	rawCode, ok := obj[fieldCode]
	if !ok {
		return ErrorObject{}, errMissingField(fieldCode)
	}

	if HintType(rawCode) != TypeNumber {
		return ErrorObject{}, errInvalidFieldType(fieldCode, "32-bit integer")
	}

	var num json.Number
	if err := Unmarshal(rawCode, &num); err != nil {
		return ErrorObject{}, errInvalidFieldType(fieldCode, "32-bit integer")
	}

	code, err := num.Int64()
	if err != nil || code < -1<<31 || code > 1<<31-1 {
		return ErrorObject{}, errInvalidFieldType(fieldCode, "32-bit integer")
	}

	rawMsg, ok := obj[fieldMessage]
	if !ok || HintType(rawMsg) != TypeString {
		return ErrorObject{}, errMissingField(fieldMessage)
	}

	var msg string
	if err := Unmarshal(rawMsg, &msg); err != nil {
		return ErrorObject{}, errMissingField(fieldMessage)
	}

	return ErrorObject{Code: int32(code), Message: msg, Data: obj[fieldData]}, nil
}
