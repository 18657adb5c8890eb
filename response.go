package rpcwire

import "encoding/json"

// Response represents a validated JSON-RPC 2.0 success response.
//
// Unlike [Request], a Response whose input omitted the id field entirely
// decodes with a null ID instead of failing. That asymmetry is part of the
// protocol surface this package serves and must not be "fixed": a gateway
// still has to carry malformed-request replies whose id could not be
// echoed.
//
//nolint:govet //We want order to match spec examples, even if not required
type Response struct {
	Jsonrpc Version `json:"jsonrpc"`
	Result  Result  `json:"result"`
	ID      ID      `json:"id"`
}

// NewResponseWithResult creates a success response for the given id carrying
// result, which must be marshalable to JSON.
//
// Example:
//
//	resp := rpcwire.NewResponseWithResult(int64(1), "pong")
//	// Marshals to: {"jsonrpc":"2.0","result":"pong","id":1}
func NewResponseWithResult[I int64 | string](id I, result any) *Response {
	return &Response{Jsonrpc: NewVersion(), ID: NewID(id), Result: NewResult(result)}
}

// UnmarshalJSON implements [json.Unmarshaler] by running the full
// [DecodeResponse] validation pipeline.
func (r *Response) UnmarshalJSON(data []byte) error {
	resp, err := DecodeResponse(data)
	if err != nil {
		return err
	}

	*r = *resp

	return nil
}

// ErrorObject is the error member of an [ErrorResponse].
type ErrorObject struct {
	Code    int32           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ErrorResponse represents a validated JSON-RPC 2.0 error response. It
// follows the same field-presence discipline as [Response]: the version
// must be "2.0", a missing id defaults to null, and the error object is
// mandatory with an exact 32-bit integer code and a string message.
//
//nolint:govet //We want order to match spec examples, even if not required
type ErrorResponse struct {
	Jsonrpc Version     `json:"jsonrpc"`
	Error   ErrorObject `json:"error"`
	ID      ID          `json:"id"`
}

// NewErrorResponse creates an error response for the given id.
func NewErrorResponse[I int64 | string](id I, code int32, message string) *ErrorResponse {
	return &ErrorResponse{Jsonrpc: NewVersion(), ID: NewID(id), Error: ErrorObject{Code: code, Message: message}}
}

// UnmarshalJSON implements [json.Unmarshaler] by running the full
// [DecodeErrorResponse] validation pipeline.
func (r *ErrorResponse) UnmarshalJSON(data []byte) error {
	resp, err := DecodeErrorResponse(data)
	if err != nil {
		return err
	}

	*r = *resp

	return nil
}
