// Package rpcwire validates and decodes single JSON-RPC 2.0 messages for a
// tool-invocation gateway.
//
// # Overview
//
// A gateway sitting in front of tool servers sees every request and response
// on its hot path. This package turns an untrusted byte blob claiming to be
// JSON-RPC 2.0 into either a strongly-typed, already-validated record or a
// precise [DecodeError] naming exactly which structural rule failed, so that
// downstream layers can route, inspect, and re-serialize messages without
// re-parsing raw JSON themselves.
//
// The entry points are:
//
//   - [DecodeRequest] for method-call messages.
//   - [DecodeResponse] for success responses.
//   - [DecodeErrorResponse] for error responses.
//   - [IsValid] as a cheap admission filter ahead of full decode.
//   - [DecodeBatch] and [DecodeBatchConcurrent] for ordered sequences of
//     requests with all-or-nothing semantics.
//
// All decode functions are pure: they hold no state, perform no I/O, and may
// be called concurrently without coordination. Decoded records own their data
// and remain valid after the input buffer is reused.
//
// Batch-array envelopes (several requests inside one JSON array) are not
// supported; decode messages one at a time or use [DecodeBatch] over a slice
// of individual payloads.
//
// # Basic Usage
//
//	req, err := rpcwire.DecodeRequest([]byte(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
//	if err != nil {
//		var derr *rpcwire.DecodeError
//		if errors.As(err, &derr) {
//			log.Printf("rejected: %v", derr)
//		}
//		return
//	}
//	fmt.Println(req.Method) // "tools/list"
package rpcwire

import "encoding/json"

// ProtocolVersion is the only version of the JSON-RPC protocol this package
// accepts or emits.
const ProtocolVersion = "2.0"

// Wire field names shared between the decoders and their diagnostics.
// Renaming a protocol field is a single-point change.
const (
	fieldJsonrpc = "jsonrpc"
	fieldID      = "id"
	fieldMethod  = "method"
	fieldParams  = "params"
	fieldResult  = "result"
	fieldError   = "error"
	fieldCode    = "code"
	fieldMessage = "message"
	fieldData    = "data"
)

// Marshal defines the function used for marshaling Go types into JSON []byte.
// By default, it uses [encoding/json.Marshal]. Applications can replace this
// variable *at startup* with a marshaling function from a different JSON
// library; the replacement must have the same signature and handle
// [json.Marshaler] and [json.RawMessage] like the standard library does.
var Marshal = json.Marshal

// Unmarshal defines the function used for unmarshalling JSON []byte into Go
// types. By default, it uses [encoding/json.Unmarshal]. Applications can
// replace this variable *at startup* with an unmarshalling function from a
// different JSON library; the replacement must have the same signature and
// handle [json.Unmarshaler] and [json.RawMessage] like the standard library
// does. All decoders in this package parse through this variable, so swapping
// it swaps the underlying JSON parser for the whole package.
var Unmarshal = json.Unmarshal
