package rpcwire

import (
	"bytes"
	"encoding/json"
)

var (
	markerJsonrpc = []byte(`"jsonrpc"`)
	markerVersion = []byte(`"` + ProtocolVersion + `"`)
)

// IsValid reports whether data is plausibly a JSON-RPC 2.0 message. It is an
// admission filter for hot paths: obviously-invalid input is discarded by a
// cheap substring scan before any JSON parsing happens, and input that
// passes the scan is confirmed with a full parse of the jsonrpc field.
//
// The substring scan is a heuristic, not a JSON-aware check. It can pass
// input whose markers only appear inside unrelated nested string values;
// the confirming parse then rejects anything without a real top-level
// jsonrpc member, but the reverse imprecision remains: the scan may admit
// such input to the parse stage. That trade of precision for speed is
// intentional.
//
// IsValid never reports why input was rejected. Use [DecodeRequest] or
// [DecodeResponse] when a diagnostic is needed; IsValid is a filter, not a
// replacement for full decode.
func IsValid(data []byte) bool {
	if !bytes.Contains(data, markerJsonrpc) || !bytes.Contains(data, markerVersion) {
		return false
	}

	var obj map[string]json.RawMessage
	if err := Unmarshal(data, &obj); err != nil {
		return false
	}

	var version string
	if err := Unmarshal(obj[fieldJsonrpc], &version); err != nil {
		return false
	}

	return version == ProtocolVersion
}
