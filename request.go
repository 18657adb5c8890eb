package rpcwire

// Request represents a validated JSON-RPC 2.0 method-call message.
//
// Decoded Requests are fully owned: every field, including nested params
// values, is copied out of the input buffer. The Jsonrpc field is built from
// [ProtocolVersion], never re-borrowed from the input.
//
//nolint:govet //We want order to match spec examples, even if not required
type Request struct {
	Jsonrpc Version `json:"jsonrpc"`
	Method  string  `json:"method"`
	Params  Params  `json:"params,omitzero"`
	ID      ID      `json:"id"`
}

// NewRequest builds a new request for method with the given id.
func NewRequest[I int64 | string](id I, method string) *Request {
	return &Request{Jsonrpc: NewVersion(), Method: method, ID: NewID(id)}
}

// NewRequestWithParams builds a new request for method with the given id and
// params set to p.
func NewRequestWithParams[I int64 | string](id I, method string, p Params) *Request {
	return &Request{Jsonrpc: NewVersion(), Method: method, ID: NewID(id), Params: p}
}

// UnmarshalJSON implements [json.Unmarshaler] by running the full
// [DecodeRequest] validation pipeline, so Requests populated through
// [encoding/json] carry the same guarantees as directly decoded ones.
func (r *Request) UnmarshalJSON(data []byte) error {
	req, err := DecodeRequest(data)
	if err != nil {
		return err
	}

	*r = *req

	return nil
}
