package rpcwire

// Version represents the jsonrpc member of a JSON-RPC 2.0 message. Decoded
// records always carry a valid Version built from [ProtocolVersion]; the
// matched input string is never re-borrowed.
type Version struct {
	present bool
}

// NewVersion returns a valid Version. Decoders attach one to every record
// they produce.
func NewVersion() Version {
	return Version{present: true}
}

// IsValid returns true if the jsonrpc member was present and equal to
// [ProtocolVersion].
func (v *Version) IsValid() bool {
	return v.present
}

// UnmarshalJSON implements [json.Unmarshaler]. A JSON string other than
// [ProtocolVersion] fails with [ErrInvalidVersion]; a non-string value fails
// with [ErrMissingField], since looking up the version as a string found
// nothing usable.
func (v *Version) UnmarshalJSON(data []byte) error {
	if HintType(data) != TypeString {
		return errMissingField(fieldJsonrpc)
	}

	var str string
	if err := Unmarshal(data, &str); err != nil {
		return errMissingField(fieldJsonrpc)
	}

	if str != ProtocolVersion {
		return errInvalidVersion(str)
	}

	v.present = true

	return nil
}

// MarshalJSON implements [json.Marshaler]. A Version always serializes as
// the [ProtocolVersion] string.
func (Version) MarshalJSON() ([]byte, error) {
	return Marshal(ProtocolVersion)
}
