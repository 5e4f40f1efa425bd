package model

import (
	"github.com/bytedance/sonic"
)

// ExtraInfo is the diagnostic payload attached to a log record. The
// payload is structured JSON when it decodes cleanly and an opaque
// string otherwise; consumers must handle both cases explicitly.
type ExtraInfo struct {
	structured any
	raw        string
	isJSON     bool
}

// DecodeExtraInfo attempts to decode a raw payload as JSON. Decode
// failure is an expected branch, not an error: the payload is kept
// verbatim as a raw string.
func DecodeExtraInfo(payload string) ExtraInfo {
	var value any
	if err := sonic.UnmarshalString(payload, &value); err != nil {
		return RawExtraInfo(payload)
	}
	return StructuredExtraInfo(value)
}

// StructuredExtraInfo wraps an already-decoded payload value.
func StructuredExtraInfo(value any) ExtraInfo {
	return ExtraInfo{structured: value, isJSON: true}
}

// RawExtraInfo wraps an undecodable payload string.
func RawExtraInfo(payload string) ExtraInfo {
	return ExtraInfo{raw: payload}
}

// Structured returns the decoded payload value, or false when the
// payload did not decode.
func (e ExtraInfo) Structured() (any, bool) {
	if !e.isJSON {
		return nil, false
	}
	return e.structured, true
}

// Raw returns the undecoded payload string, or false when the payload
// decoded as structured data.
func (e ExtraInfo) Raw() (string, bool) {
	if e.isJSON {
		return "", false
	}
	return e.raw, true
}

// String renders the payload for display: structured payloads are
// re-encoded as JSON, raw payloads are returned unchanged.
func (e ExtraInfo) String() string {
	if !e.isJSON {
		return e.raw
	}
	out, err := sonic.MarshalString(e.structured)
	if err != nil {
		return e.raw
	}
	return out
}

// MarshalJSON emits the structured value as-is, or the raw payload as
// a JSON string.
func (e ExtraInfo) MarshalJSON() ([]byte, error) {
	if e.isJSON {
		return sonic.Marshal(e.structured)
	}
	return sonic.Marshal(e.raw)
}

// UnmarshalJSON restores an ExtraInfo from JSON output. Any valid JSON
// value becomes a structured payload.
func (e *ExtraInfo) UnmarshalJSON(data []byte) error {
	var value any
	if err := sonic.Unmarshal(data, &value); err != nil {
		return err
	}
	*e = StructuredExtraInfo(value)
	return nil
}
