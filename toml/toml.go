// Package toml provides a TOML backend implementation.
//
// The backing encoder only targets strings, so stream encoding is implemented
// as encode-to-string followed by writing the string's bytes. Pretty mode
// emits indented nested tables; plain mode emits flush-left output.
package toml

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/serde"
)

// codec implements serde.PrettySerializer for TOML.
type codec[T any] struct {
	what string
}

// New returns a TOML backend for type T.
func New[T any]() serde.Serializer[T] {
	return codec[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for TOML.
func (c codec[T]) Format() string {
	return "application/toml"
}

// encode runs the string-target backend encoder with the given table indent.
func (c codec[T]) encode(value T, indent string) (string, error) {
	var buf strings.Builder
	enc := toml.NewEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(value); err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return buf.String(), nil
}

// Encode serializes value as TOML.
func (c codec[T]) Encode(value T) (string, error) {
	return c.encode(value, "")
}

// EncodePretty serializes value as TOML with indented nested tables.
func (c codec[T]) EncodePretty(value T) (string, error) {
	return c.encode(value, "  ")
}

// EncodeTo serializes value to w: encode to a string first, then write the
// bytes. The backend offers no writer-target encoder that would let write
// failures surface mid-encode.
func (c codec[T]) EncodeTo(value T, w io.Writer) error {
	raw, err := c.Encode(value)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, raw); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: c.what, Cause: err}
	}
	return nil
}

// EncodePrettyTo serializes value to w in pretty mode.
func (c codec[T]) EncodePrettyTo(value T, w io.Writer) error {
	raw, err := c.EncodePretty(value)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, raw); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: c.what, Cause: err}
	}
	return nil
}

// Decode deserializes a value from a TOML string.
func (c codec[T]) Decode(raw string) (T, error) {
	var value T
	if err := toml.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrDeserialize, What: c.what, Cause: err}
	}
	return value, nil
}

// DecodeFrom deserializes a value from r. The stream is read fully before
// decoding, keeping read failures (ErrRead) distinct from malformed input
// (ErrDeserialize).
func (c codec[T]) DecodeFrom(r io.Reader) (T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrRead, What: c.what, Cause: err}
	}
	return c.Decode(string(raw))
}
