// Package yaml provides a YAML backend implementation.
//
// YAML has no pretty mode distinct from its plain output, so this backend
// does not implement serde.PrettySerializer; the negotiated pretty operations
// alias the plain ones.
package yaml

import (
	"io"

	"github.com/zoobzio/serde"
	"gopkg.in/yaml.v3"
)

// codec implements serde.Serializer for YAML.
type codec[T any] struct {
	what string
}

// New returns a YAML backend for type T.
func New[T any]() serde.Serializer[T] {
	return codec[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for YAML.
func (c codec[T]) Format() string {
	return "application/yaml"
}

// Encode serializes value as YAML.
func (c codec[T]) Encode(value T) (string, error) {
	data, err := yaml.Marshal(value)
	if err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return string(data), nil
}

// EncodeTo serializes value to w as YAML. Encoding happens in memory first so
// codec failures and write failures stay distinguishable.
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

// Decode deserializes a value from a YAML string.
func (c codec[T]) Decode(raw string) (T, error) {
	var value T
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
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
