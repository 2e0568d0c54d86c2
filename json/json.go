// Package json provides a JSON backend implementation.
package json

import (
	"encoding/json"
	"io"

	"github.com/zoobzio/serde"
)

// codec implements serde.PrettySerializer for JSON. Plain and pretty output
// use genuinely separate encoder entry points; both decode paths share the
// stdlib decoder.
type codec[T any] struct {
	what string
}

// New returns a JSON backend for type T.
func New[T any]() serde.Serializer[T] {
	return codec[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for JSON.
func (c codec[T]) Format() string {
	return "application/json"
}

// Encode serializes value as compact JSON.
func (c codec[T]) Encode(value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return string(data), nil
}

// EncodePretty serializes value as indented JSON.
func (c codec[T]) EncodePretty(value T) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return string(data), nil
}

// EncodeTo serializes value to w as compact JSON. Encoding happens in memory
// first so codec failures and write failures stay distinguishable.
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

// EncodePrettyTo serializes value to w as indented JSON.
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

// Decode deserializes a value from a JSON string.
func (c codec[T]) Decode(raw string) (T, error) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrDeserialize, What: c.what, Cause: err}
	}
	return value, nil
}

// DecodeFrom deserializes a value from r using the native streaming decoder.
func (c codec[T]) DecodeFrom(r io.Reader) (T, error) {
	var value T
	if err := json.NewDecoder(r).Decode(&value); err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrDeserialize, What: c.what, Cause: err}
	}
	return value, nil
}
