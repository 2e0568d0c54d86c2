// Package bson provides a BSON backend implementation.
//
// BSON is a binary format; encoded strings carry raw bytes and there is no
// pretty mode. Top-level values must be documents (structs or maps), a
// constraint owned by the backing codec.
package bson

import (
	"io"

	"github.com/zoobzio/serde"
	"go.mongodb.org/mongo-driver/bson"
)

// codec implements serde.Serializer for BSON.
type codec[T any] struct {
	what string
}

// New returns a BSON backend for type T.
func New[T any]() serde.Serializer[T] {
	return codec[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for BSON.
func (c codec[T]) Format() string {
	return "application/bson"
}

// Encode serializes value as BSON bytes carried in a string.
func (c codec[T]) Encode(value T) (string, error) {
	data, err := bson.Marshal(value)
	if err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return string(data), nil
}

// EncodeTo serializes value to w. Encoding happens in memory first so codec
// failures and write failures stay distinguishable.
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

// Decode deserializes a value from BSON bytes.
func (c codec[T]) Decode(raw string) (T, error) {
	var value T
	if err := bson.Unmarshal([]byte(raw), &value); err != nil {
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
