// Package msgpack provides a MessagePack backend implementation.
//
// MessagePack is a binary format; encoded strings carry raw bytes and there
// is no pretty mode.
package msgpack

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/serde"
)

// codec implements serde.Serializer for MessagePack.
type codec[T any] struct {
	what string
}

// New returns a MessagePack backend for type T.
func New[T any]() serde.Serializer[T] {
	return codec[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for MessagePack.
func (c codec[T]) Format() string {
	return "application/msgpack"
}

// Encode serializes value as MessagePack bytes carried in a string.
func (c codec[T]) Encode(value T) (string, error) {
	data, err := msgpack.Marshal(value)
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

// Decode deserializes a value from MessagePack bytes.
func (c codec[T]) Decode(raw string) (T, error) {
	var value T
	if err := msgpack.Unmarshal([]byte(raw), &value); err != nil {
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
