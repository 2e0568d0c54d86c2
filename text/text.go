// Package text provides plain-text backends used as test doubles.
//
// Two interchangeable variants exist:
//
//   - New returns a round-trip-capable backend that serializes through the
//     value's own text conversion (encoding.TextMarshaler and
//     encoding.TextUnmarshaler).
//   - NewStatic returns a fixed-constant backend whose encode always yields
//     the Sentinel literal and whose decode always yields the zero value,
//     ignoring input entirely. It is intentionally not round-trip-consistent.
package text

import (
	"context"
	"encoding"
	"io"

	"github.com/zoobzio/serde"
)

// Sentinel is the literal the fixed-constant backend emits for every value.
const Sentinel = "<dummy_text>"

// TextPointer constrains the pointer type used to unmarshal into T.
type TextPointer[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// codec implements serde.PrettySerializer and serde.ContextSerializer by
// round-tripping values through their own text form.
type codec[T encoding.TextMarshaler, PT TextPointer[T]] struct {
	what string
}

// New returns a round-trip-capable plain-text backend for type T.
func New[T encoding.TextMarshaler, PT TextPointer[T]]() serde.Serializer[T] {
	return codec[T, PT]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for plain text.
func (c codec[T, PT]) Format() string {
	return "text/plain"
}

// Encode serializes value through its own text form.
func (c codec[T, PT]) Encode(value T) (string, error) {
	data, err := value.MarshalText()
	if err != nil {
		return "", &serde.Error{Err: serde.ErrSerialize, What: c.what, Cause: err}
	}
	return string(data), nil
}

// EncodePretty wraps the plain form as Dummy<...>. The decorated output is
// not parseable by Decode; pretty mode exists to exercise backends whose
// pretty output genuinely differs from the plain one.
func (c codec[T, PT]) EncodePretty(value T) (string, error) {
	raw, err := c.Encode(value)
	if err != nil {
		return "", err
	}
	return "Dummy<" + raw + ">", nil
}

// EncodeTo serializes value to w.
func (c codec[T, PT]) EncodeTo(value T, w io.Writer) error {
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
func (c codec[T, PT]) EncodePrettyTo(value T, w io.Writer) error {
	raw, err := c.EncodePretty(value)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, raw); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: c.what, Cause: err}
	}
	return nil
}

// Decode deserializes a value from its text form.
func (c codec[T, PT]) Decode(raw string) (T, error) {
	var value T
	if err := PT(&value).UnmarshalText([]byte(raw)); err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrDeserialize, What: c.what, Cause: err}
	}
	return value, nil
}

// DecodeFrom deserializes a value from r. The stream is read fully before
// decoding, keeping read failures (ErrRead) distinct from malformed input
// (ErrDeserialize).
func (c codec[T, PT]) DecodeFrom(r io.Reader) (T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrRead, What: c.what, Cause: err}
	}
	return c.Decode(string(raw))
}

// EncodeToContext serializes value to w with a cancellation check before the
// write. The encode itself is pure computation and never suspends.
func (c codec[T, PT]) EncodeToContext(ctx context.Context, value T, w io.Writer) error {
	raw, err := c.Encode(value)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: c.what, Cause: err}
	}
	if _, err := io.WriteString(w, raw); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: c.what, Cause: err}
	}
	return nil
}

// DecodeFromContext deserializes a value from r with a cancellation check
// before the read.
func (c codec[T, PT]) DecodeFromContext(ctx context.Context, r io.Reader) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, &serde.Error{Err: serde.ErrRead, What: c.what, Cause: err}
	}
	return c.DecodeFrom(r)
}

// static implements serde.Serializer with fixed-constant behavior.
type static[T any] struct {
	what string
}

// NewStatic returns the fixed-constant plain-text backend for type T.
// Encode always yields Sentinel regardless of the value; Decode always yields
// T's zero value and never fails, for any input including malformed. This is
// a deliberate test-fixture property, not a defect, and must not be
// generalized to real-data backends.
func NewStatic[T any]() serde.Serializer[T] {
	return static[T]{what: serde.TypeName[T]()}
}

// Format returns the MIME type for plain text.
func (s static[T]) Format() string {
	return "text/plain"
}

// Encode yields the Sentinel literal for every value.
func (s static[T]) Encode(T) (string, error) {
	return Sentinel, nil
}

// EncodeTo writes the Sentinel literal to w.
func (s static[T]) EncodeTo(_ T, w io.Writer) error {
	if _, err := io.WriteString(w, Sentinel); err != nil {
		return &serde.Error{Err: serde.ErrWrite, What: s.what, Cause: err}
	}
	return nil
}

// Decode yields T's zero value, ignoring raw entirely.
func (s static[T]) Decode(string) (T, error) {
	var zero T
	return zero, nil
}

// DecodeFrom yields T's zero value without touching r.
func (s static[T]) DecodeFrom(io.Reader) (T, error) {
	var zero T
	return zero, nil
}
