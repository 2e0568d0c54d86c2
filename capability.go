package serde

import (
	"context"
	"io"
)

// EncodePretty serializes value using the backend's pretty mode when it has
// one, and otherwise falls back to the plain Encode. Backends with no visual
// distinction between the two modes never need to duplicate logic.
func EncodePretty[T any](s Serializer[T], value T) (string, error) {
	if p, ok := s.(PrettySerializer[T]); ok {
		return p.EncodePretty(value)
	}
	return s.Encode(value)
}

// EncodePrettyTo serializes value to w using the backend's pretty mode when
// it has one, falling back to the plain EncodeTo otherwise.
func EncodePrettyTo[T any](s Serializer[T], value T, w io.Writer) error {
	if p, ok := s.(PrettySerializer[T]); ok {
		return p.EncodePrettyTo(value, w)
	}
	return s.EncodeTo(value, w)
}

// EncodeToContext serializes value to w with cancellation support.
//
// Backends implementing ContextSerializer handle the write natively. For all
// others the value is encoded in memory (pure computation, no suspension) and
// the resulting bytes are written with a cancellation check between chunks.
//
// In both cases, if w implements Flusher the write is finalized with an
// explicit flush; a flush failure is reported as ErrFlush, distinct from
// ErrWrite.
func EncodeToContext[T any](ctx context.Context, s Serializer[T], value T, w io.Writer) error {
	if c, ok := s.(ContextSerializer[T]); ok {
		if err := c.EncodeToContext(ctx, value, w); err != nil {
			return err
		}
	} else {
		raw, err := s.Encode(value)
		if err != nil {
			return err
		}
		if err := writeFullContext(ctx, w, []byte(raw)); err != nil {
			return newError(ErrWrite, TypeName[T](), err)
		}
	}

	if f, ok := w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return newError(ErrFlush, TypeName[T](), err)
		}
	}
	return nil
}

// EncodePrettyToContext serializes value to w in pretty mode with
// cancellation support. Pretty output always takes the buffering path: the
// negotiated pretty encode runs in memory, then the bytes are written with
// cancellation checks and an explicit flush when w implements Flusher.
func EncodePrettyToContext[T any](ctx context.Context, s Serializer[T], value T, w io.Writer) error {
	raw, err := EncodePretty(s, value)
	if err != nil {
		return err
	}
	if err := writeFullContext(ctx, w, []byte(raw)); err != nil {
		return newError(ErrWrite, TypeName[T](), err)
	}
	if f, ok := w.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return newError(ErrFlush, TypeName[T](), err)
		}
	}
	return nil
}

// DecodeFromContext deserializes a value from r with cancellation support.
//
// Backends implementing ContextSerializer handle the read natively. For all
// others the stream is read fully into memory with a cancellation check
// between chunks (ErrRead on I/O failure), then handed to the synchronous
// Decode; codecs are not assumed to support incremental decoding.
func DecodeFromContext[T any](ctx context.Context, s Serializer[T], r io.Reader) (T, error) {
	if c, ok := s.(ContextSerializer[T]); ok {
		return c.DecodeFromContext(ctx, r)
	}
	raw, err := readAllContext(ctx, r)
	if err != nil {
		var zero T
		return zero, newError(ErrRead, TypeName[T](), err)
	}
	return s.Decode(string(raw))
}
