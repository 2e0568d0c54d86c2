package serde

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"
)

// Serializable binds a backend to a value type and lifts the stream
// primitives to file-based convenience operations with a boolean pretty
// toggle and context-aware variants.
//
// A Serializable holds no mutable state and is safe for concurrent use.
// Concurrent operations against the same file path are the caller's
// responsibility to serialize; no locking or retrying happens here.
type Serializable[T any] struct {
	s        Serializer[T]
	typeName string
}

// Bind creates a Serializable for type T backed by s.
func Bind[T any](s Serializer[T]) *Serializable[T] {
	return &Serializable[T]{
		s:        s,
		typeName: TypeName[T](),
	}
}

// Format returns the backend's MIME type.
func (f *Serializable[T]) Format() string {
	return f.s.Format()
}

// Encode serializes value to a string.
func (f *Serializable[T]) Encode(value T) (string, error) {
	return f.s.Encode(value)
}

// EncodePretty serializes value to a human-formatted string, falling back to
// plain output for backends with no pretty mode.
func (f *Serializable[T]) EncodePretty(value T) (string, error) {
	return EncodePretty(f.s, value)
}

// EncodeOpt serializes value to a string, selecting pretty or plain mode at
// runtime. Both branches are statically known; this is a plain conditional.
func (f *Serializable[T]) EncodeOpt(value T, pretty bool) (string, error) {
	if pretty {
		return f.EncodePretty(value)
	}
	return f.Encode(value)
}

// EncodeTo serializes value to w.
func (f *Serializable[T]) EncodeTo(value T, w io.Writer) error {
	return f.s.EncodeTo(value, w)
}

// EncodePrettyTo serializes value to w in pretty mode, falling back to plain
// output for backends with no pretty mode.
func (f *Serializable[T]) EncodePrettyTo(value T, w io.Writer) error {
	return EncodePrettyTo(f.s, value, w)
}

// EncodeToOpt serializes value to w, selecting pretty or plain mode at runtime.
func (f *Serializable[T]) EncodeToOpt(value T, w io.Writer, pretty bool) error {
	if pretty {
		return f.EncodePrettyTo(value, w)
	}
	return f.EncodeTo(value, w)
}

// Decode deserializes a value from raw.
func (f *Serializable[T]) Decode(raw string) (T, error) {
	return f.s.Decode(raw)
}

// DecodeFrom deserializes a value from r.
func (f *Serializable[T]) DecodeFrom(r io.Reader) (T, error) {
	return f.s.DecodeFrom(r)
}

// EncodeToContext serializes value to w with cancellation support, using the
// backend's native context path when it has one and buffering otherwise.
func (f *Serializable[T]) EncodeToContext(ctx context.Context, value T, w io.Writer) error {
	return EncodeToContext(ctx, f.s, value, w)
}

// EncodePrettyToContext serializes value to w in pretty mode with
// cancellation support.
func (f *Serializable[T]) EncodePrettyToContext(ctx context.Context, value T, w io.Writer) error {
	return EncodePrettyToContext(ctx, f.s, value, w)
}

// DecodeFromContext deserializes a value from r with cancellation support.
func (f *Serializable[T]) DecodeFromContext(ctx context.Context, r io.Reader) (T, error) {
	return DecodeFromContext(ctx, f.s, r)
}

// WriteFile creates the file at path and serializes value into it in plain
// mode. Creation failures are reported as ErrFileCreate with the path; any
// stream-level failure is re-tagged ErrSerializeFile with the path, keeping
// the original error on the cause chain.
func (f *Serializable[T]) WriteFile(value T, path string) error {
	return f.writeFile(value, path, false)
}

// WriteFilePretty is WriteFile using the pretty stream primitive.
func (f *Serializable[T]) WriteFilePretty(value T, path string) error {
	return f.writeFile(value, path, true)
}

// WriteFileOpt writes value to path, selecting pretty or plain mode at runtime.
func (f *Serializable[T]) WriteFileOpt(value T, path string, pretty bool) error {
	return f.writeFile(value, path, pretty)
}

func (f *Serializable[T]) writeFile(value T, path string, pretty bool) (err error) {
	ctx := context.Background()
	emitWriteFileStart(ctx, f.s.Format(), f.typeName, path, pretty)
	start := time.Now()
	defer func() {
		emitWriteFileComplete(ctx, f.s.Format(), f.typeName, path, pretty, time.Since(start), err)
	}()

	handle, cerr := os.Create(path)
	if cerr != nil {
		err = newPathError(ErrFileCreate, f.typeName, path, cerr)
		return err
	}

	if werr := f.EncodeToOpt(value, handle, pretty); werr != nil {
		handle.Close()
		err = retag(werr, ErrSerializeFile, path)
		return err
	}
	if cerr := handle.Close(); cerr != nil {
		err = newPathError(ErrSerializeFile, f.typeName, path, cerr)
		return err
	}
	return nil
}

// ReadFile opens the file at path and deserializes a value from it. Open
// failures are reported as ErrFileOpen with the path; any stream-level
// failure is re-tagged ErrDeserializeFile with the path, keeping the original
// error on the cause chain.
func (f *Serializable[T]) ReadFile(path string) (value T, err error) {
	ctx := context.Background()
	emitReadFileStart(ctx, f.s.Format(), f.typeName, path)
	start := time.Now()
	defer func() {
		emitReadFileComplete(ctx, f.s.Format(), f.typeName, path, time.Since(start), err)
	}()

	handle, oerr := os.Open(path)
	if oerr != nil {
		err = newPathError(ErrFileOpen, f.typeName, path, oerr)
		return value, err
	}
	defer handle.Close()

	value, rerr := f.DecodeFrom(handle)
	if rerr != nil {
		err = retag(rerr, ErrDeserializeFile, path)
		var zero T
		return zero, err
	}
	return value, nil
}

// WriteFileContext is WriteFile with cancellation support. Writes are
// buffered, so the final flush is exercised and a drain failure surfaces
// through the ErrFlush kind on the cause chain.
func (f *Serializable[T]) WriteFileContext(ctx context.Context, value T, path string) error {
	return f.writeFileContext(ctx, value, path, false)
}

// WriteFileOptContext is WriteFileContext with a runtime pretty toggle.
func (f *Serializable[T]) WriteFileOptContext(ctx context.Context, value T, path string, pretty bool) error {
	return f.writeFileContext(ctx, value, path, pretty)
}

func (f *Serializable[T]) writeFileContext(ctx context.Context, value T, path string, pretty bool) (err error) {
	emitWriteFileStart(ctx, f.s.Format(), f.typeName, path, pretty)
	start := time.Now()
	defer func() {
		emitWriteFileComplete(ctx, f.s.Format(), f.typeName, path, pretty, time.Since(start), err)
	}()

	if cerr := ctx.Err(); cerr != nil {
		err = newPathError(ErrFileCreate, f.typeName, path, cerr)
		return err
	}
	handle, cerr := os.Create(path)
	if cerr != nil {
		err = newPathError(ErrFileCreate, f.typeName, path, cerr)
		return err
	}

	buffered := bufio.NewWriter(handle)
	var werr error
	if pretty {
		werr = EncodePrettyToContext(ctx, f.s, value, buffered)
	} else {
		werr = EncodeToContext(ctx, f.s, value, buffered)
	}
	if werr != nil {
		handle.Close()
		err = retag(werr, ErrSerializeFile, path)
		return err
	}
	if cerr := handle.Close(); cerr != nil {
		err = newPathError(ErrSerializeFile, f.typeName, path, cerr)
		return err
	}
	return nil
}

// ReadFileContext is ReadFile with cancellation support.
func (f *Serializable[T]) ReadFileContext(ctx context.Context, path string) (value T, err error) {
	emitReadFileStart(ctx, f.s.Format(), f.typeName, path)
	start := time.Now()
	defer func() {
		emitReadFileComplete(ctx, f.s.Format(), f.typeName, path, time.Since(start), err)
	}()

	if oerr := ctx.Err(); oerr != nil {
		err = newPathError(ErrFileOpen, f.typeName, path, oerr)
		return value, err
	}
	handle, oerr := os.Open(path)
	if oerr != nil {
		err = newPathError(ErrFileOpen, f.typeName, path, oerr)
		return value, err
	}
	defer handle.Close()

	value, rerr := DecodeFromContext(ctx, f.s, handle)
	if rerr != nil {
		err = retag(rerr, ErrDeserializeFile, path)
		var zero T
		return zero, err
	}
	return value, nil
}
