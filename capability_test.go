package serde

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// plainBackend is a minimal backend with no optional capabilities. Values
// serialize to themselves.
type plainBackend struct{}

func (plainBackend) Format() string { return "text/plain" }

func (plainBackend) Encode(value string) (string, error) { return value, nil }

func (b plainBackend) EncodeTo(value string, w io.Writer) error {
	if _, err := io.WriteString(w, value); err != nil {
		return newError(ErrWrite, "string", err)
	}
	return nil
}

func (plainBackend) Decode(raw string) (string, error) { return raw, nil }

func (b plainBackend) DecodeFrom(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", newError(ErrRead, "string", err)
	}
	return string(raw), nil
}

// prettyBackend adds a distinct pretty mode on top of plainBackend.
type prettyBackend struct {
	plainBackend
}

func (b prettyBackend) EncodePretty(value string) (string, error) {
	return "pretty:" + value, nil
}

func (b prettyBackend) EncodePrettyTo(value string, w io.Writer) error {
	raw, err := b.EncodePretty(value)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, raw); err != nil {
		return newError(ErrWrite, "string", err)
	}
	return nil
}

// failWriter fails every write.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

// flushFailWriter accepts writes but fails the final flush.
type flushFailWriter struct {
	buf      strings.Builder
	flushErr error
}

func (w *flushFailWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *flushFailWriter) Flush() error { return w.flushErr }

func TestEncodePretty_FallsBackToPlain(t *testing.T) {
	got, err := EncodePretty[string](plainBackend{}, "value")
	if err != nil {
		t.Fatalf("EncodePretty() error: %v", err)
	}
	if got != "value" {
		t.Errorf("EncodePretty() = %q, want plain output %q", got, "value")
	}
}

func TestEncodePretty_UsesCapability(t *testing.T) {
	got, err := EncodePretty[string](prettyBackend{}, "value")
	if err != nil {
		t.Fatalf("EncodePretty() error: %v", err)
	}
	if got != "pretty:value" {
		t.Errorf("EncodePretty() = %q, want %q", got, "pretty:value")
	}
}

func TestEncodePrettyTo_FallsBackToPlain(t *testing.T) {
	var buf strings.Builder
	if err := EncodePrettyTo[string](plainBackend{}, "value", &buf); err != nil {
		t.Fatalf("EncodePrettyTo() error: %v", err)
	}
	if buf.String() != "value" {
		t.Errorf("EncodePrettyTo() wrote %q, want %q", buf.String(), "value")
	}
}

func TestEncodePrettyTo_UsesCapability(t *testing.T) {
	var buf strings.Builder
	if err := EncodePrettyTo[string](prettyBackend{}, "value", &buf); err != nil {
		t.Fatalf("EncodePrettyTo() error: %v", err)
	}
	if buf.String() != "pretty:value" {
		t.Errorf("EncodePrettyTo() wrote %q, want %q", buf.String(), "pretty:value")
	}
}

func TestEncodeToContext_BuffersForPlainBackend(t *testing.T) {
	var buf strings.Builder
	if err := EncodeToContext[string](context.Background(), plainBackend{}, "value", &buf); err != nil {
		t.Fatalf("EncodeToContext() error: %v", err)
	}
	if buf.String() != "value" {
		t.Errorf("EncodeToContext() wrote %q, want %q", buf.String(), "value")
	}
}

func TestEncodeToContext_WriteFailure(t *testing.T) {
	cause := errors.New("broken pipe")
	err := EncodeToContext[string](context.Background(), plainBackend{}, "value", failWriter{err: cause})

	if !errors.Is(err, ErrWrite) {
		t.Errorf("error = %v, want ErrWrite kind", err)
	}
	if !errors.Is(err, cause) {
		t.Error("write cause should be reachable through the chain")
	}
	if errors.Is(err, ErrFlush) {
		t.Error("a write failure must not be reported as ErrFlush")
	}
}

func TestEncodeToContext_FlushFailure(t *testing.T) {
	cause := errors.New("descriptor closed during drain")
	w := &flushFailWriter{flushErr: cause}

	err := EncodeToContext[string](context.Background(), plainBackend{}, "value", w)

	if !errors.Is(err, ErrFlush) {
		t.Errorf("error = %v, want ErrFlush kind", err)
	}
	if errors.Is(err, ErrWrite) {
		t.Error("a flush failure must not be reported as ErrWrite")
	}
	if !errors.Is(err, cause) {
		t.Error("flush cause should be reachable through the chain")
	}
	if w.buf.String() != "value" {
		t.Errorf("payload before flush = %q, want %q", w.buf.String(), "value")
	}
}

func TestEncodeToContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf strings.Builder
	err := EncodeToContext[string](ctx, plainBackend{}, "value", &buf)

	if !errors.Is(err, ErrWrite) {
		t.Errorf("error = %v, want ErrWrite kind", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("context.Canceled should be reachable through the chain")
	}
}

func TestEncodePrettyToContext_NegotiatesPretty(t *testing.T) {
	var buf strings.Builder
	if err := EncodePrettyToContext[string](context.Background(), prettyBackend{}, "value", &buf); err != nil {
		t.Fatalf("EncodePrettyToContext() error: %v", err)
	}
	if buf.String() != "pretty:value" {
		t.Errorf("EncodePrettyToContext() wrote %q, want %q", buf.String(), "pretty:value")
	}
}

func TestDecodeFromContext_BuffersForPlainBackend(t *testing.T) {
	got, err := DecodeFromContext[string](context.Background(), plainBackend{}, strings.NewReader("value"))
	if err != nil {
		t.Fatalf("DecodeFromContext() error: %v", err)
	}
	if got != "value" {
		t.Errorf("DecodeFromContext() = %q, want %q", got, "value")
	}
}

func TestDecodeFromContext_ReadFailure(t *testing.T) {
	cause := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader("partial"), failReader{err: cause})

	_, err := DecodeFromContext[string](context.Background(), plainBackend{}, r)

	if !errors.Is(err, ErrRead) {
		t.Errorf("error = %v, want ErrRead kind", err)
	}
	if !errors.Is(err, cause) {
		t.Error("read cause should be reachable through the chain")
	}
}

func TestDecodeFromContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DecodeFromContext[string](ctx, plainBackend{}, strings.NewReader("value"))

	if !errors.Is(err, ErrRead) {
		t.Errorf("error = %v, want ErrRead kind", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("context.Canceled should be reachable through the chain")
	}
}

// failReader fails every read.
type failReader struct{ err error }

func (r failReader) Read([]byte) (int, error) { return 0, r.err }
