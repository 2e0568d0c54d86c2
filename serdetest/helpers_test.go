package serdetest

import (
	"errors"
	"testing"
)

func TestLabel_TextRoundTrip(t *testing.T) {
	original := Label{Name: "release-v1"}

	data, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}

	var restored Label
	if err := restored.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestLabel_RejectsMultiline(t *testing.T) {
	var l Label
	if err := l.UnmarshalText([]byte("two\nlines")); err == nil {
		t.Error("UnmarshalText should reject multi-line input")
	}
}

func TestFixtures_Fail(t *testing.T) {
	if _, err := (FailWriter{}).Write([]byte("x")); !errors.Is(err, ErrWriterBroken) {
		t.Errorf("FailWriter error = %v, want ErrWriterBroken", err)
	}
	if _, err := (FailReader{}).Read(make([]byte, 1)); !errors.Is(err, ErrReaderBroken) {
		t.Errorf("FailReader error = %v, want ErrReaderBroken", err)
	}

	w := &FlushFailWriter{}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("FlushFailWriter.Write() error: %v", err)
	}
	if err := w.Flush(); !errors.Is(err, ErrFlushBroken) {
		t.Errorf("Flush error = %v, want ErrFlushBroken", err)
	}
}
