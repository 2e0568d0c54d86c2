// Package serdetest provides test fixtures shared by the serde test suites.
package serdetest

import (
	"errors"
	"strings"
)

// Greeting is a two-field document used across backend round-trip tests.
type Greeting struct {
	Hello string `json:"hello" yaml:"hello" toml:"hello" msgpack:"hello" bson:"hello"`
	World string `json:"world" yaml:"world" toml:"world" msgpack:"world" bson:"world"`
}

// Sample returns the canonical test document.
func Sample() Greeting {
	return Greeting{Hello: "Hello", World: "World"}
}

// Label is a text-convertible value for the plain-text backend tests.
type Label struct {
	Name string
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.Name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	if strings.ContainsRune(string(text), '\n') {
		return errors.New("label must be a single line")
	}
	l.Name = string(text)
	return nil
}

// ErrWriterBroken is the cause returned by FailWriter.
var ErrWriterBroken = errors.New("writer broken")

// ErrReaderBroken is the cause returned by FailReader.
var ErrReaderBroken = errors.New("reader broken")

// ErrFlushBroken is the cause returned by FlushFailWriter's Flush.
var ErrFlushBroken = errors.New("flush broken")

// FailWriter fails every write with ErrWriterBroken.
type FailWriter struct{}

func (FailWriter) Write([]byte) (int, error) {
	return 0, ErrWriterBroken
}

// FailReader fails every read with ErrReaderBroken.
type FailReader struct{}

func (FailReader) Read([]byte) (int, error) {
	return 0, ErrReaderBroken
}

// FlushFailWriter accepts every write but fails the final flush with
// ErrFlushBroken, simulating a descriptor that dies during drain.
type FlushFailWriter struct {
	Buf strings.Builder
}

func (w *FlushFailWriter) Write(p []byte) (int, error) {
	return w.Buf.Write(p)
}

func (w *FlushFailWriter) Flush() error {
	return ErrFlushBroken
}
