// Package serde provides a uniform serialization contract over format backends.
//
// The package defines a generic Serializer interface for encoding values to
// strings and writers and decoding them back, along with a Serializable facade
// that adds file-based convenience operations, a boolean pretty toggle, and
// context-aware variants.
//
// # Backends
//
// The following backend implementations are available as subpackages:
//
//   - json - JSON encoding (application/json), with a distinct pretty mode
//   - yaml - YAML encoding (application/yaml)
//   - toml - TOML encoding (application/toml), with a distinct pretty mode
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - text - plain-text test doubles (round-trip and fixed-constant variants)
//
// # Basic Usage
//
//	type Config struct {
//	    Hello string `json:"hello"`
//	    World string `json:"world"`
//	}
//
//	s := serde.Bind(json.New[Config]())
//	cfg := Config{Hello: "Hello", World: "World"}
//
//	// Encode to a string
//	raw, _ := s.Encode(cfg)
//
//	// Write to a file, human-formatted
//	_ = s.WriteFilePretty(cfg, "config.json")
//
//	// Read it back
//	cfg, _ = s.ReadFile("config.json")
//
// # Capabilities
//
// Serializer is the minimal contract every backend satisfies. Backends opt in
// to extra behavior by implementing capability interfaces:
//
//   - PrettySerializer: a pretty mode distinct from plain output
//   - ContextSerializer: context-aware stream operations
//
// The package-level negotiation functions (EncodePretty, EncodePrettyTo,
// EncodeToContext, DecodeFromContext) use a backend's capability when present
// and otherwise fall back to a documented default: pretty aliases plain, and
// context operations buffer in memory before delegating to the synchronous
// primitives.
//
// # Errors
//
// Every operation returns an *Error tagged with one of the sentinel kinds
// (ErrSerialize, ErrDeserialize, ErrWrite, ErrRead, ErrFlush, ErrFileCreate,
// ErrFileOpen, ErrSerializeFile, ErrDeserializeFile). Use errors.Is against
// the sentinels and errors.As to reach the backend's native error. File-based
// operations re-tag stream-level failures to their file-level kinds and attach
// the path.
package serde

import (
	"context"
	"io"
)

// Serializer is the minimal contract a format backend must satisfy.
//
// Implementations are stateless: a Serializer carries no data and exists only
// to select behavior for one (value type, format) pair. All errors returned
// are *Error values tagged with a sentinel kind.
type Serializer[T any] interface {
	// Format returns the MIME type for this backend (e.g., "application/json").
	Format() string

	// Encode serializes value to a string.
	Encode(value T) (string, error)

	// EncodeTo serializes value to w. Codec failures and write failures
	// surface as distinct kinds (ErrSerialize vs ErrWrite).
	EncodeTo(value T, w io.Writer) error

	// Decode deserializes a value from raw.
	Decode(raw string) (T, error)

	// DecodeFrom deserializes a value from r. Backends without a native
	// streaming decoder read the whole stream (ErrRead on I/O failure) and
	// then delegate to Decode.
	DecodeFrom(r io.Reader) (T, error)
}

// PrettySerializer is implemented by backends with a pretty mode distinct
// from their plain output. Backends with no visual distinction omit it; the
// negotiation functions then alias the plain primitives.
type PrettySerializer[T any] interface {
	Serializer[T]

	// EncodePretty serializes value to a human-formatted string.
	EncodePretty(value T) (string, error)

	// EncodePrettyTo serializes value to w in pretty mode.
	EncodePrettyTo(value T, w io.Writer) error
}

// ContextSerializer is implemented by backends with native context-aware
// stream operations. Backends that omit it still work with the negotiation
// functions, which buffer the full payload in memory and delegate to the
// synchronous primitives. This is an explicit degradation, not a defect.
type ContextSerializer[T any] interface {
	Serializer[T]

	// EncodeToContext serializes value to w, honoring ctx cancellation
	// between writes.
	EncodeToContext(ctx context.Context, value T, w io.Writer) error

	// DecodeFromContext deserializes a value from r, honoring ctx
	// cancellation between reads.
	DecodeFromContext(ctx context.Context, r io.Reader) (T, error)
}

// Flusher is the subset of buffered writers the context-aware operations
// finalize with an explicit flush. A flush failure after a successful write
// is reported as ErrFlush, never conflated with ErrWrite.
type Flusher interface {
	Flush() error
}
