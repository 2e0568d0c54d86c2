package serde

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check an error's kind.
var (
	// ErrWrite indicates an I/O failure writing to a caller-supplied stream.
	ErrWrite = errors.New("write failed")

	// ErrRead indicates an I/O failure reading from a caller-supplied stream.
	ErrRead = errors.New("read failed")

	// ErrFlush indicates a failure finalizing a buffered write. Distinct from
	// ErrWrite: a flush failure after a successful write points at a
	// different fault than the write itself.
	ErrFlush = errors.New("flush failed")

	// ErrSerialize indicates the backend codec rejected the value.
	ErrSerialize = errors.New("serialize failed")

	// ErrDeserialize indicates the backend codec rejected the input.
	ErrDeserialize = errors.New("deserialize failed")

	// ErrFileCreate indicates a file could not be created for a path-based
	// write operation.
	ErrFileCreate = errors.New("file create failed")

	// ErrFileOpen indicates a file could not be opened for a path-based
	// read operation.
	ErrFileOpen = errors.New("file open failed")

	// ErrSerializeFile indicates a serialize or write failure that occurred
	// while servicing a path-based operation. Always carries the path.
	ErrSerializeFile = errors.New("serialize to file failed")

	// ErrDeserializeFile indicates a deserialize or read failure that
	// occurred while servicing a path-based operation. Always carries the path.
	ErrDeserializeFile = errors.New("deserialize from file failed")
)

// Error is the uniform error returned by every operation in this module.
// It tags a failure with a sentinel kind and enough context (value type name,
// optional path) to produce a diagnostic without inspecting the call site,
// while keeping the backend's native error reachable through the cause chain.
type Error struct {
	Err   error  // Sentinel kind (ErrSerialize, ErrWrite, etc.)
	What  string // Value type name for diagnostics
	Path  string // File path, set only for path-based operations
	Cause error  // Root cause from the backend codec or the underlying I/O
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.What != "" {
		msg += " for " + e.What
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %s)", e.Path)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind (for errors.Is) and the cause chain
// (for errors.As against the backend's native error type).
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// TypeName returns the display name of T for diagnostics.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// newError creates an Error for stream- and string-level failures.
func newError(sentinel error, what string, cause error) error {
	return &Error{
		Err:   sentinel,
		What:  what,
		Cause: cause,
	}
}

// newPathError creates an Error for path-based failures.
func newPathError(sentinel error, what, path string, cause error) error {
	return &Error{
		Err:   sentinel,
		What:  what,
		Path:  path,
		Cause: cause,
	}
}

// retag converts a stream-level error raised during a path-based operation
// into its file-level kind, attaching the path. The original error stays on
// the cause chain, so the root cause remains reachable; only the reported
// kind changes.
func retag(err error, sentinel error, path string) error {
	what := ""
	var e *Error
	if errors.As(err, &e) {
		what = e.What
	}
	return &Error{
		Err:   sentinel,
		What:  what,
		Path:  path,
		Cause: err,
	}
}
