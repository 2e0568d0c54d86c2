package serde

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serialization events.
var (
	SignalWriteFileStart    = capitan.NewSignal("serde.write_file.start", "File write operation beginning")
	SignalWriteFileComplete = capitan.NewSignal("serde.write_file.complete", "File write operation finished")
	SignalReadFileStart     = capitan.NewSignal("serde.read_file.start", "File read operation beginning")
	SignalReadFileComplete  = capitan.NewSignal("serde.read_file.complete", "File read operation finished")
)

// Keys for typed event data.
var (
	KeyFormat   = capitan.NewStringKey("format")
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyPath     = capitan.NewStringKey("path")
	KeyMode     = capitan.NewStringKey("mode")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// modeName renders the pretty toggle for event data.
func modeName(pretty bool) string {
	if pretty {
		return "pretty"
	}
	return "plain"
}

// emitWriteFileStart emits an event when a file write begins.
func emitWriteFileStart(ctx context.Context, format, typeName, path string, pretty bool) {
	capitan.Emit(ctx, SignalWriteFileStart,
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeyPath.Field(path),
		KeyMode.Field(modeName(pretty)),
	)
}

// emitWriteFileComplete emits an event when a file write finishes.
func emitWriteFileComplete(ctx context.Context, format, typeName, path string, pretty bool, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeyPath.Field(path),
		KeyMode.Field(modeName(pretty)),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteFileComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteFileComplete, fields...)
	}
}

// emitReadFileStart emits an event when a file read begins.
func emitReadFileStart(ctx context.Context, format, typeName, path string) {
	capitan.Emit(ctx, SignalReadFileStart,
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeyPath.Field(path),
	)
}

// emitReadFileComplete emits an event when a file read finishes.
func emitReadFileComplete(ctx context.Context, format, typeName, path string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyTypeName.Field(typeName),
		KeyPath.Field(path),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadFileComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadFileComplete, fields...)
	}
}
