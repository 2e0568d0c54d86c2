package serde

import (
	"bytes"
	"context"
	"io"
)

// chunkSize bounds how many bytes move per cancellation check.
const chunkSize = 32 * 1024

// writeFullContext writes data to w in chunks, checking ctx between writes.
// Returns the raw I/O or context error; callers tag the kind.
func writeFullContext(ctx context.Context, w io.Writer, data []byte) error {
	for len(data) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := len(data)
		if n > chunkSize {
			n = chunkSize
		}
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// readAllContext drains r in chunks, checking ctx between reads.
// Returns the raw I/O or context error; callers tag the kind.
func readAllContext(ctx context.Context, r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, chunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
