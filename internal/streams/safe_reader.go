package streams

import (
	"io"
)

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if scs, ok := wrapped.(*SafeReader); ok {
		return scs
	}

	return &SafeReader{
		ReadCloser: wrapped,
	}
}

// ReadAll reads the remainder of the stream. Payloads are always materialized in full before encoding.
func (ns *SafeReader) ReadAll() ([]byte, error) {
	if ns.closed {
		return nil, ErrStreamClosed
	}
	return readAll(ns.ReadCloser)
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeReader) Close() error {
	if ns.closed {
		return nil
	}
	err := LogClose(ns.ReadCloser)
	ns.closed = true

	return err
}

// Closed will return `true` if SafeReader.Close has been called at least once
func (ns *SafeReader) Closed() bool {
	return ns.closed
}

// Unwrap returns the embedded io.ReadCloser
func (ns *SafeReader) Unwrap() io.ReadCloser {
	return ns.ReadCloser
}
