package streams

import (
	"fmt"
	"io"
)

// NamedReader implements the io.ReadCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`, e.g. the name of the input
// file or `stdin`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedReader struct {
	ReadCloserClosed
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		ReadCloserClosed: NewSafeReader(wrapped),
		name:             name,
	}
}

// ReadAll reads the whole stream into memory
func (ns *NamedReader) ReadAll() ([]byte, error) {
	if ns.Closed() {
		return nil, ErrStreamClosed
	}
	return readAll(ns.ReadCloserClosed)
}

func (ns *NamedReader) String() string {
	result := ns.name

	var s io.ReadCloser
	s = ns.ReadCloserClosed
	for {
		t, ok := s.(UnwrappedReadCloser)
		if !ok {
			break
		}
		u := t.Unwrap()
		if v, ok := u.(fmt.Stringer); ok {
			result += "->" + v.String()
			break
		}
		s = u
	}

	return result
}

func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.ReadCloserClosed
}
