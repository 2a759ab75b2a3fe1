package streams

import (
	"fmt"
	"io"
)

// NamedWriter implements the io.WriteCloser interface as well as fmt.Stringer. It allows the caller to setup
// a name for the stream which will be returned when outputing the stream with `%v`.
// It also makes sure that `Close()` can be called safely multiple times. Calling `Close()` on a closed object
// will simply succeed without an error.
type NamedWriter struct {
	WriteCloserClosed
	name string
}

// NewNamedWriter will, unsurprisingly, create a new NamedWriter with a given name
func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		WriteCloserClosed: NewSafeWriter(wrapped),
		name:              name,
	}
}

func (ns *NamedWriter) String() string {
	result := ns.name

	var s io.WriteCloser
	s = ns.WriteCloserClosed
	for {
		t, ok := s.(UnwrappedWriteCloser)
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

func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloserClosed
}
