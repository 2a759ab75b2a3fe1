package streams

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StandardStream is the file name which stands for stdin or stdout
const StandardStream = "-"

// ErrStreamClosed is returned when reading from or writing to a stream which has already been closed
var ErrStreamClosed = errors.New("stream already closed")

// nopWriteCloser keeps the process' stdout open when the output is closed
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenInput opens the named file for reading. `-` and the empty string stand for the standard input.
func OpenInput(file string) (*NamedReader, error) {
	if file == "" || file == StandardStream {
		return NewNamedReader(ioutil.NopCloser(os.Stdin), "stdin"), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedReader(f, file), nil
}

// CreateOutput creates (or truncates) the named file. `-` and the empty string stand for the standard
// output, which is never closed.
func CreateOutput(file string) (*NamedWriter, error) {
	if file == "" || file == StandardStream {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewNamedWriter(f, file), nil
}

func readAll(r io.Reader) ([]byte, error) {
	res, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

// TryClose closes the stream and just reports to log if it fails
func TryClose(closer io.Closer) {
	if err := LogClose(closer); err != nil {
		log.Debugf("Ignoring close error: %v", err)
	}
}

// LogClose will close the stream and log the failure, if any
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}
