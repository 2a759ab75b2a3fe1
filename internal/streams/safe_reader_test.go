package streams

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) *os.File {
	f, err := ioutil.TempFile(t.TempDir(), "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	return f
}

func Test_SafeReader_MultipleClose(t *testing.T) {
	f := tempFile(t, "payload")

	obj := NewSafeReader(f)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	err := obj.Close()
	require.NoErrorf(t, err, "Could not close file %s: %v", f.Name(), err)
	require.True(t, obj.Closed(), "Stream is not closed!")

	err = obj.Close()
	require.NoErrorf(t, err, "Error when retrying close on file %s: %v", f.Name(), err)
}

func Test_SafeReader_ReadAll(t *testing.T) {
	f := tempFile(t, "payload")

	obj := NewSafeReader(f)
	data, err := obj.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))

	require.NoError(t, obj.Close())
	_, err = obj.ReadAll()
	require.True(t, errors.Is(err, ErrStreamClosed))
}

func Test_SafeReader_NoDoubleWrap(t *testing.T) {
	f := tempFile(t, "")
	obj := NewSafeReader(f)
	require.Same(t, obj, NewSafeReader(obj))
	require.Equal(t, f, obj.Unwrap())
	TryClose(obj)
}
