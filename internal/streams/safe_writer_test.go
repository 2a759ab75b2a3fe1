package streams

import (
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_SafeWriter_MultipleClose(t *testing.T) {
	f, err := ioutil.TempFile(t.TempDir(), "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)

	obj := NewSafeWriter(f)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	err = obj.Close()
	require.NoErrorf(t, err, "Could not close file %s: %v", f.Name(), err)
	require.True(t, obj.Closed(), "Stream is not closed!")

	err = obj.Close()
	require.NoErrorf(t, err, "Error when retrying close on file %s: %v", f.Name(), err)

	_, err = obj.Write([]byte("late"))
	require.True(t, errors.Is(err, ErrStreamClosed))
}
