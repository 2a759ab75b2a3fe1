package logging

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity(nil)
	require.Equal(t, log.ErrorLevel, log.GetLevel())
	require.Equal(t, "ERROR", VerbosityName())

	SetVerbosity([]bool{true, true})
	require.Equal(t, log.InfoLevel, log.GetLevel())
	require.Equal(t, "INFO", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}

func Test_ContextHook(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(NewJSONLogFormatter())
	logger.AddHook(&ContextHook{})

	logger.Info("hello")

	fields := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	require.Equal(t, "hello", fields["message"])
	require.Equal(t, "info", fields["@level"])
	require.Equal(t, "logging_test.go", fields["file"])
	require.Equal(t, "logging.Test_ContextHook", fields["func"])
}

func Test_TextLogFormatter(t *testing.T) {
	f := NewTextLogFormatter("no", true)
	require.True(t, f.DisableColors)
	require.False(t, f.ForceColors)
	require.True(t, f.FullTimestamp)

	f = NewTextLogFormatter("yes", false)
	require.True(t, f.ForceColors)

	f = NewTextLogFormatter("auto", false)
	require.False(t, f.ForceColors)
	require.False(t, f.DisableColors)
}

func Test_OpenLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := OpenLogFile(file)
		require.NoError(t, err)
		_, err = f.Write([]byte(line))
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", string(data))

	_, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "app.log"))
	require.Error(t, err)
}
