package verify

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../corpus/testdata"

func Test_VerifyPatterns(t *testing.T) {
	for _, name := range []string{"Base32768", "Base91", "Base128", "R"} {
		c := NewCommand()
		c.Encoder = name
		require.NoError(t, c.Run(), name)
	}
}

func Test_VerifyCorpus(t *testing.T) {
	c := NewCommand()
	c.Args.Dirs = []string{testdata}
	require.NoError(t, c.Run())
}

func Test_VerifyCorpusWrongEncoder(t *testing.T) {
	c := NewCommand()
	c.Encoder = "Base64"
	c.Args.Dirs = []string{testdata}

	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hello: encoded text differs")
}

func Test_VerifyReportsEveryDirectory(t *testing.T) {
	broken := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(broken, "x.bin"), []byte("x"), 0644))
	require.NoError(t, ioutil.WriteFile(filepath.Join(broken, "x.txt"), []byte("wrong"), 0644))

	missing := filepath.Join(t.TempDir(), "missing")

	c := NewCommand()
	c.Args.Dirs = []string{broken, testdata, missing}

	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x: encoded text differs")
	assert.Contains(t, err.Error(), "could not load "+missing)
	assert.NotContains(t, err.Error(), "hello")
}
