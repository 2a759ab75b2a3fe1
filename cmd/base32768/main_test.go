package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/bokysan/base32768/internal/args"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Commands(t *testing.T) {
	b := NewBase32768()
	for _, name := range []string{"version", "encode", "decode", "verify"} {
		assert.NotNil(t, b.parser.Find(name), name)
	}
}

func Test_Configure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yml")
	config := "General:\n  log-format: json\n" +
		"encode:\n  encoder: Base91\n  wrap: 76\n" +
		"---\n" +
		"decode:\n  charset: utf-16le\n"
	require.NoError(t, ioutil.WriteFile(file, []byte(config), 0644))

	b := NewBase32768()
	require.NoError(t, b.configure(file))

	assert.Equal(t, file, args.General.ConfigurationFilePath)
	assert.Equal(t, "json", args.General.LogFormat)

	encode := b.parser.Find("encode")
	assert.Equal(t, "Base91", encode.FindOptionByLongName("encoder").Value())
	assert.Equal(t, 76, encode.FindOptionByLongName("wrap").Value())

	decode := b.parser.Find("decode")
	assert.Equal(t, "utf-16le", decode.FindOptionByLongName("charset").Value())
}

func Test_ConfigureMissingFile(t *testing.T) {
	b := NewBase32768()
	err := b.configure(filepath.Join(t.TempDir(), "missing.yml"))

	var flagsError *flags.Error
	require.True(t, errors.As(err, &flagsError))
	assert.Equal(t, ErrConfigFileDoesNotExist, flagsError.Type)
}

func Test_ConfigureUnknownCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, ioutil.WriteFile(file, []byte("serve:\n  port: 80\n"), 0644))

	b := NewBase32768()
	err := b.configure(file)

	var flagsError *flags.Error
	require.True(t, errors.As(err, &flagsError))
	assert.Equal(t, flags.ErrUnknownGroup, flagsError.Type)
}
