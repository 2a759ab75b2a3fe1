// Package commands holds what the encode, decode and verify commands share: resolving the encoder and
// moving whole payloads between files (or the standard streams) and memory.
package commands

import (
	"github.com/bokysan/base32768/internal/streams"
	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultEncoder is used when no encoder is given on the command line or in the configuration
const DefaultEncoder = "Base32768"

// FindEncoder resolves an encoder by name or one-letter code, falling back to DefaultEncoder
func FindEncoder(name string) (enc.Encoder, error) {
	if name == "" {
		name = DefaultEncoder
	}
	e, err := enc.Find(name)
	if err != nil {
		return nil, err
	}
	log.Debugf("Using encoder %v", enc.Describe(e))
	return e, nil
}

// ReadInput reads the whole file into memory. `-` reads the standard input.
func ReadInput(file string) ([]byte, error) {
	in, err := streams.OpenInput(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open input")
	}
	defer streams.TryClose(in)

	data, err := in.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %v", in)
	}
	log.WithFields(log.Fields{
		"input": in.String(),
		"bytes": len(data),
	}).Debugf("Read input")
	return data, nil
}

// WriteOutput replaces the contents of the file with data. `-` writes to the standard output.
func WriteOutput(file string, data []byte) error {
	out, err := streams.CreateOutput(file)
	if err != nil {
		return errors.Wrapf(err, "could not create output")
	}

	if _, err := out.Write(data); err != nil {
		streams.TryClose(out)
		return errors.Wrapf(err, "could not write %v", out)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "could not close %v", out)
	}
	log.WithFields(log.Fields{
		"output": out.String(),
		"bytes":  len(data),
	}).Debugf("Wrote output")
	return nil
}
