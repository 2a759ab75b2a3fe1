// Package corpus loads pairs of binary payloads and their expected text encoding and checks encoders
// against them.
//
// A corpus is a directory tree. Every `NAME.bin` file holds a payload and must be accompanied by a
// `NAME.txt` file in the same directory, holding the UTF-8 encoded expected output.
package corpus

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

const (
	BinaryExtension = ".bin"
	TextExtension   = ".txt"
)

// Fixture is one payload with its expected encoding
type Fixture struct {
	Name   string
	Binary []byte
	Text   string
}

func (f Fixture) String() string {
	return f.Name
}

// Load walks dir recursively and returns every fixture found, sorted by name. Fixture names are the
// paths of the `.bin` files relative to dir, without the extension.
func Load(dir string) ([]Fixture, error) {
	fixtures := make([]Fixture, 0)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}
		if info.IsDir() || filepath.Ext(path) != BinaryExtension {
			return nil
		}

		base := strings.TrimSuffix(path, BinaryExtension)
		name, err := filepath.Rel(dir, base)
		if err != nil {
			return errors.WithStack(err)
		}

		binary, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "could not read payload of %v", name)
		}
		text, err := ioutil.ReadFile(base + TextExtension)
		if err != nil {
			return errors.Wrapf(err, "fixture %v has no matching %v file", name, TextExtension)
		}

		fixtures = append(fixtures, Fixture{
			Name:   filepath.ToSlash(name),
			Binary: binary,
			Text:   string(text),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return fixtures[i].Name < fixtures[j].Name
	})
	log.Debugf("Loaded %v fixtures from %v", len(fixtures), dir)
	return fixtures, nil
}

// Verify encodes and decodes every fixture with e. Both directions must reproduce the fixture exactly
// and the expected text must survive Unicode normalization unchanged. All failures are reported, not
// just the first one.
func Verify(e enc.Encoder, fixtures []Fixture) error {
	var errs error

	for _, f := range fixtures {
		if err := verifyFixture(e, f); err != nil {
			errs = multierror.Append(errs, err)
		} else {
			log.Tracef("%v: %v ok", enc.Describe(e), f.Name)
		}
	}

	return errs
}

func verifyFixture(e enc.Encoder, f Fixture) error {
	var errs error

	encoded, err := e.Encode(f.Binary)
	if err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "%v: encoding failed", f.Name))
	} else if encoded != f.Text {
		errs = multierror.Append(errs, errors.Errorf("%v: encoded text differs\nexpected: %q\nactual:   %q", f.Name, f.Text, encoded))
	}

	decoded, err := e.Decode(f.Text)
	if err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "%v: decoding failed", f.Name))
	} else if !bytes.Equal(decoded, f.Binary) {
		errs = multierror.Append(errs, mismatch(f.Name, f.Binary, decoded))
	}

	if !norm.NFC.IsNormalString(f.Text) || !norm.NFD.IsNormalString(f.Text) {
		errs = multierror.Append(errs, errors.Errorf("%v: text is not stable under normalization", f.Name))
	}

	return errs
}

// RoundTrip checks that decoding the encoding of every payload gives back the payload.
func RoundTrip(e enc.Encoder, payloads [][]byte) error {
	var errs error

	for i, p := range payloads {
		name := fmt.Sprintf("pattern %d", i)
		encoded, err := e.Encode(p)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v: encoding failed", name))
			continue
		}
		decoded, err := e.Decode(encoded)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v: decoding failed", name))
			continue
		}
		if !bytes.Equal(decoded, p) {
			errs = multierror.Append(errs, mismatch(name, p, decoded))
		}
	}

	return errs
}

func mismatch(name string, expected, actual []byte) error {
	return errors.Errorf("%v: decoded bytes differ\nexpected:\n%sactual:\n%s", name, spew.Sdump(expected), spew.Sdump(actual))
}
