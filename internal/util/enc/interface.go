package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownEncoder is returned by Find when no encoder matches the requested name or code.
var ErrUnknownEncoder = errors.New("unknown encoder")

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it into text using this encoder
	Encode([]byte) (string, error)

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// Return a list of test patterns for the specified encoding
	TestPatterns() [][]byte

	// Ratio returns the number of output characters produced per input byte
	Ratio() float64
}

// All returns every known encoder, most compact first.
func All() []Encoder {
	return []Encoder{
		&Base32768Encoder{},
		&Base128Encoder{},
		&Base91Encoder{},
		&Base85Encoder{},
		&Base64Encoder{},
		&Base64uEncoder{},
		&Base32Encoder{},
		&RawEncoder{},
	}
}

// Find returns the encoder with the given name or one-letter code. Names are matched case-insensitively,
// codes exactly.
func Find(nameOrCode string) (Encoder, error) {
	for _, e := range All() {
		if strings.EqualFold(e.Name(), nameOrCode) {
			return e, nil
		}
	}
	if len(nameOrCode) == 1 {
		for _, e := range All() {
			if e.Code() == nameOrCode[0] {
				return e, nil
			}
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "'%s'", nameOrCode)
}

// Describe returns the name and code of the encoder, e.g. "Base32768(K)"
func Describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}

// lineBreakKeeper is implemented by encoders whose output carries the input text as is, so any line break
// in it belongs to the payload
type lineBreakKeeper interface {
	KeepsLineBreaks() bool
}

// KeepsLineBreaks tells whether line breaks in the encoded text are part of the payload. Such text must
// not be wrapped, and line breaks must not be stripped before decoding it.
func KeepsLineBreaks(e Encoder) bool {
	if k, ok := e.(lineBreakKeeper); ok {
		return k.KeepsLineBreaks()
	}
	return false
}
