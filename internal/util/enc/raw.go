package enc

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// RawEncoder encodes 8 bytes to 8 characters -- it simply does not do any translation whatsoever. It only
// accepts input which already is valid UTF-8 text.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("raw encoding needs valid UTF-8 input")
	}
	return string(data), nil
}

func (b *RawEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

// KeepsLineBreaks is always true, the text is the payload
func (b *RawEncoder) KeepsLineBreaks() bool {
	return true
}

func (b *RawEncoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("plain text"),
		[]byte("two\nlines\r\n"),
	}
}

func (b *RawEncoder) Ratio() float64 {
	return 1.0
}
