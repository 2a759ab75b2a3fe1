package enc

import (
	"fmt"

	"github.com/bokysan/base32768/internal/util/enc/base32768"
)

// -------------------------------------------------------

// Base32768Encoder encodes 15 bits into one character of the Basic Multilingual Plane.
type Base32768Encoder struct {
}

func (b *Base32768Encoder) Name() string {
	return "Base32768"
}

func (b *Base32768Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32768Encoder) Code() byte {
	return 'K'
}

func (b *Base32768Encoder) Encode(data []byte) (string, error) {
	return base32768.EncodeToString(data)
}

func (b *Base32768Encoder) Decode(data string) ([]byte, error) {
	return base32768.DecodeString(data)
}

func (b *Base32768Encoder) TestPatterns() [][]byte {
	all := make([]byte, 256)
	for k := range all {
		all[k] = byte(k)
	}
	return [][]byte{
		[]byte("Hello"),
		[]byte("abcd"),
		make([]byte, 15),
		all,
	}
}

func (b *Base32768Encoder) Ratio() float64 {
	return 8.0 / 15.0
}
