package enc

import (
	"encoding/ascii85"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ascii85 output is transliterated so it never contains dots, backslashes or backticks. 'v', 'w' and 'x' are
// above the ascii85 range and therefore free.
var (
	base85Escape   = strings.NewReplacer(".", "v", "\\", "w", "`", "x")
	base85Unescape = strings.NewReplacer("v", ".", "w", "\\", "x", "`")
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) (string, error) {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return base85Escape.Replace(string(dst[:n])), nil
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	source := []byte(base85Unescape.Replace(data))

	dst := make([]byte, 4*len(source))
	ndst, _, err := ascii85.Decode(dst, source, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	str := make([]byte, 85)
	// 33 (!) through 117 (u)
	for k := range str {
		str[k] = byte(k + 33)
	}

	return [][]byte{
		str,
		make([]byte, 8),
	}
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}
