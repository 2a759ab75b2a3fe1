package base32768

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bokysan/base32768/internal/util/bits"
	"github.com/pkg/errors"
)

// DecodedLen returns the maximum number of bytes n characters decode to.
func DecodedLen(n int) int {
	return n * PointBits / 8
}

// AppendDecode appends the bytes represented by the text src to dst. On
// error dst is returned unchanged.
func (t *Tables) AppendDecode(dst []byte, src string) ([]byte, error) {
	values := make([]uint16, 0, utf8.RuneCountInString(src))
	lastWidth := PointBits

	for offset, pos := 0, 0; offset < len(src); pos++ {
		c, size := utf8.DecodeRuneInString(src[offset:])
		if c == utf8.RuneError && size <= 1 {
			return dst, errors.Wrapf(ErrInvalidCharacter, "invalid UTF-8 at byte %d", offset)
		}
		offset += size

		value, width, err := t.decodeChar(c, offset == len(src))
		if err != nil {
			return dst, errors.Wrapf(err, "character %d (%U)", pos, c)
		}
		values = append(values, value)
		lastWidth = width
	}

	return t.appendBytes(dst, values, lastWidth), nil
}

// DecodeString returns the bytes represented by the text src.
func (t *Tables) DecodeString(src string) ([]byte, error) {
	res, err := t.AppendDecode(make([]byte, 0, DecodedLen(utf8.RuneCountInString(src))), src)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DecodeUTF16 returns the bytes represented by the UTF-16 code units src.
// Surrogates are rejected with ErrInvalidCharacterWidth.
func (t *Tables) DecodeUTF16(src []uint16) ([]byte, error) {
	values := make([]uint16, 0, len(src))
	lastWidth := PointBits

	for pos, u := range src {
		if utf16.IsSurrogate(rune(u)) {
			return nil, errors.Wrapf(ErrInvalidCharacterWidth, "surrogate %#04x at unit %d", u, pos)
		}

		value, width, err := t.decodeChar(rune(u), pos == len(src)-1)
		if err != nil {
			return nil, errors.Wrapf(err, "unit %d (%U)", pos, u)
		}
		values = append(values, value)
		lastWidth = width
	}

	return t.appendBytes(make([]byte, 0, DecodedLen(len(src))), values, lastWidth), nil
}

// decodeChar returns the value c stands for and how many of its bits carry
// payload. Only the last character may come from a padding tier.
func (t *Tables) decodeChar(c rune, last bool) (uint16, int, error) {
	if c > maxBMP {
		return 0, 0, ErrInvalidCharacterWidth
	}

	tier, value, ok := t.lookup(uint16(c))
	if !ok {
		return 0, 0, ErrInvalidCharacter
	}
	if tier != 0 && !last {
		return 0, 0, ErrMisplacedPadding
	}

	return value, PointBits - 8*tier, nil
}

// appendBytes regroups the collected values into bytes. The trailing group
// shorter than 8 bits holds only padding and is dropped.
func (t *Tables) appendBytes(dst []byte, values []uint16, lastWidth int) []byte {
	if len(values) == 0 {
		return dst
	}
	for _, g := range bits.Regroup(values, PointBits, 8, lastWidth) {
		if g.Width == 8 {
			dst = append(dst, byte(g.Value&0xFF))
		}
	}
	return dst
}

// AppendDecode appends the bytes represented by src to dst using the default tables.
func AppendDecode(dst []byte, src string) ([]byte, error) {
	return Default().AppendDecode(dst, src)
}

// DecodeString returns the bytes represented by src using the default tables.
func DecodeString(src string) ([]byte, error) {
	return Default().DecodeString(src)
}

// DecodeUTF16 returns the bytes represented by src using the default tables.
func DecodeUTF16(src []uint16) ([]byte, error) {
	return Default().DecodeUTF16(src)
}
