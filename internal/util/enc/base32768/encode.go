// Package base32768 encodes binary data as Unicode text, 15 bits per
// character.
//
// Every complete 15-bit group is written as one character of the tier 0
// repertoire. When the input is not a multiple of 15 bits the final group is
// padded with 1-bits: up to 7 payload bits are padded to 7 and written with
// the tier 1 repertoire, 8 to 14 payload bits are padded to 15 and written
// with tier 0. A decoder recognises the short form purely by the block the
// final character comes from.
//
// All characters are in the Basic Multilingual Plane, so the encoded length
// in UTF-16 code units equals the number of characters:
//
//   data := []byte("Hello")
//   s, _ := base32768.EncodeToString(data) // s == "䩲腻㐿"
//   b, _ := base32768.DecodeString(s)      // b == data
//
package base32768

import (
	"unicode/utf8"

	"github.com/bokysan/base32768/internal/util/bits"
	"github.com/pkg/errors"
)

// EncodedLen returns the number of characters produced by encoding n bytes.
func EncodedLen(n int) int {
	return (8*n + PointBits - 1) / PointBits
}

// AppendEncode appends the UTF-8 encoded text for src to dst. On error dst
// is returned unchanged.
func (t *Tables) AppendEncode(dst, src []byte) ([]byte, error) {
	units, err := t.encode(src)
	if err != nil {
		return dst, err
	}
	for _, u := range units {
		dst = utf8.AppendRune(dst, rune(u))
	}
	return dst, nil
}

// EncodeToString returns the text encoding of src.
func (t *Tables) EncodeToString(src []byte) (string, error) {
	res, err := t.AppendEncode(make([]byte, 0, 3*EncodedLen(len(src))), src)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// EncodeToUTF16 returns the encoding of src as UTF-16 code units.
func (t *Tables) EncodeToUTF16(src []byte) ([]uint16, error) {
	return t.encode(src)
}

func (t *Tables) encode(src []byte) ([]uint16, error) {
	groups := bits.Regroup(src, 8, PointBits, 8)
	out := make([]uint16, 0, len(groups))

	for idx, g := range groups {
		value, width := g.Value, g.Width
		if width != PointBits {
			if idx != len(groups)-1 {
				return nil, errors.Wrapf(ErrPartialGroupMidStream, "group %d of %d has %d bits", idx, len(groups), width)
			}

			pad := (PointBits - width) % 8
			value = value<<uint(pad) | (1<<uint(pad) - 1)
			width += pad
		}

		tier := (PointBits - width) / 8
		r := t.Repertoire(tier)
		if r == nil {
			return nil, errors.Wrapf(ErrUnrecognizedTier, "tier %d", tier)
		}
		cp, ok := r.Encode(value)
		if !ok {
			return nil, errors.Wrapf(ErrUnencodableValue, "value %d in tier %d", value, tier)
		}

		out = append(out, cp)
	}

	return out, nil
}

// AppendEncode appends the encoding of src to dst using the default tables.
func AppendEncode(dst, src []byte) ([]byte, error) {
	return Default().AppendEncode(dst, src)
}

// EncodeToString returns the encoding of src using the default tables.
func EncodeToString(src []byte) (string, error) {
	return Default().EncodeToString(src)
}

// EncodeToUTF16 returns the encoding of src as UTF-16 code units using the default tables.
func EncodeToUTF16(src []byte) ([]uint16, error) {
	return Default().EncodeToUTF16(src)
}
