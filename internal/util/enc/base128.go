package enc

// NOTE: The alphabet is taken from base128.c of the IODINE project.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert map[rune]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Invert = make(map[rune]byte)
		for i, v := range []byte(cb128) {
			cb128Invert[rune(v)] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. The alphabet bytes are read as ISO-8859-1, so the upper
// part of the alphabet turns into two-byte UTF-8 sequences.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) (string, error) {
	return escape128(string(pack128(src)))
}

// pack128 splits the input into 7-bit digits, most significant bit first. The last digit holds the
// remaining bits, zero-filled, and is always present. Unpacking is left to the luci decoder.
func pack128(src []byte) []byte {
	dst := make([]byte, 0, len(src)*8/7+1)

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// top bits of the value complete the pending digit
		dst = append(dst, bufByte|(val>>whichByte))

		// low bits start the next one
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}
		whichByte++
	}

	return append(dst, bufByte)
}

// escape128 maps 7-bit digits onto the alphabet
func escape128(src string) (string, error) {
	res := make([]rune, len(src))
	for i := 0; i < len(src); i++ {
		v := src[i]
		if int(v) >= len(cb128) {
			return "", errors.Errorf("base128 digit %d out of range at position %d", v, i)
		}
		res[i] = rune(cb128[v])
	}
	return string(res), nil
}

// unescape128 maps alphabet characters back onto 7-bit digits
func unescape128(src string) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, 0, len(src))
	for i, v := range src {
		d, ok := cb128Invert[v]
		if !ok {
			return nil, errors.Errorf("invalid base128 character %q at byte %d", v, i)
		}
		res = append(res, d)
	}
	return res, nil
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128(data)
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("aA-Aaahhh-Drink-mal-ein-J\344germeister-"),
		[]byte("aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te"),
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ"),
		[]byte("aA0123456789\274\275\276\277\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317"),
	}
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
