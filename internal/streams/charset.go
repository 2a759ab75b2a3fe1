package streams

import (
	"strings"

	"github.com/dop251/scsu"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	CharsetUTF8    = "utf-8"
	CharsetUTF16LE = "utf-16le"
	CharsetUTF16BE = "utf-16be"
	CharsetSCSU    = "scsu"
)

// ErrUnsupportedCharset is returned for unknown charsets and for charsets which can only be written
var ErrUnsupportedCharset = errors.New("unsupported charset")

func utf16Encoding(charset string) encoding.Encoding {
	switch strings.ToLower(charset) {
	case CharsetUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case CharsetUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	return nil
}

// EncodeText converts UTF-8 text into the given charset. SCSU (the Standard Compression Scheme for Unicode)
// stores runs of characters from the same 128-character window in one byte each.
func EncodeText(text string, charset string) ([]byte, error) {
	switch strings.ToLower(charset) {
	case "", CharsetUTF8:
		return []byte(text), nil
	case CharsetSCSU:
		res, err := scsu.EncodeStrict(text, nil)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return res, nil
	}

	if e := utf16Encoding(charset); e != nil {
		res, err := e.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return res, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedCharset, "'%s'", charset)
}

// DecodeText converts text in the given charset into UTF-8. SCSU is write-only.
func DecodeText(data []byte, charset string) (string, error) {
	switch strings.ToLower(charset) {
	case "", CharsetUTF8:
		return string(data), nil
	}

	if e := utf16Encoding(charset); e != nil {
		if len(data)%2 != 0 {
			return "", errors.Errorf("%s input has an odd number of bytes: %d", charset, len(data))
		}
		res, err := e.NewDecoder().Bytes(data)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return string(res), nil
	}

	return "", errors.Wrapf(ErrUnsupportedCharset, "'%s' cannot be read", charset)
}

// StripNewlines removes line breaks inserted by Wrap
func StripNewlines(text string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}

// Wrap breaks the text into lines no wider than columns terminal cells. Wide (e.g. CJK) characters occupy
// two cells. A columns value of zero or less disables wrapping.
func Wrap(text string, columns int) string {
	if columns <= 0 || text == "" {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/columns + 1)

	width := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if width > 0 && width+w > columns {
			sb.WriteByte('\n')
			width = 0
		}
		sb.WriteRune(r)
		width += w
	}
	return sb.String()
}
