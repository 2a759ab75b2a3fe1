package streams

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const hello = "䩲腻㐿"

func Test_EncodeTextUTF8(t *testing.T) {
	res, err := EncodeText(hello, CharsetUTF8)
	require.NoError(t, err)
	require.Equal(t, []byte(hello), res)

	back, err := DecodeText(res, "UTF-8")
	require.NoError(t, err)
	require.Equal(t, hello, back)
}

func Test_EncodeTextUTF16(t *testing.T) {
	le, err := EncodeText(hello, CharsetUTF16LE)
	require.NoError(t, err)
	require.Equal(t, []byte{0x72, 0x4a, 0x7b, 0x81, 0x3f, 0x34}, le)

	be, err := EncodeText(hello, CharsetUTF16BE)
	require.NoError(t, err)
	require.Equal(t, []byte{0x4a, 0x72, 0x81, 0x7b, 0x34, 0x3f}, be)

	back, err := DecodeText(le, CharsetUTF16LE)
	require.NoError(t, err)
	require.Equal(t, hello, back)

	back, err = DecodeText(be, CharsetUTF16BE)
	require.NoError(t, err)
	require.Equal(t, hello, back)

	_, err = DecodeText([]byte{0x72}, CharsetUTF16LE)
	require.Error(t, err)
}

func Test_EncodeTextSCSU(t *testing.T) {
	res, err := EncodeText(hello, CharsetSCSU)
	require.NoError(t, err)
	require.NotEmpty(t, res)

	_, err = DecodeText(res, CharsetSCSU)
	require.True(t, errors.Is(err, ErrUnsupportedCharset))
}

func Test_UnknownCharset(t *testing.T) {
	_, err := EncodeText(hello, "ebcdic")
	require.True(t, errors.Is(err, ErrUnsupportedCharset))

	_, err = DecodeText([]byte(hello), "ebcdic")
	require.True(t, errors.Is(err, ErrUnsupportedCharset))
}

func Test_Wrap(t *testing.T) {
	require.Equal(t, "abc\ndef\ng", Wrap("abcdefg", 3))
	require.Equal(t, "abcdefg", Wrap("abcdefg", 0))
	require.Equal(t, "", Wrap("", 10))

	// CJK ideographs are two cells wide
	require.Equal(t, "䩲腻\n㐿", Wrap(hello, 4))
	require.Equal(t, "䩲\n腻\n㐿", Wrap(hello, 3))
	// a character wider than the line still gets a line of its own
	require.Equal(t, "䩲\n腻\n㐿", Wrap(hello, 1))
}

func Test_StripNewlines(t *testing.T) {
	require.Equal(t, hello, StripNewlines(Wrap(hello, 2)))
	require.Equal(t, "ab", StripNewlines("a\r\nb\n"))
}
