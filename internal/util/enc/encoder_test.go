package enc

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var encoderTests = [][]byte{
	[]byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
		"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277"),
	[]byte("a"),
	[]byte("Hello"),
	{},
}

func Test_Encoders(t *testing.T) {
	for _, encoder := range All() {
		if _, ok := encoder.(*RawEncoder); ok {
			continue
		}
		for _, encoderTest := range encoderTests {
			encoded, err := encoder.Encode(encoderTest)
			require.NoError(t, err, Describe(encoder))
			require.True(t, utf8.ValidString(encoded), "%v produced invalid UTF-8", Describe(encoder))
			require.NotContains(t, encoded, ".")

			decoded, err := encoder.Decode(encoded)
			require.NoError(t, err, Describe(encoder))
			require.Equal(t, len(encoderTest), len(decoded), Describe(encoder))
			if len(encoderTest) > 0 {
				require.Equal(t, encoderTest, decoded, Describe(encoder))
			}
		}
	}
}

func Test_EncoderTestPatterns(t *testing.T) {
	for _, encoder := range All() {
		for _, pattern := range encoder.TestPatterns() {
			encoded, err := encoder.Encode(pattern)
			require.NoError(t, err, Describe(encoder))
			decoded, err := encoder.Decode(encoded)
			require.NoError(t, err, Describe(encoder))
			require.Equal(t, pattern, decoded, Describe(encoder))
		}
	}
}

func Test_EncoderRatio(t *testing.T) {
	for _, encoder := range All() {
		require.Greater(t, encoder.Ratio(), 0.0, Describe(encoder))
	}

	// every Base32768 character carries 15 bits
	b := &Base32768Encoder{}
	encoded, err := b.Encode(make([]byte, 15))
	require.NoError(t, err)
	require.Equal(t, 8, utf8.RuneCountInString(encoded))
	require.InDelta(t, 8.0/15.0, b.Ratio(), 1e-9)
}

func Test_Base32768IsMostCompact(t *testing.T) {
	payload := encoderTests[0]
	b, err := (&Base32768Encoder{}).Encode(payload)
	require.NoError(t, err)
	for _, encoder := range All() {
		encoded, err := encoder.Encode(payload)
		if err != nil {
			continue
		}
		require.LessOrEqual(t, utf8.RuneCountInString(b), utf8.RuneCountInString(encoded), Describe(encoder))
	}
}

func Test_Base32CaseInsensitive(t *testing.T) {
	encoder := Base32Encoder{}
	encoded, err := encoder.Encode(encoderTests[0])
	require.NoError(t, err)

	decoded, err := encoder.Decode(toUpper(encoded))
	require.NoError(t, err)
	require.Equal(t, encoderTests[0], decoded)
}

func toUpper(s string) string {
	b := []byte(s)
	for k, v := range b {
		if v >= 'a' && v <= 'z' {
			b[k] = v - 'a' + 'A'
		}
	}
	return string(b)
}

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans, err := escape128(string(str))
	require.NoError(t, err)
	require.Equal(t, len(str), utf8.RuneCountInString(trans))

	back, err := unescape128(trans)
	require.NoError(t, err)
	require.Equal(t, str, back)

	_, err = unescape128("abc-")
	require.Error(t, err)
}

func Test_RawEncoderRejectsBinary(t *testing.T) {
	_, err := (&RawEncoder{}).Encode([]byte{0xff, 0xfe})
	require.Error(t, err)
}

func Test_Find(t *testing.T) {
	e, err := Find("base32768")
	require.NoError(t, err)
	require.Equal(t, "Base32768", e.Name())

	e, err = Find("K")
	require.NoError(t, err)
	require.Equal(t, "Base32768", e.Name())

	e, err = Find("BASE64u")
	require.NoError(t, err)
	require.Equal(t, byte('U'), e.Code())

	_, err = Find("base1024")
	require.True(t, errors.Is(err, ErrUnknownEncoder))

	_, err = Find("k")
	require.True(t, errors.Is(err, ErrUnknownEncoder))
}

func Test_CodesAreUnique(t *testing.T) {
	seen := make(map[byte]string)
	for _, e := range All() {
		other, dup := seen[e.Code()]
		require.False(t, dup, "%v and %v share a code", e.Name(), other)
		seen[e.Code()] = e.Name()
	}
}

func Test_Describe(t *testing.T) {
	require.Equal(t, "Base32768(K)", Describe(&Base32768Encoder{}))
}

// randomPayload returns binary data for every encoder but Raw, which gets random UTF-8 text
func randomPayload(encoder Encoder, size int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	if _, ok := encoder.(*RawEncoder); ok {
		runes := make([]rune, size)
		for k := range runes {
			runes[k] = rune(r.Intn(0xD800))
		}
		return []byte(string(runes))
	}
	payload := make([]byte, size)
	r.Read(payload)
	return payload
}

func Test_EncodersRandomPayload(t *testing.T) {
	for _, encoder := range All() {
		for size := 0; size < 64; size++ {
			payload := randomPayload(encoder, size, int64(size))
			encoded, err := encoder.Encode(payload)
			require.NoError(t, err, "%v, %d bytes", Describe(encoder), size)

			decoded, err := encoder.Decode(encoded)
			require.NoError(t, err, "%v, %d bytes", Describe(encoder), size)
			require.Equal(t, len(payload), len(decoded), "%v, %d bytes", Describe(encoder), size)
			if size > 0 {
				require.Equal(t, payload, decoded, "%v, %d bytes", Describe(encoder), size)
			}
		}

		payload := randomPayload(encoder, 4096, 32768)
		encoded, err := encoder.Encode(payload)
		require.NoError(t, err, Describe(encoder))
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err, Describe(encoder))
		require.Equal(t, payload, decoded, Describe(encoder))
	}
}

func Test_Base128Digits(t *testing.T) {
	payload := make([]byte, 4096)
	rand.New(rand.NewSource(128)).Read(payload)

	digits := pack128(payload)
	require.Equal(t, len(payload)*8/7+1, len(digits))
	for i, d := range digits {
		require.Less(t, d, byte(128), "digit %d", i)
	}

	// every byte set: 7 ones, then the last bit followed by zero fill
	require.Equal(t, []byte{0x7f, 0x40}, pack128([]byte{0xff}))
	require.Equal(t, []byte{0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x00}, pack128([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))
	require.Equal(t, []byte{0x00}, pack128([]byte{}))
}

func Test_KeepsLineBreaks(t *testing.T) {
	for _, encoder := range All() {
		_, raw := encoder.(*RawEncoder)
		require.Equal(t, raw, KeepsLineBreaks(encoder), Describe(encoder))
		if raw {
			continue
		}

		encoded, err := encoder.Encode(randomPayload(encoder, 4096, 10))
		require.NoError(t, err, Describe(encoder))
		require.NotContains(t, encoded, "\n", Describe(encoder))
		require.NotContains(t, encoded, "\r", Describe(encoder))
	}
}
