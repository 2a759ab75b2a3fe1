// Package bits reslices sequences of fixed-width integers into sequences of
// a different width.
//
// Bits are read from each input element most significant first and written
// into output groups most significant first, so regrouping bytes into 15-bit
// groups and back again is lossless:
//
//   input   |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|7 ...
//   output  |14 13 ...                   1 0|14 ...
//
package bits

import "fmt"

// MaxWidth is the widest group the accumulator can hold.
const MaxWidth = 16

// Group is one output element of Regroup. Value holds Width significant
// bits in its low-order positions. Width is smaller than the requested
// output width only for the final group of a sequence.
type Group struct {
	Value uint16
	Width int
}

func (g Group) String() string {
	return fmt.Sprintf("%d/%d", g.Value, g.Width)
}

// Word is the set of element types Regroup accepts as input.
type Word interface {
	~uint8 | ~uint16
}

// Regroup reads inWidth bits from every element of in (lastWidth bits from
// the final one) and returns them packed into groups of outWidth bits. When
// the total number of bits is not a multiple of outWidth, the last group is
// short and carries exactly the remaining bits.
//
// Widths outside [1, MaxWidth] are a programming error and cause a panic.
func Regroup[T Word](in []T, inWidth, outWidth, lastWidth int) []Group {
	checkWidth("input", inWidth)
	checkWidth("output", outWidth)
	checkWidth("last input", lastWidth)

	if len(in) == 0 {
		return []Group{}
	}

	total := inWidth*(len(in)-1) + lastWidth
	out := make([]Group, 0, (total+outWidth-1)/outWidth)

	var acc uint16
	held := 0
	for idx, word := range in {
		width := inWidth
		if idx == len(in)-1 {
			width = lastWidth
		}

		v := uint16(word)
		for i := width - 1; i >= 0; i-- {
			acc = acc<<1 | (v>>uint(i))&1
			held++
			if held == outWidth {
				out = append(out, Group{Value: acc, Width: held})
				acc = 0
				held = 0
			}
		}
	}

	if held != 0 {
		out = append(out, Group{Value: acc, Width: held})
	}

	return out
}

func checkWidth(what string, width int) {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bits: %s width %d out of range [1, %d]", what, width, MaxWidth))
	}
}
