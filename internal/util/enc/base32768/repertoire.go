package base32768

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

const (
	// PointBits is the number of payload bits carried by one complete character.
	PointBits = 15

	maxBMP = 0xFFFF
)

// Repertoire maps the values of one tier to code points and back. Values
// are assigned in the order the block start characters are listed: block i
// covers values [i*blockSize, (i+1)*blockSize).
type Repertoire struct {
	tier    int
	forward []uint16
	reverse map[uint16]uint16
}

// NewRepertoire builds the forward and reverse tables for one tier. It panics
// if a block start character is outside the Basic Multilingual Plane, if a
// block runs past U+FFFF or if two blocks overlap: the block lists are
// static data and a failure here means the build is broken.
func NewRepertoire(tier int, blockStarts string, blockSize int) *Repertoire {
	if blockSize < 1 {
		panic(fmt.Sprintf("base32768: invalid block size %d", blockSize))
	}

	blocks := utf8.RuneCountInString(blockStarts)
	r := &Repertoire{
		tier:    tier,
		forward: make([]uint16, 0, blocks*blockSize),
		reverse: make(map[uint16]uint16, blocks*blockSize),
	}

	for _, c := range blockStarts {
		if c == utf8.RuneError || c > maxBMP || (c >= 0xD800 && c <= 0xDFFF) {
			panic(fmt.Sprintf("base32768: block start %U of tier %d is not a single UTF-16 code unit", c, tier))
		}
		if int(c)+blockSize-1 > maxBMP {
			panic(fmt.Sprintf("base32768: block starting at %U of tier %d runs past the BMP", c, tier))
		}

		for offset := 0; offset < blockSize; offset++ {
			cp := uint16(int(c) + offset)
			value := uint16(len(r.forward))
			if _, dup := r.reverse[cp]; dup {
				panic(fmt.Sprintf("base32768: code point %U assigned twice in tier %d", cp, tier))
			}
			r.forward = append(r.forward, cp)
			r.reverse[cp] = value
		}
	}

	return r
}

// Tier returns the tier number of this repertoire.
func (r *Repertoire) Tier() int {
	return r.tier
}

// Len returns the number of values this repertoire can encode.
func (r *Repertoire) Len() int {
	return len(r.forward)
}

// Encode returns the code point assigned to value.
func (r *Repertoire) Encode(value uint16) (uint16, bool) {
	if int(value) >= len(r.forward) {
		return 0, false
	}
	return r.forward[value], true
}

// Decode returns the value assigned to the code point cp.
func (r *Repertoire) Decode(cp uint16) (uint16, bool) {
	value, ok := r.reverse[cp]
	return value, ok
}

// CodePoints returns every code point of the repertoire in value order.
func (r *Repertoire) CodePoints() []uint16 {
	res := make([]uint16, len(r.forward))
	copy(res, r.forward)
	return res
}

// ValueBits is the number of meaningful bits a character of this tier carries.
func (r *Repertoire) ValueBits() int {
	return PointBits - 8*r.tier
}

// -------------------------------------------------------

// Tables holds the repertoires of every tier. Once built it is never
// modified, so a single Tables value can be shared by any number of
// goroutines.
type Tables struct {
	repertoires []*Repertoire
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// Default returns the standard Base32768 tables, building them on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = NewTables(BlockSize, BlockStart0, BlockStart1)
	})
	return defaultTables
}

// NewTables builds tier i from blockStarts[i]. Tier t must cover exactly
// 2^(15-8t) values and no code point may belong to more than one tier;
// NewTables panics otherwise.
func NewTables(blockSize int, blockStarts ...string) *Tables {
	if len(blockStarts) == 0 {
		panic("base32768: no repertoires given")
	}

	t := &Tables{
		repertoires: make([]*Repertoire, 0, len(blockStarts)),
	}
	owner := make(map[uint16]int)
	for tier, starts := range blockStarts {
		r := NewRepertoire(tier, starts, blockSize)
		if r.ValueBits() < 1 {
			panic(fmt.Sprintf("base32768: tier %d leaves no payload bits", tier))
		}
		if want := 1 << uint(r.ValueBits()); r.Len() != want {
			panic(fmt.Sprintf("base32768: tier %d has %d values, want %d", tier, r.Len(), want))
		}
		for _, cp := range r.forward {
			if other, ok := owner[cp]; ok {
				panic(fmt.Sprintf("base32768: code point %U is in tier %d and tier %d", cp, other, tier))
			}
			owner[cp] = tier
		}
		t.repertoires = append(t.repertoires, r)
	}

	return t
}

// Tiers returns the number of tiers.
func (t *Tables) Tiers() int {
	return len(t.repertoires)
}

// Repertoire returns the repertoire of the given tier, or nil if there is none.
func (t *Tables) Repertoire(tier int) *Repertoire {
	if tier < 0 || tier >= len(t.repertoires) {
		return nil
	}
	return t.repertoires[tier]
}

// lookup finds the tier owning cp and the value it stands for.
func (t *Tables) lookup(cp uint16) (tier int, value uint16, ok bool) {
	for _, r := range t.repertoires {
		if v, found := r.reverse[cp]; found {
			return r.tier, v, true
		}
	}
	return 0, 0, false
}
