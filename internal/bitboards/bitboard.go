package bitboards

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Bitboard holds one bit per square of a board of any size. Index i is the
// square at (i % width, i / width). Copies share storage; use Clone for an
// independent bitboard.
type Bitboard struct {
	bits *bitset.BitSet
}

func NewBitboard(length int) Bitboard {
	return Bitboard{bitset.New(uint(length))}
}

func BitboardWithAllIndicesSet(length int, indices []int) Bitboard {
	b := NewBitboard(length)
	for _, index := range indices {
		b.Set(index)
	}
	return b
}

func (b Bitboard) Len() int {
	if b.bits == nil {
		return 0
	}
	return int(b.bits.Len())
}

func (b Bitboard) inRange(index int) bool {
	return index >= 0 && index < b.Len()
}

func (b Bitboard) Has(index int) bool {
	return b.inRange(index) && b.bits.Test(uint(index))
}

// Set ignores indices outside the bitboard rather than growing it.
func (b Bitboard) Set(index int) {
	if b.inRange(index) {
		b.bits.Set(uint(index))
	}
}

func (b Bitboard) Clear(index int) {
	if b.inRange(index) {
		b.bits.Clear(uint(index))
	}
}

func (b Bitboard) ClearAll() {
	if b.bits != nil {
		b.bits.ClearAll()
	}
}

func (b Bitboard) Clone() Bitboard {
	if b.bits == nil {
		return Bitboard{}
	}
	return Bitboard{b.bits.Clone()}
}

func (b Bitboard) Union(other Bitboard) Bitboard {
	result := b.Clone()
	result.InPlaceUnion(other)
	return result
}

func (b Bitboard) InPlaceUnion(other Bitboard) {
	if b.bits == nil || other.bits == nil {
		return
	}
	b.bits.InPlaceUnion(other.bits)
}

func (b Bitboard) Intersects(other Bitboard) bool {
	if b.bits == nil || other.bits == nil {
		return false
	}
	return b.bits.IntersectionCardinality(other.bits) > 0
}

func (b Bitboard) Equal(other Bitboard) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b.bits == nil {
		return true
	}
	return b.bits.Equal(other.bits)
}

func (b Bitboard) OnesCount() int {
	if b.bits == nil {
		return 0
	}
	return int(b.bits.Count())
}

func (b Bitboard) IsEmpty() bool {
	return b.bits == nil || b.bits.None()
}

func (b Bitboard) EachIndexOfOneCallback(callback func(int)) {
	if b.bits == nil {
		return
	}
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		callback(int(i))
	}
}

func (b Bitboard) EachIndexOfOne() []int {
	result := make([]int, 0, b.OnesCount())
	b.EachIndexOfOneCallback(func(i int) {
		result = append(result, i)
	})
	return result
}

// StringForWidth renders rows of '0'/'1' with the highest rank first, so the
// output reads like a board diagram.
func (b Bitboard) StringForWidth(width int) string {
	if width <= 0 || b.Len() == 0 {
		return ""
	}
	height := b.Len() / width

	ranks := make([]string, height)
	for rank := 0; rank < height; rank++ {
		row := strings.Builder{}
		for file := 0; file < width; file++ {
			if b.Has(rank*width + file) {
				row.WriteByte('1')
			} else {
				row.WriteByte('0')
			}
		}
		ranks[height-1-rank] = row.String()
	}

	return strings.Join(ranks, "\n")
}

// BitboardFromStrings is the inverse of StringForWidth.
func BitboardFromStrings(rows []string) Bitboard {
	if len(rows) == 0 {
		return Bitboard{}
	}
	width := len(rows[0])
	b := NewBitboard(width * len(rows))
	for inverseRank, line := range rows {
		rank := len(rows) - 1 - inverseRank
		for file, c := range line {
			if c == '1' {
				b.Set(rank*width + file)
			}
		}
	}
	return b
}
