package game

import (
	. "github.com/cricklet/variantboard/internal/helpers"
	"github.com/cricklet/variantboard/internal/zobrist"
)

// PositionHash digests occupancy and the half-move count. Keys are combined
// with XOR so map iteration order never affects the result.
func (b *Board) PositionHash() uint64 {
	return b.occupancyHash() ^ zobrist.KeyForHalfMoves(b.HalfMoves())
}

// LayoutHash digests occupancy and the side to move. Unlike PositionHash it
// repeats when pieces shuffle back and forth.
func (b *Board) LayoutHash() uint64 {
	return b.occupancyHash() ^ zobrist.KeyForTurn(int(b.turn))
}

func (b *Board) occupancyHash() uint64 {
	var hash uint64

	for _, color := range AllColors {
		c := int(color)
		b.generalLocations[color].EachIndexOfOneCallback(func(index int) {
			hash ^= zobrist.KeyForOccupancy(c, index)
		})
		for t, bb := range b.pieceLocations[color] {
			pieceType := int(t)
			bb.EachIndexOfOneCallback(func(index int) {
				hash ^= zobrist.KeyForPieceAtSquare(c, pieceType, index)
			})
		}
	}

	return hash
}
