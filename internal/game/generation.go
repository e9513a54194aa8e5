package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// GenerateMoves returns the piece's pseudo-moves: every attribute's
// contribution, in attribute order.
func (b *Board) GenerateMoves(piece Piece) []MoveData {
	return b.AppendMoves(piece, nil)
}

// AppendMoves is GenerateMoves into a caller-owned buffer.
func (b *Board) AppendMoves(piece Piece, moves []MoveData) []MoveData {
	info := b.PieceInfo(piece.Type)
	if info.IsEmpty() || !b.ValidSquare(piece.Square) {
		return moves
	}
	for _, attribute := range info.Value().Attributes {
		moves = attribute.GenerateMoves(b, piece, moves)
	}
	return moves
}

// GenerateAttacks is the union of every attribute's threatened squares.
func (b *Board) GenerateAttacks(piece Piece) Bitboard {
	attacks := NewBitboard(b.BitLength())
	b.addAttacks(piece, attacks)
	return attacks
}

func (b *Board) addAttacks(piece Piece, attacks Bitboard) {
	info := b.PieceInfo(piece.Type)
	if info.IsEmpty() || !b.ValidSquare(piece.Square) {
		return
	}
	for _, attribute := range info.Value().Attributes {
		attribute.GenerateAttacks(b, piece, attacks)
	}
}

// Pieces lists the color's pieces by ascending square index.
func (b *Board) Pieces(color Color) []Piece {
	result := []Piece{}
	b.generalLocations[color].EachIndexOfOneCallback(func(index int) {
		piece := b.PieceAt(b.IndexToSquare(index))
		if piece.HasValue() {
			result = append(result, piece.Value())
		}
	})
	return result
}

func (b *Board) GenerateAllMoves(color Color) []MoveData {
	return b.AppendAllMoves(color, nil)
}

func (b *Board) AppendAllMoves(color Color, moves []MoveData) []MoveData {
	for _, piece := range b.Pieces(color) {
		moves = b.AppendMoves(piece, moves)
	}
	return moves
}

// UpdateAttacks recomputes the stored attack map for color.
func (b *Board) UpdateAttacks(color Color) {
	b.attacks[color].ClearAll()
	for _, piece := range b.Pieces(color) {
		b.addAttacks(piece, b.attacks[color])
	}
}

// Attacks returns the map computed by the last UpdateAttacks.
func (b *Board) Attacks(color Color) Bitboard {
	return b.attacks[color].Clone()
}

// IsAttacked reports whether any piece of by threatens sq on the current
// board. The stored attack map is left untouched.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	if !b.ValidSquare(sq) {
		return false
	}
	attacks := NewBitboard(b.BitLength())
	for _, piece := range b.Pieces(by) {
		b.addAttacks(piece, attacks)
	}
	return attacks.Has(b.SquareToIndex(sq))
}
