package game

import (
	"fmt"
	"unicode"

	. "github.com/cricklet/variantboard/internal/helpers"
)

// PieceType indexes a board's piece registry.
type PieceType int

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	Queen
	King
)

// PieceInfo defines a piece type. Its moves are exactly the union of its
// attributes' moves, in declaration order.
type PieceInfo struct {
	ID         PieceType
	Display    string
	Icon       rune
	Value      int
	Attributes []Attribute
}

func (info *PieceInfo) validate() Error {
	if info.Icon == 0 || !unicode.IsLetter(info.Icon) {
		return Errorf("piece %v (%v) icon %q: %w", info.ID, info.Display, info.Icon, ErrInvalidConfig)
	}
	for i, attribute := range info.Attributes {
		if attribute == nil {
			return Errorf("piece %v (%v) attribute %v is nil: %w", info.ID, info.Display, i, ErrInvalidConfig)
		}
		if err := attribute.Validate(); !IsNil(err) {
			return Errorf("piece %v (%v) attribute %v: %w", info.ID, info.Display, attribute.Describe().Name, err)
		}
	}
	return NilError
}

// Piece is a view onto the board: which type of which color stands where.
// It is never stored apart from the board's bitboards.
type Piece struct {
	Color  Color
	Type   PieceType
	Square Square
}

func (p Piece) Info(b *Board) Optional[*PieceInfo] {
	return b.PieceInfo(p.Type)
}

// Icon is upper case for white and lower case for black.
func (p Piece) Icon(b *Board) rune {
	info := p.Info(b)
	if info.IsEmpty() {
		return '?'
	}
	if p.Color == White {
		return unicode.ToUpper(info.Value().Icon)
	}
	return unicode.ToLower(info.Value().Icon)
}

func (p Piece) String() string {
	return fmt.Sprintf("%v:%v@%v", p.Color, p.Type, p.Square)
}

func (t PieceType) String() string {
	return fmt.Sprintf("piece(%d)", int(t))
}
