package game

import (
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
	"github.com/cricklet/variantboard/internal/zobrist"
)

// Board owns all occupancy state for one game. It is not safe for concurrent
// mutation; generation only reads and may run in parallel on one snapshot.
type Board struct {
	width  int
	height int

	pieces     map[PieceType]*PieceInfo
	pieceTypes []PieceType

	pieceLocations   [2]map[PieceType]Bitboard
	generalLocations [2]Bitboard
	firstMoves       [2]Bitboard
	attacks          [2]Bitboard

	moveHistory    []MoveData
	turn           Color
	halfMoveOffset int

	hashes  *zobrist.RepetitionTable
	layouts *zobrist.RepetitionTable
}

func NewBoard(width, height int, pieces []PieceInfo) (*Board, Error) {
	if width <= 0 || height <= 0 {
		return nil, Errorf("board size %vx%v: %w", width, height, ErrInvalidConfig)
	}

	b := &Board{
		width:   width,
		height:  height,
		pieces:  map[PieceType]*PieceInfo{},
		hashes:  zobrist.NewRepetitionTable(),
		layouts: zobrist.NewRepetitionTable(),
	}

	for _, color := range AllColors {
		b.pieceLocations[color] = map[PieceType]Bitboard{}
		b.generalLocations[color] = NewBitboard(b.BitLength())
		b.firstMoves[color] = NewBitboard(b.BitLength())
		b.attacks[color] = NewBitboard(b.BitLength())
	}

	for _, info := range pieces {
		err := b.RegisterPiece(info)
		if !IsNil(err) {
			return nil, err
		}
	}

	return b, NilError
}

// NewStandardBoard is an empty 8x8 board with the default piece set.
func NewStandardBoard() *Board {
	b, err := NewBoard(8, 8, DefaultPieces())
	if !IsNil(err) {
		panic(err)
	}
	return b
}

func (b *Board) RegisterPiece(info PieceInfo) Error {
	if _, ok := b.pieces[info.ID]; ok {
		return Errorf("piece %v registered twice: %w", info.ID, ErrInvalidConfig)
	}
	if existing := b.PieceTypeForIcon(info.Icon); existing.HasValue() {
		return Errorf("piece %v reuses the icon of %v: %w", info.ID, existing.Value(), ErrInvalidConfig)
	}

	err := info.validate()
	if !IsNil(err) {
		return err
	}

	registered := info
	registered.Attributes = MapSlice(info.Attributes, func(a Attribute) Attribute {
		return a.Clone()
	})
	b.pieces[info.ID] = &registered

	for _, color := range AllColors {
		b.pieceLocations[color][info.ID] = NewBitboard(b.BitLength())
	}

	b.pieceTypes = maps.Keys(b.pieces)
	slices.Sort(b.pieceTypes)

	return NilError
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) BitLength() int {
	return b.width * b.height
}

func (b *Board) SquareToIndex(sq Square) int {
	return int(sq.Rank)*b.width + int(sq.File)
}

func (b *Board) IndexToSquare(index int) Square {
	return Square{File: File(index % b.width), Rank: Rank(index / b.width)}
}

func (b *Board) ValidSquare(sq Square) bool {
	return uint(sq.File) < uint(b.width) && uint(sq.Rank) < uint(b.height)
}

// Translate moves sq by off, returning empty when the result leaves the board.
func (b *Board) Translate(sq Square, off Offset) Optional[Square] {
	result := sq.Translate(off)
	if result.IsEmpty() || !b.ValidSquare(result.Value()) {
		return Empty[Square]()
	}
	return result
}

func (b *Board) OccupantColor(sq Square) Optional[Color] {
	if !b.ValidSquare(sq) {
		return Empty[Color]()
	}
	index := b.SquareToIndex(sq)
	for _, color := range AllColors {
		if b.generalLocations[color].Has(index) {
			return Some(color)
		}
	}
	return Empty[Color]()
}

func (b *Board) PieceAt(sq Square) Optional[Piece] {
	color := b.OccupantColor(sq)
	if color.IsEmpty() {
		return Empty[Piece]()
	}

	index := b.SquareToIndex(sq)
	for _, t := range b.pieceTypes {
		if b.pieceLocations[color.Value()][t].Has(index) {
			return Some(Piece{Color: color.Value(), Type: t, Square: sq})
		}
	}
	return Empty[Piece]()
}

func (b *Board) PieceInfo(t PieceType) Optional[*PieceInfo] {
	if info, ok := b.pieces[t]; ok {
		return Some(info)
	}
	return Empty[*PieceInfo]()
}

// PieceTypes lists the registered types in ascending order.
func (b *Board) PieceTypes() []PieceType {
	return slices.Clone(b.pieceTypes)
}

// PieceTypeForIcon matches icons case-insensitively.
func (b *Board) PieceTypeForIcon(icon rune) Optional[PieceType] {
	icon = unicode.ToLower(icon)
	for _, t := range b.pieceTypes {
		if unicode.ToLower(b.pieces[t].Icon) == icon {
			return Some(t)
		}
	}
	return Empty[PieceType]()
}

// IsUnmoved reports whether the piece still stands on a square it has never
// left.
func (b *Board) IsUnmoved(p Piece) bool {
	return b.ValidSquare(p.Square) && b.firstMoves[p.Color].Has(b.SquareToIndex(p.Square))
}

func (b *Board) Occupancy(color Color) Bitboard {
	return b.generalLocations[color].Clone()
}

func (b *Board) PieceOccupancy(color Color, t PieceType) Bitboard {
	if bb, ok := b.pieceLocations[color][t]; ok {
		return bb.Clone()
	}
	return NewBitboard(b.BitLength())
}

func (b *Board) MoveHistory() []MoveData {
	return slices.Clone(b.moveHistory)
}

func (b *Board) Turn() Color {
	return b.turn
}

// SetTurn is advisory; generation and ApplyMove do not enforce it.
func (b *Board) SetTurn(color Color) {
	b.turn = color
}

func (b *Board) HalfMoves() int {
	return b.halfMoveOffset + len(b.moveHistory)
}

// SetHalfMoves seeds the counter for positions loaded mid-game.
func (b *Board) SetHalfMoves(n int) {
	b.halfMoveOffset = n - len(b.moveHistory)
}

func (b *Board) FullMoves() int {
	return b.HalfMoves()/2 + 1
}

// Repetitions is how many times ApplyMove has produced the given hash.
func (b *Board) Repetitions(hash uint64) int {
	return b.hashes.Count(hash)
}

func (b *Board) CurrentRepetitions() int {
	return b.hashes.Count(b.PositionHash())
}

// LayoutRepetitions counts how often ApplyMove has reached the current
// layout with the same side to move, regardless of move count.
func (b *Board) LayoutRepetitions() int {
	return b.layouts.Count(b.LayoutHash())
}

// Clone copies all state. Piece definitions are shared since they are not
// modified during play.
func (b *Board) Clone() *Board {
	result := &Board{
		width:          b.width,
		height:         b.height,
		pieces:         maps.Clone(b.pieces),
		pieceTypes:     slices.Clone(b.pieceTypes),
		moveHistory:    slices.Clone(b.moveHistory),
		turn:           b.turn,
		halfMoveOffset: b.halfMoveOffset,
		hashes:         b.hashes.Clone(),
		layouts:        b.layouts.Clone(),
	}

	for _, color := range AllColors {
		result.pieceLocations[color] = make(map[PieceType]Bitboard, len(b.pieceLocations[color]))
		for t, bb := range b.pieceLocations[color] {
			result.pieceLocations[color][t] = bb.Clone()
		}
		result.generalLocations[color] = b.generalLocations[color].Clone()
		result.firstMoves[color] = b.firstMoves[color].Clone()
		result.attacks[color] = b.attacks[color].Clone()
	}

	return result
}

// String draws the board with the highest rank first, '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := b.height - 1; rank >= 0; rank-- {
		for file := 0; file < b.width; file++ {
			piece := b.PieceAt(Square{File: File(file), Rank: Rank(rank)})
			if piece.HasValue() {
				sb.WriteRune(piece.Value().Icon(b))
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (b *Board) lineIsEmpty(from, to Square) bool {
	for _, sq := range Line(from, to) {
		if b.OccupantColor(sq).HasValue() {
			return false
		}
	}
	return true
}
