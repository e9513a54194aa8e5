package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cricklet/variantboard/internal/helpers"
)

func TestApplyQuietMove(t *testing.T) {
	b := NewStandardBoard()
	knight := place(t, b, White, Knight, "b1")

	move := QuietMove(knight, sq("c3"))
	require.True(t, IsNil(b.ApplyMove(move)))

	assert.True(t, b.PieceAt(sq("b1")).IsEmpty())
	assert.Equal(t, Piece{Color: White, Type: Knight, Square: sq("c3")}, b.PieceAt(sq("c3")).Value())
	assert.Equal(t, []MoveData{move}, b.MoveHistory())
	assert.False(t, b.IsUnmoved(b.PieceAt(sq("c3")).Value()))
	assertConsistent(t, b)
}

func TestApplyCapture(t *testing.T) {
	b := NewStandardBoard()
	rook := place(t, b, White, Rook, "a1")
	place(t, b, Black, Bishop, "a7")

	require.True(t, IsNil(b.ApplyMove(CaptureMove(rook, sq("a7")))))

	assert.Equal(t, Rook, b.PieceAt(sq("a7")).Value().Type)
	assert.True(t, b.Occupancy(Black).IsEmpty())
	assert.True(t, b.PieceOccupancy(Black, Bishop).IsEmpty())
	assertConsistent(t, b)
}

func TestInverseMoveRestoresOccupancy(t *testing.T) {
	b := boardFromFEN(t, "r3k2r/8/8/3q4/8/2N5/8/R3K2R w KQkq - 0 1")
	white, black := b.Occupancy(White), b.Occupancy(Black)

	for _, piece := range append(b.Pieces(White), b.Pieces(Black)...) {
		if piece.Type == Pawn || piece.Type == King {
			continue
		}
		for _, move := range b.GenerateMoves(piece) {
			if move.IsCapture() {
				continue
			}
			clone := b.Clone()
			require.True(t, IsNil(clone.ApplyMove(move)), move.String())

			moved := clone.PieceAt(move.To).Value()
			require.True(t, IsNil(clone.ApplyMove(QuietMove(moved, move.From()))), move.String())

			assert.True(t, white.Equal(clone.Occupancy(White)), move.String())
			assert.True(t, black.Equal(clone.Occupancy(Black)), move.String())
			assertConsistent(t, clone)
		}
	}
}

func TestInvalidMovesLeaveBoardUnchanged(t *testing.T) {
	b := NewStandardBoard()
	rook := place(t, b, White, Rook, "a1")
	place(t, b, White, Pawn, "a2")
	place(t, b, Black, Pawn, "b1")

	hash := b.PositionHash()
	before := b.String()

	cases := []struct {
		move MoveData
		err  error
	}{
		{QuietMove(Piece{Color: White, Type: Rook, Square: sq("c1")}, sq("c2")), ErrInvalidMove},
		{QuietMove(Piece{Color: Black, Type: Rook, Square: sq("a1")}, sq("a3")), ErrInvalidMove},
		{QuietMove(rook, Square{File: 0, Rank: 8}), ErrInvalidSquare},
		{QuietMove(rook, sq("a2")), ErrSquareOccupied},
		{QuietMove(rook, sq("b1")), ErrSquareOccupied},
		{CaptureMove(rook, sq("a2")), ErrInvalidMove},
		{CaptureMove(rook, sq("c1")), ErrInvalidMove},
		{MoveData{Piece: rook, To: sq("c1"), Castle: Some(MakePair(sq("h1"), sq("d1")))}, ErrInvalidMove},
	}

	for _, c := range cases {
		err := b.ApplyMove(c.move)
		assert.True(t, errors.Is(err, c.err), "%v: %v", c.move.DebugString(), err)
	}

	assert.Equal(t, before, b.String())
	assert.Equal(t, hash, b.PositionHash())
	assert.Empty(t, b.MoveHistory())
	assert.True(t, b.IsUnmoved(rook))
	assertConsistent(t, b)
}

func TestPositionHashIgnoresMoveOrder(t *testing.T) {
	a := boardFromFEN(t, startFEN)
	b := boardFromFEN(t, startFEN)
	assert.Equal(t, a.PositionHash(), b.PositionHash())

	for _, m := range []string{"g1f3", "b1c3"} {
		require.True(t, IsNil(a.ApplyMove(QuietMove(a.PieceAt(sq(m[:2])).Value(), sq(m[2:])))))
	}
	for _, m := range []string{"b1c3", "g1f3"} {
		require.True(t, IsNil(b.ApplyMove(QuietMove(b.PieceAt(sq(m[:2])).Value(), sq(m[2:])))))
	}
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.PositionHash(), b.PositionHash())

	c := boardFromFEN(t, startFEN)
	require.True(t, IsNil(c.ApplyMove(QuietMove(c.PieceAt(sq("g1")).Value(), sq("f3")))))
	assert.NotEqual(t, a.PositionHash(), c.PositionHash())

	// Same occupancy, different move count.
	d := boardFromFEN(t, startFEN)
	d.SetHalfMoves(7)
	assert.NotEqual(t, boardFromFEN(t, startFEN).PositionHash(), d.PositionHash())
}

func TestPositionHashDistinguishesPieceTypes(t *testing.T) {
	a := NewStandardBoard()
	place(t, a, White, Rook, "a1")
	b := NewStandardBoard()
	place(t, b, White, Queen, "a1")

	assert.NotEqual(t, a.PositionHash(), b.PositionHash())
}

func TestRepetitions(t *testing.T) {
	b := NewStandardBoard()
	place(t, b, White, King, "e1")
	place(t, b, Black, King, "e8")

	shuffle := []string{"e1e2", "e8e7", "e2e1", "e7e8"}

	seen := map[uint64]bool{}
	for _, m := range shuffle {
		require.True(t, IsNil(b.ApplyMove(QuietMove(b.PieceAt(sq(m[:2])).Value(), sq(m[2:])))))
		assert.Equal(t, 1, b.CurrentRepetitions())
		seen[b.PositionHash()] = true
	}

	// The half-move count is part of the hash, so revisiting a layout is a
	// new position.
	assert.Len(t, seen, 4)
	assert.Equal(t, 0, b.Repetitions(12345))

	assert.Equal(t, 1, b.LayoutRepetitions())
	for _, m := range shuffle {
		require.True(t, IsNil(b.ApplyMove(QuietMove(b.PieceAt(sq(m[:2])).Value(), sq(m[2:])))))
	}
	assert.Equal(t, 2, b.LayoutRepetitions())
	assert.Equal(t, 1, b.CurrentRepetitions())
}

func TestRepetitionCountIncrements(t *testing.T) {
	a := NewStandardBoard()
	knight := place(t, a, White, Knight, "b1")
	clone := a.Clone()

	require.True(t, IsNil(a.ApplyMove(QuietMove(knight, sq("c3")))))
	hash := a.PositionHash()
	assert.Equal(t, 1, a.Repetitions(hash))

	require.True(t, IsNil(clone.ApplyMove(QuietMove(knight, sq("c3")))))
	assert.Equal(t, hash, clone.PositionHash())
	assert.Equal(t, 1, clone.Repetitions(hash))
	assert.Equal(t, 0, clone.Repetitions(hash^1))
}
