package fen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
)

func TestDefaultFen(t *testing.T) {
	b, err := BoardFromFenString(DefaultFen, DefaultPieces())
	require.True(t, IsNil(err), err.String())

	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 8, b.Height())
	assert.Equal(t, DefaultFen, FenStringForGame(b))
	assert.Equal(t, Piece{Color: White, Type: King, Square: SquareFromStringOrPanic("e1")},
		b.PieceAt(SquareFromStringOrPanic("e1")).Value())
	assert.Equal(t, Black, b.PieceAt(SquareFromStringOrPanic("d8")).Value().Color)
	assert.True(t, b.IsUnmoved(b.PieceAt(SquareFromStringOrPanic("a2")).Value()))
	assert.Len(t, b.GenerateAllMoves(White), 20)
}

func TestRoundTrip(t *testing.T) {
	fens := []string{
		"r3k2r/pppqbppp/2np1n2/4p3/4P3/2NP1N2/PPPQBPPP/R3K2R b 13",
		"8/8/8/8/8/8/8/8 w 0",
		"k11/12/11K w 4",
		"rnbqkbnr2/pppppppp2/10/10/PPPPPPPP2/RNBQKBNR2 w 0",
	}
	for _, s := range fens {
		b, err := BoardFromFenString(s, DefaultPieces())
		require.True(t, IsNil(err), err.String())
		assert.Equal(t, s, FenStringForGame(b))
	}
}

func TestWideRows(t *testing.T) {
	width, height, err := Dimensions("k11/12/11K")
	require.True(t, IsNil(err))
	assert.Equal(t, 12, width)
	assert.Equal(t, 3, height)

	b, err := BoardFromFenString("k11/12/11K b", DefaultPieces())
	require.True(t, IsNil(err))
	assert.Equal(t, King, b.PieceAt(Square{File: 11, Rank: 0}).Value().Type)
	assert.Equal(t, Black, b.PieceAt(Square{File: 0, Rank: 2}).Value().Color)
	assert.Equal(t, Black, b.Turn())
}

func TestInvalidFens(t *testing.T) {
	for _, s := range []string{
		"",
		"8/8/8/8/8/8/8/8 w 0 extra",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/8 w -3",
	} {
		_, err := BoardFromFenString(s, DefaultPieces())
		assert.False(t, IsNil(err), s)
	}

	b := NewStandardBoard()
	err := LoadFen(b, "8/8/8")
	assert.False(t, IsNil(err))

	b = NewStandardBoard()
	require.True(t, IsNil(b.Insert(Piece{Color: White, Type: Rook, Square: SquareFromStringOrPanic("a1")})))
	err = LoadFen(b, DefaultFen)
	assert.True(t, errors.Is(err, ErrSquareOccupied), err.Error())
}

func TestCustomIcons(t *testing.T) {
	pieces := append(DefaultPieces(), PieceInfo{
		ID: 6, Display: "Amazon", Icon: 'a', Value: 12,
		Attributes: []Attribute{
			&Sliding{Directions: []Offset{{File: 0, Rank: 1}, {File: 1, Rank: 0}, {File: 0, Rank: -1}, {File: -1, Rank: 0}, {File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: -1}, {File: -1, Rank: 1}}, Capture: true},
			&Jumping{Directions: []Offset{{File: 1, Rank: 2}, {File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: 1, Rank: -2}, {File: -1, Rank: -2}, {File: -2, Rank: -1}, {File: -2, Rank: 1}, {File: -1, Rank: 2}}, Capture: true},
		},
	})

	b, err := BoardFromFenString("3a/4/4/A3 w", pieces)
	require.True(t, IsNil(err), err.String())

	amazon := b.PieceAt(SquareFromStringOrPanic("a1")).Value()
	assert.Equal(t, PieceType(6), amazon.Type)
	assert.Equal(t, "3a/4/4/A3", FenStringForBoard(b))

	// Three rays of three squares plus b3 and c2, capturing on d4.
	assert.Len(t, b.GenerateMoves(amazon), 11)
}
