package game

import (
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceTypeForChess = map[chess.PieceType]PieceType{
	chess.Pawn:   Pawn,
	chess.Bishop: Bishop,
	chess.Knight: Knight,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

func sq(s string) Square {
	return SquareFromStringOrPanic(s)
}

func place(t *testing.T, b *Board, color Color, pieceType PieceType, square string) Piece {
	t.Helper()
	piece := Piece{Color: color, Type: pieceType, Square: sq(square)}
	err := b.Insert(piece)
	require.True(t, IsNil(err), err.String())
	return piece
}

// moveStrings sorts so comparisons ignore attribute order.
func moveStrings(moves []MoveData) []string {
	result := MapSlice(moves, func(m MoveData) string {
		return m.String()
	})
	sort.Strings(result)
	return result
}

func attackedSquares(b *Board, attacks bitboards.Bitboard) []string {
	result := MapSlice(attacks.EachIndexOfOne(), func(i int) string {
		return b.IndexToSquare(i).String()
	})
	sort.Strings(result)
	return result
}

func assertConsistent(t *testing.T, b *Board) {
	t.Helper()
	for _, color := range AllColors {
		union := b.PieceOccupancy(color, b.PieceTypes()[0])
		for _, pieceType := range b.PieceTypes()[1:] {
			union.InPlaceUnion(b.PieceOccupancy(color, pieceType))
		}
		assert.True(t, union.Equal(b.Occupancy(color)), "%v general map differs from per-type union\n%v", color, b)
	}
	assert.False(t, b.Occupancy(White).Intersects(b.Occupancy(Black)), "colors overlap\n%v", b)
}

// boardFromFEN seeds a standard board. Pawns on their home rank and kings
// and rooks that keep castling rights are inserted as unmoved.
func boardFromFEN(t *testing.T, fen string) *Board {
	t.Helper()

	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	position := chess.NewGame(opt).Position()
	rights := position.CastleRights()

	b := NewStandardBoard()
	inserted := 0
	for square, p := range position.Board().SquareMap() {
		if p == chess.NoPiece {
			continue
		}

		color := White
		homeRank, backRank := chess.Rank2, chess.Rank1
		if p.Color() == chess.Black {
			color = Black
			homeRank, backRank = chess.Rank7, chess.Rank8
		}

		unmoved := true
		switch p.Type() {
		case chess.Pawn:
			unmoved = square.Rank() == homeRank
		case chess.King:
			unmoved = square.Rank() == backRank && square.File() == chess.FileE &&
				(rights.CanCastle(p.Color(), chess.KingSide) || rights.CanCastle(p.Color(), chess.QueenSide))
		case chess.Rook:
			unmoved = square.Rank() == backRank &&
				((square.File() == chess.FileH && rights.CanCastle(p.Color(), chess.KingSide)) ||
					(square.File() == chess.FileA && rights.CanCastle(p.Color(), chess.QueenSide)))
		}

		piece := Piece{
			Color:  color,
			Type:   pieceTypeForChess[p.Type()],
			Square: Square{File: File(square.File()), Rank: Rank(square.Rank())},
		}

		var insertErr Error
		if unmoved {
			insertErr = b.Insert(piece)
		} else {
			insertErr = b.InsertMoved(piece)
		}
		require.True(t, IsNil(insertErr), insertErr.String())
		inserted++
	}

	if position.Turn() == chess.Black {
		b.SetTurn(Black)
	}

	require.Equal(t, inserted, b.Occupancy(White).OnesCount()+b.Occupancy(Black).OnesCount(),
		spew.Sdump(position.Board().SquareMap()))

	return b
}
