package game

import (
	. "github.com/cricklet/variantboard/internal/helpers"
)

var (
	knightDirections = []Offset{
		{File: 1, Rank: 2}, {File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: 1, Rank: -2},
		{File: -1, Rank: -2}, {File: -2, Rank: -1}, {File: -2, Rank: 1}, {File: -1, Rank: 2},
	}
	diagonalDirections = []Offset{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: -1}, {File: -1, Rank: 1}}
	straightDirections = []Offset{{File: 0, Rank: 1}, {File: 1, Rank: 0}, {File: 0, Rank: -1}, {File: -1, Rank: 0}}
)

func allDirections() []Offset {
	return append(cloneOffsets(straightDirections), diagonalDirections...)
}

func negated(offsets ...Offset) []Offset {
	return MapSlice(offsets, func(o Offset) Offset {
		return Offset{File: -o.File, Rank: -o.Rank}
	})
}

// DefaultPieces is the standard chess set. White moves toward higher ranks.
func DefaultPieces() []PieceInfo {
	return []PieceInfo{
		{
			ID: Pawn, Display: "Pawn", Icon: 'p', Value: 1,
			Attributes: []Attribute{
				&Jumping{
					Directions:      []Offset{{File: 0, Rank: 1}},
					BlackDirections: Some(negated(Offset{File: 0, Rank: 1})),
				},
				&Jumping{
					Directions:      []Offset{{File: 0, Rank: 2}},
					BlackDirections: Some(negated(Offset{File: 0, Rank: 2})),
					FirstMoveOnly:   true,
					PathClear:       true,
				},
				&Jumping{
					Directions:      []Offset{{File: 1, Rank: 1}, {File: -1, Rank: 1}},
					BlackDirections: Some(negated(Offset{File: 1, Rank: 1}, Offset{File: -1, Rank: 1})),
					Capture:         true,
					CaptureOnly:     true,
				},
				&EnPassant{
					Offsets:            []Offset{{File: 1, Rank: 0}, {File: -1, Rank: 0}},
					CaptureOffset:      Offset{File: 0, Rank: 1},
					BlackCaptureOffset: Some(Offset{File: 0, Rank: -1}),
					Piece:              Pawn,
				},
			},
		},
		{
			ID: Bishop, Display: "Bishop", Icon: 'b', Value: 3,
			Attributes: []Attribute{
				&Sliding{Directions: cloneOffsets(diagonalDirections), Capture: true},
			},
		},
		{
			ID: Knight, Display: "Knight", Icon: 'n', Value: 3,
			Attributes: []Attribute{
				&Jumping{Directions: cloneOffsets(knightDirections), Capture: true},
			},
		},
		{
			ID: Rook, Display: "Rook", Icon: 'r', Value: 5,
			Attributes: []Attribute{
				&Sliding{Directions: cloneOffsets(straightDirections), Capture: true},
			},
		},
		{
			ID: Queen, Display: "Queen", Icon: 'q', Value: 9,
			Attributes: []Attribute{
				&Sliding{Directions: allDirections(), Capture: true},
			},
		},
		{
			ID: King, Display: "King", Icon: 'k', Value: 0,
			Attributes: []Attribute{
				&Jumping{Directions: allDirections(), Capture: true},
				&Castle{
					Destinations:    []Offset{{File: 2, Rank: 0}, {File: -2, Rank: 0}},
					Rook:            []Offset{{File: 3, Rank: 0}, {File: -4, Rank: 0}},
					RookDestination: []Offset{{File: 1, Rank: 0}, {File: -1, Rank: 0}},
				},
			},
		},
	}
}
