package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Castle moves an unmoved piece together with an unmoved companion. Entry i
// of each list describes one castling option; all offsets are relative to
// the castling piece.
type Castle struct {
	Destinations         []Offset
	BlackDestinations    Optional[[]Offset]
	Rook                 []Offset
	BlackRook            Optional[[]Offset]
	RookDestination      []Offset
	BlackRookDestination Optional[[]Offset]
}

func (c *Castle) isAttribute() {}

func (c *Castle) GenerateMoves(b *Board, piece Piece, moves []MoveData) []MoveData {
	if !b.IsUnmoved(piece) {
		return moves
	}

	destinations := forColor(c.Destinations, c.BlackDestinations, piece.Color)
	rooks := forColor(c.Rook, c.BlackRook, piece.Color)
	rookDestinations := forColor(c.RookDestination, c.BlackRookDestination, piece.Color)

	n := MinInt(len(destinations), MinInt(len(rooks), len(rookDestinations)))
	for i := 0; i < n; i++ {
		to := b.Translate(piece.Square, destinations[i])
		rookFrom := b.Translate(piece.Square, rooks[i])
		rookTo := b.Translate(piece.Square, rookDestinations[i])
		if to.IsEmpty() || rookFrom.IsEmpty() || rookTo.IsEmpty() {
			continue
		}

		companion := b.PieceAt(rookFrom.Value())
		if companion.IsEmpty() || companion.Value().Color != piece.Color || !b.IsUnmoved(companion.Value()) {
			continue
		}

		if !b.castlePathClear(piece.Square, to.Value(), rookFrom.Value(), rookTo.Value()) {
			continue
		}

		moves = append(moves, MoveData{
			Piece:  piece,
			To:     to.Value(),
			Castle: Some(MakePair(rookFrom.Value(), rookTo.Value())),
		})
	}

	return moves
}

// castlePathClear requires both paths, destinations included, to be empty
// apart from the two castling pieces themselves.
func (b *Board) castlePathClear(from, to, rookFrom, rookTo Square) bool {
	path := append(Line(from, to), to)
	path = append(path, Line(rookFrom, rookTo)...)
	path = append(path, rookTo)

	for _, sq := range path {
		if sq == from || sq == rookFrom {
			continue
		}
		if b.OccupantColor(sq).HasValue() {
			return false
		}
	}
	return true
}

// GenerateAttacks is empty: castling never captures.
func (c *Castle) GenerateAttacks(b *Board, piece Piece, attacks Bitboard) {
}

func (c *Castle) Describe() AttributeInfo {
	return AttributeInfo{
		Name:        "Castle",
		Description: "Can castle with a companion piece. Neither piece may have moved and the squares between must be empty.",
		Example:     "King",
		Options: []OptionInfo{
			{
				Name:        "destinations",
				Description: "Where this piece lands for each castling option.",
				Type:        OptionOffsetList,
				Example:     "King",
			},
			{
				Name:        "black_destinations",
				Description: "The destinations to use when black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "King",
			},
			{
				Name:        "rook",
				Description: "Where the companion piece stands for each castling option.",
				Type:        OptionOffsetList,
				Example:     "King",
			},
			{
				Name:        "black_rook",
				Description: "The companion locations to use when black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "King",
			},
			{
				Name:        "rook_destination",
				Description: "Where the companion piece lands for each castling option.",
				Type:        OptionOffsetList,
				Example:     "King",
			},
			{
				Name:        "black_rook_destination",
				Description: "The companion destinations to use when black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "King",
			},
		},
	}
}

func (c *Castle) SetOption(name string, value OptionValue) {
	switch name {
	case "destinations":
		setOffsets(&c.Destinations, value)
	case "black_destinations":
		setBlackOffsets(&c.BlackDestinations, value)
	case "rook":
		setOffsets(&c.Rook, value)
	case "black_rook":
		setBlackOffsets(&c.BlackRook, value)
	case "rook_destination":
		setOffsets(&c.RookDestination, value)
	case "black_rook_destination":
		setBlackOffsets(&c.BlackRookDestination, value)
	}
}

func (c *Castle) Validate() Error {
	for _, color := range AllColors {
		destinations := forColor(c.Destinations, c.BlackDestinations, color)
		rooks := forColor(c.Rook, c.BlackRook, color)
		rookDestinations := forColor(c.RookDestination, c.BlackRookDestination, color)

		if len(destinations) != len(rooks) || len(rooks) != len(rookDestinations) {
			return Errorf("castle lists for %v have lengths %v, %v, %v: %w",
				color, len(destinations), len(rooks), len(rookDestinations), ErrInvalidConfig)
		}

		for i := range destinations {
			if destinations[i].IsZero() || rooks[i].IsZero() {
				return Errorf("castle option %v for %v uses the castling piece's own square: %w", i, color, ErrInvalidConfig)
			}
		}
	}
	return NilError
}

func (c *Castle) Clone() Attribute {
	return &Castle{
		Destinations:         cloneOffsets(c.Destinations),
		BlackDestinations:    cloneBlackOffsets(c.BlackDestinations),
		Rook:                 cloneOffsets(c.Rook),
		BlackRook:            cloneBlackOffsets(c.BlackRook),
		RookDestination:      cloneOffsets(c.RookDestination),
		BlackRookDestination: cloneBlackOffsets(c.BlackRookDestination),
	}
}
