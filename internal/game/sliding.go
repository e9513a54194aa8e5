package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Sliding repeats a direction until blocked: bishops, rooks, queens.
type Sliding struct {
	Directions      []Offset
	BlackDirections Optional[[]Offset]
	Capture         bool
	FirstMoveOnly   bool
}

func (s *Sliding) isAttribute() {}

func (s *Sliding) gated(b *Board, piece Piece) bool {
	return s.FirstMoveOnly && !b.IsUnmoved(piece)
}

func (s *Sliding) GenerateMoves(b *Board, piece Piece, moves []MoveData) []MoveData {
	if s.gated(b, piece) {
		return moves
	}

	for _, dir := range forColor(s.Directions, s.BlackDirections, piece.Color) {
		if dir.IsZero() {
			continue
		}
		for target := b.Translate(piece.Square, dir); target.HasValue(); target = b.Translate(target.Value(), dir) {
			to := target.Value()

			occupant := b.OccupantColor(to)
			if occupant.IsEmpty() {
				moves = append(moves, QuietMove(piece, to))
				continue
			}

			if occupant.Value() != piece.Color && s.Capture {
				moves = append(moves, CaptureMove(piece, to))
			}
			break
		}
	}

	return moves
}

// GenerateAttacks marks the empty squares of each ray and the first enemy
// blocker. Friendly blockers are not attacked.
func (s *Sliding) GenerateAttacks(b *Board, piece Piece, attacks Bitboard) {
	if !s.Capture || s.gated(b, piece) {
		return
	}

	for _, dir := range forColor(s.Directions, s.BlackDirections, piece.Color) {
		if dir.IsZero() {
			continue
		}
		for target := b.Translate(piece.Square, dir); target.HasValue(); target = b.Translate(target.Value(), dir) {
			to := target.Value()

			occupant := b.OccupantColor(to)
			if occupant.IsEmpty() {
				attacks.Set(b.SquareToIndex(to))
				continue
			}

			if occupant.Value() != piece.Color {
				attacks.Set(b.SquareToIndex(to))
			}
			break
		}
	}
}

func (s *Sliding) Describe() AttributeInfo {
	return AttributeInfo{
		Name:        "Sliding",
		Description: "Can move infinitely in a given direction as long as it is not occupied.",
		Example:     "Bishop, rook, queen",
		Options: []OptionInfo{
			{
				Name:        "directions",
				Description: "The directions the piece can move in.",
				Type:        OptionOffsetList,
				Example:     "Bishop, rook, queen",
			},
			{
				Name:        "black_directions",
				Description: "The directions the piece can move in when it is black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "Bishop, rook, queen",
			},
			{
				Name:        "capture",
				Description: "Can capture enemy pieces at the end of the slide.",
				Type:        OptionBool,
				Example:     "Bishop, rook, and queen",
			},
			firstMoveOption,
		},
	}
}

func (s *Sliding) SetOption(name string, value OptionValue) {
	switch name {
	case "directions":
		setOffsets(&s.Directions, value)
	case "black_directions":
		setBlackOffsets(&s.BlackDirections, value)
	case "capture":
		setBool(&s.Capture, value)
	case "first_move_only":
		setBool(&s.FirstMoveOnly, value)
	}
}

func (s *Sliding) Validate() Error {
	directions := append(cloneOffsets(s.Directions), s.BlackDirections.ValueOr(nil)...)
	for _, dir := range directions {
		if dir.IsZero() {
			return Errorf("sliding direction %v never leaves its square: %w", dir, ErrInvalidConfig)
		}
	}
	return NilError
}

func (s *Sliding) Clone() Attribute {
	result := *s
	result.Directions = cloneOffsets(s.Directions)
	result.BlackDirections = cloneBlackOffsets(s.BlackDirections)
	return &result
}
