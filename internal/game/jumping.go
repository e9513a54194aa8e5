package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Jumping moves a single step by each direction: pawn pushes and captures,
// knights, kings.
type Jumping struct {
	Directions      []Offset
	BlackDirections Optional[[]Offset]
	Capture         bool
	CaptureOnly     bool
	FirstMoveOnly   bool
	// PathClear requires the squares strictly between origin and destination
	// to be empty when they lie on a straight line (a pawn's double step).
	PathClear bool
}

func (j *Jumping) isAttribute() {}

func (j *Jumping) gated(b *Board, piece Piece) bool {
	return j.FirstMoveOnly && !b.IsUnmoved(piece)
}

func (j *Jumping) GenerateMoves(b *Board, piece Piece, moves []MoveData) []MoveData {
	if j.gated(b, piece) {
		return moves
	}

	for _, dir := range forColor(j.Directions, j.BlackDirections, piece.Color) {
		if dir.IsZero() {
			continue
		}
		target := b.Translate(piece.Square, dir)
		if target.IsEmpty() {
			continue
		}
		to := target.Value()

		if j.PathClear && !b.lineIsEmpty(piece.Square, to) {
			continue
		}

		occupant := b.OccupantColor(to)
		if occupant.IsEmpty() {
			if !j.CaptureOnly {
				moves = append(moves, QuietMove(piece, to))
			}
		} else if occupant.Value() != piece.Color && j.Capture {
			moves = append(moves, CaptureMove(piece, to))
		}
	}

	return moves
}

// GenerateAttacks marks every on-board destination when this rule can
// capture, whether or not anything stands there.
func (j *Jumping) GenerateAttacks(b *Board, piece Piece, attacks Bitboard) {
	if !j.Capture || j.gated(b, piece) {
		return
	}

	for _, dir := range forColor(j.Directions, j.BlackDirections, piece.Color) {
		if dir.IsZero() {
			continue
		}
		target := b.Translate(piece.Square, dir)
		if target.IsEmpty() {
			continue
		}
		if j.PathClear && !b.lineIsEmpty(piece.Square, target.Value()) {
			continue
		}
		attacks.Set(b.SquareToIndex(target.Value()))
	}
}

func (j *Jumping) Describe() AttributeInfo {
	return AttributeInfo{
		Name:        "Jumping",
		Description: "Can jump to any square in a given direction and capture enemy pieces (if configured).",
		Example:     "Knight, King, and Pawn (single & double move)",
		Options: []OptionInfo{
			{
				Name:        "directions",
				Description: "The directions the piece can jump in.",
				Type:        OptionOffsetList,
				Example:     "Knight",
			},
			{
				Name:        "black_directions",
				Description: "The directions the piece can jump in when black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "Pawn",
			},
			{
				Name:        "capture",
				Description: "Can capture enemy pieces.",
				Type:        OptionBool,
				Example:     "Knight",
			},
			{
				Name:        "capture_only",
				Description: "Can only capture enemy pieces. Capture must be true.",
				Type:        OptionBool,
				Example:     "Pawn",
			},
			firstMoveOption,
			{
				Name:        "path_clear",
				Description: "The squares between the origin and the destination must be empty.",
				Optional:    true,
				Type:        OptionBool,
				Example:     "Pawn (double move)",
			},
		},
	}
}

func (j *Jumping) SetOption(name string, value OptionValue) {
	switch name {
	case "directions":
		setOffsets(&j.Directions, value)
	case "black_directions":
		setBlackOffsets(&j.BlackDirections, value)
	case "capture":
		setBool(&j.Capture, value)
	case "capture_only":
		setBool(&j.CaptureOnly, value)
	case "first_move_only":
		setBool(&j.FirstMoveOnly, value)
	case "path_clear":
		setBool(&j.PathClear, value)
	}
}

func (j *Jumping) Validate() Error {
	if j.CaptureOnly && !j.Capture {
		return Errorf("capture_only requires capture: %w", ErrInvalidConfig)
	}
	directions := append(cloneOffsets(j.Directions), j.BlackDirections.ValueOr(nil)...)
	for _, dir := range directions {
		if dir.IsZero() {
			return Errorf("jumping direction %v never leaves its square: %w", dir, ErrInvalidConfig)
		}
	}
	return NilError
}

func (j *Jumping) Clone() Attribute {
	result := *j
	result.Directions = cloneOffsets(j.Directions)
	result.BlackDirections = cloneBlackOffsets(j.BlackDirections)
	return &result
}
