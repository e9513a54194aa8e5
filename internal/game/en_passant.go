package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// EnPassant captures a piece standing beside the mover (Offsets) by landing
// behind it (CaptureOffset, relative to the captured piece).
type EnPassant struct {
	Offsets            []Offset
	BlackOffsets       Optional[[]Offset]
	CaptureOffset      Offset
	BlackCaptureOffset Optional[Offset]
	Piece              PieceType
}

func (e *EnPassant) isAttribute() {}

func (e *EnPassant) GenerateMoves(b *Board, piece Piece, moves []MoveData) []MoveData {
	captureOffset := forColor(e.CaptureOffset, e.BlackCaptureOffset, piece.Color)

	for _, offset := range forColor(e.Offsets, e.BlackOffsets, piece.Color) {
		target := b.Translate(piece.Square, offset)
		if target.IsEmpty() {
			continue
		}
		victimSquare := target.Value()

		victim := b.PieceAt(victimSquare)
		if victim.IsEmpty() || victim.Value().Color == piece.Color || victim.Value().Type != e.Piece {
			continue
		}

		landing := b.Translate(victimSquare, captureOffset)
		if landing.IsEmpty() || b.OccupantColor(landing.Value()).HasValue() {
			continue
		}

		if !b.lastMovePassed(victimSquare, landing.Value()) {
			continue
		}

		moves = append(moves, MoveData{
			Piece:   piece,
			To:      landing.Value(),
			Capture: Some(victimSquare),
		})
	}

	return moves
}

// lastMovePassed reports whether the previous move landed on victim after
// crossing over skipped. With no history the capture is assumed available.
func (b *Board) lastMovePassed(victim Square, skipped Square) bool {
	if len(b.moveHistory) == 0 {
		return true
	}

	last := b.moveHistory[len(b.moveHistory)-1]
	if last.To != victim {
		return false
	}

	return Contains(Line(last.From(), last.To), skipped)
}

// GenerateAttacks is empty: an en passant capture never threatens an
// occupied square.
func (e *EnPassant) GenerateAttacks(b *Board, piece Piece, attacks Bitboard) {
}

func (e *EnPassant) Describe() AttributeInfo {
	return AttributeInfo{
		Name:        "EnPassant",
		Description: "Can capture a piece that has just moved past it.",
		Example:     "Pawn",
		Options: []OptionInfo{
			{
				Name:        "offsets",
				Description: "The squares, relative to this piece, where the captured piece may stand.",
				Type:        OptionOffsetList,
				Example:     "Pawn",
			},
			{
				Name:        "black_offsets",
				Description: "The offsets to use when black.",
				Optional:    true,
				Type:        OptionOffsetList,
				Example:     "Pawn",
			},
			{
				Name:        "capture_offset",
				Description: "Where this piece lands, relative to the captured piece.",
				Type:        OptionOffset,
				Example:     "Pawn",
			},
			{
				Name:        "black_capture_offset",
				Description: "The capture offset to use when black.",
				Optional:    true,
				Type:        OptionOffset,
				Example:     "Pawn",
			},
			{
				Name:        "piece",
				Description: "The type of piece that can be captured.",
				Type:        OptionPieceType,
				Example:     "Pawn",
			},
		},
	}
}

func (e *EnPassant) SetOption(name string, value OptionValue) {
	switch name {
	case "offsets":
		setOffsets(&e.Offsets, value)
	case "black_offsets":
		setBlackOffsets(&e.BlackOffsets, value)
	case "capture_offset":
		if v := value.AsOffset(); v.HasValue() {
			e.CaptureOffset = v.Value()
		}
	case "black_capture_offset":
		if v := value.AsOffset(); v.HasValue() {
			e.BlackCaptureOffset = v
		}
	case "piece":
		if v := value.AsPieceType(); v.HasValue() {
			e.Piece = v.Value()
		}
	}
}

func (e *EnPassant) Validate() Error {
	if e.CaptureOffset.IsZero() || (e.BlackCaptureOffset.HasValue() && e.BlackCaptureOffset.Value().IsZero()) {
		return Errorf("en passant would land on the captured piece: %w", ErrInvalidConfig)
	}
	return NilError
}

func (e *EnPassant) Clone() Attribute {
	result := *e
	result.Offsets = cloneOffsets(e.Offsets)
	result.BlackOffsets = cloneBlackOffsets(e.BlackOffsets)
	return &result
}
