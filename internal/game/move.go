package game

import (
	. "github.com/cricklet/variantboard/internal/helpers"
)

// MoveData is a candidate or committed move. Capture may differ from To (en
// passant), and Castle relocates a companion piece from First to Second.
type MoveData struct {
	Piece   Piece
	To      Square
	Capture Optional[Square]
	Castle  Optional[Pair[Square, Square]]
}

func QuietMove(piece Piece, to Square) MoveData {
	return MoveData{Piece: piece, To: to}
}

func CaptureMove(piece Piece, to Square) MoveData {
	return MoveData{Piece: piece, To: to, Capture: Some(to)}
}

func (m MoveData) From() Square {
	return m.Piece.Square
}

func (m MoveData) IsCapture() bool {
	return m.Capture.HasValue()
}

func (m MoveData) IsEnPassant() bool {
	return m.Capture.HasValue() && m.Capture.Value() != m.To
}

func (m MoveData) IsCastle() bool {
	return m.Castle.HasValue()
}

// String is coordinate notation, e.g. "e2e4".
func (m MoveData) String() string {
	return m.From().String() + m.To.String()
}

func (m MoveData) DebugString() string {
	result := m.From().String()
	if m.IsCapture() {
		result += "x"
	}
	result += m.To.String()
	if m.IsEnPassant() {
		result += "(" + m.Capture.Value().String() + ")"
	}
	if m.IsCastle() {
		result += "[" + m.Castle.Value().First.String() + m.Castle.Value().Second.String() + "]"
	}
	return result
}
