package fen

import (
	"encoding/json"

	. "github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Cpgn is a game record: the applied moves in coordinate notation plus
// optional metadata about the players and the outcome.
type Cpgn struct {
	Metadata CpgnMetadata `json:"metadata"`
	Moves    []string     `json:"moves"`
}

type CpgnMetadata struct {
	White  *string `json:"white,omitempty"`
	Black  *string `json:"black,omitempty"`
	Result *string `json:"result,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

func CpgnForBoard(b *Board, metadata CpgnMetadata) Cpgn {
	return Cpgn{
		Metadata: metadata,
		Moves: MapSlice(b.MoveHistory(), func(m MoveData) string {
			return m.String()
		}),
	}
}

func (c Cpgn) Marshal() (string, Error) {
	bytes, err := json.Marshal(c)
	if err != nil {
		return "", Wrap(err)
	}
	return string(bytes), NilError
}

func CpgnStringForBoard(b *Board, metadata CpgnMetadata) (string, Error) {
	return CpgnForBoard(b, metadata).Marshal()
}
