package game

import (
	. "github.com/cricklet/variantboard/internal/bitboards"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Attribute is one composable movement rule. The set of implementations is
// closed: Jumping, Sliding, EnPassant and Castle.
type Attribute interface {
	// GenerateMoves appends this rule's pseudo-moves for piece to moves.
	GenerateMoves(b *Board, piece Piece, moves []MoveData) []MoveData
	// GenerateAttacks sets the squares this rule threatens.
	GenerateAttacks(b *Board, piece Piece, attacks Bitboard)
	Describe() AttributeInfo
	// SetOption updates one named field. Unknown names and values of the
	// wrong type are ignored.
	SetOption(name string, value OptionValue)
	Validate() Error
	Clone() Attribute

	isAttribute()
}

type OptionType int

const (
	OptionBool OptionType = iota
	OptionOffset
	OptionOffsetList
	OptionPieceType
)

func (t OptionType) String() string {
	switch t {
	case OptionBool:
		return "bool"
	case OptionOffset:
		return "offset"
	case OptionOffsetList:
		return "offset list"
	case OptionPieceType:
		return "piece type"
	}
	return "invalid"
}

type OptionValue struct {
	Type      OptionType
	Bool      bool
	Offset    Offset
	Offsets   []Offset
	PieceType PieceType
}

func BoolOption(v bool) OptionValue {
	return OptionValue{Type: OptionBool, Bool: v}
}

func OffsetOption(v Offset) OptionValue {
	return OptionValue{Type: OptionOffset, Offset: v}
}

func OffsetListOption(v ...Offset) OptionValue {
	return OptionValue{Type: OptionOffsetList, Offsets: append([]Offset{}, v...)}
}

func PieceTypeOption(v PieceType) OptionValue {
	return OptionValue{Type: OptionPieceType, PieceType: v}
}

func (v OptionValue) AsBool() Optional[bool] {
	if v.Type == OptionBool {
		return Some(v.Bool)
	}
	return Empty[bool]()
}

func (v OptionValue) AsOffset() Optional[Offset] {
	if v.Type == OptionOffset {
		return Some(v.Offset)
	}
	return Empty[Offset]()
}

func (v OptionValue) AsOffsetList() Optional[[]Offset] {
	if v.Type == OptionOffsetList {
		return Some(append([]Offset{}, v.Offsets...))
	}
	return Empty[[]Offset]()
}

func (v OptionValue) AsPieceType() Optional[PieceType] {
	if v.Type == OptionPieceType {
		return Some(v.PieceType)
	}
	return Empty[PieceType]()
}

type OptionInfo struct {
	Name        string
	Description string
	Optional    bool
	Type        OptionType
	Example     string
}

// AttributeInfo is static metadata for configuration tooling.
type AttributeInfo struct {
	Name        string
	Description string
	Example     string
	Options     []OptionInfo
}

func (info AttributeInfo) Option(name string) Optional[OptionInfo] {
	return FindInSlice(info.Options, func(o OptionInfo) bool {
		return o.Name == name
	})
}

var firstMoveOption = OptionInfo{
	Name:        "first_move_only",
	Description: "Can only move on the first move of the piece.",
	Optional:    false,
	Type:        OptionBool,
	Example:     "Pawn (double move)",
}

// forColor picks the black override for black pieces when one is configured.
func forColor[T any](white T, black Optional[T], color Color) T {
	if color == Black && black.HasValue() {
		return black.Value()
	}
	return white
}

func setBool(field *bool, value OptionValue) {
	if v := value.AsBool(); v.HasValue() {
		*field = v.Value()
	}
}

func setOffsets(field *[]Offset, value OptionValue) {
	if v := value.AsOffsetList(); v.HasValue() {
		*field = v.Value()
	}
}

func setBlackOffsets(field *Optional[[]Offset], value OptionValue) {
	if v := value.AsOffsetList(); v.HasValue() {
		*field = v
	}
}

func cloneOffsets(offsets []Offset) []Offset {
	if offsets == nil {
		return nil
	}
	return append([]Offset{}, offsets...)
}

func cloneBlackOffsets(offsets Optional[[]Offset]) Optional[[]Offset] {
	if offsets.IsEmpty() {
		return offsets
	}
	return Some(cloneOffsets(offsets.Value()))
}

var (
	_ Attribute = (*Jumping)(nil)
	_ Attribute = (*Sliding)(nil)
	_ Attribute = (*EnPassant)(nil)
	_ Attribute = (*Castle)(nil)
)
