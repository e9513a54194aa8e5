package game

import "errors"

var (
	ErrInvalidSquare    = errors.New("invalid square")
	ErrSquareOccupied   = errors.New("square occupied")
	ErrUnknownPieceType = errors.New("unknown piece type")
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
