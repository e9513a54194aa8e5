package game

import (
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Insert places an unmoved piece. The square must be empty.
func (b *Board) Insert(piece Piece) Error {
	err := b.InsertMoved(piece)
	if !IsNil(err) {
		return err
	}
	b.firstMoves[piece.Color].Set(b.SquareToIndex(piece.Square))
	return NilError
}

// InsertMoved places a piece that first-move rules should treat as moved.
func (b *Board) InsertMoved(piece Piece) Error {
	if !b.ValidSquare(piece.Square) {
		return Errorf("insert %v: %w", piece, ErrInvalidSquare)
	}
	if b.PieceInfo(piece.Type).IsEmpty() {
		return Errorf("insert %v: %w", piece, ErrUnknownPieceType)
	}
	if b.OccupantColor(piece.Square).HasValue() {
		return Errorf("insert %v: %w", piece, ErrSquareOccupied)
	}

	b.set(piece.Color, piece.Type, b.SquareToIndex(piece.Square))
	return NilError
}

// Remove clears whatever stands on sq and returns it.
func (b *Board) Remove(sq Square) Optional[Piece] {
	piece := b.PieceAt(sq)
	if piece.HasValue() {
		p := piece.Value()
		index := b.SquareToIndex(sq)
		b.clear(p.Color, p.Type, index)
		b.firstMoves[p.Color].Clear(index)
	}
	return piece
}

func (b *Board) set(color Color, t PieceType, index int) {
	b.generalLocations[color].Set(index)
	b.pieceLocations[color][t].Set(index)
}

func (b *Board) clear(color Color, t PieceType, index int) {
	b.generalLocations[color].Clear(index)
	b.pieceLocations[color][t].Clear(index)
}

// ApplyMove commits a move. The move is checked against the current
// occupancy first; on error the board is left unchanged.
func (b *Board) ApplyMove(move MoveData) Error {
	mover, err := b.checkMove(move)
	if !IsNil(err) {
		return err
	}

	if move.Capture.HasValue() {
		captureSquare := move.Capture.Value()
		captured := b.PieceAt(captureSquare).Value()
		b.clear(captured.Color, captured.Type, b.SquareToIndex(captureSquare))
		b.firstMoves[captured.Color].Clear(b.SquareToIndex(captureSquare))
	}

	var companion Optional[Piece]
	if move.Castle.HasValue() {
		companion = b.PieceAt(move.Castle.Value().First)
		b.vacate(companion.Value())
	}

	b.vacate(mover)

	if companion.HasValue() {
		b.set(companion.Value().Color, companion.Value().Type, b.SquareToIndex(move.Castle.Value().Second))
	}
	b.set(mover.Color, mover.Type, b.SquareToIndex(move.To))

	b.moveHistory = append(b.moveHistory, MoveData{
		Piece:   mover,
		To:      move.To,
		Capture: move.Capture,
		Castle:  move.Castle,
	})
	b.turn = mover.Color.Other()

	b.hashes.Increment(b.PositionHash())
	b.layouts.Increment(b.LayoutHash())

	return NilError
}

func (b *Board) vacate(piece Piece) {
	index := b.SquareToIndex(piece.Square)
	b.clear(piece.Color, piece.Type, index)
	b.firstMoves[piece.Color].Clear(index)
}

// checkMove resolves the mover from the board and verifies every square the
// move touches.
func (b *Board) checkMove(move MoveData) (Piece, Error) {
	from := move.From()
	if !b.ValidSquare(from) || !b.ValidSquare(move.To) {
		return Piece{}, Errorf("move %v: %w", move, ErrInvalidSquare)
	}

	mover := b.PieceAt(from)
	if mover.IsEmpty() {
		return Piece{}, Errorf("move %v: origin is empty: %w", move, ErrInvalidMove)
	}
	if mover.Value().Color != move.Piece.Color || mover.Value().Type != move.Piece.Type {
		return Piece{}, Errorf("move %v: origin holds %v: %w", move, mover.Value(), ErrInvalidMove)
	}

	// Squares that will be empty once captured and departing pieces are gone.
	vacated := []Square{from}

	if move.Capture.HasValue() {
		captureSquare := move.Capture.Value()
		if !b.ValidSquare(captureSquare) {
			return Piece{}, Errorf("move %v: capture square: %w", move, ErrInvalidSquare)
		}
		captured := b.OccupantColor(captureSquare)
		if captured.IsEmpty() {
			return Piece{}, Errorf("move %v: nothing to capture on %v: %w", move, captureSquare, ErrInvalidMove)
		}
		if captured.Value() == mover.Value().Color {
			return Piece{}, Errorf("move %v: cannot capture own piece on %v: %w", move, captureSquare, ErrInvalidMove)
		}
		vacated = append(vacated, captureSquare)
	}

	var destinations []Square
	if move.Castle.HasValue() {
		companionFrom, companionTo := move.Castle.Value().First, move.Castle.Value().Second
		if !b.ValidSquare(companionFrom) || !b.ValidSquare(companionTo) {
			return Piece{}, Errorf("move %v: castle squares: %w", move, ErrInvalidSquare)
		}
		companion := b.OccupantColor(companionFrom)
		if companionFrom == from || companion.IsEmpty() || companion.Value() != mover.Value().Color {
			return Piece{}, Errorf("move %v: no companion on %v: %w", move, companionFrom, ErrInvalidMove)
		}
		if companionTo == move.To {
			return Piece{}, Errorf("move %v: both pieces land on %v: %w", move, move.To, ErrInvalidMove)
		}
		vacated = append(vacated, companionFrom)
		destinations = append(destinations, companionTo)
	}
	destinations = append(destinations, move.To)

	for _, sq := range destinations {
		if b.OccupantColor(sq).HasValue() && !Contains(vacated, sq) {
			return Piece{}, Errorf("move %v: %v: %w", move, sq, ErrSquareOccupied)
		}
	}

	return mover.Value(), NilError
}
