package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	. "github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Positions are written like FEN: rows from the highest rank down separated
// by '/', numbers for runs of empty squares (any number of digits), upper
// case icons for white. Two optional fields follow: the side to move and the
// half-move count. Loaded pieces count as unmoved.

const DefaultFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w 0"

func FenStringForPlayer(c Color) string {
	if c == White {
		return "w"
	} else {
		return "b"
	}
}

func FenStringForBoard(b *Board) string {
	s := ""
	for rank := b.Height() - 1; rank >= 0; rank-- {
		numSpaces := 0
		for file := 0; file < b.Width(); file++ {
			piece := b.PieceAt(Square{File: File(file), Rank: Rank(rank)})
			if piece.IsEmpty() {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += string(piece.Value().Icon(b))
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if rank != 0 {
			s += "/"
		}
	}
	return s
}

func FenStringForGame(b *Board) string {
	return fmt.Sprintf("%v %v %v",
		FenStringForBoard(b),
		FenStringForPlayer(b.Turn()),
		b.HalfMoves())
}

// Dimensions reads the width and height a layout describes.
func Dimensions(s string) (int, int, Error) {
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return 0, 0, Errorf("empty fen")
	}

	rows := strings.Split(ss[0], "/")
	width := 0
	for _, row := range rows {
		rowWidth, err := rowLength(row)
		if !IsNil(err) {
			return 0, 0, Errorf("invalid row '%v' in '%v': %w", row, s, err)
		}
		width = MaxInt(width, rowWidth)
	}
	return width, len(rows), NilError
}

func rowLength(row string) (int, Error) {
	length := 0
	digits := ""
	for _, c := range row {
		if unicode.IsDigit(c) {
			digits += string(c)
			continue
		}
		if digits != "" {
			n, _ := strconv.Atoi(digits)
			length += n
			digits = ""
		}
		if !unicode.IsLetter(c) {
			return 0, Errorf("unknown character '%c'", c)
		}
		length++
	}
	if digits != "" {
		n, _ := strconv.Atoi(digits)
		length += n
	}
	return length, NilError
}

// LoadFen inserts the pieces a fen describes into b, which should be empty,
// and applies the optional side-to-move and half-move fields.
func LoadFen(b *Board, s string) Error {
	ss := strings.Fields(s)
	if len(ss) == 0 || len(ss) > 3 {
		return Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	rows := strings.Split(ss[0], "/")
	if len(rows) != b.Height() {
		return Errorf("expected %v rows, found %v in '%v'", b.Height(), len(rows), s)
	}

	for i, row := range rows {
		rank := Rank(b.Height() - 1 - i)
		file := 0
		digits := ""

		flush := func() {
			if digits != "" {
				n, _ := strconv.Atoi(digits)
				file += n
				digits = ""
			}
		}

		for _, c := range row {
			if unicode.IsDigit(c) {
				digits += string(c)
				continue
			}
			flush()

			pieceType := b.PieceTypeForIcon(c)
			if pieceType.IsEmpty() {
				return Errorf("unknown character '%c' in '%v'", c, s)
			}

			color := Black
			if unicode.IsUpper(c) {
				color = White
			}

			err := b.Insert(Piece{Color: color, Type: pieceType.Value(), Square: Square{File: File(file), Rank: rank}})
			if !IsNil(err) {
				return Errorf("row %v of '%v': %w", i+1, s, err)
			}
			file++
		}
		flush()

		if file != b.Width() {
			return Errorf("row %v has %v squares, expected %v in '%v'", i+1, file, b.Width(), s)
		}
	}

	if len(ss) >= 2 {
		player, err := ColorFromString(ss[1])
		if !IsNil(err) {
			return Errorf("invalid player '%v' in '%v'", ss[1], s)
		}
		b.SetTurn(player)
	}

	if len(ss) == 3 {
		halfMoves, err := strconv.Atoi(ss[2])
		if err != nil || halfMoves < 0 {
			return Errorf("invalid half move count '%v' in '%v'", ss[2], s)
		}
		b.SetHalfMoves(halfMoves)
	}

	return NilError
}

// BoardFromFenString builds a board sized to the fen's layout.
func BoardFromFenString(s string, pieces []PieceInfo) (*Board, Error) {
	width, height, err := Dimensions(s)
	if !IsNil(err) {
		return nil, err
	}

	b, err := NewBoard(width, height, pieces)
	if !IsNil(err) {
		return nil, err
	}

	err = LoadFen(b, s)
	if !IsNil(err) {
		return nil, err
	}

	return b, NilError
}
