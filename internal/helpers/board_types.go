package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

type Color uint

const (
	White Color = iota
	Black
)

var AllColors = [2]Color{White, Black}

var _colorStrings = [2]string{
	"white", "black",
}

func (c Color) String() string {
	return _colorStrings[c]
}

func (c Color) Other() Color {
	return 1 - c
}

func ColorFromString(s string) (Color, Error) {
	switch s {
	case "w", "white":
		return White, NilError
	case "b", "black":
		return Black, NilError
	default:
		return White, Errorf("invalid color %q", s)
	}
}

type File uint
type Rank uint

// Square is an unsigned board coordinate. Whether it lies on a particular
// board is decided by the board's width and height.
type Square struct {
	File File
	Rank Rank
}

// Offset is a signed displacement between squares.
type Offset struct {
	File int
	Rank int
}

func (s Square) AsOffset() Offset {
	return Offset{int(s.File), int(s.Rank)}
}

func (o Offset) Add(other Offset) Offset {
	return Offset{o.File + other.File, o.Rank + other.Rank}
}

func (o Offset) Sub(other Offset) Offset {
	return Offset{o.File - other.File, o.Rank - other.Rank}
}

func (o Offset) IsZero() bool {
	return o.File == 0 && o.Rank == 0
}

// TrySquare converts back to a square, failing for negative components.
// Upper bounds are checked by the board.
func (o Offset) TrySquare() Optional[Square] {
	if o.File < 0 || o.Rank < 0 {
		return Empty[Square]()
	}
	return Some(Square{File(o.File), Rank(o.Rank)})
}

func (s Square) Translate(o Offset) Optional[Square] {
	return s.AsOffset().Add(o).TrySquare()
}

func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.File, o.Rank)
}

// Files are lettered a..z, then aa, ab, ... for wide boards.
func (f File) String() string {
	n := int(f) + 1
	result := ""
	for n > 0 {
		n--
		result = string(rune('a'+n%26)) + result
		n /= 26
	}
	return result
}

func (r Rank) String() string {
	return strconv.Itoa(int(r) + 1)
}

func (s Square) String() string {
	return s.File.String() + s.Rank.String()
}

// maxFileLetters bounds file names to "zzzz" so parsing cannot overflow.
const maxFileLetters = 4

func FileFromString(s string) (File, Error) {
	if len(s) == 0 {
		return 0, Errorf("file missing")
	}
	if len(s) > maxFileLetters {
		return 0, Errorf("file too long %q", s)
	}
	n := 0
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return 0, Errorf("file invalid %q", s)
		}
		n = n*26 + int(c-'a') + 1
	}
	return File(n - 1), NilError
}

func RankFromString(s string) (Rank, Error) {
	r, err := strconv.Atoi(s)
	if err != nil || r < 1 {
		return 0, Errorf("rank invalid %q", s)
	}
	return Rank(r - 1), NilError
}

func SquareFromString(s string) (Square, Error) {
	split := strings.IndexFunc(s, func(c rune) bool { return c >= '0' && c <= '9' })
	if split <= 0 {
		return Square{}, Errorf("invalid location %q", s)
	}

	file, fileErr := FileFromString(s[:split])
	rank, rankErr := RankFromString(s[split:])
	if !IsNil(fileErr) || !IsNil(rankErr) {
		return Square{}, Errorf("invalid location %q: %w", s, Join(fileErr, rankErr))
	}

	return Square{file, rank}, NilError
}

// SquareFromStringOrPanic is for literals in tests and piece tables.
func SquareFromStringOrPanic(s string) Square {
	sq, err := SquareFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return sq
}

// Line returns the squares strictly between from and to when they share a
// rank, file or diagonal, and nil otherwise.
func Line(from, to Square) []Square {
	delta := to.AsOffset().Sub(from.AsOffset())

	aligned := delta.File == 0 || delta.Rank == 0 || Abs(delta.File) == Abs(delta.Rank)
	if !aligned || delta.IsZero() {
		return nil
	}

	step := Offset{Sign(delta.File), Sign(delta.Rank)}
	distance := MaxInt(Abs(delta.File), Abs(delta.Rank)) - 1
	if distance <= 0 {
		return nil
	}

	squares := make([]Square, 0, distance)
	current := from.AsOffset()
	for i := 0; i < distance; i++ {
		current = current.Add(step)
		squares = append(squares, current.TrySquare().Value())
	}
	return squares
}
