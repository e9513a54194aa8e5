package zobrist

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Keys are derived on demand by hashing the feature's coordinates, so any
// board size and any number of piece types get stable keys without tables.
// XOR-ing keys makes a position hash independent of iteration order.

type keyKind uint64

const (
	kindOccupancy keyKind = iota + 1
	kindPieceAtSquare
	kindHalfMoves
	kindTurn
)

const _seed uint64 = 32879419

func key(kind keyKind, a, b, c uint64) uint64 {
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], _seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(kind))
	binary.LittleEndian.PutUint64(buf[16:], a)
	binary.LittleEndian.PutUint64(buf[24:], b)
	binary.LittleEndian.PutUint64(buf[32:], c)
	return xxhash.Sum64(buf[:])
}

// KeyForOccupancy keys "some piece of this color stands on index".
func KeyForOccupancy(color int, index int) uint64 {
	return key(kindOccupancy, uint64(color), uint64(index), 0)
}

func KeyForPieceAtSquare(color int, pieceType int, index int) uint64 {
	return key(kindPieceAtSquare, uint64(color), uint64(pieceType), uint64(index))
}

func KeyForHalfMoves(halfMoves int) uint64 {
	return key(kindHalfMoves, uint64(halfMoves), 0, 0)
}

func KeyForTurn(color int) uint64 {
	return key(kindTurn, uint64(color), 0, 0)
}
