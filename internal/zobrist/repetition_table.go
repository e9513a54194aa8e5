package zobrist

import (
	"fmt"
)

// RepetitionTable counts how often each position hash has occurred.
type RepetitionTable struct {
	counts map[uint64]int
	total  int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: map[uint64]int{}}
}

func (t *RepetitionTable) Stats() string {
	return fmt.Sprintf("positions: %v, recorded: %v", len(t.counts), t.total)
}

func (t *RepetitionTable) Increment(hash uint64) int {
	t.counts[hash]++
	t.total++
	return t.counts[hash]
}

func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

func (t *RepetitionTable) Len() int {
	return len(t.counts)
}

func (t *RepetitionTable) Clone() *RepetitionTable {
	result := &RepetitionTable{counts: make(map[uint64]int, len(t.counts)), total: t.total}
	for hash, count := range t.counts {
		result.counts[hash] = count
	}
	return result
}
