package helpers

import (
	"fmt"
	"sync"
)

type PoolStats struct {
	creates int
	resets  int
	hits    int
}

func (s PoolStats) String() string {
	return fmt.Sprint("creates: ", s.creates, ", resets: ", s.resets, ", hits: ", s.hits)
}

const _poolCapacity = 256

// CreatePool returns get/release/stats closures over a bounded free list.
// Released values beyond the pool's capacity are dropped for the GC.
func CreatePool[T any](create func() T, reset func(*T)) (func() *T, func(*T), func() PoolStats) {
	available := make([]*T, 0, _poolCapacity)
	stats := PoolStats{}

	lock := sync.Mutex{}

	var get = func() *T {
		lock.Lock()
		defer lock.Unlock()

		if n := len(available); n > 0 {
			result := available[n-1]
			available = available[:n-1]
			stats.hits++
			return result
		}

		stats.creates++
		result := create()
		return &result
	}

	var release = func(t *T) {
		reset(t)

		lock.Lock()
		defer lock.Unlock()

		stats.resets++
		if len(available) < _poolCapacity {
			available = append(available, t)
		}
	}

	var getStats = func() PoolStats {
		lock.Lock()
		defer lock.Unlock()
		return stats
	}

	return get, release, getStats
}
