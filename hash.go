package hashmap

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

type hashFunc[K comparable] func(K) uint64

// Used for keys without a fixed byte encoding (structs, arrays, pointers).
var fallbackSeed = maphash.MakeSeed()

// makeDefaultHashFunc returns the key hash used by every map.
// Strings and fixed-width scalars go through xxhash, so the result is stable
// across processes. Everything else falls back to maphash with a
// process-wide seed.
func makeDefaultHashFunc[K comparable]() hashFunc[K] {
	return func(k K) uint64 {
		switch v := any(k).(type) {
		case string:
			return xxhash.Sum64String(v)
		case int:
			return hashUint64(uint64(v))
		case int8:
			return hashUint64(uint64(v))
		case int16:
			return hashUint64(uint64(v))
		case int32:
			return hashUint64(uint64(v))
		case int64:
			return hashUint64(uint64(v))
		case uint:
			return hashUint64(uint64(v))
		case uint8:
			return hashUint64(uint64(v))
		case uint16:
			return hashUint64(uint64(v))
		case uint32:
			return hashUint64(uint64(v))
		case uint64:
			return hashUint64(v)
		case uintptr:
			return hashUint64(uint64(v))
		case float32:
			if v == 0 {
				v = 0 // -0 == +0
			}
			return hashUint64(uint64(math.Float32bits(v)))
		case float64:
			if v == 0 {
				v = 0
			}
			return hashUint64(math.Float64bits(v))
		case bool:
			if v {
				return hashUint64(1)
			}
			return hashUint64(0)
		default:
			return maphash.Comparable(fallbackSeed, k)
		}
	}
}

//go:inline
func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)

	return xxhash.Sum64(buf[:])
}

// bucketIndex maps a hash onto [0, capacity).
//
//go:inline
func bucketIndex(hash uint64, capacity int) int {
	return int(hash % uint64(capacity))
}
