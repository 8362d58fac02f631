package hashmap

import (
	"math"
	"math/bits"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	if v == 0 {
		return 1
	}

	return uint32(1) << min(bits.Len32(v-1), 31)
}

// CapacityFor returns the smallest power of two capacity that holds the given
// number of entries without a put reaching loadFactor.
func CapacityFor(entries int, loadFactor float64) int {
	if entries < 0 {
		entries = 0
	}

	// Put resizes when (len + 1) / capacity >= loadFactor, and the last put
	// sees len == entries - 1.
	capacity := int(math.Floor(float64(entries)/loadFactor)) + 1

	return int(NextPowerOf2(uint32(capacity)))
}
