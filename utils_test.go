package hashmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name  string
		input uint32
		want  uint32
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"power of two", 1024, 1024},
		{"just above", 1025, 2048},
		{"max", 1 << 31, 1 << 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.input))
		})
	}
}

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		name       string
		entries    int
		loadFactor float64
		want       int
	}{
		{"empty", 0, 0.75, 1},
		{"negative", -3, 0.75, 1},
		{"one entry", 1, 0.75, 2},
		{"three entries", 3, 0.75, 8},
		{"twelve entries", 12, 0.75, 32},
		{"eleven entries", 11, 0.75, 16},
		{"full load", 4, 1, 8},
		{"hundred", 100, 0.75, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CapacityFor(tt.entries, tt.loadFactor))
		})
	}

	t.Run("usage with New", func(t *testing.T) {
		capacity := CapacityFor(100, DefaultMaxLoadFactor)

		m := newTestMap[int, int](t, Config{InitialCapacity: capacity})
		for i := range 100 {
			m.Put(i, i)
		}

		// No resize happened
		require.Equal(t, capacity, m.Stats().Capacity)
	})
}
