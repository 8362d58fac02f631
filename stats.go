package hashmap

// Stats is a point-in-time description of the map layout.
type Stats struct {
	Size         int
	Capacity     int
	EmptyBuckets int
	// Longest chain for chaining stores. For linear probing, the longest
	// probe sequence needed to reach an entry.
	LongestChain int
	LoadFactor   float64

	// Set while an incremental resize is in progress.
	Migrating   bool
	OldSize     int
	OldCapacity int
}
