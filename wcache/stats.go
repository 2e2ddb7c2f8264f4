package wcache

// Stats holds cache counters accumulated since the cache was created.
// Counters survive Clear.
type Stats struct {
	// Hits is the number of value reads that returned a fresh entry.
	Hits uint64
	// Misses is the number of value reads that found no usable entry,
	// including reads that removed a stale entry.
	Misses uint64
	// Evictions is the number of entries removed because the cache was over
	// capacity.
	Evictions uint64
	// Expirations is the number of stale entries lazily removed by reads.
	Expirations uint64
}
