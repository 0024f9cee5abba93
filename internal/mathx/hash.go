// Package mathx provides stable integer hashing for seed derivation.
// Keep portable and stable across versions (no use of rand).
package mathx

// Mix64 avalanches a 64-bit value (splitmix64 finalizer).
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// ChunkSeed derives a deterministic rng seed for one chunk from the world
// seed and the chunk coordinates. Large odd constants decorrelate the axes.
func ChunkSeed(worldSeed int64, chunkX, chunkZ int) int64 {
	h := uint64(worldSeed)
	h ^= uint64(int64(chunkX)) * 0x9e3779b97f4a7c15
	h ^= uint64(int64(chunkZ)) * 0xc2b2ae3d27d4eb4f
	return int64(Mix64(h))
}

// FloorDiv divides rounding toward negative infinity, so coordinate mapping
// stays consistent on the negative side of the grid.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
