package workload

import (
	"hash/fnv"
	"math/rand"
)

// Random streams used by the generator. Each stream is seeded independently,
// so changing the track distribution never shifts arrival times and vice versa.
const (
	streamArrivals = "arrivals"
	streamTracks   = "tracks"
)

// partitionedRNG hands out deterministic, isolated RNG instances per stream,
// seeded with masterSeed XOR fnv1a64(stream).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type partitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

func newPartitionedRNG(seed int64) *partitionedRNG {
	return &partitionedRNG{seed: seed, streams: make(map[string]*rand.Rand)}
}

// forStream returns the cached RNG for the named stream, creating it on first use.
func (p *partitionedRNG) forStream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.streams[name] = rng
	return rng
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
