// Package coefficient - RNG utilities for generating cross-check inputs.
//
// Goals:
//   - Determinism: same seed ⇒ identical inputs, whatever the worker count.
//   - Encapsulation: one RNG factory; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each case gets its own stream
//     from caseRNG, so workers never share one.
package coefficient

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// caseRNG returns the independent stream for case number idx.
func caseRNG(seed int64, idx int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(idx))))
}

// randomBits draws n uniform bits as a '0'/'1' string.
//
// Complexity: O(n).
func randomBits(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(2))
	}

	return string(buf)
}
