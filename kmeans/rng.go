// Package kmeans - RNG utilities shared by the stochastic routines.
//
// This file centralizes deterministic random generation for k-means++
// sampling and multi-restart streams.
//
// Goals:
//   - Determinism: same seed ⇒ identical partitions across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: per-restart substreams derived by SplitMix64 mixing,
//     so restarts never correlate even for adjacent stream ids.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each restart owns its stream.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (strong bit diffusion, so
// adjacent restart ids produce unrelated streams).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic stream for restart number
// `stream`, derived from the caller's seed (seed==0 policy applies).
//
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
