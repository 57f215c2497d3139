package core

import "math"

// DefaultSeed is the seed used when none is configured
const DefaultSeed uint32 = 4839

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float64
}

// Next advances a xorshift32 state and returns the new state together with
// a float in [0, 1) built from its low 23 bits. It is a pure function of seed.
func Next(seed uint32) (uint32, float64) {
	x := seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5

	// Fixed exponent, random mantissa: a float32 in [1, 2)
	f := math.Float32frombits((x & 0x007FFFFF) | 0x3F800000)
	return x, float64(f - 1)
}

// Rand is an xorshift32 generator owned by a single render unit.
// It is not safe for concurrent use; give every goroutine its own.
type Rand struct {
	state uint32
}

// NewRand creates a generator. A zero seed would stick at zero forever,
// so it is replaced by DefaultSeed.
func NewRand(seed uint32) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Rand{state: seed}
}

// Get1D returns the next float in [0, 1)
func (r *Rand) Get1D() float64 {
	var f float64
	r.state, f = Next(r.state)
	return f
}

// State returns the current generator word
func (r *Rand) State() uint32 {
	return r.state
}

// PixelSeed derives an independent, deterministic seed for pixel (x, y) so
// that parallel renders do not depend on scheduling order.
func PixelSeed(seed uint32, x, y int) uint32 {
	h := seed ^ uint32(x)*0x9E3779B1 ^ uint32(y)*0x85EBCA77
	// murmur3 finalizer
	h ^= h >> 16
	h *= 0x85EBCA6B
	h ^= h >> 13
	h *= 0xC2B2AE35
	h ^= h >> 16
	if h == 0 {
		h = DefaultSeed
	}
	return h
}
