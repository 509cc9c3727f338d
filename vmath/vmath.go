package vmath

import "math"

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves current toward target by a fixed fraction of the remaining gap
// Geometric interpolation: the result never crosses target for frac in [0, 1]
func Approach(current, target, frac float64) float64 {
	return current + (target-current)*frac
}

// StepToward moves current toward target by at most step, never past it
func StepToward(current, target, step float64) float64 {
	if current < target {
		return math.Min(current+step, target)
	}
	if current > target {
		return math.Max(current-step, target)
	}
	return current
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
