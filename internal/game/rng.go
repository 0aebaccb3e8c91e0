package game

// Rand is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type Rand struct {
	state uint64
}

// NewRand creates a new RNG with the given seed.
func NewRand(seed int64) *Rand {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &Rand{state: s}
}

// Next generates the next random uint64.
func (r *Rand) Next() uint64 {
	// LCG parameters (same as MINSTD)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}
