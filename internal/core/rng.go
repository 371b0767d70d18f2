package core

import "math/rand"

// Rand is the seeded random source used by the simulation.
// Games never touch the global math/rand source so that a seed plus an input
// sequence fully determines a run.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a random source from seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float returns a uniform value in [0, 1).
func (r *Rand) Float() float64 {
	return r.r.Float64()
}

// Range returns a uniform value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return r.r.Float64()*(max-min) + min
}

// Chance reports true with probability p. Values of p >= 1 always succeed.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Intn returns a uniform integer in [0, n). It returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Sign returns -1 or +1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.r.Float64() > 0.5 {
		return 1
	}
	return -1
}
