package game

import (
	"math/rand"
	"time"
)

// RandomSource supplies the randomness used when serving the ball
type RandomSource interface {
	// Uniform returns a value in [min, max)
	Uniform(min, max float64) float64
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a RandomSource backed by math/rand.
// A zero seed picks one from the current time.
func NewRandSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}
