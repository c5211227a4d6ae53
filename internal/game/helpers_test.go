package game

// seqRand returns its values in order, cycling when exhausted.
// Ball.Reset draws the serve side first, then the angle.
type seqRand struct {
	values []float64
	i      int
}

func (s *seqRand) Uniform(min, max float64) float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// serveRight always serves straight to the right
func serveRight() *seqRand {
	return &seqRand{values: []float64{0.9, 0}}
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
