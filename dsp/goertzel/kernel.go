package goertzel

// State holds the last two outputs of the recurrence. Prev1 is the most
// recent output and Prev2 the one before it. The zero value is the initial
// state.
type State struct {
	Prev1 float64
	Prev2 float64
}

// Step advances the recurrence by one sample and returns the new state.
func (s State) Step(x, coeff float64) State {
	return State{
		Prev1: coeff*s.Prev1 - s.Prev2 + x,
		Prev2: s.Prev1,
	}
}

// Advance runs the recurrence over samples in order, starting from s, and
// returns the resulting state. An empty slice returns s unchanged.
//
// Advancing twice over consecutive slices gives the same state as advancing
// once over their concatenation.
func Advance(samples []float64, coeff float64, s State) State {
	p1, p2 := s.Prev1, s.Prev2
	for _, x := range samples {
		t := coeff*p1 - p2 + x
		p2 = p1
		p1 = t
	}

	return State{Prev1: p1, Prev2: p2}
}
