package goertzel

import (
	"math"

	"github.com/cwbudde/algo-goertzel/dsp/core"
)

// Epsilon is the floor applied to the squared magnitude before
// normalization: the smallest positive normal float64. The subnormal minimum
// would divide to zero for any n > 1, so a floored block would no longer
// report Epsilon/n².
var Epsilon = math.Float64frombits(1 << 52)

// Power returns the normalized power of the target frequency after n samples
// have produced state s:
//
//	(prev1² + prev2² - coeff*prev1*prev2) / n²
//
// The squared magnitude is floored at Epsilon so the result is always
// strictly positive. n < 1 is treated as 1.
func Power(coeff float64, s State, n int) float64 {
	raw := s.Prev1*s.Prev1 + s.Prev2*s.Prev2 - coeff*s.Prev1*s.Prev2
	if raw < Epsilon {
		raw = Epsilon
	}

	if n < 1 {
		n = 1
	}

	nf := float64(n)

	p := raw / (nf * nf)
	if p == 0 {
		// Only reachable for floored input and n in the tens of millions.
		p = math.SmallestNonzeroFloat64
	}

	return p
}

// DBm converts a normalized power from [Power] to dBm, referenced to 1 mW
// across 600 ohms: 10*log10(2*power*1000/600).
func DBm(power float64) float64 {
	return core.PowerToDBm(power)
}

// Level returns DBm(Power(coeff, s, n)).
func Level(coeff float64, s State, n int) float64 {
	return DBm(Power(coeff, s, n))
}
