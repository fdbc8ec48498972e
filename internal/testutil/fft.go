package testutil

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFTBinPower returns |X[bin]|² of the length-len(x) DFT of x, computed with
// a full FFT. It serves as the reference for single-bin estimators.
func FFTBinPower(x []float64, bin int) (float64, error) {
	if bin < 0 || bin >= len(x) {
		return 0, fmt.Errorf("bin %d out of range for length %d", bin, len(x))
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return 0, fmt.Errorf("fft plan: %w", err)
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("fft forward: %w", err)
	}

	c := out[bin]
	return real(c)*real(c) + imag(c)*imag(c), nil
}
