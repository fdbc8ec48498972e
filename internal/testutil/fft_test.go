package testutil

import (
	"testing"
)

func TestFFTBinPowerSine(t *testing.T) {
	// 8 whole cycles in 64 samples land exactly on bin 8 with |X|=N/2.
	x := DeterministicSine(1000, 8000, 1, 64)

	p, err := FFTBinPower(x, 8)
	if err != nil {
		t.Fatalf("FFTBinPower: %v", err)
	}
	RequireClose(t, "bin 8", p, 32*32, 1e-9, 1e-9)

	p, err = FFTBinPower(x, 3)
	if err != nil {
		t.Fatalf("FFTBinPower: %v", err)
	}
	RequireClose(t, "bin 3", p, 0, 1e-18, 0)
}

func TestFFTBinPowerRange(t *testing.T) {
	if _, err := FFTBinPower(make([]float64, 8), 8); err == nil {
		t.Fatal("expected error for out-of-range bin")
	}
}
