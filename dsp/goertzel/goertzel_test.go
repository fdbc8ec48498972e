package goertzel

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-goertzel/internal/testutil"
)

func TestCoefficient(t *testing.T) {
	tests := []struct {
		f, fs float64
	}{
		{697, 8000},
		{1000, 8000},
		{1, 48000},
		{3999, 8000},
		{440, 44100},
	}

	for _, tt := range tests {
		k := Coefficient(tt.f, tt.fs)
		want := 2 * math.Cos(2*math.Pi*tt.f/tt.fs)
		if k != want {
			t.Errorf("Coefficient(%v, %v) = %v, want %v", tt.f, tt.fs, k, want)
		}
		if k <= -2 || k >= 2 {
			t.Errorf("Coefficient(%v, %v) = %v, want inside (-2, 2)", tt.f, tt.fs, k)
		}
	}

	// fs/4 sits at a quarter turn, where the cosine is zero up to rounding.
	if k := Coefficient(2000, 8000); math.Abs(k) > 1e-15 {
		t.Errorf("Coefficient(2000, 8000) = %v, want ~0", k)
	}
	if k := Coefficient(4000, 8000); math.Abs(k+2) > 1e-15 {
		t.Errorf("Coefficient(4000, 8000) = %v, want ~-2", k)
	}
}

func TestAdvanceQuarterRate(t *testing.T) {
	k := Coefficient(2000, 8000)
	samples := []float64{0, 1, 0, -1}
	want := []State{{0, 0}, {1, 0}, {0, 1}, {-2, 0}}

	var s State
	for i, x := range samples {
		s = s.Step(x, k)
		testutil.RequireClose(t, "prev1", s.Prev1, want[i].Prev1, 1e-15, 0)
		testutil.RequireClose(t, "prev2", s.Prev2, want[i].Prev2, 1e-15, 0)
	}

	if got := Advance(samples, k, State{}); got != s {
		t.Fatalf("Advance = %+v, stepped = %+v", got, s)
	}
}

func TestAdvanceScenario(t *testing.T) {
	// k = -2 is the Nyquist coefficient; with it the samples cancel exactly.
	const k = -2.0
	samples := []float64{0, 1, 0, -1}
	want := []State{{0, 0}, {1, 0}, {-2, 1}, {2, -2}}

	var s State
	for i, x := range samples {
		s = s.Step(x, k)
		if s != want[i] {
			t.Fatalf("step %d: state = %+v, want %+v", i, s, want[i])
		}
	}

	if got := Advance(samples, k, State{}); got != want[3] {
		t.Fatalf("Advance = %+v, want %+v", got, want[3])
	}
}

func TestAdvanceEmpty(t *testing.T) {
	s := State{Prev1: 0.25, Prev2: -3}
	if got := Advance(nil, 1.3, s); got != s {
		t.Fatalf("Advance(nil) = %+v, want %+v", got, s)
	}
}

func TestAdvanceSplitEqualsWhole(t *testing.T) {
	k := Coefficient(1209, 8000)
	sig := testutil.DeterministicNoise(7, 1, 300)

	whole := Advance(sig, k, State{})

	for _, split := range []int{0, 1, 99, 150, 299, 300} {
		s := Advance(sig[:split], k, State{})
		s = Advance(sig[split:], k, s)
		testutil.RequireClose(t, "prev1", s.Prev1, whole.Prev1, 1e-9, 1e-12)
		testutil.RequireClose(t, "prev2", s.Prev2, whole.Prev2, 1e-9, 1e-12)
	}

	var s State
	for _, x := range sig {
		s = s.Step(x, k)
	}
	testutil.RequireClose(t, "prev1", s.Prev1, whole.Prev1, 1e-9, 1e-12)
	testutil.RequireClose(t, "prev2", s.Prev2, whole.Prev2, 1e-9, 1e-12)
}

func TestAdvanceOrderSensitive(t *testing.T) {
	k := Coefficient(1000, 8000)
	a := Advance([]float64{1, 0, 0}, k, State{})
	b := Advance([]float64{0, 0, 1}, k, State{})
	if a == b {
		t.Fatalf("expected different states for reordered input, both %+v", a)
	}
}

func TestEpsilon(t *testing.T) {
	if Epsilon <= 0 {
		t.Fatalf("Epsilon = %v, want > 0", Epsilon)
	}
	// Smallest normal: halving it leaves the normal range.
	if Epsilon != math.Ldexp(1, -1022) {
		t.Fatalf("Epsilon = %v, want 2^-1022", Epsilon)
	}

	// A silent block reports Epsilon/n² exactly for practical block sizes.
	k := Coefficient(1000, 8000)
	for _, n := range []int{1, 4, 205, 8000, 1 << 20} {
		nf := float64(n)
		if got, want := Power(k, State{}, n), Epsilon/(nf*nf); got != want || want == 0 {
			t.Fatalf("Power(silence, n=%d) = %v, want %v", n, got, want)
		}
	}
	if math.SmallestNonzeroFloat64/4 != 0 {
		t.Fatal("subnormal minimum unexpectedly survives division")
	}
}

func TestPowerFloor(t *testing.T) {
	const k = -2.0

	// raw = 4 + 4 - (-2)(2)(-2) = 0
	p := Power(k, State{Prev1: 2, Prev2: -2}, 4)
	if p != Epsilon/16 {
		t.Fatalf("Power = %v, want Epsilon/16 = %v", p, Epsilon/16)
	}

	if p := Power(k, State{}, 0); p != Epsilon {
		t.Fatalf("Power(n=0) = %v, want Epsilon", p)
	}

	// Floored power over a very long block must not underflow to zero.
	if p := Power(k, State{}, 1<<30); p <= 0 {
		t.Fatalf("Power(n=2^30) = %v, want > 0", p)
	}

	if got, want := ProcessSamplesCoeff([]float64{0, 1, 0, -1}, k), DBm(Epsilon/16); got != want {
		t.Fatalf("ProcessSamplesCoeff = %v, want %v", got, want)
	}
}

func TestPowerQuarterRate(t *testing.T) {
	k := Coefficient(2000, 8000)

	// A full-scale fs/4 tone over four samples: raw 4, normalized 0.25.
	s := Advance([]float64{0, 1, 0, -1}, k, State{})
	testutil.RequireClose(t, "power", Power(k, s, 4), 0.25, 1e-15, 0)
	testutil.RequireClose(t, "level", Level(k, s, 4), 10*math.Log10(0.5*1000/600), 1e-12, 0)
}

func TestPowerNormalization(t *testing.T) {
	k := Coefficient(1000, 8000)
	s := State{Prev1: 3, Prev2: 1}
	raw := 9 + 1 - k*3
	testutil.RequireClose(t, "n=1", Power(k, s, 1), raw, 0, 1e-15)
	testutil.RequireClose(t, "n=10", Power(k, s, 10), raw/100, 0, 1e-15)
}

func TestDBm(t *testing.T) {
	// 0.3 normalized power is 1 mW across 600 ohms.
	testutil.RequireClose(t, "0 dBm", DBm(0.3), 0, 1e-12, 0)
	testutil.RequireClose(t, "+10 dBm", DBm(3), 10, 1e-12, 0)

	want := 10 * math.Log10(2*0.05*1000/600)
	testutil.RequireClose(t, "formula", DBm(0.05), want, 1e-12, 1e-12)
}

func TestLevelNeverInfinite(t *testing.T) {
	k := Coefficient(1000, 8000)
	for _, n := range []int{0, 1, 4, 1 << 20, 1 << 40} {
		testutil.RequireFinite(t, Level(k, State{}, n))
	}
}

func TestPowerMatchesFFT(t *testing.T) {
	const (
		fs = 8000.0
		n  = 256
	)

	sig := testutil.Concat(
		testutil.DeterministicSine(1000, fs, 0.8, n),
	)
	noise := testutil.DeterministicNoise(3, 0.2, n)
	for i := range sig {
		sig[i] += noise[i]
	}

	// Integer bins so Goertzel and DFT evaluate the same frequency.
	for _, bin := range []int{5, 32, 77, 127} {
		f := float64(bin) * fs / n
		k := Coefficient(f, fs)
		s := Advance(sig, k, State{})

		want, err := testutil.FFTBinPower(sig, bin)
		if err != nil {
			t.Fatalf("FFTBinPower: %v", err)
		}

		got := Power(k, s, 1)
		testutil.RequireClose(t, "bin power", got, want, 1e-8, 1e-7)
	}
}

func TestProcessSamples(t *testing.T) {
	sig := testutil.DeterministicSine(1000, 8000, 1, 400)

	got, err := ProcessSamples(sig, 1000, 8000)
	if err != nil {
		t.Fatalf("ProcessSamples: %v", err)
	}

	want := ProcessSamplesCoeff(sig, Coefficient(1000, 8000))
	if got != want {
		t.Fatalf("ProcessSamples = %v, ProcessSamplesCoeff = %v", got, want)
	}

	if _, err := ProcessSamples(sig, 4000, 8000); err == nil {
		t.Fatal("expected error at Nyquist")
	}
}
