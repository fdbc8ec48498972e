package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Generator creates deterministic test signals for tone detection.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Tone generates a sine wave of the given peak amplitude starting at phase 0.
func (g *Generator) Tone(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("tone frequency must be in [0, %v): %v", g.cfg.SampleRate/2, freqHz)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// ToneDBm generates a sine wave whose level is dbm across the 600 ohm
// reference impedance.
func (g *Generator) ToneDBm(freqHz, dbm float64, samples int) ([]float64, error) {
	return g.Tone(freqHz, core.DBmToPeakAmplitude(dbm), samples)
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Burst generates count tone bursts of on samples separated by off samples
// of silence. The carrier phase runs continuously across the gaps.
func (g *Generator) Burst(freqHz, amplitude float64, on, off, count int) ([]float64, error) {
	if on <= 0 || off < 0 || count <= 0 {
		return nil, fmt.Errorf("burst needs on > 0, off >= 0, count > 0: %d/%d/%d", on, off, count)
	}

	out, err := g.Tone(freqHz, amplitude, count*(on+off))
	if err != nil {
		return nil, err
	}

	gate := make([]float64, len(out))
	for b := 0; b < count; b++ {
		start := b * (on + off)
		for i := start; i < start+on; i++ {
			gate[i] = 1
		}
	}
	vecmath.MulBlockInPlace(out, gate)

	return out, nil
}

// Mix adds each of srcs into a copy of dst. Sources shorter than dst are
// added to its head; longer sources are an error.
func Mix(dst []float64, srcs ...[]float64) ([]float64, error) {
	out := make([]float64, len(dst))
	copy(out, dst)
	for i, src := range srcs {
		if len(src) > len(out) {
			return nil, fmt.Errorf("mix source %d longer than destination: %d > %d", i, len(src), len(out))
		}
		floats.Add(out[:len(src)], src)
	}
	return out, nil
}
