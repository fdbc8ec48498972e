package goertzel

import "fmt"

// Filter is a whole-buffer Goertzel detector for one target frequency.
//
// The recurrence state and the number of samples seen accumulate across
// calls to Process until Reset is called, so repeated calls report the level
// over a progressively longer observation window. To measure independent
// blocks, call Reset between them.
type Filter struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	state      State
	count      int
}

// New creates a Filter for frequency at sampleRate.
//
// frequency must satisfy 0 < frequency < sampleRate/2.
func New(frequency, sampleRate float64) (*Filter, error) {
	if err := validate(frequency, sampleRate); err != nil {
		return nil, err
	}

	return &Filter{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      Coefficient(frequency, sampleRate),
	}, nil
}

// Reset clears the recurrence state and the sample count.
func (f *Filter) Reset() {
	f.state = State{}
	f.count = 0
}

// Process runs samples through the filter and returns the level in dBm of
// the target frequency over all samples seen since the last Reset.
func (f *Filter) Process(samples []float64) float64 {
	f.state = Advance(samples, f.coeff, f.state)
	f.count += len(samples)

	return Level(f.coeff, f.state, f.count)
}

// ProcessSample runs a single sample through the filter.
func (f *Filter) ProcessSample(x float64) {
	f.state = f.state.Step(x, f.coeff)
	f.count++
}

// Power returns the normalized power over the samples seen since the last
// Reset.
func (f *Filter) Power() float64 {
	return Power(f.coeff, f.state, f.count)
}

// DBm returns the current level in dBm without processing new samples.
func (f *Filter) DBm() float64 {
	return DBm(f.Power())
}

// Frequency returns the target frequency in Hz.
func (f *Filter) Frequency() float64 { return f.frequency }

// SampleRate returns the sampling frequency in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Coefficient returns the recurrence coefficient.
func (f *Filter) Coefficient() float64 { return f.coeff }

// State returns the current recurrence state.
func (f *Filter) State() State { return f.state }

// Count returns the number of samples processed since the last Reset.
func (f *Filter) Count() int { return f.count }

// String describes the filter configuration and recurrence state. The format
// is meant for logs and debugging and may change.
func (f *Filter) String() string {
	return fmt.Sprintf("goertzel: f=%g, fs=%g, k=%g, vn1=%g, vn2=%g",
		f.frequency, f.sampleRate, f.coeff, f.state.Prev1, f.state.Prev2)
}
