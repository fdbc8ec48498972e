package goertzel

import "fmt"

// Stream is a sample-by-sample Goertzel detector that reports one level per
// block of WindowSize samples.
//
// Blocks do not overlap and share no state: after a block completes the
// recurrence and the counter start again from zero.
type Stream struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	window     int
	count      int
	state      State
}

// NewStream creates a Stream for frequency at sampleRate that emits a level
// every n samples.
func NewStream(frequency, sampleRate float64, n int) (*Stream, error) {
	if err := validate(frequency, sampleRate); err != nil {
		return nil, err
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindowSize, n)
	}

	return &Stream{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      Coefficient(frequency, sampleRate),
		window:     n,
	}, nil
}

// Step feeds one sample. When the sample completes a block it returns the
// block's level in dBm and true, and the stream starts a new block.
// Otherwise it returns 0 and false.
func (s *Stream) Step(x float64) (float64, bool) {
	s.state = s.state.Step(x, s.coeff)
	s.count++

	if s.count < s.window {
		return 0, false
	}

	level := Level(s.coeff, s.state, s.window)
	s.state = State{}
	s.count = 0

	return level, true
}

// ProcessBlock feeds samples in order and appends the level of every block
// completed along the way to dst. Samples after the last completed block stay
// pending for the next call.
func (s *Stream) ProcessBlock(samples, dst []float64) []float64 {
	for _, x := range samples {
		if level, ok := s.Step(x); ok {
			dst = append(dst, level)
		}
	}

	return dst
}

// Reset discards the partially accumulated block.
func (s *Stream) Reset() {
	s.state = State{}
	s.count = 0
}

// Frequency returns the target frequency in Hz.
func (s *Stream) Frequency() float64 { return s.frequency }

// SampleRate returns the sampling frequency in Hz.
func (s *Stream) SampleRate() float64 { return s.sampleRate }

// Coefficient returns the recurrence coefficient.
func (s *Stream) Coefficient() float64 { return s.coeff }

// WindowSize returns the number of samples per emitted level.
func (s *Stream) WindowSize() int { return s.window }

// Pending returns how many samples of the current block have been fed.
func (s *Stream) Pending() int { return s.count }

// State returns the recurrence state of the current block.
func (s *Stream) State() State { return s.state }

// String describes the stream configuration and progress.
func (s *Stream) String() string {
	return fmt.Sprintf("goertzel: f=%g, fs=%g, k=%g, n=%d/%d, vn1=%g, vn2=%g",
		s.frequency, s.sampleRate, s.coeff, s.count, s.window, s.state.Prev1, s.state.Prev2)
}
