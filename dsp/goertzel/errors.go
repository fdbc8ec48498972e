package goertzel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-goertzel/dsp/core"
)

// Errors returned by the filter constructors.
var (
	ErrInvalidFrequency  = errors.New("goertzel: frequency must be between 0 and sampleRate/2")
	ErrInvalidSampleRate = errors.New("goertzel: sample rate must be > 0")
	ErrInvalidWindowSize = errors.New("goertzel: window size must be >= 1")
)

// validate checks that frequency lies strictly between DC and Nyquist.
func validate(frequency, sampleRate float64) error {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if frequency <= 0 || frequency >= sampleRate/2 || !core.IsFinite(frequency) {
		return fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, frequency, sampleRate)
	}

	return nil
}
