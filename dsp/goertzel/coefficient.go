package goertzel

import "math"

// Coefficient returns the Goertzel coefficient 2*cos(2*pi*frequency/sampleRate).
//
// It is defined for any input, but only 0 < frequency < sampleRate/2 yields a
// meaningful level; the constructors enforce that range.
func Coefficient(frequency, sampleRate float64) float64 {
	return 2 * math.Cos(2*math.Pi*frequency/sampleRate)
}
