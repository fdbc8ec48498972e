package goertzel

// ProcessSamples returns the level in dBm of frequency in samples, taken
// as one complete block.
func ProcessSamples(samples []float64, frequency, sampleRate float64) (float64, error) {
	f, err := New(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	return f.Process(samples), nil
}

// ProcessSamplesCoeff is ProcessSamples for a precomputed coefficient. The
// coefficient is not validated.
func ProcessSamplesCoeff(samples []float64, coeff float64) float64 {
	return Level(coeff, Advance(samples, coeff, State{}), len(samples))
}
