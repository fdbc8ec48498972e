package core

import "math"

// ReferenceImpedance is the load, in ohms, that dBm levels are referenced to.
// 600 ohms is the usual telephony and studio audio line impedance.
const ReferenceImpedance = 600.0

// dBmScale maps a normalized squared amplitude to milliwatts across
// ReferenceImpedance: P[mW] = 2 * p * 1000 / R.
const dBmScale = 2 * 1000 / ReferenceImpedance

// PowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// DBToPower converts dB to linear power (10*log10 convention).
func DBToPower(db float64) float64 {
	return math.Pow(10, db/10)
}

// PowerToDBm converts a normalized Goertzel power (squared amplitude over
// four) to decibels referenced to 1 mW across ReferenceImpedance.
func PowerToDBm(power float64) float64 {
	return PowerToDB(power * dBmScale)
}

// DBmToPower is the inverse of PowerToDBm.
func DBmToPower(dbm float64) float64 {
	return DBToPower(dbm) / dBmScale
}

// DBmToPeakAmplitude returns the peak amplitude of a sine that dissipates
// dbm across ReferenceImpedance. 0 dBm is about 1.095 V peak (0.775 V rms).
func DBmToPeakAmplitude(dbm float64) float64 {
	// A sine of peak a has normalized power a*a/4.
	return 2 * math.Sqrt(DBmToPower(dbm))
}

// PeakAmplitudeToDBm is the inverse of DBmToPeakAmplitude.
func PeakAmplitudeToDBm(amplitude float64) float64 {
	return PowerToDBm(amplitude * amplitude / 4)
}
