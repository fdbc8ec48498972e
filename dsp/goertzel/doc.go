// Package goertzel measures the level of a single target frequency in a
// stream of real samples with the Goertzel recursive filter.
//
// The Goertzel algorithm evaluates one term of the Discrete Fourier Transform
// with a second-order recurrence, which makes it far cheaper than a full FFT
// when only one bin matters, as in tone or pilot detection.
//
// The package is split into stateless building blocks and two thin stateful
// front ends built from them:
//
//   - [Coefficient] derives the recurrence coefficient 2*cos(2*pi*f/fs).
//   - [Advance] and [State.Step] run the recurrence over samples.
//   - [Power], [DBm] and [Level] turn the final state into a normalized power
//     and a dBm level referenced to 600 ohms.
//   - [Filter] processes whole buffers and accumulates until [Filter.Reset].
//   - [Stream] takes one sample at a time and emits a level for every
//     completed block of N samples, resetting itself after each block.
//
// Instances are not safe for concurrent use. Callers sharing one instance
// between goroutines must serialize calls themselves.
package goertzel
