// Package spectrum provides the 2D spectral transform used for frequency-domain
// image mixing.
//
// Grids are transformed with a separable 2D DFT (rows, then columns) and the
// result is shifted so the zero-frequency bin sits at the grid center
// (row Height/2, column Width/2). [Inverse] undoes the shift before the
// inverse DFT, so Inverse(Forward(g)) reproduces g within floating-point
// tolerance for any grid size.
//
// A [Spectrum] decomposes into a [ComponentSet] of magnitude, phase, real and
// imaginary planes. Either pair of planes rebuilds the spectrum:
//
//	spec, err := spectrum.Forward(grid)
//	set, err := spectrum.Decompose(spec)
//	rebuilt, err := spectrum.Reconstruct(spectrum.MagnitudePhase, set)
//	out, err := spectrum.Inverse(rebuilt)
//
// # Backends
//
// One-dimensional transforms use algo-fft plans, which cover every length
// tested. Should a length be rejected, gonum's mixed-radix complex FFT takes
// over, scaled so both backends share the same normalization (forward
// unscaled, inverse 1/N).
//
// A [Plan] caches the per-axis transforms and scratch rows for one grid size
// and is not safe for concurrent use. The package-level [Forward] and
// [Inverse] build a fresh plan per call.
package spectrum
