// Package wavelet synthesizes zero-phase Ricker wavelets for seismic
// modeling.
//
// A wavelet is evaluated on a time axis built by [TimeAxis]. The default
// [AxisSymmetric] grid is centered on zero and always contains t=0, so the
// sampled pulse is exactly symmetric. [AxisArange] reproduces the half-open
// grid start=-length/2, stop=(length-step)/2, which may miss t=0 and hold one
// more sample before zero than after it.
//
// [AmplitudeSpectrum] and [PeakFrequency] give a frequency-domain check of a
// generated pulse using an FFT plan.
package wavelet
