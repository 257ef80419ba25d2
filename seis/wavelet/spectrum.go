package wavelet

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const minSpectrumSize = 4096

var ErrEmptySignal = errors.New("wavelet: empty signal")

// AmplitudeSpectrum returns the one-sided magnitude spectrum of samples taken
// every step seconds. The signal is zero padded to fftSize, rounded up to a
// power of two; fftSize <= 0 selects at least 4096 points.
//
// freqs[k] is k/(N*step) Hz for k in [0, N/2].
func AmplitudeSpectrum(samples []float64, step float64, fftSize int) (freqs, mags []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if !(step > 0) {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	n := fftSize
	if n <= 0 {
		n = minSpectrumSize
	}
	if n < len(samples) {
		n = len(samples)
	}
	n = nextPowerOf2(n)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("wavelet: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("wavelet: forward FFT: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	freqs = make([]float64, bins)
	df := 1 / (float64(n) * step)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}
	return freqs, mags, nil
}

// PeakFrequency returns the frequency of the largest spectral magnitude of a
// pulse sampled every step seconds.
func PeakFrequency(samples []float64, step float64) (float64, error) {
	freqs, mags, err := AmplitudeSpectrum(samples, step, 0)
	if err != nil {
		return 0, err
	}

	best := 0
	for k, m := range mags {
		if m > mags[best] {
			best = k
		}
	}
	return freqs[best], nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
