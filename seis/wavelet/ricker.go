package wavelet

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Ricker evaluates a(t) = (1 - 2π²f²t²)·exp(-π²f²t²) for every sample of
// time and returns a new slice index-aligned with it.
func Ricker(time []float64, peakHz float64) ([]float64, error) {
	if !(peakHz > 0) || math.IsInf(peakHz, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrequency, peakHz)
	}
	if len(time) == 0 {
		return nil, ErrEmptyAxis
	}

	// arg[i] = π²f²t²
	arg := make([]float64, len(time))
	vecmath.MulBlock(arg, time, time)
	vecmath.ScaleBlock(arg, arg, math.Pi*math.Pi*peakHz*peakHz)

	out := make([]float64, len(time))
	for i, x := range arg {
		out[i] = (1 - 2*x) * math.Exp(-x)
	}
	return out, nil
}

// Wavelet is a sampled pulse together with its time axis.
type Wavelet struct {
	Time      []float64
	Amplitude []float64
	PeakHz    float64
	Step      float64
}

// Len returns the number of samples.
func (w Wavelet) Len() int { return len(w.Time) }

// PeakAmplitude returns the largest absolute amplitude and its time.
func (w Wavelet) PeakAmplitude() (amp, at float64) {
	for i, v := range w.Amplitude {
		if math.Abs(v) > math.Abs(amp) {
			amp, at = v, w.Time[i]
		}
	}
	return amp, at
}
