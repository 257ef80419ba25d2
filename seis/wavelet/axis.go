package wavelet

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidLength    = errors.New("wavelet: length must be > 0 and finite")
	ErrInvalidStep      = errors.New("wavelet: step must be > 0 and finite")
	ErrInvalidFrequency = errors.New("wavelet: peak frequency must be > 0 and finite")
	ErrEmptyAxis        = errors.New("wavelet: time axis has no samples")
	ErrUnknownAxisMode  = errors.New("wavelet: unknown axis mode")
)

// AxisMode selects how the time grid is laid out around zero.
type AxisMode int

const (
	// AxisSymmetric samples k*step for k in [-h, h] with h = round(length/step)/2.
	AxisSymmetric AxisMode = iota
	// AxisArange samples -length/2 + i*step strictly below (length-step)/2.
	AxisArange
)

func (m AxisMode) String() string {
	switch m {
	case AxisSymmetric:
		return "symmetric"
	case AxisArange:
		return "arange"
	default:
		return fmt.Sprintf("AxisMode(%d)", int(m))
	}
}

// ParseAxisMode maps "symmetric" or "arange" (case-insensitive) to a mode.
func ParseAxisMode(s string) (AxisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "symmetric":
		return AxisSymmetric, nil
	case "arange":
		return AxisArange, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxisMode, s)
	}
}

// TimeAxis builds an evenly spaced, strictly increasing time grid spanning
// length seconds at the given step.
func TimeAxis(length, step float64, mode AxisMode) ([]float64, error) {
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLength, length)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	switch mode {
	case AxisSymmetric:
		return symmetricAxis(length, step)
	case AxisArange:
		return arangeAxis(length, step)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAxisMode, mode)
	}
}

func symmetricAxis(length, step float64) ([]float64, error) {
	n := int(math.Round(length / step))
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %v, step %v", ErrEmptyAxis, length, step)
	}

	h := n / 2
	out := make([]float64, 2*h+1)
	for i := range out {
		out[i] = float64(i-h) * step
	}
	return out, nil
}

func arangeAxis(length, step float64) ([]float64, error) {
	start := -length / 2
	stop := (length - step) / 2
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, fmt.Errorf("%w: length %v, step %v", ErrEmptyAxis, length, step)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}
