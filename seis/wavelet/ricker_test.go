package wavelet

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-seis/internal/testutil"
)

func TestRickerAtZero(t *testing.T) {
	a, err := Ricker([]float64{0}, 40)
	if err != nil {
		t.Fatalf("Ricker() error = %v", err)
	}
	if a[0] != 1 {
		t.Fatalf("Ricker(0) = %v, want exactly 1", a[0])
	}
}

func TestRickerMatchesFormula(t *testing.T) {
	const f = 25.0
	time := []float64{-0.02, -0.01, 0.003, 0.0125}
	got, err := Ricker(time, f)
	if err != nil {
		t.Fatalf("Ricker() error = %v", err)
	}
	want := make([]float64, len(time))
	for i, tt := range time {
		x := math.Pi * math.Pi * f * f * tt * tt
		want[i] = (1 - 2*x) * math.Exp(-x)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestRickerSymmetric(t *testing.T) {
	w, err := NewGenerator().Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	n := w.Len()
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if w.Amplitude[i] != w.Amplitude[j] {
			t.Fatalf("a(%v)=%v != a(%v)=%v", w.Time[i], w.Amplitude[i], w.Time[j], w.Amplitude[j])
		}
	}
	testutil.RequireFinite(t, w.Amplitude)
}

func TestRickerZeroCrossings(t *testing.T) {
	// Side lobes cross zero at t = ±1/(π f √2).
	const f = 40.0
	tz := 1 / (math.Pi * f * math.Sqrt2)
	a, err := Ricker([]float64{-tz, tz}, f)
	if err != nil {
		t.Fatalf("Ricker() error = %v", err)
	}
	for i, v := range a {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("a[%d] = %v, want 0", i, v)
		}
	}
}

func TestRickerErrors(t *testing.T) {
	for _, f := range []float64{0, -40, math.NaN(), math.Inf(1)} {
		if _, err := Ricker([]float64{0}, f); !errors.Is(err, ErrInvalidFrequency) {
			t.Fatalf("Ricker(f=%v) error = %v, want ErrInvalidFrequency", f, err)
		}
	}
	if _, err := Ricker(nil, 40); !errors.Is(err, ErrEmptyAxis) {
		t.Fatalf("Ricker(nil) error = %v, want ErrEmptyAxis", err)
	}
}

func TestGeneratorDefaults(t *testing.T) {
	g := NewGenerator()
	if g.Length() != 0.265 || g.Step() != 0.001 || g.PeakFrequency() != 40 || g.AxisMode() != AxisSymmetric {
		t.Fatalf("unexpected defaults: %v %v %v %v", g.Length(), g.Step(), g.PeakFrequency(), g.AxisMode())
	}

	w, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if w.Len() != 265 || len(w.Amplitude) != 265 {
		t.Fatalf("len = %d/%d, want 265", w.Len(), len(w.Amplitude))
	}
	amp, at := w.PeakAmplitude()
	if amp != 1 || at != 0 {
		t.Fatalf("PeakAmplitude() = (%v, %v), want (1, 0)", amp, at)
	}
}

func TestGeneratorOptions(t *testing.T) {
	g := NewGenerator(
		WithLength(0.128),
		WithStep(0.002),
		WithPeakFrequency(25),
		WithAxisMode(AxisArange),
		nil,
	)
	w, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if w.PeakHz != 25 || w.Step != 0.002 {
		t.Fatalf("wavelet params = (%v, %v), want (25, 0.002)", w.PeakHz, w.Step)
	}
	if w.Time[0] != -0.064 {
		t.Fatalf("Time[0] = %v, want -0.064", w.Time[0])
	}
}

func TestGeneratorInvalid(t *testing.T) {
	if _, err := NewGenerator(WithPeakFrequency(0)).Generate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("Generate() error = %v, want ErrInvalidFrequency", err)
	}
	if _, err := NewGenerator(WithStep(-1)).Generate(); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("Generate() error = %v, want ErrInvalidStep", err)
	}
}
