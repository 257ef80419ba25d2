package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WaveletFigure describes the wavelet plot.
type WaveletFigure struct {
	Time      []float64
	Amplitude []float64
	PeakHz    float64
	// XRange limits the time axis; a zero range shows all samples.
	XRange [2]float64
}

// Lobes returns closed polygons covering the area between the curve and
// zero, split into the positive and negative parts.
func Lobes(time, amp []float64) (pos, neg plotter.XYs, err error) {
	segs, err := segments(time, amp)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range segs {
		pos = append(pos, lobe(s, func(v float64) float64 { return max(v, 0) })...)
		neg = append(neg, lobe(s, func(v float64) float64 { return min(v, 0) })...)
	}
	return pos, neg, nil
}

func lobe(s plotter.XYs, clip func(float64) float64) plotter.XYs {
	out := make(plotter.XYs, 0, len(s)+2)
	out = append(out, plotter.XY{X: s[0].X, Y: 0})
	for _, p := range s {
		out = append(out, plotter.XY{X: p.X, Y: clip(p.Y)})
	}
	out = append(out, plotter.XY{X: s[len(s)-1].X, Y: 0})
	return out
}

// NewWaveletPlot builds the wavelet plot with filled lobes.
func NewWaveletPlot(fig WaveletFigure) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = color.White
	p.Title.Text = fmt.Sprintf("%g Hz Ricker wavelet", fig.PeakHz)
	p.X.Label.Text = "Two-way time (sec)"
	p.Y.Label.Text = "Amplitude"
	styleLabels(p)
	p.Add(plotter.NewGrid())

	pos, neg, err := Lobes(fig.Time, fig.Amplitude)
	if err != nil {
		return nil, err
	}
	for _, l := range []struct {
		xys plotter.XYs
		c   color.Color
	}{
		{pos, color.NRGBA{B: 255, A: 153}},
		{neg, color.NRGBA{R: 255, A: 153}},
	} {
		if len(l.xys) == 0 {
			continue
		}
		poly, err := plotter.NewPolygon(l.xys)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		poly.Color = l.c
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	if err := addLines(p, fig.Time, fig.Amplitude, Blue); err != nil {
		return nil, err
	}

	if fig.XRange[0] < fig.XRange[1] {
		p.X.Min, p.X.Max = fig.XRange[0], fig.XRange[1]
	}
	return p, nil
}

// Wavelet renders fig to path.
func Wavelet(path string, fig WaveletFigure) error {
	p, err := NewWaveletPlot(fig)
	if err != nil {
		return err
	}
	return save(path, 10*vg.Inch, 10*vg.Inch, p)
}
