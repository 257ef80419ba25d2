package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrNoTracks = errors.New("render: no tracks to draw")

// Track is one attribute curve plotted against depth.
type Track struct {
	Label  string
	Values []float64
	Color  color.Color
	XRange [2]float64
}

// TrackFigure describes a row of depth tracks sharing one depth axis.
type TrackFigure struct {
	Depth       []float64
	Tracks      []Track
	DepthWindow [2]float64 // top, base
	Markers     []float64
	DepthLabel  string
}

// NewTrackPlots builds one plot per track. Depth increases downward.
func NewTrackPlots(fig TrackFigure) ([]*plot.Plot, error) {
	if len(fig.Tracks) == 0 {
		return nil, ErrNoTracks
	}

	plots := make([]*plot.Plot, len(fig.Tracks))
	for i, tr := range fig.Tracks {
		p := plot.New()
		p.BackgroundColor = color.White
		p.X.Label.Text = tr.Label
		if i == 0 {
			p.Y.Label.Text = fig.DepthLabel
		}
		styleLabels(p)
		p.Add(plotter.NewGrid())

		if err := addLines(p, tr.Values, fig.Depth, tr.Color); err != nil {
			return nil, fmt.Errorf("track %s: %w", tr.Label, err)
		}

		xmin, xmax := tr.XRange[0], tr.XRange[1]
		if !(xmin < xmax) {
			xmin, xmax = p.X.Min, p.X.Max
		}
		if xmin < xmax {
			for _, m := range fig.Markers {
				if err := addMarker(p, m, xmin, xmax); err != nil {
					return nil, err
				}
			}
		}

		if tr.XRange[0] < tr.XRange[1] {
			p.X.Min, p.X.Max = tr.XRange[0], tr.XRange[1]
		}
		if fig.DepthWindow[0] < fig.DepthWindow[1] {
			p.Y.Min, p.Y.Max = fig.DepthWindow[0], fig.DepthWindow[1]
		}
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
		plots[i] = p
	}
	return plots, nil
}

// addMarker draws a dashed horizontal horizon line across [xmin, xmax].
func addMarker(p *plot.Plot, depth, xmin, xmax float64) error {
	l, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: depth}, {X: xmax, Y: depth}})
	if err != nil {
		return fmt.Errorf("render: marker %v: %w", depth, err)
	}
	l.LineStyle.Color = color.NRGBA{A: 204}
	l.LineStyle.Width = vg.Points(2.5)
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(l)
	return nil
}

// Tracks renders fig to path as side-by-side panels.
func Tracks(path string, fig TrackFigure) error {
	plots, err := NewTrackPlots(fig)
	if err != nil {
		return err
	}
	return save(path, 12*vg.Inch, 14*vg.Inch, plots...)
}
