// Package render draws the wavelet figure and the rock-physics depth tracks.
//
// The output format follows the file extension (png, svg, pdf, eps, jpg,
// tiff). Non-finite samples split a curve into separate segments instead of
// failing the render.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

var (
	ErrLengthMismatch = errors.New("render: x and y lengths differ")
	ErrNoFormat       = errors.New("render: output path has no file extension")
)

var (
	Violet = color.RGBA{R: 238, G: 130, B: 238, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 128, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
)

const labelSize = 16

// segments splits (x, y) into runs of finite points.
func segments(x, y []float64) ([]plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	var (
		out []plotter.XYs
		cur plotter.XYs
	)
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func addLines(p *plot.Plot, x, y []float64, c color.Color) error {
	segs, err := segments(x, y)
	if err != nil {
		return err
	}
	for _, s := range segs {
		l, err := plotter.NewLine(s)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}
	return nil
}

func styleLabels(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(labelSize)
	p.X.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
}

func format(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s", ErrNoFormat, path)
	}
	return ext, nil
}

// save draws the plots side by side on one canvas and writes it to path.
func save(path string, width, height vg.Length, plots ...*plot.Plot) (err error) {
	ext, err := format(path)
	if err != nil {
		return err
	}
	c, err := draw.NewFormattedCanvas(width, height, ext)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	dc := draw.New(c)
	dc.SetColor(Violet)
	dc.Fill(dc.Rectangle.Path())

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 4,
		PadBottom: vg.Millimeter * 4,
		PadLeft:   vg.Millimeter * 4,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()

	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}
