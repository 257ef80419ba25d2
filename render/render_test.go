package render

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsSplitsAtNonFinite(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{1, math.NaN(), 2, 3, math.Inf(1), 4}
	segs, err := segments(x, y)
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Len(t, segs[0], 1)
	assert.Len(t, segs[1], 2)
	assert.Len(t, segs[2], 1)
}

func TestSegmentsLengthMismatch(t *testing.T) {
	_, err := segments([]float64{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLobes(t *testing.T) {
	time := []float64{-1, 0, 1}
	amp := []float64{-0.5, 1, -0.5}
	pos, neg, err := Lobes(time, amp)
	require.NoError(t, err)
	require.Len(t, pos, 5)
	require.Len(t, neg, 5)

	for _, p := range pos {
		assert.GreaterOrEqual(t, p.Y, 0.0)
	}
	for _, p := range neg {
		assert.LessOrEqual(t, p.Y, 0.0)
	}
	assert.Equal(t, 1.0, pos[2].Y)
	assert.Equal(t, -0.5, neg[1].Y)
	assert.Equal(t, 0.0, pos[0].Y)
	assert.Equal(t, 0.0, pos[4].Y)
}

func TestWaveletRenders(t *testing.T) {
	time := make([]float64, 101)
	amp := make([]float64, 101)
	for i := range time {
		time[i] = float64(i-50) * 0.001
		x := math.Pi * math.Pi * 1600 * time[i] * time[i]
		amp[i] = (1 - 2*x) * math.Exp(-x)
	}

	path := filepath.Join(t.TempDir(), "ricker.png")
	err := Wavelet(path, WaveletFigure{Time: time, Amplitude: amp, PeakHz: 40, XRange: [2]float64{-0.025, 0.025}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestNewWaveletPlotTitleAndRange(t *testing.T) {
	p, err := NewWaveletPlot(WaveletFigure{
		Time:      []float64{-0.01, 0, 0.01},
		Amplitude: []float64{-0.2, 1, -0.2},
		PeakHz:    40,
		XRange:    [2]float64{-0.005, 0.005},
	})
	require.NoError(t, err)
	assert.Equal(t, "40 Hz Ricker wavelet", p.Title.Text)
	assert.Equal(t, -0.005, p.X.Min)
	assert.Equal(t, 0.005, p.X.Max)
}

func sampleTrackFigure() TrackFigure {
	depth := []float64{5100, 5200, 5300, 5400, 5450}
	return TrackFigure{
		Depth: depth,
		Tracks: []Track{
			{Label: "AI", Values: []float64{8.5, 9, math.NaN(), 10, 10.5}, Color: Red, XRange: [2]float64{8, 11}},
			{Label: "Vp/Vs", Values: []float64{1.7, 1.75, 1.8, 1.85, 1.8}, Color: Blue, XRange: [2]float64{1.6, 1.9}},
			{Label: "Poisson ratio", Values: []float64{0.22, 0.25, 0.27, 0.29, 0.28}, Color: Green, XRange: [2]float64{0.2, 0.3}},
		},
		DepthWindow: [2]float64{5100, 5450},
		Markers:     []float64{5210, 5340},
		DepthLabel:  "Depth (Feet)",
	}
}

func TestNewTrackPlots(t *testing.T) {
	plots, err := NewTrackPlots(sampleTrackFigure())
	require.NoError(t, err)
	require.Len(t, plots, 3)

	assert.Equal(t, "Depth (Feet)", plots[0].Y.Label.Text)
	assert.Empty(t, plots[1].Y.Label.Text)
	assert.Equal(t, 8.0, plots[0].X.Min)
	assert.Equal(t, 11.0, plots[0].X.Max)
	for _, p := range plots {
		assert.Equal(t, 5100.0, p.Y.Min)
		assert.Equal(t, 5450.0, p.Y.Max)
	}
}

func TestTracksRenders(t *testing.T) {
	for _, name := range []string{"tracks.png", "tracks.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Tracks(path, sampleTrackFigure()))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestTracksErrors(t *testing.T) {
	dir := t.TempDir()
	err := Tracks(filepath.Join(dir, "tracks.png"), TrackFigure{})
	require.True(t, errors.Is(err, ErrNoTracks))

	err = Tracks(filepath.Join(dir, "tracks"), sampleTrackFigure())
	require.ErrorIs(t, err, ErrNoFormat)
}
