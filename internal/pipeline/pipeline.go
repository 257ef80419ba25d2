// Package pipeline runs the wavelet synthesis and rock-physics derivation
// end to end: load, compute, export, render.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-seis/internal/config"
	ilog "github.com/cwbudde/algo-seis/internal/log"
	"github.com/cwbudde/algo-seis/render"
	"github.com/cwbudde/algo-seis/seis/rockphys"
	"github.com/cwbudde/algo-seis/seis/wavelet"
	"github.com/cwbudde/algo-seis/seis/welllog"
	"github.com/cwbudde/algo-seis/stats/zone"
)

// WaveletResult is the outcome of [RunWavelet].
type WaveletResult struct {
	Wavelet      wavelet.Wavelet
	SpectralPeak float64 // Hz
}

// RunWavelet generates the configured Ricker wavelet, checks its spectral
// peak, and writes the figure and optional table.
func RunWavelet(cfg config.WaveletConfig, logger *zap.Logger) (WaveletResult, error) {
	logger = ilog.OrNop(logger).Named("wavelet")

	mode, err := wavelet.ParseAxisMode(cfg.Axis)
	if err != nil {
		return WaveletResult{}, err
	}

	g := wavelet.NewGenerator(
		wavelet.WithLength(cfg.Length),
		wavelet.WithStep(cfg.Step),
		wavelet.WithPeakFrequency(cfg.PeakFrequency),
		wavelet.WithAxisMode(mode),
	)
	w, err := g.Generate()
	if err != nil {
		return WaveletResult{}, err
	}
	logger.Debug("generated wavelet",
		zap.Int("samples", w.Len()),
		zap.Float64("first", w.Time[0]),
		zap.Float64("last", w.Time[w.Len()-1]),
		zap.Stringer("axis", mode))

	peak, err := wavelet.PeakFrequency(w.Amplitude, w.Step)
	if err != nil {
		return WaveletResult{}, err
	}
	res := WaveletResult{Wavelet: w, SpectralPeak: peak}

	if cfg.Table != "" {
		tab := welllog.Table{
			Header:  []string{"time", "amplitude"},
			Columns: [][]float64{w.Time, w.Amplitude},
		}
		if err := welllog.SaveTable(cfg.Table, tab); err != nil {
			return res, err
		}
		logger.Debug("wrote wavelet table", zap.String("path", cfg.Table))
	}

	if cfg.Figure != "" {
		fig := render.WaveletFigure{
			Time:      w.Time,
			Amplitude: w.Amplitude,
			PeakHz:    w.PeakHz,
			XRange:    [2]float64{-cfg.Length / 4, cfg.Length / 4},
		}
		if err := render.Wavelet(cfg.Figure, fig); err != nil {
			return res, err
		}
		logger.Debug("rendered wavelet", zap.String("path", cfg.Figure))
	}

	logger.Info("wavelet complete",
		zap.Float64("peak_frequency", w.PeakHz),
		zap.Float64("spectral_peak", peak),
		zap.Int("samples", w.Len()))
	return res, nil
}

// RockPhysicsResult is the outcome of [RunRockPhysics].
type RockPhysicsResult struct {
	Depth      []float64
	Attributes rockphys.Attributes
	Zones      []zone.Summary
}

// DegenerateSamples returns the number of depth samples with undefined
// attributes.
func (r RockPhysicsResult) DegenerateSamples() int {
	return r.Attributes.DegenerateSamples()
}

// RunRockPhysics loads both logs, derives the attributes, exports the result
// table, renders the depth tracks and summarizes the marker zones.
//
// Input errors abort the run. Numeric degeneracies do not; they are logged
// as warnings and counted in the result.
func RunRockPhysics(cfg config.Config, logger *zap.Logger) (RockPhysicsResult, error) {
	logger = ilog.OrNop(logger).Named("rockphysics")
	rp := cfg.RockPhysics

	well, err := welllog.LoadWellLog(rp.WellLog, rp.Columns)
	if err != nil {
		return RockPhysicsResult{}, err
	}
	petro, err := welllog.LoadPetrophysics(rp.Petrophysical, rp.Columns)
	if err != nil {
		return RockPhysicsResult{}, err
	}
	if err := welllog.CheckAligned(well, petro); err != nil {
		return RockPhysicsResult{}, err
	}
	logger.Debug("loaded logs",
		zap.String("well_log", rp.WellLog),
		zap.String("petrophysical", rp.Petrophysical),
		zap.Int("samples", well.Len()))

	attrs, err := rockphys.Compute(rockphys.InputFromLogs(well, petro), rp.DensityCeiling)
	if err != nil {
		return RockPhysicsResult{}, err
	}
	res := RockPhysicsResult{Depth: well.Depth, Attributes: attrs}

	if rp.Output != "" {
		if err := welllog.SaveTable(rp.Output, attrs.Table()); err != nil {
			return res, err
		}
		logger.Debug("wrote result table", zap.String("path", rp.Output))
	}

	if rp.Figure != "" {
		if err := render.Tracks(rp.Figure, trackFigure(cfg.Display, well.Depth, attrs)); err != nil {
			return res, err
		}
		logger.Debug("rendered tracks", zap.String("path", rp.Figure))
	}

	intervals, err := zone.Intervals(cfg.Display.DepthWindow, cfg.Display.Markers)
	if err != nil {
		return res, err
	}
	res.Zones, err = zone.Summarize(well.Depth, zoneSeries(attrs), intervals)
	if err != nil {
		return res, err
	}

	for _, d := range attrs.Degeneracies {
		logger.Warn("numeric degeneracy",
			zap.String("op", d.Op),
			zap.String("reason", d.Err.Error()),
			zap.Int("samples", d.Count()))
	}
	if n := attrs.DegenerateSamples(); n > 0 {
		logger.Warn("attributes undefined at some depths",
			zap.Int("samples", n),
			zap.Ints("indices", attrs.DegenerateIndices()))
	}

	logger.Info("rock physics complete",
		zap.Int("samples", attrs.Len()),
		zap.Int("degenerate_samples", attrs.DegenerateSamples()),
		zap.Int("zones", len(intervals)))
	return res, nil
}

func trackFigure(d config.DisplayConfig, depth []float64, a rockphys.Attributes) render.TrackFigure {
	return render.TrackFigure{
		Depth: depth,
		Tracks: []render.Track{
			{Label: "AI", Values: a.Impedance, Color: render.Red, XRange: d.ImpedanceRange},
			{Label: "Vp/Vs", Values: a.VpVs, Color: render.Blue, XRange: d.RatioRange},
			{Label: "Poisson ratio", Values: a.Poisson, Color: render.Green, XRange: d.PoissonRange},
		},
		DepthWindow: d.DepthWindow,
		Markers:     d.Markers,
		DepthLabel:  "Depth (Feet)",
	}
}

func zoneSeries(a rockphys.Attributes) []zone.Series {
	return []zone.Series{
		{Name: rockphys.ColumnImpedance, Values: a.Impedance},
		{Name: rockphys.ColumnVpVs, Values: a.VpVs},
		{Name: rockphys.ColumnPoisson, Values: a.Poisson},
	}
}

// String renders a one-line summary, used by the CLI.
func (r WaveletResult) String() string {
	amp, at := r.Wavelet.PeakAmplitude()
	return fmt.Sprintf("%d samples, peak amplitude %.3f at %.4f s, spectral peak %.2f Hz",
		r.Wavelet.Len(), amp, at, r.SpectralPeak)
}
