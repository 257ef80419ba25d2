// Package config holds the parameters of both pipelines. Defaults reproduce
// the constants of the well B field study; a YAML file may override any
// subset of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-seis/seis/rockphys"
	"github.com/cwbudde/algo-seis/seis/wavelet"
	"github.com/cwbudde/algo-seis/seis/welllog"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the complete run configuration.
type Config struct {
	Wavelet     WaveletConfig     `yaml:"wavelet"`
	RockPhysics RockPhysicsConfig `yaml:"rock_physics"`
	Display     DisplayConfig     `yaml:"display"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// WaveletConfig parameterizes Pipeline A.
type WaveletConfig struct {
	Length        float64 `yaml:"length"`         // s
	Step          float64 `yaml:"step"`           // s
	PeakFrequency float64 `yaml:"peak_frequency"` // Hz
	Axis          string  `yaml:"axis"`           // symmetric | arange
	Figure        string  `yaml:"figure"`
	Table         string  `yaml:"table"` // optional time,amplitude CSV
}

// RockPhysicsConfig parameterizes Pipeline B.
type RockPhysicsConfig struct {
	WellLog        string          `yaml:"well_log"`
	Petrophysical  string          `yaml:"petrophysical"`
	Output         string          `yaml:"output"`
	Figure         string          `yaml:"figure"`
	DensityCeiling float64         `yaml:"density_ceiling"` // g/cc
	Columns        welllog.Columns `yaml:"columns"`
}

// DisplayConfig fixes the depth-track layout.
type DisplayConfig struct {
	DepthWindow    [2]float64 `yaml:"depth_window"` // ft, top then base
	Markers        []float64  `yaml:"markers"`      // ft
	ImpedanceRange [2]float64 `yaml:"impedance_range"`
	RatioRange     [2]float64 `yaml:"ratio_range"`
	PoissonRange   [2]float64 `yaml:"poisson_range"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Wavelet: WaveletConfig{
			Length:        wavelet.DefaultLength,
			Step:          wavelet.DefaultStep,
			PeakFrequency: wavelet.DefaultPeakHz,
			Axis:          wavelet.AxisSymmetric.String(),
			Figure:        "ricker.png",
		},
		RockPhysics: RockPhysicsConfig{
			WellLog:        "well_B.csv",
			Petrophysical:  "petrophysical.csv",
			Output:         "rockphysics.csv",
			Figure:         "rockphysics.png",
			DensityCeiling: rockphys.DefaultDensityCeiling,
			Columns:        welllog.DefaultColumns(),
		},
		Display: DisplayConfig{
			DepthWindow:    [2]float64{5100, 5450},
			Markers:        []float64{5210, 5340},
			ImpedanceRange: [2]float64{8, 11},
			RatioRange:     [2]float64{1.6, 1.9},
			PoissonRange:   [2]float64{0.2, 0.3},
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameters that no pipeline can run with.
func (c Config) Validate() error {
	w := c.Wavelet
	if !(w.Length > 0) {
		return fmt.Errorf("%w: wavelet.length must be > 0, got %v", ErrInvalid, w.Length)
	}
	if !(w.Step > 0) || w.Step > w.Length {
		return fmt.Errorf("%w: wavelet.step must be in (0, length], got %v", ErrInvalid, w.Step)
	}
	if !(w.PeakFrequency > 0) {
		return fmt.Errorf("%w: wavelet.peak_frequency must be > 0, got %v", ErrInvalid, w.PeakFrequency)
	}
	if _, err := wavelet.ParseAxisMode(w.Axis); err != nil {
		return fmt.Errorf("%w: wavelet.axis: %v", ErrInvalid, err)
	}

	r := c.RockPhysics
	if !(r.DensityCeiling > 0) {
		return fmt.Errorf("%w: rock_physics.density_ceiling must be > 0, got %v", ErrInvalid, r.DensityCeiling)
	}
	if err := r.Columns.Validate(); err != nil {
		return fmt.Errorf("%w: rock_physics.columns: %v", ErrInvalid, err)
	}

	d := c.Display
	for name, rg := range map[string][2]float64{
		"depth_window":    d.DepthWindow,
		"impedance_range": d.ImpedanceRange,
		"ratio_range":     d.RatioRange,
		"poisson_range":   d.PoissonRange,
	} {
		if !(rg[0] < rg[1]) {
			return fmt.Errorf("%w: display.%s must be increasing, got %v", ErrInvalid, name, rg)
		}
	}
	return nil
}

// AxisMode returns the parsed wavelet axis mode. Validate guarantees it parses.
func (w WaveletConfig) AxisMode() wavelet.AxisMode {
	m, err := wavelet.ParseAxisMode(w.Axis)
	if err != nil {
		return wavelet.AxisSymmetric
	}
	return m
}
