package rockphys

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-seis/seis/core"
	"github.com/cwbudde/algo-seis/seis/welllog"
)

// Result table column names, in export order.
const (
	ColumnPVelocity = "p_velocity"
	ColumnSVelocity = "s_velocity"
	ColumnDensity   = "rho_log"
	ColumnVpVs      = "VpOverVs"
	ColumnPoisson   = "poisson_ratio"
	ColumnImpedance = "acoustic_impedance"
)

// ColumnNames returns the result table header.
func ColumnNames() []string {
	return []string{
		ColumnPVelocity,
		ColumnSVelocity,
		ColumnDensity,
		ColumnVpVs,
		ColumnPoisson,
		ColumnImpedance,
	}
}

// Input is the per-depth data the attributes are derived from.
type Input struct {
	Sonic   []float64 // µs/ft
	Density []float64 // g/cc, raw
	Shale   []float64 // volume fraction
	Sand    []float64 // volume fraction
}

// InputFromLogs pairs a well log with its petrophysical interpretation.
func InputFromLogs(w welllog.WellLog, p welllog.Petrophysics) Input {
	return Input{
		Sonic:   w.Sonic,
		Density: w.Density,
		Shale:   p.Shale,
		Sand:    p.Sand,
	}
}

// Attributes are the derived rock properties, index aligned with the input.
type Attributes struct {
	PVelocity []float64
	SVelocity []float64
	Density   ClippedDensity
	VpVs      []float64
	Poisson   []float64
	Impedance []float64

	// Degeneracies lists one entry per estimator that produced undefined
	// samples.
	Degeneracies []*core.DomainError
}

// Len returns the number of depth samples.
func (a Attributes) Len() int { return len(a.PVelocity) }

// DegenerateSamples returns the number of distinct samples flagged by any
// estimator.
func (a Attributes) DegenerateSamples() int {
	seen := make(map[int]struct{})
	for _, d := range a.Degeneracies {
		for _, i := range d.Indices {
			seen[i] = struct{}{}
		}
	}
	return len(seen)
}

// DegenerateIndices returns the sorted distinct flagged sample indices.
func (a Attributes) DegenerateIndices() []int {
	seen := make(map[int]struct{})
	var idx []int
	for _, d := range a.Degeneracies {
		for _, i := range d.Indices {
			if _, ok := seen[i]; !ok {
				seen[i] = struct{}{}
				idx = append(idx, i)
			}
		}
	}
	sort.Ints(idx)
	return idx
}

// Table assembles the attributes into the export table, one column per
// attribute in [ColumnNames] order and one row per depth sample. The
// density column holds the clipped log.
func (a Attributes) Table() welllog.Table {
	return welllog.Table{
		Header: ColumnNames(),
		Columns: [][]float64{
			a.PVelocity,
			a.SVelocity,
			a.Density,
			a.VpVs,
			a.Poisson,
			a.Impedance,
		},
	}
}

// Compute derives every attribute from in. Density is clipped at ceiling
// before it enters the impedance; Vp/Vs and Poisson's ratio do not use it.
// The input slices are not modified.
//
// Numeric degeneracies are collected in Attributes.Degeneracies; the
// returned error is non-nil only for malformed input.
func Compute(in Input, ceiling float64) (Attributes, error) {
	if err := checkSeries(in.Sonic, in.Density, in.Shale, in.Sand); err != nil {
		return Attributes{}, fmt.Errorf("%w: sonic %d, density %d, shale %d, sand %d",
			err, len(in.Sonic), len(in.Density), len(in.Shale), len(in.Sand))
	}

	var a Attributes
	collect := func(out []float64, err error) ([]float64, error) {
		if err == nil {
			return out, nil
		}
		if de, ok := core.AsDomainError(err); ok {
			a.Degeneracies = append(a.Degeneracies, de)
			return out, nil
		}
		return nil, err
	}

	var err error
	if a.PVelocity, err = collect(PrimaryVelocity(in.Sonic)); err != nil {
		return Attributes{}, err
	}
	if a.SVelocity, err = collect(ShearVelocity(a.PVelocity, in.Shale, in.Sand)); err != nil {
		return Attributes{}, err
	}
	if a.VpVs, err = collect(VelocityRatio(a.PVelocity, a.SVelocity)); err != nil {
		return Attributes{}, err
	}
	if a.Poisson, err = collect(PoissonRatio(a.VpVs)); err != nil {
		return Attributes{}, err
	}

	a.Density = ClipDensity(in.Density, ceiling)
	if a.Impedance, err = collect(AcousticImpedance(a.PVelocity, a.Density)); err != nil {
		return Attributes{}, err
	}

	return a, nil
}
