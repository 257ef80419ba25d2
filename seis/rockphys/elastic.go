package rockphys

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seis/seis/core"
)

// AcousticImpedance returns vp*rho sample by sample.
func AcousticImpedance(vp []float64, rho ClippedDensity) ([]float64, error) {
	if err := checkSeries(vp, rho); err != nil {
		return nil, err
	}

	out := make([]float64, len(vp))
	vecmath.MulBlock(out, vp, rho)

	return out, flag("acoustic impedance", core.ErrNonFinite, out, nil)
}

// VelocityRatio returns vp/vs. Zero shear velocity is reported with
// core.ErrZeroShearVelocity.
func VelocityRatio(vp, vs []float64) ([]float64, error) {
	if err := checkSeries(vp, vs); err != nil {
		return nil, err
	}

	out := make([]float64, len(vp))
	for i := range vp {
		out[i] = vp[i] / vs[i]
	}

	return out, flag("velocity ratio", core.ErrZeroShearVelocity, out, func(i int) bool {
		return vs[i] == 0
	})
}

// PoissonRatio converts Vp/Vs ratios to Poisson's ratio,
// (0.5 - (1/r)²) / (1 - (1/r)²). A ratio of magnitude one makes the
// denominator vanish and is reported with core.ErrUnitVelocityRatio.
func PoissonRatio(ratio []float64) ([]float64, error) {
	if err := checkSeries(ratio); err != nil {
		return nil, err
	}

	out := make([]float64, len(ratio))
	unit := make([]bool, len(ratio))
	for i, r := range ratio {
		inv := 1 / r
		q := inv * inv
		unit[i] = q == 1
		out[i] = (0.5 - q) / (1 - q)
	}

	return out, flag("poisson ratio", core.ErrUnitVelocityRatio, out, func(i int) bool {
		return unit[i]
	})
}
