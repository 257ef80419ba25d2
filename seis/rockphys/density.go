package rockphys

import "github.com/cwbudde/algo-seis/seis/core"

// DefaultDensityCeiling is the sandstone matrix density in g/cc.
const DefaultDensityCeiling = 2.65

// ClippedDensity is a bulk-density log capped at a matrix ceiling. Acoustic
// impedance accepts only this type so that the raw log cannot reach it by
// accident.
type ClippedDensity []float64

// ClipDensity returns a copy of rho with every value >= ceiling replaced by
// ceiling. There is no lower bound.
func ClipDensity(rho []float64, ceiling float64) ClippedDensity {
	out := make(ClippedDensity, len(rho))
	for i, v := range rho {
		out[i] = core.ClampMax(v, ceiling)
	}
	return out
}

// ClipDensityInPlace caps rho at ceiling and returns it as ClippedDensity.
func ClipDensityInPlace(rho []float64, ceiling float64) ClippedDensity {
	for i, v := range rho {
		rho[i] = core.ClampMax(v, ceiling)
	}
	return ClippedDensity(rho)
}
