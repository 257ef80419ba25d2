package rockphys

import "github.com/cwbudde/algo-seis/seis/core"

// SlownessToVelocity converts sonic slowness in µs/ft to velocity in km/s:
// 1e6 µs/s times 0.0003048 km/ft.
const SlownessToVelocity = 1e6 * 0.0003048

// Greenberg-Castagna Vs = a*Vp + b trends for pure lithologies, km/s.
const (
	sandSlope     = 0.80416
	sandIntercept = -0.85588

	shaleSlope     = 0.76969
	shaleIntercept = -0.86735
)

// PrimaryVelocity converts a sonic log to P-wave velocity. Zero slowness
// yields +Inf and is reported with core.ErrZeroSlowness.
func PrimaryVelocity(sonic []float64) ([]float64, error) {
	if err := checkSeries(sonic); err != nil {
		return nil, err
	}

	out := make([]float64, len(sonic))
	for i, s := range sonic {
		out[i] = SlownessToVelocity / s
	}

	return out, flag("primary velocity", core.ErrZeroSlowness, out, func(i int) bool {
		return sonic[i] == 0
	})
}

// ShearVelocity estimates S-wave velocity from vp and the shale and sand
// volume fractions. The result is the mean of
//
//	1 / (sand/(0.80416*vp - 0.85588) + shale/(0.76969*vp - 0.86735))
//	sand*(0.80416*vp - 0.85588) + shale*(0.76969*vp - 0.86735)
//
// A linear term evaluating to zero is reported with core.ErrDegenerateBlend.
// The fractions are not required to sum to one.
func ShearVelocity(vp, shale, sand []float64) ([]float64, error) {
	if err := checkSeries(vp, shale, sand); err != nil {
		return nil, err
	}

	out := make([]float64, len(vp))
	zeroTerm := make([]bool, len(vp))
	for i, v := range vp {
		sandTerm := sandSlope*v + sandIntercept
		shaleTerm := shaleSlope*v + shaleIntercept
		zeroTerm[i] = sandTerm == 0 || shaleTerm == 0

		harmonic := 1 / (sand[i]/sandTerm + shale[i]/shaleTerm)
		arithmetic := sand[i]*sandTerm + shale[i]*shaleTerm
		out[i] = (harmonic + arithmetic) / 2
	}

	return out, flag("shear velocity", core.ErrDegenerateBlend, out, func(i int) bool {
		return zeroTerm[i]
	})
}
