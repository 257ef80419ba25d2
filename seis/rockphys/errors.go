package rockphys

import (
	"errors"

	"github.com/cwbudde/algo-seis/seis/core"
)

var (
	ErrEmptyInput     = errors.New("rockphys: empty input")
	ErrLengthMismatch = errors.New("rockphys: series length mismatch")
)

// flag builds the DomainError for op. Samples for which violates reports
// true carry domain; samples that are merely non-finite carry
// core.ErrNonFinite unless a domain violation was also seen.
func flag(op string, domain error, out []float64, violates func(i int) bool) error {
	var idx []int
	sentinel := core.ErrNonFinite
	for i, v := range out {
		bad := violates != nil && violates(i)
		if bad {
			sentinel = domain
		}
		if bad || !core.IsFinite(v) {
			idx = append(idx, i)
		}
	}
	return core.NewDomainError(op, sentinel, idx)
}

func checkSeries(series ...[]float64) error {
	if len(series) == 0 || len(series[0]) == 0 {
		return ErrEmptyInput
	}
	if !core.SameLength(series...) {
		return ErrLengthMismatch
	}
	return nil
}
