package core

import (
	"errors"
	"fmt"
)

// Sentinels naming the domain violated by a numeric degeneracy. They are
// carried by [DomainError] and can be matched with errors.Is.
var (
	ErrZeroSlowness      = errors.New("sonic slowness is zero")
	ErrDegenerateBlend   = errors.New("greenberg-castagna linear term is zero")
	ErrZeroShearVelocity = errors.New("shear velocity is zero")
	ErrUnitVelocityRatio = errors.New("vp/vs ratio has unit magnitude")
	ErrNonFinite         = errors.New("non-finite result")
)

// DomainError reports samples whose inputs fell outside a formula's valid
// domain. The computation that returns it still fills every output sample;
// the listed samples hold NaN or an infinity.
type DomainError struct {
	Op      string
	Err     error
	Indices []int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v at %d sample(s)", e.Op, e.Err, len(e.Indices))
}

// Unwrap returns the sentinel describing the violated domain.
func (e *DomainError) Unwrap() error { return e.Err }

// Count returns the number of affected samples.
func (e *DomainError) Count() int {
	if e == nil {
		return 0
	}
	return len(e.Indices)
}

// NewDomainError returns nil when indices is empty, otherwise a *DomainError.
// The nil return is typed as error so callers can return it directly.
func NewDomainError(op string, err error, indices []int) error {
	if len(indices) == 0 {
		return nil
	}

	return &DomainError{Op: op, Err: err, Indices: indices}
}

// AsDomainError extracts a *DomainError from err. It returns false for nil
// errors and for input errors that are not domain violations.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}

	return nil, false
}
