package srange

import (
	"fmt"

	"github.com/pkg/errors"
)

type (
	InvalidStepError struct {
		Step any
	}
)

func (r InvalidStepError) Error() string {
	return fmt.Sprintf("step must be positive, was %v", r.Step)
}

var (
	// ErrNoProgress is returned when adding the step no longer changes a
	// floating-point element, which would otherwise never terminate.
	ErrNoProgress  = errors.New("step is too small to advance past the current element")
	ErrUnknownKind = errors.New("unknown element kind")
)

func validateStep[T Scalar](step T) error {
	// written as a negation so that a NaN step is rejected as well
	if !(step > 0) {
		return InvalidStepError{Step: step}
	}
	return nil
}
