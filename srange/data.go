package srange

import (
	"golang.org/x/exp/constraints"
)

type (
	// Integral covers the signed widths a stepped range is defined for.
	Integral interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	Scalar interface {
		Integral | constraints.Float
	}

	// Range is an inclusive interval. It holds no iteration state.
	Range[T Scalar] struct {
		Start T
		End   T
	}
	SteppedRange[T Scalar] struct {
		Range[T]
		Step T
	}

	// CharRange steps over code points. Its step is a count, not a rune.
	CharRange struct {
		Start rune
		End   rune
		Step  int
	}
)

func NewRange[T Scalar](start, end T) Range[T] {
	return Range[T]{
		Start: start,
		End:   end,
	}
}

func (r Range[T]) IsEmpty() bool {
	return !(r.Start <= r.End)
}

// WithStep pairs the range with a step, the equivalent of `start..end step n`.
func (r Range[T]) WithStep(step T) (SteppedRange[T], error) {
	if err := validateStep(step); err != nil {
		return SteppedRange[T]{}, err
	}
	return SteppedRange[T]{
		Range: r,
		Step:  step,
	}, nil
}

func NewStepped[T Scalar](start, end, step T) (SteppedRange[T], error) {
	return NewRange(start, end).WithStep(step)
}

func NewCharRange(start, end rune, step int) (CharRange, error) {
	if err := validateStep(step); err != nil {
		return CharRange{}, err
	}
	return CharRange{
		Start: start,
		End:   end,
		Step:  step,
	}, nil
}
