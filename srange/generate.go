package srange

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// maxPreallocation bounds the capacity guess so that a wide float range
// does not allocate up front what it may never fill.
const maxPreallocation = 1 << 16

// Generate materializes start..end step `step` in ascending order.
//
//   Generate[int32](3, 8, 2)      // [3 5 7]
//   Generate[float64](4, 5.8, 0.5) // [4 4.5 5 5.5]
//
// A start above end produces an empty sequence.
func Generate[T Scalar](start, end, step T) ([]T, error) {
	if err := validateStep(step); err != nil {
		return nil, err
	}

	sequence := make([]T, 0, estimateCapacity(start, end, step))
	err := each(start, end, step, func(t T) bool {
		sequence = append(sequence, t)
		return true
	})
	if err != nil {
		return nil, err
	}
	return sequence, nil
}

// GenerateChar advances the code point by step on every iteration.
func GenerateChar(start, end rune, step int) ([]rune, error) {
	if err := validateStep(step); err != nil {
		return nil, err
	}
	codePoints, err := Generate(int64(start), int64(end), int64(step))
	if err != nil {
		return nil, errors.Wrapf(err, "GenerateChar error stepping %q..%q", start, end)
	}
	return lo.Map(
		codePoints,
		func(codePoint int64, _ int) rune {
			return rune(codePoint)
		},
	), nil
}

func (r SteppedRange[T]) Slice() ([]T, error) {
	return Generate(r.Start, r.End, r.Step)
}

// Each calls yield for every element until yield returns false.
func (r SteppedRange[T]) Each(yield func(T) bool) error {
	if err := validateStep(r.Step); err != nil {
		return err
	}
	return each(r.Start, r.End, r.Step, yield)
}

func (r CharRange) Slice() ([]rune, error) {
	return GenerateChar(r.Start, r.End, r.Step)
}

func each[T Scalar](start, end, step T, yield func(T) bool) error {
	for current := start; current <= end; {
		if !yield(current) {
			return nil
		}
		next := current + step
		// signed addition wraps around on overflow, and the range has
		// nothing left above the largest value of the width
		if next < current {
			return nil
		}
		if next == current {
			if current == end {
				return nil
			}
			return errors.Wrapf(ErrNoProgress, "each error at element %v with step %v", current, step)
		}
		current = next
	}
	return nil
}

func estimateCapacity[T Scalar](start, end, step T) int {
	if !(start <= end) {
		return 0
	}
	estimate := (float64(end)-float64(start))/float64(step) + 1
	if math.IsNaN(estimate) || estimate > maxPreallocation {
		return maxPreallocation
	}
	return int(estimate)
}
