package srange

import (
	"math"
)

// Count returns floor((end-start)/step)+1 without walking the range, or 0 for
// an empty range. A count that does not fit in uint64 saturates.
func Count[T Integral](r SteppedRange[T]) (uint64, error) {
	if err := validateStep(r.Step); err != nil {
		return 0, err
	}
	if r.IsEmpty() {
		return 0, nil
	}
	quotient := distance(r.Start, r.End) / uint64(r.Step)
	if quotient == math.MaxUint64 {
		return quotient, nil
	}
	return quotient + 1, nil
}

// Last returns the final element, end - mod(end-start, step). The second
// result is false for an empty range.
func Last[T Integral](r SteppedRange[T]) (T, bool, error) {
	if err := validateStep(r.Step); err != nil {
		return 0, false, err
	}
	if r.IsEmpty() {
		return 0, false, nil
	}
	d := distance(r.Start, r.End)
	offset := d - d%uint64(r.Step)
	return T(int64(uint64(int64(r.Start)) + offset)), true, nil
}

// distance is end-start computed modulo 2^64, which is exact for any pair
// of signed values with start <= end.
func distance[T Integral](start, end T) uint64 {
	return uint64(int64(end)) - uint64(int64(start))
}
