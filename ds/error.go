package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode is panicked with from the default branch of a
	// switch that is meant to be exhaustive.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Value == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code with value %s", r.Caller, DumpJSON(r.Value))
}
