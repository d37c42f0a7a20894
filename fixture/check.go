package fixture

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"stepper/ds"
	"stepper/srange"
)

// Check generates the scenario's sequence and compares it, in order, with
// the expected elements. A generation error is returned as is; a mismatch
// is a failed Result, not an error.
func Check(s Scenario) (Result, error) {
	actual, err := srange.GenerateKind(s.Kind, s.Start, s.End, s.Step)
	if err != nil {
		err := errors.Wrapf(err, `Check error generating "%s"`, s.Label)
		return Result{Scenario: s}, err
	}
	result := Result{
		Scenario: s,
		Actual:   actual,
		Passed:   equalOrdered(s.Expected, actual),
	}
	if !result.Passed {
		result.Message = fmt.Sprintf(
			"Wrong elements for %s: %s",
			s.Label, srange.FormatSequence(actual),
		)
	}
	return result, nil
}

// CheckAll stops at the first generation error.
func CheckAll(scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := Check(scenario)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Box returns "OK" when every scenario passes, otherwise the message of the
// first failing one.
func Box(scenarios []Scenario) string {
	results, err := CheckAll(scenarios)
	if err != nil {
		return err.Error()
	}
	return Summarize(results)
}

// Summarize is Box for results that were already checked.
func Summarize(results []Result) string {
	failed, found := lo.Find(
		results,
		func(result Result) bool {
			return !result.Passed
		},
	)
	if found {
		return failed.Message
	}
	return OK
}

func Failures(results []Result) []Result {
	return lo.Filter(
		results,
		func(result Result, _ int) bool {
			return !result.Passed
		},
	)
}

// Report maps every label to its generated elements, keeping scenario order.
func Report(results []Result) *ds.LinkedHashMap[string, []string] {
	lhm := ds.NewLinkedHashMap[string, []string]()
	for _, result := range results {
		lhm.Put(result.Scenario.Label, result.Actual)
	}
	return lhm
}

func equalOrdered(expected []string, actual []string) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if expected[i] != actual[i] {
			return false
		}
	}
	return true
}
