package fixture

import (
	"stepper/srange"
)

type (
	Scenario struct {
		Label    string      `json:"label"`
		Kind     srange.Kind `json:"kind"`
		Start    string      `json:"start"`
		End      string      `json:"end"`
		Step     string      `json:"step"`
		Expected []string    `json:"expected"`
	}
	Result struct {
		Scenario Scenario `json:"scenario"`
		Actual   []string `json:"actual"`
		Passed   bool     `json:"passed"`
		Message  string   `json:"message,omitempty"`
	}
)

const OK = "OK"

// Scenarios returns the inexact stepped range cases, in the order they are
// checked: each range stops short of its end because the step overshoots it.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Label:    "3..8 step 2",
			Kind:     srange.KindInt32,
			Start:    "3",
			End:      "8",
			Step:     "2",
			Expected: []string{"3", "5", "7"},
		},
		{
			Label:    "3.toByte()..8.toByte() step 2",
			Kind:     srange.KindInt8,
			Start:    "3",
			End:      "8",
			Step:     "2",
			Expected: []string{"3", "5", "7"},
		},
		{
			Label:    "3.toShort()..8.toShort() step 2",
			Kind:     srange.KindInt16,
			Start:    "3",
			End:      "8",
			Step:     "2",
			Expected: []string{"3", "5", "7"},
		},
		{
			Label:    "3.toLong()..8.toLong() step 2.toLong()",
			Kind:     srange.KindInt64,
			Start:    "3",
			End:      "8",
			Step:     "2",
			Expected: []string{"3", "5", "7"},
		},
		{
			Label:    "'a'..'d' step 2",
			Kind:     srange.KindChar,
			Start:    "'a'",
			End:      "'d'",
			Step:     "2",
			Expected: []string{"a", "c"},
		},
		{
			Label:    "4.0..5.8 step 0.5",
			Kind:     srange.KindFloat64,
			Start:    "4.0",
			End:      "5.8",
			Step:     "0.5",
			Expected: []string{"4.0", "4.5", "5.0", "5.5"},
		},
		{
			Label:    "4.0.toFloat()..5.8.toFloat() step 0.5.toFloat()",
			Kind:     srange.KindFloat32,
			Start:    "4.0",
			End:      "5.8",
			Step:     "0.5",
			Expected: []string{"4.0", "4.5", "5.0", "5.5"},
		},
	}
}
