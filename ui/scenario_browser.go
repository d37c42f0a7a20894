package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"stepper/fixture"
	"stepper/srange"
)

type (
	// ScenarioBrowser lists the scenarios and shows the selected one's
	// generated elements next to the expected ones.
	ScenarioBrowser struct {
		entries []entry
		cursor  int
	}
	entry struct {
		result fixture.Result
		err    error
	}
)

func CreateScenarioBrowser(scenarios []fixture.Scenario) ScenarioBrowser {
	entries := lo.Map(
		scenarios,
		func(scenario fixture.Scenario, _ int) entry {
			result, err := fixture.Check(scenario)
			return entry{
				result: result,
				err:    err,
			}
		},
	)
	return ScenarioBrowser{
		entries: entries,
	}
}

func (s ScenarioBrowser) Cursor() int {
	return s.cursor
}

func (s ScenarioBrowser) Init() tea.Cmd {
	return nil
}

func (s ScenarioBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s ScenarioBrowser) View() string {
	output := "STEPPED RANGES\n\n"
	if len(s.entries) == 0 {
		return output + "No scenarios.\n"
	}

	for i, e := range s.entries {
		marker := lo.Ternary(i == s.cursor, ">", " ")
		output += fmt.Sprintf("%s [%s] %s\n", marker, status(e), e.result.Scenario.Label)
	}

	selected := s.entries[s.cursor]
	scenario := selected.result.Scenario
	output += "\n"
	output += fmt.Sprintf("Kind:     %s\n", scenario.Kind)
	output += fmt.Sprintf("Expected: %s\n", srange.FormatSequence(scenario.Expected))
	if selected.err != nil {
		output += fmt.Sprintf("Error:    %s\n", selected.err)
	} else {
		output += fmt.Sprintf("Actual:   %s\n", srange.FormatSequence(selected.result.Actual))
	}
	if selected.result.Message != "" {
		output += selected.result.Message + "\n"
	}

	output += "\n" + strings.Join([]string{"up/k", "down/j", "q: quit"}, " · ") + "\n"
	return output
}

func status(e entry) string {
	switch {
	case e.err != nil:
		return "ERR"
	case e.result.Passed:
		return " ok "
	}
	return "FAIL"
}
