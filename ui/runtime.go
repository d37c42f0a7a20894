package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"stepper/fixture"
)

func Start(scenarios []fixture.Scenario) error {
	browser := CreateScenarioBrowser(scenarios)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "Start error running the scenario browser")
	}
	return nil
}
