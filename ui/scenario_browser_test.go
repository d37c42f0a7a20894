package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"stepper/fixture"
)

func press(model tea.Model, key tea.KeyType) tea.Model {
	next, _ := model.Update(tea.KeyMsg{Type: key})
	return next
}

func TestScenarioBrowser_Update(t *testing.T) {
	var model tea.Model = CreateScenarioBrowser(fixture.Scenarios())

	model = press(model, tea.KeyUp)
	assert.Equal(t, 0, model.(ScenarioBrowser).Cursor())

	for i := 0; i < 10; i++ {
		model = press(model, tea.KeyDown)
	}
	assert.Equal(t, len(fixture.Scenarios())-1, model.(ScenarioBrowser).Cursor())

	model = press(model, tea.KeyUp)
	assert.Equal(t, len(fixture.Scenarios())-2, model.(ScenarioBrowser).Cursor())
}

func TestScenarioBrowser_View(t *testing.T) {
	var model tea.Model = CreateScenarioBrowser(fixture.Scenarios())
	for i := 0; i < 4; i++ {
		model = press(model, tea.KeyDown)
	}

	view := model.View()
	assert.Contains(t, view, "> [ ok ] 'a'..'d' step 2")
	assert.Contains(t, view, "Actual:   [a, c]")
	assert.NotContains(t, view, "FAIL")
}

func TestScenarioBrowser_Quit(t *testing.T) {
	model := CreateScenarioBrowser(fixture.Scenarios())
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestScenarioBrowser_Empty(t *testing.T) {
	model := CreateScenarioBrowser(nil)
	assert.Contains(t, model.View(), "No scenarios.")
}
