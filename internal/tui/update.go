package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/paygo/internal/breakeven"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(0, m.height-4)
		m.calculatorModel.SetSize(m.width, contentHeight)
		m.resultsModel.SetSize(m.width, contentHeight)
		m.compareModel.SetSize(m.width, contentHeight)
		m.grossUpModel.SetSize(m.width, contentHeight)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case FormLoadedMsg:
		m.calculatorModel.SetForm(*msg.Form)
		m.resultsModel.SetResult(m.calculatorModel.Result())
		m.status = "Loaded " + msg.Path
		return m, nil

	case ComparisonStartedMsg:
		m.status = "Comparing cities..."
		return m, compareCmd(m.compareEngine, m.calculatorModel.Form(), msg.CityCodes)

	case ComparisonCompleteMsg:
		m.compareModel.SetResults(msg.Set)
		if msg.Err != nil {
			m.err = msg.Err
			m.status = ""
			return m, nil
		}
		m.status = fmt.Sprintf("Compared %d cities", len(msg.Set.AlternativeResults)+1)
		return m, nil

	case GrossUpStartedMsg:
		m.status = "Solving..."
		req := breakeven.GrossUpRequest{
			Base:   m.calculatorModel.Result().Input,
			Metric: msg.Metric,
			Target: msg.Target,
		}
		return m, grossUpCmd(m.solver, req)

	case GrossUpCompleteMsg:
		m.grossUpModel.SetResult(msg.Result, msg.Err)
		m.status = ""
		return m, nil

	case ExportRequestedMsg:
		return m, exportCmd(m, msg.Format)

	case ExportCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = "Saved " + msg.Path
		return m, nil
	}

	// Cursor blinks and other internal messages go to the current scene
	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input. Global shortcuts avoid printable
// keys so they never collide with typing into a field.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		return m.navigate(SceneHelp)
	case key.Matches(msg, m.keys.Calculator):
		return m.navigate(SceneCalculator)
	case key.Matches(msg, m.keys.Results):
		return m.navigate(SceneResults)
	case key.Matches(msg, m.keys.Compare):
		return m.navigate(SceneCompare)
	case key.Matches(msg, m.keys.GrossUp):
		return m.navigate(SceneGrossUp)
	case key.Matches(msg, m.keys.Export):
		format := m.exportFormat
		return m, func() tea.Msg {
			return ExportRequestedMsg{Format: format}
		}
	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneCalculator {
			target := m.previousScene
			if target == m.currentScene {
				target = SceneCalculator
			}
			return m.navigate(target)
		}
	}

	return m.updateCurrentScene(msg)
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	if scene == m.currentScene {
		return m, nil
	}
	return m, func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneCalculator:
		m.calculatorModel, cmd = m.calculatorModel.Update(msg)
		m.resultsModel.SetResult(m.calculatorModel.Result())
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneGrossUp:
		m.grossUpModel, cmd = m.grossUpModel.Update(msg)
	}
	return m, cmd
}
