package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/paygo/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
		))
	}

	var content string
	switch m.currentScene {
	case SceneCalculator:
		content = m.calculatorModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneGrossUp:
		content = m.grossUpModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentContainer := lipgloss.NewStyle().
		Height(max(0, m.height-4)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		contentContainer,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("PAYGO - Salary & Withholding Tax")

	crumb := m.currentScene.String()
	form := m.calculatorModel.Form()
	if city, ok := m.parser.Catalog.City(form.CityCode); ok {
		crumb = fmt.Sprintf("%s / %s", crumb, city.Name)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	bindings := []key.Binding{
		m.keys.Calculator, m.keys.Results, m.keys.Compare, m.keys.GrossUp,
		m.keys.Export, m.keys.Help, m.keys.Quit,
	}
	shortcuts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		shortcuts = append(shortcuts, formatShortcut(b.Help().Key, b.Help().Desc))
	}
	statusText := strings.Join(shortcuts, " • ")

	right := m.status
	if right == "" {
		if r := m.calculatorModel.Result(); r != nil {
			right = "Take-home " + output.FormatCurrency(r.Summary.TakeHome)
		}
	}
	if right != "" {
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(right) - 2
		statusText = statusText + strings.Repeat(" ", max(1, width)) + right
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(k, desc string) string {
	return StatusKeyStyle.Render(k) + " " + desc
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
PAYGO - Salary & Withholding Tax Calculator

SCENES:
  F2       Calculator (monthly salary and annual bonus tabs)
  F3       Results (contribution summary and monthly projection)
  F4       Compare the current form across cities
  F5       Gross-up: find the salary that nets a target
  F1       Show this help
  ESC      Go back
  Ctrl+S   Export the current result
  Ctrl+C   Quit

CALCULATOR:
  Tab/↓    Next field          Shift+Tab/↑  Previous field
  ←/→      Change province or city (applies the city's default rates)
  Space    Toggle the housing fund
  Ctrl+T   Switch between the monthly and bonus tabs
  Every keystroke recalculates. Month fields settle when you leave them.

RESULTS:
  ←/→ or 1/2  Switch between summary and projection
`
	return BorderStyle.Render(HelpKeyStyle.Render(strings.TrimSpace(helpText)))
}
