package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/paygo/internal/breakeven"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/tui/tuimsg"
	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// GrossUpModel asks for a net target and shows the gross salary that reaches it
type GrossUpModel struct {
	targetInput textinput.Model
	metric      breakeven.Metric
	result      *breakeven.GrossUpResult
	err         error
	solving     bool
	width       int
	height      int
}

// NewGrossUpModel creates a new gross-up scene model
func NewGrossUpModel() *GrossUpModel {
	ti := textinput.New()
	ti.Placeholder = "e.g., 15000"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Focus()

	return &GrossUpModel{
		targetInput: ti,
		metric:      breakeven.MetricTakeHome,
	}
}

// Metric returns the selected target metric
func (m *GrossUpModel) Metric() breakeven.Metric {
	return m.metric
}

// SetResult stores the solver outcome
func (m *GrossUpModel) SetResult(result *breakeven.GrossUpResult, err error) {
	m.result = result
	m.err = err
	m.solving = false
}

// Solving reports whether a solve is in flight
func (m *GrossUpModel) Solving() bool {
	return m.solving
}

// SetSize updates the model dimensions
func (m *GrossUpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the gross-up scene
func (m *GrossUpModel) Update(msg tea.Msg) (*GrossUpModel, tea.Cmd) {
	if m.solving {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab"))):
			if m.metric == breakeven.MetricTakeHome {
				m.metric = breakeven.MetricRangeNet
			} else {
				m.metric = breakeven.MetricTakeHome
			}
			return m, nil

		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
			target := config.ParseNumber(m.targetInput.Value())
			if !target.IsPositive() {
				return m, nil
			}
			m.solving = true
			m.err = nil
			metric := m.metric
			return m, func() tea.Msg {
				return tuimsg.GrossUpStartedMsg{Metric: metric, Target: target}
			}
		}
	}

	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	return m, cmd
}

// View renders the gross-up scene
func (m *GrossUpModel) View() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render("Solve for the gross salary that nets a target"))
	sb.WriteString("\n\n")

	metricLabel := "monthly take-home"
	if m.metric == breakeven.MetricRangeNet {
		metricLabel = "net over the month range"
	}
	sb.WriteString(tuistyles.FieldLabelStyle.Render("Target metric"))
	sb.WriteString(metricLabel)
	sb.WriteString("\n")
	sb.WriteString(tuistyles.FocusedLabelStyle.Render("Target amount"))
	sb.WriteString(m.targetInput.View())
	sb.WriteString("\n\n")

	switch {
	case m.solving:
		sb.WriteString(tuistyles.InfoStyle.Render("Solving..."))
	case m.err != nil:
		sb.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
	case m.result != nil:
		sb.WriteString((&breakeven.TableFormatter{}).Format(m.result))
	}
	sb.WriteString("\n")
	sb.WriteString(tuistyles.HelpDescStyle.Render("tab switch metric • enter solve"))
	return sb.String()
}
