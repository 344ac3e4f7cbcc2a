package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/region"
	"github.com/rgehrsitz/paygo/internal/tui/tuimsg"
	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// CompareModel lets the user pick cities to compare against the form's city
type CompareModel struct {
	cities    []domain.City
	provinces map[string]string
	selected  map[string]bool
	cursor    int
	result    *compare.ComparisonSet
	comparing bool
	width     int
	height    int
}

// NewCompareModel lists every city in the catalog
func NewCompareModel(catalog *region.Catalog) *CompareModel {
	m := &CompareModel{
		provinces: make(map[string]string),
		selected:  make(map[string]bool),
	}
	for _, p := range catalog.Provinces() {
		m.provinces[p.Code] = p.Name
		m.cities = append(m.cities, catalog.CitiesOf(p.Code)...)
	}
	return m
}

// SetResults stores a finished comparison
func (m *CompareModel) SetResults(set *compare.ComparisonSet) {
	m.result = set
	m.comparing = false
}

// Comparing reports whether a comparison is in flight
func (m *CompareModel) Comparing() bool {
	return m.comparing
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedCities returns the chosen city codes in catalog order
func (m *CompareModel) SelectedCities() []string {
	var codes []string
	for _, c := range m.cities {
		if m.selected[c.Code] {
			codes = append(codes, c.Code)
		}
	}
	return codes
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.comparing {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.cities)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		if len(m.cities) > 0 {
			code := m.cities[m.cursor].Code
			m.selected[code] = !m.selected[code]
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		codes := m.SelectedCities()
		if len(codes) == 0 {
			return m, nil
		}
		m.comparing = true
		return m, func() tea.Msg {
			return tuimsg.ComparisonStartedMsg{CityCodes: codes}
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("c"))):
		m.selected = make(map[string]bool)
		m.result = nil
	}
	return m, nil
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if m.comparing {
		return tuistyles.InfoStyle.Render("Comparing cities...")
	}

	list := m.renderSelection()
	if m.result == nil {
		return list
	}
	table := (&compare.TableFormatter{}).Format(m.result)
	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().MarginRight(4).Render(list), table)
}

func (m *CompareModel) renderSelection() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render("Compare the current form in:"))
	sb.WriteString("\n\n")
	for i, c := range m.cities {
		check := "[ ]"
		if m.selected[c.Code] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s %s (%s)", check, c.Code, c.Name, m.provinces[c.ProvinceCode])
		if c.Defaults == nil {
			line += " *"
		}
		if i == m.cursor {
			sb.WriteString(tuistyles.TableHighlightStyle.Render("▸ " + line))
		} else {
			sb.WriteString(tuistyles.TableCellStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(tuistyles.HelpDescStyle.Render("space select • enter compare • c clear • * no stored rates"))
	return sb.String()
}
