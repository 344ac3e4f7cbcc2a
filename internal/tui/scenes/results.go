package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/rgehrsitz/paygo/internal/tui/components"
	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// ResultsTab selects the results view
type ResultsTab int

const (
	TabSummary ResultsTab = iota
	TabProjection
)

func (t ResultsTab) String() string {
	if t == TabProjection {
		return "Projection"
	}
	return "Summary"
}

// ResultsModel shows the contribution breakdown and the month-by-month
// withholding projection for the calculator's current result
type ResultsModel struct {
	result *domain.Result
	tab    ResultsTab
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult updates the displayed result
func (m *ResultsModel) SetResult(result *domain.Result) {
	m.result = result
}

// Result returns the displayed result
func (m *ResultsModel) Result() *domain.Result {
	return m.result
}

// Tab returns the active tab
func (m *ResultsModel) Tab() ResultsTab {
	return m.tab
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("tab", "right", "l"))):
			m.tab = (m.tab + 1) % 2
		case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab", "left", "h"))):
			m.tab = (m.tab + 1) % 2
		case key.Matches(msg, key.NewBinding(key.WithKeys("1"))):
			m.tab = TabSummary
		case key.Matches(msg, key.NewBinding(key.WithKeys("2"))):
			m.tab = TabProjection
		}
	}
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		return tuistyles.InfoStyle.Render("Nothing calculated yet.")
	}

	tabs := make([]string, 0, 2)
	for _, tab := range []ResultsTab{TabSummary, TabProjection} {
		if tab == m.tab {
			tabs = append(tabs, tuistyles.ActiveTabStyle.Render("▸ "+tab.String()))
		} else {
			tabs = append(tabs, tuistyles.InactiveTabStyle.Render(tab.String()))
		}
	}

	var body string
	if m.tab == TabProjection {
		body = m.renderProjection()
	} else {
		body = m.renderSummary()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "", body)
}

func (m *ResultsModel) renderSummary() string {
	r := m.result
	b := r.Summary.Breakdown

	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-14s %12s %8s %12s %8s %12s",
		"Category", "Base", "Emp %", "Employee", "Co %", "Employer")))
	sb.WriteString("\n")
	for _, line := range b.Lines {
		sb.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-14s %12s %8s %12s %8s %12s",
			line.Category.Label(),
			output.FormatAmount(line.Base),
			output.FormatPercentage(line.EmployeeRate),
			output.FormatAmount(line.Employee),
			output.FormatPercentage(line.EmployerRate),
			output.FormatAmount(line.Employer))))
		sb.WriteString("\n")
	}
	sb.WriteString(tuistyles.TableHighlightStyle.Render(fmt.Sprintf("%-14s %12s %8s %12s %8s %12s",
		"Total", "", "", output.FormatAmount(b.EmployeeTotal()), "", output.FormatAmount(b.EmployerTotal()))))
	sb.WriteString("\n\n")

	cards := components.MetricGrid([]*components.MetricCard{
		components.NewMoneyCard("Range gross", r.AnnualGross),
		components.NewMoneyCard("Range tax", r.AnnualTax),
		components.NewMoneyCard("Range net", r.AnnualNet),
		components.NewMoneyCard("Employer cost", r.Input.GrossMonthly.Add(b.EmployerTotal())).
			WithDescription("per month"),
	}, 4)
	sb.WriteString(cards)
	return sb.String()
}

func (m *ResultsModel) renderProjection() string {
	r := m.result
	if !r.HasProjection() {
		return tuistyles.InfoStyle.Render("No months projected (monthly income is zero).")
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("  %-5s %12s %14s %14s %12s %10s %12s",
		"Month", "Pre-tax", "Cum. Pre-tax", "Cum. Taxable", "Cum. Tax", "Tax", "Net")))
	sb.WriteString("\n")

	chart := components.NewBarChart("Monthly withholding").WithWidth(30)
	for _, row := range r.Projection {
		selected := row.Month == r.EffectiveMonth
		marker := " "
		style := tuistyles.TableCellStyle
		if selected {
			marker = "*"
			style = tuistyles.TableHighlightStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s %-5d %12s %14s %14s %12s %10s %12s",
			marker,
			row.Month,
			output.FormatAmount(row.PreTax),
			output.FormatAmount(row.CumulativePreTax),
			output.FormatAmount(row.CumulativeTaxable),
			output.FormatAmount(row.CumulativeTax),
			output.FormatAmount(row.MonthTax),
			output.FormatAmount(row.NetSalary))))
		sb.WriteString("\n")
		chart.Add(fmt.Sprintf("%2d", row.Month), row.MonthTax, selected)
	}
	sb.WriteString("\n")
	sb.WriteString(chart.Render())
	return sb.String()
}
