package scenes

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/region"
	"github.com/rgehrsitz/paygo/internal/tui/components"
	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// Mode selects which calculator tab is shown
type Mode int

const (
	ModeMonthly Mode = iota
	ModeBonus
)

func (m Mode) String() string {
	if m == ModeBonus {
		return "Annual Bonus"
	}
	return "Monthly Salary"
}

// FieldID identifies one form field
type FieldID int

const (
	FieldProvince FieldID = iota
	FieldCity
	FieldMonthlyIncome
	FieldSocialBase
	FieldPension
	FieldMedical
	FieldUnemployment
	FieldMaternity
	FieldInjury
	FieldUseHousing
	FieldHousingRate
	FieldHousingBase
	FieldStartMonth
	FieldEndMonth
	FieldReportingMonth
	FieldAdditionalDeduction
	FieldBonusIncome
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindProvince
	kindCity
	kindToggle
)

type fieldDef struct {
	id    FieldID
	label string
	kind  fieldKind
}

var monthlyFields = []fieldDef{
	{FieldProvince, "Province", kindProvince},
	{FieldCity, "City", kindCity},
	{FieldMonthlyIncome, "Monthly income", kindText},
	{FieldSocialBase, "Social insurance base", kindText},
	{FieldPension, "Pension %", kindText},
	{FieldMedical, "Medical %", kindText},
	{FieldUnemployment, "Unemployment %", kindText},
	{FieldMaternity, "Maternity %", kindText},
	{FieldInjury, "Work injury %", kindText},
	{FieldUseHousing, "Housing fund", kindToggle},
	{FieldHousingRate, "Housing fund %", kindText},
	{FieldHousingBase, "Housing fund base", kindText},
	{FieldStartMonth, "Start month", kindText},
	{FieldEndMonth, "End month", kindText},
	{FieldReportingMonth, "Reporting month", kindText},
	{FieldAdditionalDeduction, "Additional deduction", kindText},
}

var bonusFields = []fieldDef{
	{FieldBonusIncome, "Annual bonus", kindText},
}

// CalculatorModel is the form scene. Every edit recomputes the result.
type CalculatorModel struct {
	form    config.FormInput
	catalog *region.Catalog
	engine  *calculation.CalculationEngine
	result  *domain.Result

	inputs map[FieldID]*textinput.Model
	mode   Mode
	focus  int

	// Now supplies the current month for reporting month defaults
	Now func() time.Time

	width  int
	height int
}

// NewCalculatorModel creates the calculator scene for a form
func NewCalculatorModel(form config.FormInput, catalog *region.Catalog, engine *calculation.CalculationEngine) *CalculatorModel {
	m := &CalculatorModel{
		catalog: catalog,
		engine:  engine,
		inputs:  make(map[FieldID]*textinput.Model),
		Now:     time.Now,
	}
	for _, defs := range [][]fieldDef{monthlyFields, bonusFields} {
		for _, def := range defs {
			if def.kind != kindText {
				continue
			}
			ti := textinput.New()
			ti.Prompt = ""
			ti.CharLimit = 16
			ti.Width = 16
			ti.Placeholder = "0"
			m.inputs[def.id] = &ti
		}
	}
	m.SetForm(form)
	return m
}

// SetForm replaces the whole form, for example after loading a file
func (m *CalculatorModel) SetForm(form config.FormInput) {
	m.form = form
	m.syncInputs()
	m.focusCurrent()
	m.recalculate()
}

// Form returns the current raw form
func (m *CalculatorModel) Form() config.FormInput {
	return m.form
}

// Result returns the result for the current form
func (m *CalculatorModel) Result() *domain.Result {
	return m.result
}

// Mode returns the active tab
func (m *CalculatorModel) Mode() Mode {
	return m.mode
}

// Focused returns the field that has focus
func (m *CalculatorModel) Focused() FieldID {
	return m.fields()[m.focus].id
}

// Value returns the text shown in a text field
func (m *CalculatorModel) Value(id FieldID) string {
	if ti, ok := m.inputs[id]; ok {
		return ti.Value()
	}
	return ""
}

// SetSize updates the scene dimensions
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *CalculatorModel) fields() []fieldDef {
	if m.mode == ModeBonus {
		return bonusFields
	}
	return monthlyFields
}

func (m *CalculatorModel) current() fieldDef {
	return m.fields()[m.focus]
}

// Update handles messages for the calculator scene
func (m *CalculatorModel) Update(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	field := m.current()
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+t"))):
		m.switchMode()
		return m, textinput.Blink

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "down", "enter"))) &&
		!(field.kind == kindToggle && keyMsg.String() == "enter"):
		m.moveFocus(1)
		return m, textinput.Blink

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
		m.moveFocus(-1)
		return m, textinput.Blink
	}

	switch field.kind {
	case kindProvince, kindCity:
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
			m.cycle(field.kind, -1)
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", " "))):
			m.cycle(field.kind, 1)
		}
		return m, nil

	case kindToggle:
		if key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "enter", "left", "right", "y", "n"))) {
			m.toggleHousing(keyMsg.String())
		}
		return m, nil
	}

	return m.updateInput(msg)
}

// updateInput forwards a message to the focused text input and recomputes
// when its text changed
func (m *CalculatorModel) updateInput(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	field := m.current()
	ti, ok := m.inputs[field.id]
	if !ok {
		return m, nil
	}

	before := ti.Value()
	updated, cmd := ti.Update(msg)
	*ti = updated
	if ti.Value() != before {
		m.setFormValue(field.id, ti.Value())
		m.recalculate()
	}
	return m, cmd
}

func (m *CalculatorModel) switchMode() {
	m.commit(m.current().id)
	if m.mode == ModeMonthly {
		m.mode = ModeBonus
	} else {
		m.mode = ModeMonthly
	}
	m.focus = 0
	m.focusCurrent()
}

func (m *CalculatorModel) moveFocus(delta int) {
	m.commit(m.current().id)
	n := len(m.fields())
	m.focus = (m.focus + delta + n) % n
	m.focusCurrent()
}

func (m *CalculatorModel) focusCurrent() {
	focused := m.current().id
	for id, ti := range m.inputs {
		if id == focused {
			ti.Focus()
			ti.CursorEnd()
		} else {
			ti.Blur()
		}
	}
}

// commit settles a month field when it loses focus. Other fields need no
// settling; their text is already in the form.
func (m *CalculatorModel) commit(id FieldID) {
	now := m.Now()
	switch id {
	case FieldStartMonth:
		m.form.CommitStartMonth(m.form.StartMonth, now)
	case FieldEndMonth:
		m.form.CommitEndMonth(m.form.EndMonth, now)
	case FieldReportingMonth:
		m.form.CommitReportingMonth(m.form.ReportingMonth)
	default:
		return
	}
	m.syncInputs()
	m.recalculate()
}

func (m *CalculatorModel) cycle(kind fieldKind, delta int) {
	if kind == kindProvince {
		provinces := m.catalog.Provinces()
		if len(provinces) == 0 {
			return
		}
		i := 0
		for j, p := range provinces {
			if p.Code == m.form.ProvinceCode {
				i = j
				break
			}
		}
		next := provinces[(i+delta+len(provinces))%len(provinces)]
		m.form.ApplyProvince(m.catalog, next.Code)
	} else {
		cities := m.catalog.CitiesOf(m.form.ProvinceCode)
		if len(cities) == 0 {
			return
		}
		i := 0
		for j, c := range cities {
			if c.Code == m.form.CityCode {
				i = j
				break
			}
		}
		next := cities[(i+delta+len(cities))%len(cities)]
		m.form.ApplyCity(m.catalog, next.Code)
	}
	m.syncInputs()
	m.recalculate()
}

func (m *CalculatorModel) toggleHousing(k string) {
	on := !m.form.HousingFundEnabled()
	switch k {
	case "y":
		on = true
	case "n":
		on = false
	}
	m.form.UseHousingFund = &on
	m.recalculate()
}

func (m *CalculatorModel) recalculate() {
	m.result = m.engine.Calculate(m.form.Normalize(m.Now()))
}

func (m *CalculatorModel) syncInputs() {
	for id, ti := range m.inputs {
		if v := m.formValue(id); ti.Value() != v {
			ti.SetValue(v)
		}
	}
}

func (m *CalculatorModel) formValue(id FieldID) string {
	if p := m.formField(id); p != nil {
		return *p
	}
	return ""
}

func (m *CalculatorModel) setFormValue(id FieldID, value string) {
	if p := m.formField(id); p != nil {
		*p = value
	}
}

func (m *CalculatorModel) formField(id FieldID) *string {
	f := &m.form
	switch id {
	case FieldMonthlyIncome:
		return &f.MonthlyIncome
	case FieldSocialBase:
		return &f.SocialBase
	case FieldPension:
		return &f.PensionRate
	case FieldMedical:
		return &f.MedicalRate
	case FieldUnemployment:
		return &f.UnemploymentRate
	case FieldMaternity:
		return &f.MaternityRate
	case FieldInjury:
		return &f.InjuryRate
	case FieldHousingRate:
		return &f.HousingRate
	case FieldHousingBase:
		return &f.HousingBase
	case FieldStartMonth:
		return &f.StartMonth
	case FieldEndMonth:
		return &f.EndMonth
	case FieldReportingMonth:
		return &f.ReportingMonth
	case FieldAdditionalDeduction:
		return &f.AdditionalDeduction
	case FieldBonusIncome:
		return &f.BonusIncome
	}
	return nil
}

// View renders the calculator scene
func (m *CalculatorModel) View() string {
	tabs := make([]string, 0, 2)
	for _, mode := range []Mode{ModeMonthly, ModeBonus} {
		if mode == m.mode {
			tabs = append(tabs, tuistyles.ActiveTabStyle.Render("▸ "+mode.String()))
		} else {
			tabs = append(tabs, tuistyles.InactiveTabStyle.Render(mode.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(4).Render(m.renderFields()),
		m.renderMetrics(),
	)

	help := tuistyles.HelpDescStyle.Render("tab/↓ next • shift+tab/↑ previous • ←/→ change selection • ctrl+t switch tab")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m *CalculatorModel) renderFields() string {
	var sb strings.Builder
	for i, def := range m.fields() {
		labelStyle := tuistyles.FieldLabelStyle
		if i == m.focus {
			labelStyle = tuistyles.FocusedLabelStyle
		}
		sb.WriteString(labelStyle.Render(def.label))
		sb.WriteString(m.renderValue(def, i == m.focus))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m *CalculatorModel) renderValue(def fieldDef, focused bool) string {
	switch def.kind {
	case kindProvince:
		name := m.form.ProvinceCode
		if p, ok := m.catalog.Province(m.form.ProvinceCode); ok {
			name = p.Name
		}
		return selector(name, focused)
	case kindCity:
		name := m.form.CityCode
		if c, ok := m.catalog.City(m.form.CityCode); ok {
			name = c.Name
		}
		return selector(name, focused)
	case kindToggle:
		if m.form.HousingFundEnabled() {
			return "[x] contribute"
		}
		return "[ ] opted out"
	}
	return m.inputs[def.id].View()
}

func selector(name string, focused bool) string {
	if focused {
		return tuistyles.TableHighlightStyle.Render("◀ " + name + " ▶")
	}
	return "  " + name
}

func (m *CalculatorModel) renderMetrics() string {
	r := m.result
	if r == nil {
		return ""
	}

	if m.mode == ModeBonus {
		return components.MetricGrid([]*components.MetricCard{
			components.NewMoneyCard("Bonus", r.Bonus.Bonus),
			components.NewMoneyCard("Monthly average", r.Bonus.AverageMonthly),
			components.NewMoneyCard("Bonus tax", r.Bonus.Tax),
			components.NewMoneyCard("Net bonus", r.Bonus.NetBonus),
		}, 2)
	}

	tax := components.NewMoneyCard("Income tax", r.Summary.Tax)
	if r.Selected != nil {
		tax.WithDescription(fmt.Sprintf("month %d: %s", r.Selected.Month, tuistyles.FormatCurrency(r.Selected.MonthTax)))
	}
	return components.MetricGrid([]*components.MetricCard{
		components.NewMoneyCard("Social insurance", r.Summary.Social),
		components.NewMoneyCard("Housing fund", r.Summary.Housing),
		tax,
		components.NewMoneyCard("Take-home", r.Summary.TakeHome),
	}, 2)
}
