package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/paygo/internal/config"
)

var july = time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	parser := config.NewInputParser()
	parser.Now = func() time.Time { return july }
	opts.Parser = parser
	if opts.ExportDir == "" {
		opts.ExportDir = t.TempDir()
	}
	return NewModel(opts)
}

// step feeds msg to the model, then follows the chain of application
// messages its commands produce. Cursor blinks and other component
// messages end the chain.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for i := 0; cmd != nil && i < 10; i++ {
		out := cmd()
		if !isAppMsg(out) {
			break
		}
		next, cmd = m.Update(out)
		m = next.(Model)
	}
	return m
}

func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case NavigateMsg, FormLoadedMsg, ErrorMsg,
		ComparisonStartedMsg, ComparisonCompleteMsg,
		GrossUpStartedMsg, GrossUpCompleteMsg,
		ExportRequestedMsg, ExportCompleteMsg:
		return true
	}
	return false
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, Options{})

	assert.Equal(t, SceneCalculator, m.CurrentScene())
	assert.Nil(t, m.Init(), "no input file means nothing to load")
	require.NotNil(t, m.Calculator().Result())
	assert.Equal(t, 7, m.Calculator().Result().EffectiveMonth)
	assert.Contains(t, m.View(), "PAYGO")
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t, Options{})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF3})
	assert.Equal(t, SceneResults, m.CurrentScene())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF4})
	assert.Equal(t, SceneCompare, m.CurrentScene())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, SceneResults, m.CurrentScene())

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "Ctrl+T")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, SceneCalculator, m.CurrentScene())
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_LoadsInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte("city: \"310100\"\nmonthly_income: 30000\n"), 0644))

	m := newTestModel(t, Options{InputPath: path})
	cmd := m.Init()
	require.NotNil(t, cmd)

	m = step(t, m, cmd())
	assert.Equal(t, "310100", m.Calculator().Form().CityCode)
	assert.True(t, m.Calculator().Result().Input.GrossMonthly.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, "Loaded "+path, m.status)
}

func TestModel_LoadErrorIsShownAndDismissed(t *testing.T) {
	m := newTestModel(t, Options{InputPath: filepath.Join(t.TempDir(), "missing.yaml")})

	m = step(t, m, m.Init()())
	assert.Contains(t, m.View(), "Error:")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.NotContains(t, m.View(), "Error:")
	assert.Equal(t, "20500", m.Calculator().Form().MonthlyIncome, "dismissing key is not typed")
}

func TestModel_TypingUpdatesResults(t *testing.T) {
	m := newTestModel(t, Options{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})

	assert.True(t, m.Calculator().Result().Input.GrossMonthly.Equal(decimal.NewFromInt(205000)))
	assert.Same(t, m.Calculator().Result(), m.resultsModel.Result())
}

func TestModel_CompareFlow(t *testing.T) {
	m := newTestModel(t, Options{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyF4})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.compareModel.Comparing())
	assert.Contains(t, m.View(), "CITY COMPARISON")
	assert.Equal(t, "Compared 2 cities", m.status)
}

func TestModel_GrossUpFlow(t *testing.T) {
	m := newTestModel(t, Options{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyF5})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("10000")})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.grossUpModel.Solving())
	assert.Contains(t, m.View(), "GROSS-UP RESULT")
}

func TestModel_Export(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ExportDir: dir, ExportFormat: "json"})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "paygo_report_*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Contains(t, m.status, "Saved ")
}

func TestModel_ExportUnknownFormat(t *testing.T) {
	m := newTestModel(t, Options{ExportFormat: "pdf"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "unknown export format")
}
