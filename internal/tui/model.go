package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/paygo/internal/breakeven"
	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/rgehrsitz/paygo/internal/tui/scenes"
)

// Options configures a new Model
type Options struct {
	// InputPath is an optional YAML form loaded on start
	InputPath string
	Parser    *config.InputParser
	Engine    *calculation.CalculationEngine

	// ExportDir and ExportFormat control ctrl+s
	ExportDir    string
	ExportFormat string
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	inputPath    string
	exportDir    string
	exportFormat string

	parser        *config.InputParser
	calcEngine    *calculation.CalculationEngine
	compareEngine *compare.CompareEngine
	solver        *breakeven.Solver

	// Scene models
	calculatorModel *scenes.CalculatorModel
	resultsModel    *scenes.ResultsModel
	compareModel    *scenes.CompareModel
	grossUpModel    *scenes.GrossUpModel

	keys keyMap

	status string
	err    error
}

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Calculator key.Binding
	Results    key.Binding
	Compare    key.Binding
	GrossUp    key.Binding
	Export     key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+c", "quit")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Calculator: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "calculator")),
		Results:    key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "results")),
		Compare:    key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "compare")),
		GrossUp:    key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "gross-up")),
		Export:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	parser := opts.Parser
	if parser == nil {
		parser = config.NewInputParser()
	}
	engine := opts.Engine
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	format := opts.ExportFormat
	if format == "" {
		format = "xlsx"
	}
	dir := opts.ExportDir
	if dir == "" {
		dir = "."
	}

	calc := scenes.NewCalculatorModel(parser.NewForm(), parser.Catalog, engine)
	calc.Now = parser.Now
	calc.SetForm(calc.Form())
	results := scenes.NewResultsModel()
	results.SetResult(calc.Result())

	compareEngine := compare.NewCompareEngine(engine, parser.Catalog)
	compareEngine.Now = parser.Now

	return Model{
		currentScene:    SceneCalculator,
		previousScene:   SceneCalculator,
		width:           80,
		height:          24,
		inputPath:       opts.InputPath,
		exportDir:       dir,
		exportFormat:    format,
		parser:          parser,
		calcEngine:      engine,
		compareEngine:   compareEngine,
		solver:          breakeven.NewDefaultSolver(engine),
		calculatorModel: calc,
		resultsModel:    results,
		compareModel:    scenes.NewCompareModel(parser.Catalog),
		grossUpModel:    scenes.NewGrossUpModel(),
		keys:            defaultKeyMap(),
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.inputPath == "" {
		return nil
	}
	return loadFormCmd(m.parser, m.inputPath)
}

// Calculator exposes the calculator scene
func (m Model) Calculator() *scenes.CalculatorModel {
	return m.calculatorModel
}

// CurrentScene returns the scene being shown
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// loadFormCmd returns a command that parses an input file
func loadFormCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		form, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if err := parser.ValidateForm(form); err != nil {
			return ErrorMsg{Err: err}
		}
		return FormLoadedMsg{Path: path, Form: form}
	}
}

// compareCmd runs the current form through each selected city
func compareCmd(engine *compare.CompareEngine, form config.FormInput, cityCodes []string) tea.Cmd {
	return func() tea.Msg {
		set, err := engine.Compare(context.Background(), form, cityCodes)
		return ComparisonCompleteMsg{Set: set, Err: err}
	}
}

// grossUpCmd solves for the gross salary reaching the target
func grossUpCmd(solver *breakeven.Solver, req breakeven.GrossUpRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := solver.SolveGross(context.Background(), req)
		return GrossUpCompleteMsg{Result: result, Err: err}
	}
}

// exportCmd writes the current result with the named formatter
func exportCmd(m Model, format string) tea.Cmd {
	result := m.calculatorModel.Result()
	dir := m.exportDir
	return func() tea.Msg {
		f := output.GetFormatterByName(format)
		if f == nil {
			return ExportCompleteMsg{Err: fmt.Errorf("unknown export format: %s", format)}
		}
		path, err := output.WriteFormatted(f, result, dir)
		return ExportCompleteMsg{Path: path, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneCalculator:
		return "Calculator"
	case SceneResults:
		return "Results"
	case SceneCompare:
		return "Compare"
	case SceneGrossUp:
		return "Gross-up"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
