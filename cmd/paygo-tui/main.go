package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/tui"
)

func main() {
	settingsFile := flag.String("config", "", "settings file (YAML)")
	exportDir := flag.String("export-dir", ".", "directory ctrl+s writes reports into")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: paygo-tui [flags] [input-file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	inputPath := flag.Arg(0)
	if inputPath != "" {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			fmt.Printf("Error: input file not found: %s\n", inputPath)
			os.Exit(1)
		}
	}

	settings, err := config.LoadSettings(*settingsFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	parser, err := settings.NewInputParser()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	exportFormat := settings.Format
	if exportFormat == "console" {
		exportFormat = "xlsx"
	}

	model := tui.NewModel(tui.Options{
		InputPath:    inputPath,
		Parser:       parser,
		Engine:       calculation.NewCalculationEngine(),
		ExportDir:    *exportDir,
		ExportFormat: exportFormat,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
