package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/output"
	"github.com/rgehrsitz/paygo/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app is what every command needs after settings and logging are set up
type app struct {
	ctx      context.Context
	settings *config.Settings
	parser   *config.InputParser
	engine   *calculation.CalculationEngine
}

// setup loads settings, configures the logger and builds the parser and
// engine for one command invocation
func setup(cmd *cobra.Command) (*app, error) {
	settingsFile, _ := cmd.Flags().GetString("config")
	debugMode, _ := cmd.Flags().GetBool("debug")

	settings, err := config.LoadSettings(settingsFile)
	if err != nil {
		return nil, err
	}
	if regions, _ := cmd.Flags().GetString("regions"); regions != "" {
		settings.RegionsFile = regions
	}

	if err := logger.Setup(settings.Environment, debugMode); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx := logger.WithFields(cmd.Context(), zap.String("command", cmd.Name()))

	parser, err := settings.NewInputParser()
	if err != nil {
		return nil, err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar(ctx))

	logger.Debug(ctx, "settings loaded",
		zap.String("environment", settings.Environment),
		zap.String("format", settings.Format),
		zap.String("regions_file", settings.RegionsFile))

	return &app{ctx: ctx, settings: settings, parser: parser, engine: engine}, nil
}

// loadForm reads the optional input file, or starts from the default form
func (a *app) loadForm(args []string) (*config.FormInput, error) {
	if len(args) == 0 {
		form := a.parser.NewForm()
		return &form, nil
	}

	form, err := a.parser.LoadFromFile(args[0])
	if err != nil {
		return nil, err
	}
	if err := a.parser.ValidateForm(form); err != nil {
		return nil, fmt.Errorf("invalid input file %s: %w", args[0], err)
	}
	logger.Debug(a.ctx, "input loaded", zap.String("file", args[0]), zap.String("city", form.CityCode))
	return form, nil
}

// applyOverrides lets flags replace individual form fields
func (a *app) applyOverrides(cmd *cobra.Command, form *config.FormInput) error {
	if city, _ := cmd.Flags().GetString("city"); city != "" {
		c, ok := a.parser.Catalog.City(city)
		if !ok {
			return fmt.Errorf("unknown city code %q", city)
		}
		form.ApplyCity(a.parser.Catalog, city)
		form.ProvinceCode = c.ProvinceCode
	}
	if income, _ := cmd.Flags().GetString("income"); income != "" {
		form.MonthlyIncome = income
	}
	if month, _ := cmd.Flags().GetString("month"); month != "" {
		form.CommitReportingMonth(month)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paygo",
		Short: "Salary and withholding tax calculator",
		Long: `Calculate monthly take-home pay, cumulative income tax withholding,
social insurance and housing fund contributions, and annual bonus tax.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Settings file (YAML); PAYGO_* environment variables override it")
	root.PersistentFlags().String("regions", "", "Province/city table replacing the builtin one")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(
		newCalculateCmd(),
		newValidateCmd(),
		newBonusCmd(),
		newRegionsCmd(),
		newCompareCmd(),
		newGrossUpCmd(),
		newVersionCmd(),
	)
	return root
}

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate take-home pay and withholding for an input file",
		Long: `Calculate take-home pay and withholding for an input file. Without a
file the default form is used (Shenzhen, 20,500 a month, the full year).

Examples:
  paygo calculate input.yaml
  paygo calculate input.yaml --format xlsx --output reports/
  paygo calculate --city 110100 --income 35000 --month 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			form, err := a.loadForm(args)
			if err != nil {
				return err
			}
			if err := a.applyOverrides(cmd, form); err != nil {
				return err
			}

			result := a.engine.Calculate(form.Normalize(a.parser.Now()))

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = a.settings.Format
			}
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
			}

			if dir, _ := cmd.Flags().GetString("output"); dir != "" {
				path, err := output.WriteFormatted(f, result, dir)
				if err != nil {
					return err
				}
				logger.Info(a.ctx, "report written", zap.String("path", path))
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			}

			data, err := f.Format(result)
			if err != nil {
				return fmt.Errorf("failed to format result as %s: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format: console, console-lite, json, csv, html, xlsx (default from settings)")
	cmd.Flags().StringP("output", "o", "", "Write the report into this directory instead of stdout")
	cmd.Flags().String("month", "", "Reporting month (1-12)")
	cmd.Flags().String("city", "", "City code; applies the city's default rates")
	cmd.Flags().String("income", "", "Monthly income")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			if _, err := a.loadForm(args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", args[0])
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paygo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
