package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/pkg/logger"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the same salary across cities",
		Long: `Run one input under each city's default contribution rates and report
take-home, tax and contribution differences against the input's own city.

Examples:
  paygo compare input.yaml --cities 110100,310100
  paygo compare --cities 440300,110100,310100 --format csv`,
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

			citiesFlag, _ := cmd.Flags().GetString("cities")
			cityCodes := splitList(citiesFlag)
			if len(cityCodes) == 0 {
				return fmt.Errorf("--cities is required")
			}

			engine := compare.NewCompareEngine(a.engine, a.parser.Catalog)
			engine.Now = a.parser.Now
			set, err := engine.Compare(a.ctx, *form, cityCodes)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				set.InputPath = args[0]
			}
			logger.Debug(a.ctx, "comparison complete",
				zap.String("base", set.BaseCity),
				zap.Int("alternatives", len(set.AlternativeResults)))

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch format {
			case "table", "":
				out = (&compare.TableFormatter{}).Format(set)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(set) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(set)
			case "json":
				detailed, _ := cmd.Flags().GetBool("detailed")
				out, err = (&compare.JSONFormatter{Pretty: true, Detailed: detailed}).Format(set)
			default:
				return fmt.Errorf("unknown format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("cities", "", "Comma-separated city codes to compare")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, compact, csv, json")
	cmd.Flags().Bool("detailed", false, "Include every city's full result in JSON output")
	return cmd
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
