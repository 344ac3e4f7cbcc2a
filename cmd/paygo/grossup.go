package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/paygo/internal/breakeven"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/pkg/logger"
)

func newGrossUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gross-up [input-file]",
		Short: "Find the monthly gross salary that nets a target",
		Long: `Solve for the monthly gross salary whose take-home pay (or net over the
month range) matches a target, holding every other input fixed.

Examples:
  paygo gross-up input.yaml --target 15000
  paygo gross-up --target 150000 --metric range_net
  paygo gross-up --target 15000 --cities 440300,110100,310100`,
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

			targetFlag, _ := cmd.Flags().GetString("target")
			target := config.ParseNumber(targetFlag)
			if !target.IsPositive() {
				return fmt.Errorf("--target must be a positive amount")
			}
			metric, _ := cmd.Flags().GetString("metric")
			minGross, _ := cmd.Flags().GetString("min")
			maxGross, _ := cmd.Flags().GetString("max")

			req := breakeven.GrossUpRequest{
				Base:     form.Normalize(a.parser.Now()),
				Metric:   breakeven.Metric(metric),
				Target:   target,
				MinGross: config.ParseNumber(minGross),
				MaxGross: config.ParseNumber(maxGross),
			}

			solver := breakeven.NewDefaultSolver(a.engine)
			asJSON := false
			if format, _ := cmd.Flags().GetString("format"); format == "json" {
				asJSON = true
			} else if format != "table" {
				return fmt.Errorf("unknown format %q (available: table, json)", format)
			}

			citiesFlag, _ := cmd.Flags().GetString("cities")
			if cities := splitList(citiesFlag); len(cities) > 0 {
				multi, err := solver.SolveForCities(a.ctx, req, a.parser.Catalog, cities)
				if err != nil {
					return err
				}
				logger.Debug(a.ctx, "multi-city gross-up complete", zap.Int("cities", len(multi.Results)))
				if asJSON {
					out, err := (&breakeven.JSONFormatter{Pretty: true}).FormatMultiCity(multi)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), out)
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).FormatMultiCity(multi))
				return nil
			}

			result, err := solver.SolveGross(a.ctx, req)
			if err != nil {
				return err
			}
			logger.Debug(a.ctx, "gross-up complete",
				zap.Int("iterations", result.Iterations),
				zap.String("gross", result.Gross.StringFixed(2)))
			if asJSON {
				out, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(result))
			return nil
		},
	}

	cmd.Flags().String("target", "", "Net amount to reach")
	cmd.Flags().String("metric", string(breakeven.MetricTakeHome), "take_home (monthly) or range_net (over the month range)")
	cmd.Flags().String("min", "", "Lower bound for the monthly gross")
	cmd.Flags().String("max", "", "Upper bound for the monthly gross (default 1,000,000)")
	cmd.Flags().StringP("cities", "c", "", "Comma-separated city codes to solve under each city's rates")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
	return cmd
}
