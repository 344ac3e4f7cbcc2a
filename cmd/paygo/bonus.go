package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/output"
)

func newBonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus <amount>",
		Short: "Calculate tax on an annual lump-sum bonus",
		Long: `Calculate tax on an annual lump-sum bonus taxed separately from salary:
the bonus is averaged over 12 months, the average is taxed against the annual
bracket table, and that tax is multiplied back by 12.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(cmd); err != nil {
				return err
			}

			result := calculation.ComputeBonusTax(config.ParseNumber(args[0]))

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal bonus result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "ANNUAL BONUS")
			fmt.Fprintln(w, "============")
			fmt.Fprintf(w, "Bonus:            %s\n", output.FormatCurrency(result.Bonus))
			fmt.Fprintf(w, "Monthly average:  %s\n", output.FormatCurrency(result.AverageMonthly))
			fmt.Fprintf(w, "Tax:              %s\n", output.FormatCurrency(result.Tax))
			fmt.Fprintf(w, "Net bonus:        %s\n", output.FormatCurrency(result.NetBonus))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	return cmd
}
