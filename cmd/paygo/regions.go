package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
)

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [province]",
		Short: "List provinces, or the cities of one province with their default rates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd)
			if err != nil {
				return err
			}
			catalog := a.parser.Catalog

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 0 {
				fmt.Fprintln(w, "CODE\tPROVINCE\tCITIES")
				for _, p := range catalog.Provinces() {
					fmt.Fprintf(w, "%s\t%s\t%d\n", p.Code, p.Name, len(catalog.CitiesOf(p.Code)))
				}
				return nil
			}

			province, ok := catalog.Province(args[0])
			if !ok {
				return fmt.Errorf("unknown province code %q", args[0])
			}
			fmt.Fprintf(w, "%s %s\n\n", province.Code, province.Name)
			fmt.Fprintln(w, "CODE\tCITY\tPENSION\tMEDICAL\tUNEMPLOYMENT\tMATERNITY\tINJURY\tHOUSING")
			for _, c := range catalog.CitiesOf(province.Code) {
				if c.Defaults == nil {
					fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\t-\t-\n", c.Code, c.Name)
					continue
				}
				fmt.Fprintf(w, "%s\t%s", c.Code, c.Name)
				for _, cat := range domain.Categories {
					fmt.Fprintf(w, "\t%s", output.FormatPercentage(c.Defaults.Rate(cat)))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}
