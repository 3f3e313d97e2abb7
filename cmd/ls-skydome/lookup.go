package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func lookupCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup STAR...",
		Short: "Resolve star names and show the hole each would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := opts.buildResolver()
			if err != nil {
				return err
			}
			cfg := opts.cfg.DomeConfig()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-22s %9s %9s %6s %8s\n", "Star", "RA", "Dec", "Mag", "Hole mm")
			fmt.Fprintln(out, strings.Repeat("─", 58))

			failed := 0
			for _, name := range args {
				star, err := resolver.Resolve(cmd.Context(), name)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%-22s unresolved: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "%-22s %9.3f %9.3f %6.2f %8.2f\n",
					star.Name, star.RAdeg, star.DecDeg, star.Mag, cfg.HoleRadius(star.Mag))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d stars unresolved", failed, len(args))
			}
			return nil
		},
	}
}
