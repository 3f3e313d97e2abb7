package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/litescript/ls-skydome/internal/dome"
	"github.com/litescript/ls-skydome/internal/logging"
	"github.com/litescript/ls-skydome/internal/scad"
	"github.com/litescript/ls-skydome/internal/version"
)

func generateCommand(opts *rootOptions) *cobra.Command {
	var outPath string
	var reportPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve stars and write the dome as an OpenSCAD model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			res, constellationOf, err := opts.resolveAndBuild(ctx)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = opts.cfg.Output.Path
			}
			if err := writeModel(res, opts, outPath); err != nil {
				return err
			}

			rep := dome.NewReport(res, opts.cfg.DomeConfig(), constellationOf)
			if err := writeReport(cmd, rep, reportPath); err != nil {
				return err
			}

			logging.Info(ctx, "dome written",
				zap.String("path", outPath),
				zap.String("run_id", rep.RunID),
				zap.Int("holes", len(res.Placements)),
				zap.Int("skipped", len(res.Skipped)),
			)

			if term.IsTerminal(int(os.Stdout.Fd())) {
				dome.WriteSummaryTable(cmd.OutOrStdout(), rep)
				style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
				fmt.Fprintln(cmd.OutOrStdout(), style.Render("✔ "+outPath))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output .scad path (default from config)")
	cmd.Flags().StringVar(&reportPath, "report", "", `write the JSON run report here ("-" for stdout)`)

	return cmd
}

func writeModel(res *dome.Result, opts *rootOptions, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := scad.NewWriter(scad.WithHeader(
		"ls-skydome v"+version.Version,
		fmt.Sprintf("%d holes, outer radius %g mm", len(res.Placements), opts.cfg.Dome.OuterRadiusMm),
	))
	if err := w.Write(out, res.Model); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writeReport(cmd *cobra.Command, rep *dome.Report, path string) error {
	switch path {
	case "":
		return nil
	case "-":
		return rep.WriteJSON(cmd.OutOrStdout())
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report %s: %w", path, err)
		}
		if err := rep.WriteJSON(f); err != nil {
			f.Close()
			return fmt.Errorf("writing report %s: %w", path, err)
		}
		return f.Close()
	}
}
