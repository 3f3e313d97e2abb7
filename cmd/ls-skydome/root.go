package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/catalog"
	"github.com/litescript/ls-skydome/internal/config"
	"github.com/litescript/ls-skydome/internal/dome"
	"github.com/litescript/ls-skydome/internal/logging"
)

// rootOptions carries the persistent flags and the loaded config shared
// by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	starsPath  string
	resolver   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ls-skydome",
		Short:         "Generate pinhole planetarium domes as OpenSCAD models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			// Flags win over file and environment.
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			if opts.logFormat != "" {
				cfg.Log.Format = opts.logFormat
			}
			if opts.resolver != "" {
				cfg.Resolver.Mode = opts.resolver
			}
			opts.cfg = cfg

			logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: console or json")
	cmd.PersistentFlags().StringVar(&opts.starsPath, "stars", "", "constellation file (YAML); bundled southern figures when empty")
	cmd.PersistentFlags().StringVar(&opts.resolver, "resolver", "", "star resolver: auto, builtin, or tap")

	cmd.AddCommand(
		generateCommand(opts),
		previewCommand(opts),
		lookupCommand(opts),
		versionCommand(),
	)

	return cmd
}

// loadSets reads the requested constellation file, or falls back to the
// bundled figures.
func (o *rootOptions) loadSets() ([]catalog.Constellation, error) {
	if o.starsPath == "" {
		return catalog.DefaultConstellations(), nil
	}
	return catalog.LoadConstellations(o.starsPath)
}

// buildResolver assembles the resolver the config asks for.
func (o *rootOptions) buildResolver() (catalog.Resolver, error) {
	mode, err := catalog.ParseMode(o.cfg.Resolver.Mode)
	if err != nil {
		return nil, err
	}

	var topts []catalog.TAPOption
	if o.cfg.Resolver.TAPURL != "" {
		topts = append(topts, catalog.WithBaseURL(o.cfg.Resolver.TAPURL))
	}
	if o.cfg.Resolver.Timeout > 0 {
		topts = append(topts, catalog.WithTimeout(o.cfg.Resolver.Timeout))
	}
	return catalog.ForMode(mode, topts...), nil
}

// resolveAndBuild runs the pipeline up to a drilled dome: constellation
// sets, name resolution, then the shell build. It also returns the
// star-to-figure mapping for reports and the preview.
func (o *rootOptions) resolveAndBuild(ctx context.Context) (*dome.Result, map[string]string, error) {
	sets, err := o.loadSets()
	if err != nil {
		return nil, nil, err
	}
	resolver, err := o.buildResolver()
	if err != nil {
		return nil, nil, err
	}

	members, err := catalog.ResolveMembers(ctx, resolver, sets)
	if err != nil {
		return nil, nil, err
	}

	stars := make([]astro.Star, len(members))
	constellationOf := make(map[string]string, len(members))
	for i, mem := range members {
		stars[i] = mem.Star
		constellationOf[mem.Star.Name] = mem.Constellation
	}

	res, err := dome.Build(ctx, stars, o.cfg.DomeConfig())
	if err != nil {
		return nil, nil, err
	}
	return res, constellationOf, nil
}
