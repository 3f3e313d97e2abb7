// Package config loads tool settings from YAML files and SKYDOME_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/litescript/ls-skydome/internal/dome"
)

// Config is the application configuration. Values come from an optional
// YAML file, overridden by environment variables, with defaults for
// everything left unset.
type Config struct {
	// Dome holds the physical parameters of the printed shell.
	Dome struct {
		// OuterRadiusMm is the outer shell radius in millimetres.
		OuterRadiusMm float64 `env:"SKYDOME_OUTER_RADIUS_MM" env-default:"150" yaml:"outerRadiusMm"`
		// WallThicknessMm is the shell wall thickness in millimetres.
		WallThicknessMm float64 `env:"SKYDOME_WALL_THICKNESS_MM" env-default:"3" yaml:"wallThicknessMm"`
		// LimitingMagnitude is the faintest star that still gets a hole.
		LimitingMagnitude float64 `env:"SKYDOME_LIMITING_MAGNITUDE" env-default:"6" yaml:"limitingMagnitude"`
		// HoleRadiusMinMm is the hole radius for stars at the limiting magnitude.
		HoleRadiusMinMm float64 `env:"SKYDOME_HOLE_RADIUS_MIN_MM" env-default:"1" yaml:"holeRadiusMinMm"`
		// HoleRadiusMaxMm is the hole radius for the brightest stars.
		HoleRadiusMaxMm float64 `env:"SKYDOME_HOLE_RADIUS_MAX_MM" env-default:"3" yaml:"holeRadiusMaxMm"`
		// SurfaceResolution is the segment count used for curved surfaces.
		SurfaceResolution int `env:"SKYDOME_SURFACE_RESOLUTION" env-default:"120" yaml:"surfaceResolution"`
	} `yaml:"dome"`

	// Resolver picks how star names turn into coordinates.
	Resolver struct {
		// Mode is auto, builtin, or tap.
		Mode string `env:"SKYDOME_RESOLVER_MODE" env-default:"auto" yaml:"mode"`
		// TAPURL overrides the TAP endpoint; empty means the public SIMBAD service.
		TAPURL string `env:"SKYDOME_RESOLVER_TAP_URL" yaml:"tapUrl"`
		// Timeout bounds a single TAP query.
		Timeout time.Duration `env:"SKYDOME_RESOLVER_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"resolver"`

	// Output controls where generated files land.
	Output struct {
		// Path is the OpenSCAD file written by generate.
		Path string `env:"SKYDOME_OUTPUT_PATH" env-default:"skydome.scad" yaml:"path"`
	} `yaml:"output"`

	// Log controls diagnostic output.
	Log struct {
		// Level is debug, info, warn, or error.
		Level string `env:"SKYDOME_LOG_LEVEL" env-default:"info" yaml:"level"`
		// Format is console or json.
		Format string `env:"SKYDOME_LOG_FORMAT" env-default:"console" yaml:"format"`
	} `yaml:"log"`
}

// Load reads configuration from path, or from the environment alone
// when path is empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}
	return &cfg, nil
}

// DomeConfig maps the loaded settings onto the dome builder's config.
func (c *Config) DomeConfig() dome.Config {
	return dome.Config{
		OuterRadiusMm:     c.Dome.OuterRadiusMm,
		WallThicknessMm:   c.Dome.WallThicknessMm,
		LimitingMagnitude: c.Dome.LimitingMagnitude,
		HoleRadiusMinMm:   c.Dome.HoleRadiusMinMm,
		HoleRadiusMaxMm:   c.Dome.HoleRadiusMaxMm,
		SurfaceResolution: c.Dome.SurfaceResolution,
	}
}
