package dome

import (
	"errors"
	"fmt"
)

// Stock configuration: a 15 cm printed dome with a 3 mm wall, drilled
// for everything the naked eye can see.
const (
	DefaultOuterRadiusMm     = 150.0
	DefaultWallThicknessMm   = 3.0
	DefaultLimitingMagnitude = 6.0
	DefaultHoleRadiusMinMm   = 1.0
	DefaultHoleRadiusMaxMm   = 3.0
	DefaultSurfaceResolution = 120
)

// brightAnchorMag is the magnitude mapped to the widest hole. Sirius
// sits near -1.5; no fixed star is meaningfully brighter.
const brightAnchorMag = -1.5

// Config holds every knob of the dome pipeline. The zero value is not
// usable; start from Default.
type Config struct {
	OuterRadiusMm     float64
	WallThicknessMm   float64
	LimitingMagnitude float64
	HoleRadiusMinMm   float64
	HoleRadiusMaxMm   float64
	SurfaceResolution int
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		OuterRadiusMm:     DefaultOuterRadiusMm,
		WallThicknessMm:   DefaultWallThicknessMm,
		LimitingMagnitude: DefaultLimitingMagnitude,
		HoleRadiusMinMm:   DefaultHoleRadiusMinMm,
		HoleRadiusMaxMm:   DefaultHoleRadiusMaxMm,
		SurfaceResolution: DefaultSurfaceResolution,
	}
}

var (
	// ErrWallTooThick means the wall consumes the whole radius and no
	// interior cavity remains.
	ErrWallTooThick = errors.New("wall thickness leaves no interior cavity")

	// ErrNoStars means the build was asked to perforate nothing.
	ErrNoStars = errors.New("no stars to perforate")

	// ErrDegenerateDirection means a star projected onto the origin
	// and no cutter direction exists for it.
	ErrDegenerateDirection = errors.New("degenerate star direction")
)

// Validate checks the configuration before a build.
func (c Config) Validate() error {
	if c.OuterRadiusMm <= 0 {
		return fmt.Errorf("outer radius %.2f mm: must be positive", c.OuterRadiusMm)
	}
	if c.WallThicknessMm <= 0 {
		return fmt.Errorf("wall thickness %.2f mm: must be positive", c.WallThicknessMm)
	}
	if c.OuterRadiusMm-c.WallThicknessMm <= 0 {
		return fmt.Errorf("outer radius %.2f mm, wall %.2f mm: %w",
			c.OuterRadiusMm, c.WallThicknessMm, ErrWallTooThick)
	}
	if c.HoleRadiusMinMm <= 0 {
		return fmt.Errorf("minimum hole radius %.2f mm: must be positive", c.HoleRadiusMinMm)
	}
	if c.HoleRadiusMaxMm < c.HoleRadiusMinMm {
		return fmt.Errorf("hole radius range %.2f..%.2f mm: inverted", c.HoleRadiusMinMm, c.HoleRadiusMaxMm)
	}
	if c.LimitingMagnitude <= brightAnchorMag {
		return fmt.Errorf("limiting magnitude %.2f: must exceed the bright anchor %.1f",
			c.LimitingMagnitude, brightAnchorMag)
	}
	if c.SurfaceResolution < 8 {
		return fmt.Errorf("surface resolution %d: too coarse", c.SurfaceResolution)
	}
	return nil
}
