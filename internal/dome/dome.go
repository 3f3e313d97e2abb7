// Package dome turns star lists into perforated planetarium shells.
// The output is a symbolic shape tree; rendering happens elsewhere.
package dome

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/csg"
	"github.com/litescript/ls-skydome/internal/logging"
)

const (
	// Hole cylinders run three outer radii end to end, clearing the
	// shell on both sides of the origin.
	cutterLengthFactor = 3.0

	// cutterSegments is the facet count for hole cylinders.
	cutterSegments = 16

	// The clip cube edge is 2.5 outer radii, enough to swallow the
	// whole lower hemisphere.
	clipFactor = 2.5
)

// Shell builds the hollow upper hemisphere: outer sphere minus inner
// sphere, with a clip cube subtracting everything below the equator.
func Shell(cfg Config) (csg.Shape, error) {
	inner := cfg.OuterRadiusMm - cfg.WallThicknessMm
	if inner <= 0 {
		return nil, fmt.Errorf("outer radius %.2f mm, wall %.2f mm: %w",
			cfg.OuterRadiusMm, cfg.WallThicknessMm, ErrWallTooThick)
	}

	hollow := csg.Difference{
		Base: csg.Sphere{R: cfg.OuterRadiusMm, Segments: cfg.SurfaceResolution},
		Cuts: []csg.Shape{csg.Sphere{R: inner, Segments: cfg.SurfaceResolution}},
	}

	side := clipFactor * cfg.OuterRadiusMm
	clip := csg.Translate{
		Offset: astro.Vec3{Z: -side / 2},
		Child:  csg.Cube{Size: side, Centered: true},
	}

	return csg.Difference{Base: hollow, Cuts: []csg.Shape{clip}}, nil
}

// Placement fixes one star on the shell: where it pierces, how wide
// the hole is, and how the cutter is turned.
type Placement struct {
	Star         astro.Star
	Surface      astro.Vec3 // on the outer sphere
	Direction    astro.Vec3 // unit
	HoleRadiusMm float64
	Rotation     csg.Rotation
}

// Place projects a star onto the shell and solves its cutter
// orientation. Failures are per-star and recoverable.
func Place(star astro.Star, cfg Config) (Placement, error) {
	surface, err := astro.ProjectSphere(star.RAdeg, star.DecDeg, cfg.OuterRadiusMm)
	if err != nil {
		return Placement{}, fmt.Errorf("star %q: %w", star.Name, err)
	}

	dir := surface.Normalized()
	if dir == (astro.Vec3{}) {
		return Placement{}, fmt.Errorf("star %q: %w", star.Name, ErrDegenerateDirection)
	}

	return Placement{
		Star:         star,
		Surface:      surface,
		Direction:    dir,
		HoleRadiusMm: cfg.HoleRadius(star.Mag),
		Rotation:     csg.AlignAxis(csg.ZAxis, dir),
	}, nil
}

// Cutter returns the oriented cylinder that drills this placement.
// The cylinder is centered on the origin, so it pierces the shell at
// the placement and at its antipode. The rotate node is kept even for
// the identity so every cutter has the same tree shape.
func (p Placement) Cutter(cfg Config) csg.Shape {
	return csg.Rotate{
		Rot: p.Rotation,
		Child: csg.Cylinder{
			R:        p.HoleRadiusMm,
			H:        cutterLengthFactor * cfg.OuterRadiusMm,
			Centered: true,
			Segments: cutterSegments,
		},
	}
}

// CutterFor is Place followed by Cutter.
func CutterFor(star astro.Star, cfg Config) (csg.Shape, error) {
	p, err := Place(star, cfg)
	if err != nil {
		return nil, err
	}
	return p.Cutter(cfg), nil
}

// Skip records a star dropped from a build and why.
type Skip struct {
	Star astro.Star
	Err  error
}

// Result is a finished build: the shape tree plus the bookkeeping the
// report and preview run on.
type Result struct {
	Model      csg.Shape
	Placements []Placement // input order, skips removed
	Skipped    []Skip
}

// Build runs the full pipeline: validate the config, build the shell,
// construct per-star cutters in parallel, then subtract them in a
// strictly ordered fold. Per-star failures are logged, recorded on the
// result, and never abort the build.
func Build(ctx context.Context, stars []astro.Star, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(stars) == 0 {
		return nil, ErrNoStars
	}

	shell, err := Shell(cfg)
	if err != nil {
		return nil, err
	}

	type slot struct {
		placement Placement
		cutter    csg.Shape
		err       error
	}
	slots := make([]slot, len(stars))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, star := range stars {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Place(star, cfg)
			if err != nil {
				slots[i] = slot{err: err}
				return nil
			}
			slots[i] = slot{placement: p, cutter: p.Cutter(cfg)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The fold walks the input order, so the subtraction sequence is
	// deterministic no matter how the goroutines finished.
	res := &Result{Model: shell}
	for i, star := range stars {
		s := slots[i]
		if s.err != nil {
			logging.Warn(ctx, "skipping star",
				zap.String("star", star.Name),
				zap.Error(s.err))
			res.Skipped = append(res.Skipped, Skip{Star: star, Err: s.err})
			continue
		}
		res.Model = csg.Difference{Base: res.Model, Cuts: []csg.Shape{s.cutter}}
		res.Placements = append(res.Placements, s.placement)
	}

	logging.Info(ctx, "dome built",
		zap.Int("stars", len(stars)),
		zap.Int("holes", len(res.Placements)),
		zap.Int("skipped", len(res.Skipped)))

	return res, nil
}
