// Package astro provides celestial coordinate math for star placement.
package astro

import (
	"errors"
	"fmt"
	"math"
)

// Star is one celestial object to be pierced into the dome.
type Star struct {
	Name   string
	RAdeg  float64 // right ascension, degrees
	DecDeg float64 // declination, degrees
	Mag    float64 // apparent magnitude, smaller is brighter
}

// ErrNonFinite reports a NaN or infinite input.
var ErrNonFinite = errors.New("non-finite coordinate")

// ProjectSphere maps equatorial coordinates onto a sphere of the given
// radius centered on the origin. The x axis points at RA 0 on the
// equator, z at the north celestial pole.
func ProjectSphere(raDeg, decDeg, radius float64) (Vec3, error) {
	if !isFinite(raDeg) || !isFinite(decDeg) || !isFinite(radius) {
		return Vec3{}, fmt.Errorf("ra=%v dec=%v r=%v: %w", raDeg, decDeg, radius, ErrNonFinite)
	}

	ra := degToRad(raDeg)
	dec := degToRad(decDeg)
	return Vec3{
		X: radius * math.Cos(dec) * math.Cos(ra),
		Y: radius * math.Cos(dec) * math.Sin(ra),
		Z: radius * math.Sin(dec),
	}, nil
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
