package csg

import (
	"math"

	"github.com/litescript/ls-skydome/internal/astro"
)

// Rotation is an axis-angle rotation in degrees. The axis keeps
// whatever length the solver produced; SCAD-style renderers accept any
// non-zero axis. AngleDeg == 0 is the identity and the axis then
// carries no meaning.
type Rotation struct {
	Axis     astro.Vec3
	AngleDeg float64
}

// IsIdentity reports whether the rotation leaves vectors unchanged.
func (r Rotation) IsIdentity() bool {
	return r.AngleDeg == 0
}

// Apply rotates v by r.
func (r Rotation) Apply(v astro.Vec3) astro.Vec3 {
	if r.IsIdentity() {
		return v
	}
	return v.RotateAround(r.Axis.Normalized(), r.AngleDeg)
}

// ZAxis is the canonical cutter axis before orientation.
var ZAxis = astro.Vec3{Z: 1}

// colinearEps bounds the cross-product norm below which two directions
// count as colinear.
const colinearEps = 1e-9

// AlignAxis returns the rotation that carries from onto to, as
// axis = from × to, angle = acos(from · to). Colinear directions
// return the identity, the opposed case included: the centered cutters
// this feeds pierce the shell on both sides, so a 180° flip changes
// nothing.
func AlignAxis(from, to astro.Vec3) Rotation {
	axis := from.Cross(to)
	if axis.Norm() <= colinearEps {
		return Rotation{Axis: from, AngleDeg: 0}
	}

	cos := astro.Clamp(from.Dot(to), -1, 1)
	return Rotation{Axis: axis, AngleDeg: radToDeg(math.Acos(cos))}
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
