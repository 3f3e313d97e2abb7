package astro

import "math"

// Vec3 is a Cartesian vector in model space. Dome geometry uses
// millimeters; directions are unit length.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the scalar product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the vector product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns the unit vector in the direction of v, or the
// zero vector when v has zero length.
func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1 / n)
}

// RotateAround rotates v by angleDeg about a unit axis using the
// Rodrigues formula.
func (v Vec3) RotateAround(axis Vec3, angleDeg float64) Vec3 {
	theta := degToRad(angleDeg)
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	// v' = v cosθ + (k × v) sinθ + k (k · v)(1 - cosθ)
	term1 := v.Scale(cos)
	term2 := axis.Cross(v).Scale(sin)
	term3 := axis.Scale(axis.Dot(v) * (1 - cos))
	return term1.Add(term2).Add(term3)
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
