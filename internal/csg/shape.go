// Package csg models constructive solid geometry as immutable shape
// expression trees. Nodes are symbolic; nothing here evaluates meshes.
package csg

import "github.com/litescript/ls-skydome/internal/astro"

// Shape is one node of a solid-geometry expression tree. The set of
// implementations is closed; renderers switch over it exhaustively.
type Shape interface {
	isShape()
}

// Sphere is centered on the origin. Segments is the facet count used
// when the tree is rendered.
type Sphere struct {
	R        float64
	Segments int
}

// Cylinder extends along +Z from the origin, or symmetrically about
// the origin when Centered.
type Cylinder struct {
	R        float64
	H        float64
	Centered bool
	Segments int
}

// Cube is axis-aligned with scalar edge length Size, cornered at the
// origin, or centered on it when Centered.
type Cube struct {
	Size     float64
	Centered bool
}

// Translate shifts Child by Offset.
type Translate struct {
	Offset astro.Vec3
	Child  Shape
}

// Rotate turns Child by Rot about the origin.
type Rotate struct {
	Rot   Rotation
	Child Shape
}

// Difference subtracts every shape in Cuts from Base.
type Difference struct {
	Base Shape
	Cuts []Shape
}

func (Sphere) isShape()     {}
func (Cylinder) isShape()   {}
func (Cube) isShape()       {}
func (Translate) isShape()  {}
func (Rotate) isShape()     {}
func (Difference) isShape() {}

// Walk visits s and every descendant in depth-first order: node first,
// then children, Difference base before its cuts.
func Walk(s Shape, visit func(Shape)) {
	if s == nil {
		return
	}
	visit(s)

	switch n := s.(type) {
	case Translate:
		Walk(n.Child, visit)
	case Rotate:
		Walk(n.Child, visit)
	case Difference:
		Walk(n.Base, visit)
		for _, c := range n.Cuts {
			Walk(c, visit)
		}
	}
}
