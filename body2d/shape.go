package body2d

import "github.com/vornastek/ecsphys/fx"

// MaxHullVertices bounds ConvexHull's local vertex count (spec.md §3).
const MaxHullVertices = 16

// ShapeKind tags which variant a Shape2D holds.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeHull
)

// Shape2D is the local-space collision geometry attached to a body. Only
// the fields matching Kind are meaningful; Circle fields are ignored for
// a hull shape and vice versa.
type Shape2D struct {
	Kind ShapeKind

	// Circle fields.
	OffsetX, OffsetY fx.FX
	Radius           fx.FX

	// ConvexHull fields. VertexCount ≤ MaxHullVertices; Vertices holds
	// local-space points in counter-clockwise winding order.
	VertexCount int
	Vertices    [MaxHullVertices]struct{ X, Y fx.FX }

	// Skin is a small positive margin added to every collision test,
	// shared by both variants (spec.md §3).
	Skin fx.FX
}

// NewCircle returns a circle Shape2D centered at local (ox, oy) with the
// given radius and collision skin.
func NewCircle(ox, oy, radius, skin fx.FX) Shape2D {
	return Shape2D{Kind: ShapeCircle, OffsetX: ox, OffsetY: oy, Radius: radius, Skin: skin}
}

// NewConvexHull returns a convex-hull Shape2D over verts, given in
// counter-clockwise winding order. It returns ErrDegenerateHull for
// fewer than 3 vertices and ErrTooManyVertices beyond MaxHullVertices.
func NewConvexHull(skin fx.FX, verts ...[2]fx.FX) (Shape2D, error) {
	if len(verts) < 3 {
		return Shape2D{}, ErrDegenerateHull
	}
	if len(verts) > MaxHullVertices {
		return Shape2D{}, ErrTooManyVertices
	}
	s := Shape2D{Kind: ShapeHull, VertexCount: len(verts), Skin: skin}
	for i, v := range verts {
		s.Vertices[i].X, s.Vertices[i].Y = v[0], v[1]
	}
	return s, nil
}
