package body2d

import "github.com/vornastek/ecsphys/fx"

// AABB2D is the broadphase bound: an axis-aligned box in world-fixed
// coordinates. Entities without one are skipped by the broadphase
// (spec.md §4.5).
type AABB2D struct {
	MinX, MinY fx.FX
	MaxX, MaxY fx.FX
}

// FromCircle returns the AABB2D tightly bounding a world-space circle.
func FromCircle(c CircleWorld2D) AABB2D {
	return AABB2D{
		MinX: fx.Sub(c.CX, c.Radius), MinY: fx.Sub(c.CY, c.Radius),
		MaxX: fx.Add(c.CX, c.Radius), MaxY: fx.Add(c.CY, c.Radius),
	}
}

// FromHull returns the AABB2D tightly bounding a world-space hull.
func FromHull(h HullWorld2D) AABB2D {
	if h.VertexCount == 0 {
		return AABB2D{}
	}
	box := AABB2D{
		MinX: h.Vertices[0].X, MinY: h.Vertices[0].Y,
		MaxX: h.Vertices[0].X, MaxY: h.Vertices[0].Y,
	}
	for i := 1; i < h.VertexCount; i++ {
		v := h.Vertices[i]
		box.MinX = fx.Min(box.MinX, v.X)
		box.MinY = fx.Min(box.MinY, v.Y)
		box.MaxX = fx.Max(box.MaxX, v.X)
		box.MaxY = fx.Max(box.MaxY, v.Y)
	}
	return box
}

// Expand grows the box by margin on every side, used by the broadphase
// to absorb one frame of motion without re-sorting every tick.
func (b AABB2D) Expand(margin fx.FX) AABB2D {
	return AABB2D{
		MinX: fx.Sub(b.MinX, margin), MinY: fx.Sub(b.MinY, margin),
		MaxX: fx.Add(b.MaxX, margin), MaxY: fx.Add(b.MaxY, margin),
	}
}

// Overlaps reports whether two boxes intersect on both axes.
func (b AABB2D) Overlaps(o AABB2D) bool {
	if b.MaxX < o.MinX || o.MaxX < b.MinX {
		return false
	}
	if b.MaxY < o.MinY || o.MaxY < b.MinY {
		return false
	}
	return true
}
