package body2d

import "github.com/vornastek/ecsphys/fx"

// CircleWorld2D caches a circle shape's rotated-and-translated world
// position. Epoch records the world.Frame at which it was last
// refreshed so a system can tell a stale cache apart from a fresh one
// without recomputing rotation every read (spec.md §3).
type CircleWorld2D struct {
	CX, CY fx.FX
	Radius fx.FX
	Epoch  uint64
}

// HullWorld2D caches a convex hull's rotated-and-translated vertices.
type HullWorld2D struct {
	VertexCount int
	Vertices    [MaxHullVertices]struct{ X, Y fx.FX }
	Epoch       uint64
}

// SyncCircle refreshes a CircleWorld2D cache from body and shape against
// the given rotation, stamping it with frame. Circles are rotation
// invariant except for their local offset.
func SyncCircle(out *CircleWorld2D, body Body2D, shape Shape2D, rot fx.RotationCache, frame uint64) {
	ox, oy := rot.Rotate(shape.OffsetX, shape.OffsetY)
	out.CX = fx.Add(body.PX, ox)
	out.CY = fx.Add(body.PY, oy)
	out.Radius = fx.Add(shape.Radius, shape.Skin)
	out.Epoch = frame
}

// SyncHull refreshes a HullWorld2D cache from body and shape against the
// given rotation, stamping it with frame.
func SyncHull(out *HullWorld2D, body Body2D, shape Shape2D, rot fx.RotationCache, frame uint64) {
	out.VertexCount = shape.VertexCount
	for i := 0; i < shape.VertexCount; i++ {
		lx, ly := shape.Vertices[i].X, shape.Vertices[i].Y
		rx, ry := rot.Rotate(lx, ly)
		out.Vertices[i].X = fx.Add(body.PX, rx)
		out.Vertices[i].Y = fx.Add(body.PY, ry)
	}
	out.Epoch = frame
}

// Stale reports whether a cache stamped with epoch needs refreshing
// against the current world frame.
func Stale(epoch, frame uint64) bool { return epoch != frame }
