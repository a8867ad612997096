package narrowphase

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

// vertex returns hull vertex i, wrapping modulo the vertex count.
func vertex(h body2d.HullWorld2D, i int) (x, y fx.FX) {
	v := h.Vertices[i%h.VertexCount]
	return v.X, v.Y
}

// edgeNormal returns the outward unit normal of edge i (running from
// vertex i to vertex i+1), assuming counter-clockwise winding, per
// body2d.NewConvexHull's documented vertex order.
func edgeNormal(h body2d.HullWorld2D, i int) (nx, ny fx.FX) {
	ax, ay := vertex(h, i)
	bx, by := vertex(h, i+1)
	ex, ey := fx.Sub(bx, ax), fx.Sub(by, ay)
	// outward normal for a CCW polygon is the edge vector rotated -90°.
	rawX, rawY := ey, fx.Neg(ex)
	length := fx.Sqrt(fx.Add(fx.Mul(rawX, rawX), fx.Mul(rawY, rawY)))
	if length == 0 {
		return fx.Zero, fx.Zero
	}
	return fx.Div(rawX, length), fx.Div(rawY, length)
}

// project returns [min, max] of h's vertices projected onto axis (nx,ny).
func project(h body2d.HullWorld2D, nx, ny fx.FX) (min, max fx.FX) {
	vx, vy := vertex(h, 0)
	min = fx.Dot(vx, vy, nx, ny)
	max = min
	for i := 1; i < h.VertexCount; i++ {
		vx, vy = vertex(h, i)
		d := fx.Dot(vx, vy, nx, ny)
		min = fx.Min(min, d)
		max = fx.Max(max, d)
	}
	return min, max
}

// bestSeparatingFace returns the face index of h whose outward normal
// yields the greatest separation against other, and that separation
// value. A positive separation means the hulls do not overlap along
// that axis: other's closest vertex along the face normal still lies
// outside the face plane.
func bestSeparatingFace(h, other body2d.HullWorld2D) (faceIdx int, separation fx.FX) {
	best := fx.FromInt(-1 << 20) // effectively -infinity for this domain
	for i := 0; i < h.VertexCount; i++ {
		nx, ny := edgeNormal(h, i)
		ax, ay := vertex(h, i)
		faceValue := fx.Dot(ax, ay, nx, ny)
		otherMin, _ := project(other, nx, ny)
		sep := fx.Sub(otherMin, faceValue)
		if i == 0 || sep > best {
			best = sep
			faceIdx = i
		}
	}
	return faceIdx, best
}

// incidentEdge returns the index of other's edge whose normal is most
// anti-parallel to the reference normal (nx, ny) — the face SAT
// clipping treats as the "incident" face.
func incidentEdge(other body2d.HullWorld2D, nx, ny fx.FX) int {
	best := 0
	bestDot := fx.FX(1<<31 - 1)
	for i := 0; i < other.VertexCount; i++ {
		onx, ony := edgeNormal(other, i)
		d := fx.Dot(onx, ony, nx, ny)
		if d < bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}
