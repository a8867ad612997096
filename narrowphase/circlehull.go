package narrowphase

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// hullCircle tests a hull against a circle: the face with the greatest
// separation against the circle's center decides which Voronoi region
// (face, or one of its two vertices) the center falls in. hullIsA
// records whether the hull is pair.A, so the returned contact's normal
// can be oriented from A to B regardless of which argument carried the
// hull.
func hullCircle(hullEntity, circleEntity ecscore.Entity, hull body2d.HullWorld2D, circle circleData, hullIsA bool) (Contact1, bool) {
	bestFace := 0
	bestSep := fx.FromInt(-1 << 20)
	for i := 0; i < hull.VertexCount; i++ {
		nx, ny := edgeNormal(hull, i)
		vx, vy := vertex(hull, i)
		sep := fx.Dot(fx.Sub(circle.CX, vx), fx.Sub(circle.CY, vy), nx, ny)
		if i == 0 || sep > bestSep {
			bestSep = sep
			bestFace = i
		}
	}
	if bestSep > circle.Radius {
		return Contact1{}, false
	}

	v1x, v1y := vertex(hull, bestFace)
	v2x, v2y := vertex(hull, bestFace+1)
	u1 := fx.Dot(fx.Sub(circle.CX, v1x), fx.Sub(circle.CY, v1y), fx.Sub(v2x, v1x), fx.Sub(v2y, v1y))
	u2 := fx.Dot(fx.Sub(circle.CX, v2x), fx.Sub(circle.CY, v2y), fx.Sub(v1x, v2x), fx.Sub(v1y, v2y))

	var cx, cy, nx, ny fx.FX
	var featureVertex int
	switch {
	case bestSep <= 0:
		// Center lies inside the hull's face region: use the face normal.
		nx, ny = edgeNormal(hull, bestFace)
		cx = fx.Sub(circle.CX, fx.Mul(nx, circle.Radius))
		cy = fx.Sub(circle.CY, fx.Mul(ny, circle.Radius))
		featureVertex = bestFace
	case u1 <= 0:
		dx, dy := fx.Sub(circle.CX, v1x), fx.Sub(circle.CY, v1y)
		dist := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
		if dist > circle.Radius {
			return Contact1{}, false
		}
		nx, ny = normalizeOrZero(dx, dy, dist)
		cx, cy = v1x, v1y
		featureVertex = bestFace
	case u2 <= 0:
		dx, dy := fx.Sub(circle.CX, v2x), fx.Sub(circle.CY, v2y)
		dist := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
		if dist > circle.Radius {
			return Contact1{}, false
		}
		nx, ny = normalizeOrZero(dx, dy, dist)
		cx, cy = v2x, v2y
		featureVertex = bestFace + 1
	default:
		faceNX, faceNY := edgeNormal(hull, bestFace)
		proj := fx.Dot(fx.Sub(circle.CX, v1x), fx.Sub(circle.CY, v1y), faceNX, faceNY)
		if proj > circle.Radius {
			return Contact1{}, false
		}
		nx, ny = faceNX, faceNY
		cx = fx.Sub(circle.CX, fx.Mul(nx, proj))
		cy = fx.Sub(circle.CY, fx.Mul(ny, proj))
		featureVertex = bestFace
	}

	penetration := fx.Sub(circle.Radius, bestSep)

	// The normal above points outward from the hull toward the circle.
	// Orient it A->B.
	if !hullIsA {
		nx, ny = fx.Neg(nx), fx.Neg(ny)
	}

	a, b := hullEntity, circleEntity
	if !hullIsA {
		a, b = circleEntity, hullEntity
	}

	return Contact1{
		A: a, B: b,
		NX: nx, NY: ny,
		PX: cx, PY: cy,
		Penetration: penetration,
		FeatureID:   uint64(featureVertex),
	}, true
}

func normalizeOrZero(x, y, length fx.FX) (fx.FX, fx.FX) {
	if length == 0 {
		return fx.One, fx.Zero
	}
	return fx.Div(x, length), fx.Div(y, length)
}
