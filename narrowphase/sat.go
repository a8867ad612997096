package narrowphase

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// faceTolerance biases which hull's face is chosen as the reference
// face when both separating axes are nearly tied, preferring the first
// hull so the clipping direction is deterministic rather than
// oscillating between equally valid choices frame to frame.
const faceTolerance = fx.FX(fx.One / 10)

// clipVertex is one candidate contact point surviving Sutherland-
// Hodgman clipping, tagged with the incident-edge vertex index it
// originated from so the final feature id stays stable across frames.
type clipVertex struct {
	x, y fx.FX
	id   int
}

// clipSegmentToLine keeps the portion of segment [v0, v1] on the
// negative side of the half-plane dot(n, p) <= offset, introducing an
// interpolated point (tagged with clipEdgeID) wherever the segment
// crosses the plane. Mirrors the standard two-point polygon clip used
// throughout 2D SAT manifold construction.
func clipSegmentToLine(v0, v1 clipVertex, nx, ny, offset fx.FX, clipEdgeID int) ([2]clipVertex, int) {
	var out [2]clipVertex
	count := 0

	d0 := fx.Sub(fx.Dot(v0.x, v0.y, nx, ny), offset)
	d1 := fx.Sub(fx.Dot(v1.x, v1.y, nx, ny), offset)

	if d0 <= 0 {
		out[count] = v0
		count++
	}
	if d1 <= 0 {
		out[count] = v1
		count++
	}
	if d0*d1 < 0 {
		t := fx.Div(d0, fx.Sub(d0, d1))
		out[count] = clipVertex{
			x:  fx.MulAdd(t, fx.Sub(v1.x, v0.x), v0.x),
			y:  fx.MulAdd(t, fx.Sub(v1.y, v0.y), v0.y),
			id: clipEdgeID,
		}
		count++
	}
	return out, count
}

// hullHull runs the SAT procedure of spec.md §4.6: find each hull's best
// separating face; if either yields positive separation the pair is
// non-penetrating; otherwise the hull with the larger (least negative)
// separation is the reference face, its neighbor's most anti-parallel
// edge is the incident face, and the incident edge is clipped against
// the reference edge's two side planes before being filtered to points
// still behind the reference face.
func hullHull(a, b ecscore.Entity, ha, hb body2d.HullWorld2D) ([]Contact1, bool) {
	faceA, sepA := bestSeparatingFace(ha, hb)
	faceB, sepB := bestSeparatingFace(hb, ha)
	if sepA > 0 || sepB > 0 {
		return nil, false
	}

	flip := sepB > fx.Add(sepA, faceTolerance)

	var refHull, incHull body2d.HullWorld2D
	var refFace int
	if flip {
		refHull, incHull, refFace = hb, ha, faceB
	} else {
		refHull, incHull, refFace = ha, hb, faceA
	}

	refNX, refNY := edgeNormal(refHull, refFace)
	refV1x, refV1y := vertex(refHull, refFace)
	refV2x, refV2y := vertex(refHull, refFace+1)

	incFace := incidentEdge(incHull, refNX, refNY)
	incV1x, incV1y := vertex(incHull, incFace)
	incV2x, incV2y := vertex(incHull, incFace+1)

	tx := fx.Sub(refV2x, refV1x)
	ty := fx.Sub(refV2y, refV1y)
	tlen := fx.Sqrt(fx.Add(fx.Mul(tx, tx), fx.Mul(ty, ty)))
	if tlen == 0 {
		return nil, false
	}
	tx, ty = fx.Div(tx, tlen), fx.Div(ty, tlen)

	side1 := fx.Neg(fx.Dot(refV1x, refV1y, tx, ty))
	side2 := fx.Dot(refV2x, refV2y, tx, ty)

	incident := [2]clipVertex{{incV1x, incV1y, incFace}, {incV2x, incV2y, incFace + 1}}

	clipped1, n1 := clipSegmentToLine(incident[0], incident[1], fx.Neg(tx), fx.Neg(ty), side1, refFace)
	if n1 < 2 {
		return nil, false
	}
	clipped2, n2 := clipSegmentToLine(clipped1[0], clipped1[1], tx, ty, side2, refFace+1)
	if n2 < 2 {
		return nil, false
	}

	refOffset := fx.Dot(refV1x, refV1y, refNX, refNY)

	var contacts []Contact1
	for _, cv := range clipped2 {
		separation := fx.Sub(fx.Dot(cv.x, cv.y, refNX, refNY), refOffset)
		if separation > 0 {
			continue
		}

		nx, ny := refNX, refNY
		if flip {
			nx, ny = fx.Neg(nx), fx.Neg(ny)
		}

		featureID := makeHullFeatureID(flip, refFace, incFace, cv.id)
		contacts = append(contacts, Contact1{
			A: a, B: b,
			NX: nx, NY: ny,
			PX: cv.x, PY: cv.y,
			Penetration: fx.Neg(separation),
			FeatureID:   featureID,
		})
	}
	if len(contacts) == 0 {
		return nil, false
	}
	return contacts, true
}

// makeHullFeatureID packs the reference/incident face indices, the
// clipped point's source vertex id, and the flip flag into one stable
// key so the same geometric contact keeps the same id across frames
// even as the hulls rotate slightly (spec.md §4.6).
func makeHullFeatureID(flip bool, refFace, incFace, pointID int) uint64 {
	var flipBit uint64
	if flip {
		flipBit = 1
	}
	return flipBit<<48 | uint64(uint16(refFace))<<32 | uint64(uint16(incFace))<<16 | uint64(uint16(pointID))
}
