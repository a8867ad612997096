package narrowphase

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/broadphase"
)

func asCircleData(c body2d.CircleWorld2D) circleData {
	return circleData{CX: c.CX, CY: c.CY, Radius: c.Radius}
}

// Generate dispatches every candidate pair to the matching shape-pair
// test, seeds each resulting contact's warm-start impulses from cache,
// and returns the full per-frame contact list (spec.md §4.6).
func Generate(pairs []broadphase.Pair, provider ShapeProvider, cache *Cache) ([]Contact1, error) {
	var out []Contact1
	for _, pair := range pairs {
		contacts, err := generatePair(pair, provider)
		if err != nil {
			return nil, err
		}
		for i := range contacts {
			if cache != nil {
				cache.Seed(&contacts[i])
			}
		}
		out = append(out, contacts...)
	}
	return out, nil
}

func generatePair(pair broadphase.Pair, provider ShapeProvider) ([]Contact1, error) {
	shapeA, ok := provider.Shape(pair.A)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
	}
	shapeB, ok := provider.Shape(pair.B)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
	}

	switch {
	case shapeA.Kind == body2d.ShapeCircle && shapeB.Kind == body2d.ShapeCircle:
		ca, ok := provider.CircleWorld(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
		}
		cb, ok := provider.CircleWorld(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
		}
		c, hit := circleCircle(pair.A, pair.B, asCircleData(ca), asCircleData(cb))
		if !hit {
			return nil, nil
		}
		return []Contact1{c}, nil

	case shapeA.Kind == body2d.ShapeHull && shapeB.Kind == body2d.ShapeHull:
		ha, ok := provider.HullWorld(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
		}
		hb, ok := provider.HullWorld(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
		}
		contacts, hit := hullHull(pair.A, pair.B, ha, hb)
		if !hit {
			return nil, nil
		}
		return contacts, nil

	case shapeA.Kind == body2d.ShapeHull: // A is hull, B is circle
		ha, ok := provider.HullWorld(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
		}
		cb, ok := provider.CircleWorld(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
		}
		c, hit := hullCircle(pair.A, pair.B, ha, asCircleData(cb), true)
		if !hit {
			return nil, nil
		}
		return []Contact1{c}, nil

	default: // A is circle, B is hull
		ca, ok := provider.CircleWorld(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
		}
		hb, ok := provider.HullWorld(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
		}
		c, hit := hullCircle(pair.B, pair.A, hb, asCircleData(ca), false)
		if !hit {
			return nil, nil
		}
		return []Contact1{c}, nil
	}
}
