package narrowphase

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
)

// ShapeProvider is the narrowphase's view of world state: shape
// variants and their synced world caches, looked up by entity. The
// pipeline package implements this against a *world.World; it is an
// interface here so narrowphase stays free of any ECS query
// dependency.
type ShapeProvider interface {
	Shape(e ecscore.Entity) (body2d.Shape2D, bool)
	CircleWorld(e ecscore.Entity) (body2d.CircleWorld2D, bool)
	HullWorld(e ecscore.Entity) (body2d.HullWorld2D, bool)
}
