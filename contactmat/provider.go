package contactmat

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
)

// BodyProvider is the contact-material builder's view of world state:
// each entity's rigid body and, optionally, its own Material2D override.
type BodyProvider interface {
	Body(e ecscore.Entity) (body2d.Body2D, bool)
	Material(e ecscore.Entity) (body2d.Material2D, bool)
}
