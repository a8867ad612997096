package pipeline

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/world"
)

// accessor is the single adapter satisfying every physics sub-package's
// provider interface (narrowphase.ShapeProvider, contactmat.BodyProvider,
// solver.BodyAccessor, ccd.BodyProvider, integrate.BodyAccessor) against
// a live *world.World. One concrete type rather than one per interface
// keeps every stage reading and writing the same World through the same
// small set of methods.
type accessor struct {
	w   *world.World
	ids Components
}

func newAccessor(w *world.World, ids Components) *accessor {
	return &accessor{w: w, ids: ids}
}

func (a *accessor) Body(e ecscore.Entity) (body2d.Body2D, bool) {
	return world.Get[body2d.Body2D](a.w, e, a.ids.Body2D)
}

func (a *accessor) SetBody(e ecscore.Entity, b body2d.Body2D) {
	_ = a.w.AddComponent(e, a.ids.Body2D, b)
}

func (a *accessor) Shape(e ecscore.Entity) (body2d.Shape2D, bool) {
	return world.Get[body2d.Shape2D](a.w, e, a.ids.Shape2D)
}

func (a *accessor) CircleWorld(e ecscore.Entity) (body2d.CircleWorld2D, bool) {
	return world.Get[body2d.CircleWorld2D](a.w, e, a.ids.CircleWorld)
}

func (a *accessor) SetCircleWorld(e ecscore.Entity, c body2d.CircleWorld2D) {
	_ = a.w.AddComponent(e, a.ids.CircleWorld, c)
}

func (a *accessor) HullWorld(e ecscore.Entity) (body2d.HullWorld2D, bool) {
	return world.Get[body2d.HullWorld2D](a.w, e, a.ids.HullWorld)
}

func (a *accessor) SetHullWorld(e ecscore.Entity, h body2d.HullWorld2D) {
	_ = a.w.AddComponent(e, a.ids.HullWorld, h)
}

func (a *accessor) AABB(e ecscore.Entity) (body2d.AABB2D, bool) {
	return world.Get[body2d.AABB2D](a.w, e, a.ids.AABB2D)
}

func (a *accessor) SetAABB(e ecscore.Entity, box body2d.AABB2D) {
	_ = a.w.AddComponent(e, a.ids.AABB2D, box)
}

func (a *accessor) Material(e ecscore.Entity) (body2d.Material2D, bool) {
	return world.Get[body2d.Material2D](a.w, e, a.ids.Material2D)
}

func (a *accessor) SleepState(e ecscore.Entity) (body2d.SleepState, bool) {
	return world.Get[body2d.SleepState](a.w, e, a.ids.SleepState)
}

func (a *accessor) SetSleepState(e ecscore.Entity, s body2d.SleepState) {
	_ = a.w.AddComponent(e, a.ids.SleepState, s)
}
