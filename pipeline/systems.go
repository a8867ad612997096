package pipeline

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ccd"
	"github.com/vornastek/ecsphys/contactmat"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/integrate"
	"github.com/vornastek/ecsphys/narrowphase"
	"github.com/vornastek/ecsphys/query"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/solver"
	"github.com/vornastek/ecsphys/world"
)

// syncWorldShapesSystem refreshes every collidable entity's world-space
// shape cache and AABB from its current Body2D/Shape2D, and keeps the
// persistent SAP structure in step with the live entity set (spec.md
// §4.5: "absorb one frame of motion" via AABB.Expand).
func (p *Pipeline) syncWorldShapesSystem(ctx *scheduler.Context) error {
	q := query.New(p.w.Store).With(p.ids.Body2D, p.ids.Shape2D).Build()

	seen := make(map[ecscore.Entity]struct{})
	var firstErr error
	q.Each(func(e ecscore.Entity) {
		if firstErr != nil {
			return
		}
		body, _ := world.Get[body2d.Body2D](p.w, e, p.ids.Body2D)
		shape, _ := world.Get[body2d.Shape2D](p.w, e, p.ids.Shape2D)

		var rot fx.RotationCache
		rot.Refresh(body.Angle)

		var box body2d.AABB2D
		switch shape.Kind {
		case body2d.ShapeCircle:
			var cw body2d.CircleWorld2D
			body2d.SyncCircle(&cw, body, shape, rot, ctx.Frame)
			p.acc.SetCircleWorld(e, cw)
			box = body2d.FromCircle(cw)
		case body2d.ShapeHull:
			var hw body2d.HullWorld2D
			body2d.SyncHull(&hw, body, shape, rot, ctx.Frame)
			p.acc.SetHullWorld(e, hw)
			box = body2d.FromHull(hw)
		}
		box = box.Expand(p.cfg.BroadphaseMargin)
		p.acc.SetAABB(e, box)
		p.sap.Set(e, box)
		seen[e] = struct{}{}
	})
	if firstErr != nil {
		return firstErr
	}

	for e := range p.tracked {
		if _, ok := seen[e]; !ok {
			_ = p.sap.Remove(e)
		}
	}
	p.tracked = seen
	return nil
}

// broadphaseSystem recomputes the SAP's candidate pairs for this tick.
func (p *Pipeline) broadphaseSystem(ctx *scheduler.Context) error {
	p.pairs = p.sap.Pairs()
	return nil
}

// ccdDetectSystem finds time-of-impact events among this tick's
// candidate pairs for any fast-moving body (spec.md §4.9).
func (p *Pipeline) ccdDetectSystem(ctx *scheduler.Context) error {
	events, err := ccd.Detect(p.pairs, p.acc, ctx.DeltaTime, p.cfg.CCD)
	if err != nil {
		return err
	}
	p.toi = events
	return nil
}

// toiSortDedupSystem orders this tick's TOI events by earliest time and
// keeps only one event per colliding pair (spec.md §4.9).
func (p *Pipeline) toiSortDedupSystem(ctx *scheduler.Context) error {
	p.toi = ccd.SortDedup(p.toi, ctx.Frame)
	return nil
}

// toiEpsilon is the small positive margin added to the remaining-time
// scale so the mini-solve's integrate pass clears the contact rather
// than landing exactly back on it (spec.md §4.9).
var toiEpsilon = fx.FromFloat64(0.001)

// toiMiniSolveSystem implements spec.md §4.9's resource swap: if the TOI
// queue is non-empty, it builds one temporary Contact1 per event and
// runs the contact-material → warm-start → solver iterations against
// only those contacts (nothing is committed to the warm-start cache).
// It then publishes them as a scratch Contacts2D with a sub-unit
// SolverTimeScale, restores whatever Contacts2D was live before
// (removing it entirely if none was set), and clears the queue.
//
// SolverTimeScale is deliberately left live past this function: it
// must still be the sub-unit value when integrateSystem — a later
// stage in this same Tick — reads it, so the remaining-time Integrate
// pass spec.md §4.9/§4.10 describes actually runs at the scaled Δt
// instead of fx.One. integrateSystem is the one that clears it, once
// it has been consumed for this tick.
//
// The mini-solve only ever resolves the contact normal/friction response
// for the remaining fraction of the step; it does not attempt to slide
// a body along the TOI surface for a second, separate sub-step — the
// one GS solve against the temporary contacts already folds the
// post-impact friction and rebound into the single remaining-time
// Integrate pass that follows it in the normal pipeline order.
func (p *Pipeline) toiMiniSolveSystem(ctx *scheduler.Context) error {
	if len(p.toi) == 0 {
		return nil
	}

	earliest := p.toi[0].T
	scale := fx.Add(fx.Sub(fx.One, earliest), toiEpsilon)

	prevContacts, hadContacts := world.GetResource[narrowphase.Contacts2D](p.w)

	miniContacts := ccd.BuildTOIContacts(p.toi)
	if err := contactmat.Build(miniContacts, p.acc, p.worldDefaultMaterial(), p.worldMaterialTable()); err != nil {
		return err
	}
	if err := solver.WarmStart(miniContacts, p.acc); err != nil {
		return err
	}
	for i := 0; i < p.cfg.Solver.Iterations; i++ {
		if err := solver.Iterate(miniContacts, p.acc, ctx.DeltaTime, p.cfg.Solver); err != nil {
			return err
		}
	}

	world.SetResource(p.w, narrowphase.Contacts2D{List: miniContacts})
	world.SetResource(p.w, SolverTimeScale(scale))

	if hadContacts {
		world.SetResource(p.w, prevContacts)
	} else {
		world.RemoveResource[narrowphase.Contacts2D](p.w)
	}

	p.toi = nil
	return nil
}

// narrowphaseSystem generates this tick's authoritative contact list
// from the broadphase pairs, seeded from the warm-start cache, and
// publishes it as the Contacts2D resource (spec.md §4.6).
func (p *Pipeline) narrowphaseSystem(ctx *scheduler.Context) error {
	contacts, err := narrowphase.Generate(p.pairs, p.acc, p.cache)
	if err != nil {
		return err
	}
	world.SetResource(p.w, narrowphase.Contacts2D{List: contacts})
	return nil
}

// buildContactMaterialsSystem resolves materials and mixing rules for
// every live contact (spec.md §4.7).
func (p *Pipeline) buildContactMaterialsSystem(ctx *scheduler.Context) error {
	c, ok := world.GetResource[narrowphase.Contacts2D](p.w)
	if !ok {
		return nil
	}
	if err := contactmat.Build(c.List, p.acc, p.worldDefaultMaterial(), p.worldMaterialTable()); err != nil {
		return err
	}
	world.SetResource(p.w, c)
	return nil
}

// warmStartSystem re-applies last frame's cached impulses before the
// first GS iteration (spec.md §4.8).
func (p *Pipeline) warmStartSystem(ctx *scheduler.Context) error {
	c, ok := world.GetResource[narrowphase.Contacts2D](p.w)
	if !ok {
		return nil
	}
	return solver.WarmStart(c.List, p.acc)
}

// jointState holds one frame's gathered joints and their owning
// entities, for every joint variant. The per-joint solver rows BuildX-
// Rows produces are unexported types of package solver, so they live as
// locals inside solverIterationsSystem instead of here.
type jointState struct {
	distance       []solver.DistanceJoint
	distanceOwners []ecscore.Entity

	revolute       []solver.RevoluteJoint
	revoluteOwners []ecscore.Entity

	prismatic       []solver.PrismaticJoint
	prismaticOwners []ecscore.Entity
}

// buildJointsSystem gathers every non-broken, non-both-asleep joint for
// this tick (spec.md §4.8).
func (p *Pipeline) buildJointsSystem(ctx *scheduler.Context) error {
	dj, djOwners, err := gatherDistanceJoints(p.w, p.ids, p.acc)
	if err != nil {
		return err
	}
	rj, rjOwners, err := gatherRevoluteJoints(p.w, p.ids, p.acc)
	if err != nil {
		return err
	}
	pj, pjOwners, err := gatherPrismaticJoints(p.w, p.ids, p.acc)
	if err != nil {
		return err
	}

	p.joints.distance, p.joints.distanceOwners = dj, djOwners
	p.joints.revolute, p.joints.revoluteOwners = rj, rjOwners
	p.joints.prismatic, p.joints.prismaticOwners = pj, pjOwners
	return nil
}

// solverIterationsSystem builds one solver row per joint, then runs
// Config.Solver.Iterations Gauss-Seidel passes over the contacts and
// every joint batch (spec.md §4.8).
func (p *Pipeline) solverIterationsSystem(ctx *scheduler.Context) error {
	c, _ := world.GetResource[narrowphase.Contacts2D](p.w)

	distRows, err := solver.BuildDistanceRows(p.joints.distance, p.acc, ctx.DeltaTime)
	if err != nil {
		return err
	}
	revRows, err := solver.BuildRevoluteRows(p.joints.revolute, p.acc, ctx.DeltaTime)
	if err != nil {
		return err
	}
	prismRows, err := solver.BuildPrismaticRows(p.joints.prismatic, p.acc, ctx.DeltaTime)
	if err != nil {
		return err
	}

	for i := 0; i < p.cfg.Solver.Iterations; i++ {
		if err := solver.Iterate(c.List, p.acc, ctx.DeltaTime, p.cfg.Solver); err != nil {
			return err
		}
		if err := solver.SolveDistanceRows(p.joints.distance, distRows, p.acc); err != nil {
			return err
		}
		if err := solver.SolveRevoluteRows(p.joints.revolute, revRows, p.acc); err != nil {
			return err
		}
		if err := solver.SolvePrismaticRows(p.joints.prismatic, prismRows, p.acc); err != nil {
			return err
		}
	}
	return nil
}

// commitSystem writes every contact's and joint's converged impulses
// back as the warm-start seed for next frame (spec.md §4.8).
func (p *Pipeline) commitSystem(ctx *scheduler.Context) error {
	c, ok := world.GetResource[narrowphase.Contacts2D](p.w)
	if ok {
		p.cache.Update(c.List)
	}
	writeBackDistanceJoints(p.w, p.ids.DistanceJoint, p.joints.distance, p.joints.distanceOwners)
	writeBackRevoluteJoints(p.w, p.ids.RevoluteJoint, p.joints.revolute, p.joints.revoluteOwners)
	writeBackPrismaticJoints(p.w, p.ids.PrismaticJoint, p.joints.prismatic, p.joints.prismaticOwners)
	return nil
}

// integrateSystem advances every awake body's pose by Δt times the
// live SolverTimeScale resource (default fx.One), per spec.md §4.10.
// SolverTimeScale is a one-tick signal published by toiMiniSolveSystem
// earlier in this same Tick (spec.md §4.9): once consumed here it is
// removed, so a tick with no TOI event (or a future tick after this
// one) integrates at the default fx.One rather than replaying a stale
// scale.
func (p *Pipeline) integrateSystem(ctx *scheduler.Context) error {
	scale := fx.One
	if s, ok := world.GetResource[SolverTimeScale](p.w); ok {
		scale = fx.FX(s)
		world.RemoveResource[SolverTimeScale](p.w)
	}

	q := query.New(p.w.Store).With(p.ids.Body2D).Build()
	var entities []ecscore.Entity
	q.Each(func(e ecscore.Entity) { entities = append(entities, e) })

	return integrate.Integrate(entities, p.acc, ctx.DeltaTime, scale)
}

// sleepSystem advances the below-threshold timer and transitions awake
// bodies to sleep once they have sat still for long enough (spec.md
// §4.10).
func (p *Pipeline) sleepSystem(ctx *scheduler.Context) error {
	q := query.New(p.w.Store).With(p.ids.Body2D).Build()
	var entities []ecscore.Entity
	q.Each(func(e ecscore.Entity) { entities = append(entities, e) })

	return integrate.Tick(entities, p.acc, p.cfg.Integrate, ctx.DeltaTime)
}

func (p *Pipeline) worldDefaultMaterial() *body2d.Material2D {
	if mat, ok := world.GetResource[body2d.Material2D](p.w); ok {
		return &mat
	}
	return nil
}

func (p *Pipeline) worldMaterialTable() *body2d.MaterialTable2D {
	if table, ok := world.GetResource[*body2d.MaterialTable2D](p.w); ok {
		return table
	}
	return nil
}
