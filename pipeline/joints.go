package pipeline

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/integrate"
	"github.com/vornastek/ecsphys/query"
	"github.com/vornastek/ecsphys/solver"
	"github.com/vornastek/ecsphys/world"
)

// gatherDistanceJoints copies every non-skipped DistanceJoint component
// into a dense slice alongside its owning entity, in stable query order.
// A joint whose endpoints are both asleep is skipped entirely for this
// tick (spec.md §4.10); a joint with exactly one sleeping endpoint wakes
// it first.
func gatherDistanceJoints(w *world.World, ids Components, acc *accessor) ([]solver.DistanceJoint, []ecscore.Entity, error) {
	q := query.New(w.Store).With(ids.DistanceJoint).Build()

	var joints []solver.DistanceJoint
	var owners []ecscore.Entity
	var firstErr error
	q.Each(func(e ecscore.Entity) {
		if firstErr != nil {
			return
		}
		j, ok := world.Get[solver.DistanceJoint](w, e, ids.DistanceJoint)
		if !ok || j.Broken {
			return
		}
		skip, err := integrate.ResolveJointWake(j.A, j.B, acc)
		if err != nil {
			firstErr = err
			return
		}
		if skip {
			return
		}
		joints = append(joints, j)
		owners = append(owners, e)
	})
	return joints, owners, firstErr
}

func writeBackDistanceJoints(w *world.World, id ecscore.ComponentID, joints []solver.DistanceJoint, owners []ecscore.Entity) {
	for i, e := range owners {
		_ = w.AddComponent(e, id, joints[i])
	}
}

func gatherRevoluteJoints(w *world.World, ids Components, acc *accessor) ([]solver.RevoluteJoint, []ecscore.Entity, error) {
	q := query.New(w.Store).With(ids.RevoluteJoint).Build()

	var joints []solver.RevoluteJoint
	var owners []ecscore.Entity
	var firstErr error
	q.Each(func(e ecscore.Entity) {
		if firstErr != nil {
			return
		}
		j, ok := world.Get[solver.RevoluteJoint](w, e, ids.RevoluteJoint)
		if !ok || j.Broken {
			return
		}
		skip, err := integrate.ResolveJointWake(j.A, j.B, acc)
		if err != nil {
			firstErr = err
			return
		}
		if skip {
			return
		}
		joints = append(joints, j)
		owners = append(owners, e)
	})
	return joints, owners, firstErr
}

func writeBackRevoluteJoints(w *world.World, id ecscore.ComponentID, joints []solver.RevoluteJoint, owners []ecscore.Entity) {
	for i, e := range owners {
		_ = w.AddComponent(e, id, joints[i])
	}
}

func gatherPrismaticJoints(w *world.World, ids Components, acc *accessor) ([]solver.PrismaticJoint, []ecscore.Entity, error) {
	q := query.New(w.Store).With(ids.PrismaticJoint).Build()

	var joints []solver.PrismaticJoint
	var owners []ecscore.Entity
	var firstErr error
	q.Each(func(e ecscore.Entity) {
		if firstErr != nil {
			return
		}
		j, ok := world.Get[solver.PrismaticJoint](w, e, ids.PrismaticJoint)
		if !ok || j.Broken {
			return
		}
		skip, err := integrate.ResolveJointWake(j.A, j.B, acc)
		if err != nil {
			firstErr = err
			return
		}
		if skip {
			return
		}
		joints = append(joints, j)
		owners = append(owners, e)
	})
	return joints, owners, firstErr
}

func writeBackPrismaticJoints(w *world.World, id ecscore.ComponentID, joints []solver.PrismaticJoint, owners []ecscore.Entity) {
	for i, e := range owners {
		_ = w.AddComponent(e, id, joints[i])
	}
}
