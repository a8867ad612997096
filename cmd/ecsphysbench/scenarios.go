package main

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/pipeline"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/solver"
	"github.com/vornastek/ecsphys/world"
)

// scenario is one spec.md §8 replay: a builder that populates a fresh
// World/Scheduler pair, and the entities worth printing after each run.
type scenario struct {
	ID          int
	Name        string
	Description string
	Ticks       int
	Build       func() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error)
}

var scenarios = []scenario{
	{1, "head-on", "Two circles head-on (spec.md §8 scenario 1)", 1, buildHeadOnScenario},
	{2, "wall-slide", "High-speed wall slide (spec.md §8 scenario 2)", 10, buildWallSlideScenario},
	{3, "toi-order", "TOI ordering across two walls (spec.md §8 scenario 3)", 3, buildTOIOrderScenario},
	{4, "distance-joint", "Distance joint convergence (spec.md §8 scenario 4)", 5, buildDistanceJointScenario},
	{5, "sleep-wake", "Sleep then wake on impulse (spec.md §8 scenario 5)", 60, buildSleepWakeScenario},
}

func findScenario(name string) (scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return scenario{}, fmt.Errorf("unknown scenario %q", name)
}

func newWorld() (*world.World, *scheduler.Scheduler, *ecscore.Registry) {
	reg := ecscore.NewRegistry()
	dt := fx.FromFloat64(1.0 / 60.0)
	w := world.New(reg, world.WithFixedTimestep(dt))
	sched := scheduler.New(w)
	return w, sched, reg
}

func buildHeadOnScenario() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error) {
	w, sched, reg := newWorld()
	cfg := pipeline.DefaultConfig()
	cfg.Solver.Iterations = 8
	ids := pipeline.RegisterComponents(reg)
	p := pipeline.New(w, ids, cfg)
	if err := p.Install(sched); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := sched.Build(); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	a := w.CreateEntity()
	ab := body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(2), fx.Zero), body2d.WithSurface(fx.One, fx.Zero))
	mustAdd(w, a, ids.Body2D, ab)
	mustAdd(w, a, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.5), fx.Zero))

	b := w.CreateEntity()
	bb := body2d.New(fx.FromInt(2), fx.Zero, body2d.WithVelocity(fx.FromInt(-2), fx.Zero), body2d.WithSurface(fx.One, fx.Zero))
	mustAdd(w, b, ids.Body2D, bb)
	mustAdd(w, b, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.5), fx.Zero))

	return w, sched, ids, []ecscore.Entity{a, b}, nil
}

func buildWallSlideScenario() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error) {
	w, sched, reg := newWorld()
	ids := pipeline.RegisterComponents(reg)
	p := pipeline.New(w, ids, pipeline.DefaultConfig())
	if err := p.Install(sched); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := sched.Build(); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	wall := w.CreateEntity()
	mustAdd(w, wall, ids.Body2D, body2d.Static(fx.FromInt(2), fx.Zero))
	wallHull, err := body2d.NewConvexHull(fx.Zero,
		[2]fx.FX{fx.FromFloat64(-0.1), fx.FromInt(-50)},
		[2]fx.FX{fx.FromFloat64(0.1), fx.FromInt(-50)},
		[2]fx.FX{fx.FromFloat64(0.1), fx.FromInt(50)},
		[2]fx.FX{fx.FromFloat64(-0.1), fx.FromInt(50)},
	)
	if err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	mustAdd(w, wall, ids.Shape2D, wallHull)

	ball := w.CreateEntity()
	mustAdd(w, ball, ids.Body2D, body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(120), fx.FromInt(30))))
	mustAdd(w, ball, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.2), fx.Zero))

	return w, sched, ids, []ecscore.Entity{ball}, nil
}

func buildTOIOrderScenario() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error) {
	w, sched, reg := newWorld()
	ids := pipeline.RegisterComponents(reg)
	p := pipeline.New(w, ids, pipeline.DefaultConfig())
	if err := p.Install(sched); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := sched.Build(); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	addWall := func(x fx.FX) error {
		wall := w.CreateEntity()
		mustAdd(w, wall, ids.Body2D, body2d.Static(x, fx.Zero))
		hull, err := body2d.NewConvexHull(fx.Zero,
			[2]fx.FX{fx.FromFloat64(-0.1), fx.FromInt(-50)},
			[2]fx.FX{fx.FromFloat64(0.1), fx.FromInt(-50)},
			[2]fx.FX{fx.FromFloat64(0.1), fx.FromInt(50)},
			[2]fx.FX{fx.FromFloat64(-0.1), fx.FromInt(50)},
		)
		if err != nil {
			return err
		}
		return w.AddComponent(wall, ids.Shape2D, hull)
	}
	if err := addWall(fx.FromFloat64(1.5)); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := addWall(fx.FromInt(4)); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	bullet := w.CreateEntity()
	mustAdd(w, bullet, ids.Body2D, body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(200), fx.Zero)))
	mustAdd(w, bullet, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.1), fx.Zero))

	return w, sched, ids, []ecscore.Entity{bullet}, nil
}

func buildDistanceJointScenario() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error) {
	w, sched, reg := newWorld()
	ids := pipeline.RegisterComponents(reg)
	p := pipeline.New(w, ids, pipeline.DefaultConfig())
	if err := p.Install(sched); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := sched.Build(); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	a := w.CreateEntity()
	mustAdd(w, a, ids.Body2D, body2d.New(fx.FromInt(-1), fx.Zero))
	b := w.CreateEntity()
	mustAdd(w, b, ids.Body2D, body2d.New(fx.FromInt(1), fx.Zero))

	joint := w.CreateEntity()
	dj := solver.DistanceJoint{
		JointBase: solver.JointBase{
			A: a, B: b,
			Baumgarte: fx.FromFloat64(0.2),
		},
		RestLength: fx.FromInt(2),
	}
	mustAdd(w, joint, ids.DistanceJoint, dj)

	return w, sched, ids, []ecscore.Entity{a, b}, nil
}

func buildSleepWakeScenario() (*world.World, *scheduler.Scheduler, pipeline.Components, []ecscore.Entity, error) {
	w, sched, reg := newWorld()
	ids := pipeline.RegisterComponents(reg)
	p := pipeline.New(w, ids, pipeline.DefaultConfig())
	if err := p.Install(sched); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	if err := sched.Build(); err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}

	ground := w.CreateEntity()
	mustAdd(w, ground, ids.Body2D, body2d.Static(fx.Zero, fx.FromInt(-1)))
	groundHull, err := body2d.NewConvexHull(fx.Zero,
		[2]fx.FX{fx.FromInt(-10), fx.FromFloat64(-0.5)},
		[2]fx.FX{fx.FromInt(10), fx.FromFloat64(-0.5)},
		[2]fx.FX{fx.FromInt(10), fx.FromFloat64(0.5)},
		[2]fx.FX{fx.FromInt(-10), fx.FromFloat64(0.5)},
	)
	if err != nil {
		return nil, nil, pipeline.Components{}, nil, err
	}
	mustAdd(w, ground, ids.Shape2D, groundHull)

	body := w.CreateEntity()
	mustAdd(w, body, ids.Body2D, body2d.New(fx.Zero, fx.FromFloat64(-0.5)))
	mustAdd(w, body, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.2), fx.Zero))

	return w, sched, ids, []ecscore.Entity{body}, nil
}

func mustAdd(w *world.World, e ecscore.Entity, id ecscore.ComponentID, v any) {
	if err := w.AddComponent(e, id, v); err != nil {
		panic(fmt.Sprintf("ecsphysbench: scenario setup: %v", err))
	}
}
