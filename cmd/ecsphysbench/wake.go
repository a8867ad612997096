package main

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/integrate"
	"github.com/vornastek/ecsphys/pipeline"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/world"
)

// wakeAccessor is integrate.BodyAccessor implemented directly against a
// *world.World, used only by the sleep-wake scenario to call
// integrate.WakeFromImpulse from outside the pipeline's own private
// accessor (unexported in package pipeline).
type wakeAccessor struct {
	w          *world.World
	body       ecscore.ComponentID
	sleepState ecscore.ComponentID
}

func (a wakeAccessor) Body(e ecscore.Entity) (body2d.Body2D, bool) {
	return world.Get[body2d.Body2D](a.w, e, a.body)
}

func (a wakeAccessor) SetBody(e ecscore.Entity, b body2d.Body2D) {
	_ = a.w.AddComponent(e, a.body, b)
}

func (a wakeAccessor) SleepState(e ecscore.Entity) (body2d.SleepState, bool) {
	return world.Get[body2d.SleepState](a.w, e, a.sleepState)
}

func (a wakeAccessor) SetSleepState(e ecscore.Entity, s body2d.SleepState) {
	_ = a.w.AddComponent(e, a.sleepState, s)
}

// wakeImpulseMagnitude exceeds integrate.DefaultConfig's ImpulseWake
// (0.05) so it always wakes a sleeping body, reproducing spec.md §8
// scenario 5's "applied impulse of 0.2 wakes the sleeping body".
var wakeImpulseMagnitude = fx.FromFloat64(0.2)

// runSleepWake ticks the sleep-wake scenario until the tracked body
// falls asleep (or the tick budget runs out), applies a wake impulse,
// then ticks a few more frames to show the body moving again.
func runSleepWake(w *world.World, sched *scheduler.Scheduler, ids pipeline.Components, tracked []ecscore.Entity, dt fx.FX, maxTicks int) error {
	if len(tracked) == 0 {
		return fmt.Errorf("sleep-wake scenario tracks no entities")
	}
	e := tracked[0]

	sleptAt := -1
	for i := 0; i < maxTicks; i++ {
		if err := sched.Tick(dt); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		b, ok := world.Get[body2d.Body2D](w, e, ids.Body2D)
		if ok && !b.Awake {
			sleptAt = i
			break
		}
	}
	if sleptAt < 0 {
		fmt.Printf("body never fell asleep within %d ticks\n\n", maxTicks)
		printBodies(w, ids, tracked)
		return nil
	}
	fmt.Printf("body fell asleep at tick %d\n", sleptAt)

	acc := wakeAccessor{w: w, body: ids.Body2D, sleepState: ids.SleepState}
	cfg := integrate.DefaultConfig()
	if err := integrate.WakeFromImpulse(e, wakeImpulseMagnitude, acc, cfg); err != nil {
		return fmt.Errorf("wake from impulse: %w", err)
	}
	b, _ := world.Get[body2d.Body2D](w, e, ids.Body2D)
	fmt.Printf("applied impulse %.3f, body awake=%v\n", fx.ToFloat64(wakeImpulseMagnitude), b.Awake)

	const settleTicks = 5
	for i := 0; i < settleTicks; i++ {
		if err := sched.Tick(dt); err != nil {
			return fmt.Errorf("post-wake tick %d: %w", i, err)
		}
	}
	fmt.Printf("ran %d more ticks after waking\n\n", settleTicks)
	printBodies(w, ids, tracked)
	return nil
}
