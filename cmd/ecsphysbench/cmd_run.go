package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/pipeline"
	"github.com/vornastek/ecsphys/world"
)

var runTicks int

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Replay a scenario and print the tracked bodies' final state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := findScenario(args[0])
		if err != nil {
			return err
		}
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		w, sched, ids, tracked, err := s.Build()
		if err != nil {
			return fmt.Errorf("build scenario %s: %w", s.Name, err)
		}

		ticks := s.Ticks
		if runTicks > 0 {
			ticks = runTicks
		}
		dt := fx.FromFloat64(1.0 / 60.0)

		fmt.Printf("scenario %s: %s\n", s.Name, s.Description)

		if s.Name == "sleep-wake" {
			return runSleepWake(w, sched, ids, tracked, dt, ticks)
		}

		for i := 0; i < ticks; i++ {
			if err := sched.Tick(dt); err != nil {
				return fmt.Errorf("tick %d: %w", i, err)
			}
		}
		fmt.Printf("ran %d ticks\n\n", ticks)
		printBodies(w, ids, tracked)
		return nil
	},
}

func printBodies(w *world.World, ids pipeline.Components, tracked []ecscore.Entity) {
	for _, e := range tracked {
		b, ok := world.Get[body2d.Body2D](w, e, ids.Body2D)
		if !ok {
			fmt.Printf("entity %d: no Body2D\n", e.ID)
			continue
		}
		fmt.Printf("entity %d: pos=(%.4f, %.4f) vel=(%.4f, %.4f) awake=%v\n",
			e.ID, fx.ToFloat64(b.PX), fx.ToFloat64(b.PY), fx.ToFloat64(b.VX), fx.ToFloat64(b.VY), b.Awake)
	}
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "override the scenario's default tick count")
}
