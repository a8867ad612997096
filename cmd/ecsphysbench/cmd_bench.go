package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/scheduler"
)

var benchTicks int

var benchCmd = &cobra.Command{
	Use:   "bench <scenario>",
	Short: "Run a scenario for N ticks and print per-system profiler stats",
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

		_, sched, _, _, err := s.Build()
		if err != nil {
			return fmt.Errorf("build scenario %s: %w", s.Name, err)
		}

		ticks := benchTicks
		if ticks <= 0 {
			ticks = s.Ticks
		}
		dt := fx.FromFloat64(1.0 / 60.0)
		for i := 0; i < ticks; i++ {
			if err := sched.Tick(dt); err != nil {
				return fmt.Errorf("tick %d: %w", i, err)
			}
		}

		fmt.Printf("scenario %s ran %d ticks\n\n", s.Name, ticks)
		printProfile(sched)
		return nil
	},
}

// printProfile prints one line per system, sorted by name, with the
// Profiler's last/EMA/max/count/errs stats for that system's stage.
func printProfile(sched *scheduler.Scheduler) {
	prof := sched.Profiler()
	systems := sched.Systems()
	sort.Slice(systems, func(i, j int) bool { return systems[i].Name < systems[j].Name })

	fmt.Printf("%-24s %-12s %10s %10s %10s %8s %6s\n", "SYSTEM", "STAGE", "LAST", "EMA", "MAX", "COUNT", "ERRS")
	for _, cfg := range systems {
		sample, ok := prof.Sample(cfg.Stage, cfg.Name)
		if !ok {
			continue
		}
		fmt.Printf("%-24s %-12s %10s %10s %10s %8d %6d\n",
			cfg.Name, cfg.Stage, sample.Last, sample.EMA, sample.Max, sample.Count, sample.Errs)
	}
}

func init() {
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 0, "number of ticks to run (default: scenario's own tick count)")
}
