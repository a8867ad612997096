// Command ecsphysbench is a developer CLI that replays the spec.md §8
// scenario tests as CLI-selectable deterministic runs, outside the
// core module, for manual inspection, profiling, and live Prometheus
// scraping of the scheduler's system samples.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vornastek/ecsphys/internal/logz"
)

var rootCmd = &cobra.Command{
	Use:   "ecsphysbench",
	Short: "Deterministic replays of the ecsphys physics pipeline",
	Long: `ecsphysbench drives the ecsphys physics pipeline through the fixed
scenarios named in spec.md §8 (head-on, wall-slide, toi-order,
distance-joint, sleep-wake) for manual inspection, timing, and live
Prometheus scraping.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ecsphysbench:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "use a development (human-readable) logger")
	rootCmd.AddCommand(runCmd, benchCmd, profileCmd)
}

// newLogger builds the *zap.Logger each subcommand logs through,
// switching to logz.LevelDebug when --debug is set.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	level := logz.LevelProduction
	if debug {
		level = logz.LevelDebug
	}
	return logz.New(level)
}
