package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/internal/metrics"
)

var (
	profileAddr     string
	profileInterval time.Duration
)

var profileCmd = &cobra.Command{
	Use:   "profile <scenario>",
	Short: "Tick a scenario forever while serving its profiler over Prometheus",
	Long: `profile runs the named scenario on a repeating tick loop and serves the
scheduler's Profiler as Prometheus metrics on --addr (default
:9091), under /metrics, plus a /health liveness endpoint. Stop it
with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
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

		srv := metrics.NewServer(profileAddr, sched.Profiler())
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				log.Error("metrics server stopped", zap.Error(err))
			}
		}()
		fmt.Printf("serving metrics on http://%s/metrics (health: /health)\n", profileAddr)
		fmt.Printf("ticking scenario %s every %s, press Ctrl+C to stop\n", s.Name, profileInterval)

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		dt := fx.FromFloat64(1.0 / 60.0)
		ticker := time.NewTicker(profileInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				return srv.Shutdown(shutdownCtx)
			case <-ticker.C:
				if err := sched.Tick(dt); err != nil {
					return fmt.Errorf("tick: %w", err)
				}
			}
		}
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileAddr, "addr", ":9091", "address to serve /metrics and /health on")
	profileCmd.Flags().DurationVar(&profileInterval, "interval", 16*time.Millisecond, "wall-clock delay between ticks")
}
