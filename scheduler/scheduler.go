package scheduler

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vornastek/ecsphys/cmdbuf"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/world"
)

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithLogger overrides the default no-op zap.Logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// WithProfilerAlpha overrides the Profiler's default EMA smoothing
// factor of 0.15.
func WithProfilerAlpha(alpha float64) Option {
	return func(s *Scheduler) { s.profiler.alpha = alpha }
}

// Scheduler owns one ordered system list per Stage, the resolved
// per-stage execution order, and the Profiler tracking per-system
// timing across ticks.
type Scheduler struct {
	log   *zap.Logger
	world *world.World

	byStage [stageCount][]SystemConfig
	order   [stageCount][]string
	lookup  map[string]SystemConfig

	profiler     *Profiler
	built        bool
	startupDone  bool
	frame        uint64
}

// New returns an empty Scheduler bound to w.
func New(w *world.World, opts ...Option) *Scheduler {
	s := &Scheduler{
		log:      zap.NewNop(),
		world:    w,
		lookup:   make(map[string]SystemConfig),
		profiler: newProfiler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSystem registers cfg. It returns ErrUnknownStage for an out-of-range
// Stage and ErrDuplicateSystem if cfg.Name is already registered in any
// stage.
func (s *Scheduler) AddSystem(cfg SystemConfig) error {
	if cfg.Stage < StageStartup || cfg.Stage >= stageCount {
		return fmt.Errorf("%w: %v", ErrUnknownStage, cfg.Stage)
	}
	if _, exists := s.lookup[cfg.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, cfg.Name)
	}
	s.byStage[cfg.Stage] = append(s.byStage[cfg.Stage], cfg)
	s.lookup[cfg.Name] = cfg
	s.built = false
	return nil
}

// Build resolves every stage's dependency graph into a run order. It
// must be called (and must succeed) before Tick; re-running AddSystem
// afterward requires calling Build again.
func (s *Scheduler) Build() error {
	for stage := Stage(0); stage < stageCount; stage++ {
		systems := s.byStage[stage]
		if len(systems) == 0 {
			s.order[stage] = nil
			continue
		}
		g := buildGraph(systems)
		order, err := topoSort(g)
		if err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
		s.order[stage] = order
	}
	s.built = true
	return nil
}

// Profiler returns the Scheduler's Profiler instance for inspection.
func (s *Scheduler) Profiler() *Profiler { return s.profiler }

// Systems returns every configured system across all stages, in each
// stage's resolved topological order (declaration order before Build).
// Used by package snapshot to populate a scene's systems list.
func (s *Scheduler) Systems() []SystemConfig {
	var out []SystemConfig
	for stage := Stage(0); stage < stageCount; stage++ {
		order := s.order[stage]
		if len(order) == 0 {
			for _, cfg := range s.byStage[stage] {
				out = append(out, cfg)
			}
			continue
		}
		for _, name := range order {
			out = append(out, s.lookup[name])
		}
	}
	return out
}

// Tick runs startup (once, first call only) followed by every other
// stage in fixed order, applying each system's command buffer per its
// FlushPolicy. dt becomes ctx.DeltaTime for every system this tick.
func (s *Scheduler) Tick(dt fx.FX) error {
	if !s.built {
		return ErrNotBuilt
	}
	s.world.BeginFrame()
	s.frame = s.world.Frame()

	stages := []Stage{StagePreUpdate, StageUpdate, StagePostUpdate, StageCleanup}
	if !s.startupDone {
		stages = append([]Stage{StageStartup}, stages...)
	}

	for _, stage := range stages {
		if err := s.runStage(stage, dt); err != nil {
			return err
		}
		if stage == StageStartup {
			s.startupDone = true
		}
	}
	return nil
}

func (s *Scheduler) runStage(stage Stage, dt fx.FX) error {
	names := s.order[stage]
	if len(names) == 0 {
		return nil
	}

	stageBuf := cmdbuf.New()
	for _, name := range names {
		cfg := s.lookup[name]

		ctx := &Context{
			World:     s.world,
			Commands:  cmdbuf.New(),
			Frame:     s.frame,
			DeltaTime: dt,
			Stage:     stage,
		}

		if !evalRunIf(cfg.RunIf, ctx) {
			continue
		}

		start := time.Now()
		err := runSystem(cfg.Fn, ctx)
		elapsed := time.Since(start)
		s.profiler.record(stage, name, elapsed, err != nil)

		if err != nil {
			s.log.Error("system failed",
				zap.String("system", name),
				zap.String("stage", stage.String()),
				zap.Error(err))
		}

		switch cfg.Flush {
		case FlushAfterStage:
			stageBuf.Absorb(ctx.Commands)
		default:
			if err := s.world.Flush(ctx.Commands); err != nil {
				return fmt.Errorf("flush after system %s: %w", name, err)
			}
		}
	}
	if err := s.world.Flush(stageBuf); err != nil {
		return fmt.Errorf("flush stage %s: %w", stage, err)
	}
	return nil
}

// evalRunIf treats a nil predicate as always-true and a panicking
// predicate as false, the same as an explicit false return.
func evalRunIf(runIf RunIf, ctx *Context) (ok bool) {
	if runIf == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return runIf(ctx)
}

// runSystem recovers a panicking SystemFunc into an error so one
// misbehaving system never aborts the rest of the stage.
func runSystem(fn SystemFunc, ctx *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("system panic: %v", r)
		}
	}()
	return fn(ctx)
}
