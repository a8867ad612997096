package pipeline

import (
	"github.com/vornastek/ecsphys/broadphase"
	"github.com/vornastek/ecsphys/ccd"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/narrowphase"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/world"
)

// Pipeline owns every piece of physics state that must survive across
// ticks: the broadphase's persistent sweep-and-prune structure and the
// narrowphase's warm-start cache (spec.md §4.5, §4.6, §4.8). The TOI
// event queue and the candidate-pair list are tick-local working state
// rather than named world resources — spec.md §4.9 only calls out
// Contacts2D and SolverTimeScale as resources the mini-solve swaps, so
// those two are the only pieces this package stores in the World's
// resource table; everything else is a private Pipeline field.
type Pipeline struct {
	w     *world.World
	ids   Components
	cfg   Config
	acc   *accessor
	sap   *broadphase.SAP
	cache *narrowphase.Cache

	tracked map[ecscore.Entity]struct{}
	pairs   []broadphase.Pair
	toi     []ccd.TOIEvent
	joints  jointState
}

// New returns a Pipeline bound to w, reading/writing the component ids
// in ids and tuned by cfg.
func New(w *world.World, ids Components, cfg Config) *Pipeline {
	return &Pipeline{
		w:       w,
		ids:     ids,
		cfg:     cfg,
		acc:     newAccessor(w, ids),
		sap:     broadphase.New(),
		cache:   narrowphase.NewCache(),
		tracked: make(map[ecscore.Entity]struct{}),
	}
}

// Install registers every pipeline stage as a named StageUpdate system
// on sched, each one After the previous, reproducing spec.md §2's
// dataflow order exactly: Sync-world-shapes → Broadphase → CCD-detect →
// TOI-sort-dedup → TOI-mini-solve → Narrowphase →
// Build-contact-materials → Warm-start → Build-joints →
// Solver-iterations → Commit → Integrate → Sleep.
func (p *Pipeline) Install(sched *scheduler.Scheduler) error {
	stages := []struct {
		name string
		fn   scheduler.SystemFunc
	}{
		{"SyncWorldShapes", p.syncWorldShapesSystem},
		{"Broadphase", p.broadphaseSystem},
		{"CCDDetect", p.ccdDetectSystem},
		{"TOISortDedup", p.toiSortDedupSystem},
		{"TOIMiniSolve", p.toiMiniSolveSystem},
		{"Narrowphase", p.narrowphaseSystem},
		{"BuildContactMaterials", p.buildContactMaterialsSystem},
		{"WarmStart", p.warmStartSystem},
		{"BuildJoints", p.buildJointsSystem},
		{"SolverIterations", p.solverIterationsSystem},
		{"Commit", p.commitSystem},
		{"Integrate", p.integrateSystem},
		{"Sleep", p.sleepSystem},
	}

	var after []string
	for _, st := range stages {
		cfg := scheduler.SystemConfig{
			Name:  st.name,
			Stage: scheduler.StageUpdate,
			Fn:    st.fn,
			Flush: scheduler.FlushAfterEach,
		}
		if len(after) > 0 {
			cfg.After = []string{after[len(after)-1]}
		}
		if err := sched.AddSystem(cfg); err != nil {
			return err
		}
		after = append(after, st.name)
	}
	return nil
}

// RegisterPhysics is the one-call entry point most hosts need: it
// registers every physics component against reg, builds a Pipeline with
// DefaultConfig, and installs it on sched. Callers who need a
// non-default Config or direct access to the Pipeline (e.g. to read its
// persistent broadphase/cache state) should call RegisterComponents,
// New, and Install themselves instead.
func RegisterPhysics(sched *scheduler.Scheduler, w *world.World, reg *ecscore.Registry) (Components, error) {
	ids := RegisterComponents(reg)
	p := New(w, ids, DefaultConfig())
	if err := p.Install(sched); err != nil {
		return Components{}, err
	}
	return ids, nil
}
