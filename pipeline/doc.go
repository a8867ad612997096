// Package pipeline wires the physics sub-pipeline into scheduler
// systems in the dataflow order spec.md §2 names:
//
//	Sync-world-shapes → Broadphase → CCD-detect → TOI-sort-dedup →
//	TOI-mini-solve → Narrowphase → Build-contact-materials →
//	Warm-start → Build-joints → Solver iterations → Commit →
//	Integrate → Sleep
//
// Every stage above is itself implemented by an independent package
// (broadphase, narrowphase, contactmat, solver, ccd, integrate); this
// package owns no physics algorithm of its own. It only adapts a
// *world.World to each package's provider interface, persists the
// state that must survive across ticks (the broadphase's SAP
// structure and the narrowphase's warm-start cache), and owns the
// Contacts2D/SolverTimeScale resource swap-and-restore around the TOI
// mini-solve (spec.md §4.9).
package pipeline
