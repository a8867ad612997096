package body2d

import "github.com/vornastek/ecsphys/fx"

// SleepState is the per-body bookkeeping the sleep/wake system needs
// across frames: how long the body has sat below both velocity
// thresholds (spec.md §4.10).
type SleepState struct {
	BelowThresholdTime fx.FX
}
