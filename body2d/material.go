package body2d

import "github.com/vornastek/ecsphys/fx"

// MaterialID names a registered material; materials are looked up by id
// in a MaterialTable2D.
type MaterialID int32

// DefaultMaterialID is the built-in fallback used when neither the
// entity nor the world carries a Material2D (spec.md §4.7).
const DefaultMaterialID MaterialID = 0

// Material2D names a surface's friction/restitution/bounce-threshold
// triple and its material id for mixing-rule lookup.
type Material2D struct {
	ID              MaterialID
	Friction        fx.FX
	Restitution     fx.FX
	BounceThreshold fx.FX
}

// DefaultMaterial is the built-in last-resort material: moderate
// friction, no bounce, a small default bounce threshold.
var DefaultMaterial = Material2D{
	ID:              DefaultMaterialID,
	Friction:        fx.FromFloat64(0.6),
	Restitution:     fx.Zero,
	BounceThreshold: fx.FromFloat64(0.5),
}

// MixRule names how two materials' scalar properties combine.
type MixRule int

const (
	MixGeometricMean MixRule = iota
	MixMax
	MixMin
	MixAverage
)

// Mix combines a and b per rule.
func (r MixRule) Mix(a, b fx.FX) fx.FX {
	switch r {
	case MixMax:
		return fx.Max(a, b)
	case MixMin:
		return fx.Min(a, b)
	case MixAverage:
		return fx.Div(fx.Add(a, b), fx.FromInt(2))
	default: // MixGeometricMean
		return fx.Sqrt(fx.Mul(a, b))
	}
}

// MixRules is the resolved set of per-property combination rules for one
// material pair.
type MixRules struct {
	Friction        MixRule
	Restitution     MixRule
	BounceThreshold MixRule
}

// DefaultMixRules is the spec's default rule set when no table entry
// matches a pair: geometric-mean friction, max restitution, max bounce
// threshold (spec.md §4.7).
var DefaultMixRules = MixRules{
	Friction:        MixGeometricMean,
	Restitution:     MixMax,
	BounceThreshold: MixMax,
}

// materialPair is a symmetric lookup key: (lo, hi) with lo ≤ hi so the
// same pair hashes identically regardless of argument order.
type materialPair struct{ lo, hi MaterialID }

func newPair(a, b MaterialID) materialPair {
	if a <= b {
		return materialPair{a, b}
	}
	return materialPair{b, a}
}

// MaterialTable2D is the world-resource mixing-rule lookup keyed by
// symmetric material-id pairs, falling back to DefaultMixRules for any
// pair without an explicit entry.
type MaterialTable2D struct {
	rules map[materialPair]MixRules
}

// NewMaterialTable returns an empty MaterialTable2D.
func NewMaterialTable() *MaterialTable2D {
	return &MaterialTable2D{rules: make(map[materialPair]MixRules)}
}

// Set registers the mixing rules for the (a, b) pair, symmetric in a/b.
func (t *MaterialTable2D) Set(a, b MaterialID, rules MixRules) {
	t.rules[newPair(a, b)] = rules
}

// Resolve returns the mixing rules for (a, b), or DefaultMixRules if no
// entry was registered for that pair.
func (t *MaterialTable2D) Resolve(a, b MaterialID) MixRules {
	if t == nil {
		return DefaultMixRules
	}
	if rules, ok := t.rules[newPair(a, b)]; ok {
		return rules
	}
	return DefaultMixRules
}
