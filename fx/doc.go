// Package fx implements a deterministic 16.16 signed fixed-point numeric
// kernel. Every physics computation in ecsphys is built on top of the FX
// type so that two hosts running the same tick sequence produce bit-
// identical results, regardless of platform floating-point behavior.
//
// FX is a plain int32: bit 16 is the fractional/integer boundary, so
// One == 1<<16. All arithmetic here is pure: no global state, no
// goroutines, and overflow is defined as two's-complement truncation,
// exactly like the underlying int32 operators.
//
// Complexity: every operation in this package is O(1); Sqrt runs a fixed
// six-iteration Newton refinement and is therefore also O(1), not O(log n).
package fx
