// Package ccd implements continuous collision detection for
// fast-moving bodies: a swept-circle conservative-advancement test
// producing TOIEvent values, deterministic sort-and-dedup by time of
// impact, and the temporary contact list the mini-solve runs over
// (spec.md §4.9).
package ccd
