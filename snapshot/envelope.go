package snapshot

import (
	"github.com/google/uuid"
)

// Envelope wraps every payload with a version tag, a save timestamp,
// and a stable per-save identifier, ahead of the actual Scene data
// (spec.md §6).
type Envelope struct {
	Version    Version   `yaml:"version"`
	Timestamp  int64     `yaml:"timestamp"`
	SnapshotID uuid.UUID `yaml:"snapshotId"`
	Data       Scene     `yaml:"data"`
}

// NewEnvelope wraps data at CurrentVersion, stamped with timestamp (a
// Unix time supplied by the caller — this package performs no wall-
// clock reads, keeping snapshot encoding itself deterministic) and a
// freshly generated snapshot identifier.
func NewEnvelope(data Scene, timestamp int64) Envelope {
	return Envelope{
		Version:    CurrentVersion,
		Timestamp:  timestamp,
		SnapshotID: uuid.New(),
		Data:       data,
	}
}

// Result wraps a successfully decoded Envelope together with any
// non-fatal warnings accumulated during decode (e.g. a Lax-mode version
// mismatch).
type Result struct {
	Envelope Envelope
	Warnings []string
}
