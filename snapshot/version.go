package snapshot

import "fmt"

// Version is the {major, minor, patch} envelope tag (spec.md §6).
type Version struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
	Patch int `yaml:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CurrentVersion is the version this build writes and expects to read.
var CurrentVersion = Version{Major: 1, Minor: 0, Patch: 0}

// Mode selects how a version mismatch on load is handled.
type Mode int

const (
	// Strict rejects any minor-ahead or patch-ahead envelope.
	Strict Mode = iota
	// Lax accepts a minor-ahead or patch-ahead envelope, attaching a
	// warning instead of failing.
	Lax
)

// CheckVersion compares got against CurrentVersion per spec.md §6: a
// major mismatch always fails; a minor exceeding current, or a patch
// newer within a matching minor, fails in Strict mode and produces a
// warning string in Lax mode.
func CheckVersion(got Version, mode Mode) (warning string, err error) {
	if got.Major != CurrentVersion.Major {
		return "", fmt.Errorf("%w: got major %d, expected %d", ErrVersionIncompatible, got.Major, CurrentVersion.Major)
	}

	ahead := got.Minor > CurrentVersion.Minor ||
		(got.Minor == CurrentVersion.Minor && got.Patch > CurrentVersion.Patch)
	if !ahead {
		return "", nil
	}

	msg := fmt.Sprintf("snapshot version %s is ahead of current %s", got, CurrentVersion)
	if mode == Strict {
		return "", fmt.Errorf("%w: %s", ErrVersionIncompatible, msg)
	}
	return msg, nil
}
