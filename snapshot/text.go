package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// EncodeText renders env as the human-readable YAML text form.
func EncodeText(env Envelope) ([]byte, error) {
	out, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode text: %w", err)
	}
	return out, nil
}

// DecodeText reverses EncodeText and checks the envelope's version per
// mode, returning a descriptive error (not a partial world) on any
// decode failure (spec.md §7).
func DecodeText(data []byte, mode Mode) (Result, error) {
	var env Envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return Result{}, fmt.Errorf("snapshot: decode text: %w", err)
	}

	warning, err := CheckVersion(env.Version, mode)
	if err != nil {
		return Result{}, err
	}
	var warnings []string
	if warning != "" {
		warnings = append(warnings, warning)
	}
	return Result{Envelope: env, Warnings: warnings}, nil
}
