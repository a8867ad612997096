package snapshot

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

func init() {
	// Concrete types that can appear inside a ComponentSnapshot's
	// Properties map[string]any, so gob can encode the interface
	// values it holds (the binary form is the bit-exact path, so every
	// scalar type our components use must be registered once, up front).
	gob.Register(fx.FX(0))
	gob.Register(fx.Angle(0))
	gob.Register(ecscore.Entity{})
	gob.Register(bool(false))
	gob.Register(int32(0))
	gob.Register(uint32(0))
	gob.Register(int(0))
	gob.Register(float64(0))
	gob.Register(string(""))
}

// EncodeBinary gob-encodes env into a compact binary form. Like the text
// form, it does not encode cyclic values: gob flattens pointers rather
// than preserving their identity.
func EncodeBinary(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("snapshot: encode binary: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeBinary reverses EncodeBinary and checks the envelope's version
// per mode.
func DecodeBinary(data []byte, mode Mode) (Result, error) {
	var env Envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return Result{}, fmt.Errorf("snapshot: decode binary: %w", err)
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
