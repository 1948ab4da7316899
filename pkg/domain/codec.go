package domain

import (
	"encoding/json"
	"fmt"
)

// envelope is the wire form of a State for external backends. encoding/json
// alone would squash int64 into float64 on the way back, so the scalar kind
// is tagged explicitly.
type envelope struct {
	Kind string  `json:"kind"`
	Text string  `json:"text,omitempty"`
	Int  int64   `json:"int,omitempty"`
	Real float64 `json:"real,omitempty"`
}

const (
	kindText = "text"
	kindInt  = "int"
	kindReal = "real"
)

// EncodeState marshals a state for storage in an external key-value service.
// The state is normalized first; invalid kinds fail with ErrInvalidStateKind.
func EncodeState(s State) ([]byte, error) {
	norm, err := NormalizeState(s)
	if err != nil {
		return nil, err
	}

	var env envelope
	switch x := norm.(type) {
	case string:
		env = envelope{Kind: kindText, Text: x}
	case int64:
		env = envelope{Kind: kindInt, Int: x}
	case float64:
		env = envelope{Kind: kindReal, Real: x}
	}

	return json.Marshal(env)
}

// DecodeState unmarshals a state previously written by EncodeState,
// restoring its canonical scalar kind.
func DecodeState(data []byte) (State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	switch env.Kind {
	case kindText:
		return env.Text, nil
	case kindInt:
		return env.Int, nil
	case kindReal:
		return env.Real, nil
	}
	return nil, fmt.Errorf("%w: unknown wire kind %q", ErrInvalidStateKind, env.Kind)
}
