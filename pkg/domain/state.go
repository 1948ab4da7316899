package domain

import (
	"fmt"
	"strconv"
)

// State identifies a node in a machine's state space. Valid states are text
// (string), integers (any Go int/uint width), and reals (float32/64). A nil
// State is the absence value: "no state yet", the entry point of a machine.
// Booleans are not states, even though Go would happily key a map with them.
type State any

// UID correlates a logical machine instance with its persisted state in
// managed mode. The same scalar kinds as State are accepted; nil is not.
type UID any

// NormalizeState canonicalizes a state value to string, int64, or float64 so
// that registration and resolution agree on table keys regardless of the
// numeric width the caller picked. nil, booleans, and non-scalar values fail
// with ErrInvalidStateKind.
func NormalizeState(s State) (State, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil is reserved for the entry point", ErrInvalidStateKind)
	}
	v, ok := normalizeScalar(s)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidStateKind, s)
	}
	return v, nil
}

// NormalizeUID canonicalizes a machine identifier the same way NormalizeState
// does, failing with ErrInvalidIdentifierKind instead.
func NormalizeUID(uid UID) (UID, error) {
	if uid == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidIdentifierKind)
	}
	v, ok := normalizeScalar(uid)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrInvalidIdentifierKind, uid)
	}
	return v, nil
}

func normalizeScalar(v any) (any, bool) {
	switch x := v.(type) {
	case bool:
		// Explicitly rejected: a bool is structurally an integer in many
		// serializations and would alias 0/1 as states.
		return nil, false
	case string:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return nil, false
}

// StoreKey renders a normalized UID as a kind-prefixed string, so that the
// string "1", the integer 1, and the real 1.0 never collide in a
// string-keyed backend. The input must already be normalized.
func StoreKey(uid UID) string {
	switch x := uid.(type) {
	case string:
		return "s:" + x
	case int64:
		return "i:" + strconv.FormatInt(x, 10)
	case float64:
		return "f:" + strconv.FormatFloat(x, 'g', -1, 64)
	}
	return fmt.Sprintf("?:%v", uid)
}
