package ports

import (
	"context"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// StateStore persists the last-known state of managed machines, keyed by
// machine identifier. The engine keeps the store's population equal to
// "machines currently away from their resting state": entries are written on
// transitions to non-default states and deleted on reset.
//
// Implementations validate identifier kinds and may block on I/O; every
// operation takes a context for that reason.
type StateStore interface {
	// Load retrieves the stored state for a machine. An identifier that has
	// never been seen resolves to nil, nil: absence is not an error, on any
	// backend.
	Load(ctx context.Context, uid domain.UID) (domain.State, error)

	// Save records the state for a machine, overwriting unconditionally.
	Save(ctx context.Context, uid domain.UID, state domain.State) error

	// Delete removes the entry for a machine. Deleting an absent entry is a
	// no-op.
	Delete(ctx context.Context, uid domain.UID) error
}
