// Package memory provides the in-process StateStore backend. Its lifetime is
// the owning engine's; nothing survives the process.
package memory

import (
	"context"
	"sync"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[domain.UID]domain.State
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[domain.UID]domain.State),
	}
}

// Load retrieves the state for a machine. An unknown identifier resolves to
// nil without error.
func (s *Store) Load(ctx context.Context, uid domain.UID) (domain.State, error) {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key], nil
}

// Save records the state for a machine, overwriting unconditionally. States
// are stored in canonical scalar form so reads behave like the remote
// backend's.
func (s *Store) Save(ctx context.Context, uid domain.UID, state domain.State) error {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return err
	}
	norm, err := domain.NormalizeState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = norm
	return nil
}

// Delete removes the entry for a machine. Idempotent.
func (s *Store) Delete(ctx context.Context, uid domain.UID) error {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len reports how many machines are currently away from their resting state.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
