// Package redis provides the remote StateStore backend, speaking to a Redis
// server through go-redis. Every operation is a blocking network call; every
// transport or protocol failure is re-signaled uniformly as
// domain.ErrStoreUnavailable so callers never need to know which backend is
// in use.
package redis

import (
	"context"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// Store implements ports.StateStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets an expiration on stored machine states. Zero (the default)
// means entries live until the machine comes back to rest.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for machine entries.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "stateengine:machine:",
		ttl:    0,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(uid domain.UID) string {
	return s.prefix + domain.StoreKey(uid)
}

// Load retrieves the state for a machine. A missing key resolves to nil
// without error, exactly like the in-memory backend.
func (s *Store) Load(ctx context.Context, uid domain.UID) (domain.State, error) {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return nil, err
	}

	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, nil
		}
		return nil, &domain.StoreError{Op: "get", Key: s.key(key), Cause: err}
	}

	state, err := domain.DecodeState([]byte(val))
	if err != nil {
		return nil, &domain.StoreError{Op: "get", Key: s.key(key), Cause: err}
	}
	return state, nil
}

// Save records the state for a machine, overwriting unconditionally.
func (s *Store) Save(ctx context.Context, uid domain.UID, state domain.State) error {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return err
	}
	data, err := domain.EncodeState(state)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return &domain.StoreError{Op: "set", Key: s.key(key), Cause: err}
	}
	return nil
}

// Delete removes the entry for a machine. Deleting an absent key is a no-op
// on Redis already, which matches the contract.
func (s *Store) Delete(ctx context.Context, uid domain.UID) error {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return &domain.StoreError{Op: "del", Key: s.key(key), Cause: err}
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
