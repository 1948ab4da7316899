// Package runtime implements the dispatch core: the state-to-handler table,
// the single entry point handler, and the execute-and-transition algorithm.
// It has no knowledge of persistence; managed execution is orchestrated by
// the facade.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aymanimtyaz/stateengine/internal/logging"
	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// Machine owns the handler table and the designated entry point handler.
// Registration is guarded by a mutex; execution takes a read lock on the
// table and keeps all per-call state on the context, so concurrent Execute
// calls are safe.
type Machine struct {
	mu             sync.RWMutex
	handlers       map[domain.State]domain.Handler
	defaultState   domain.State
	defaultHandler domain.Handler
	hasDefault     bool

	logger *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger for transition tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// NewMachine creates an empty machine.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		handlers: make(map[domain.State]domain.Handler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = logging.NewNop()
	}

	return m
}

// Bind registers a handler for a state. The state must be a valid scalar and
// must not already have a handler.
func (m *Machine) Bind(state domain.State, h domain.Handler) error {
	if h == nil {
		return domain.ErrNilHandler
	}
	key, err := domain.NormalizeState(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, bound := m.handlers[key]; bound {
		return fmt.Errorf("%w: %v", domain.ErrStateAlreadyBound, key)
	}
	m.handlers[key] = h

	m.logger.Debug("handler bound", "state", key)
	return nil
}

// BindDefault registers the entry point handler. Its state key doubles as
// the reset target: reaching it, or executing with no state, re-enters
// through this handler. Only one default may exist.
func (m *Machine) BindDefault(state domain.State, h domain.Handler) error {
	if h == nil {
		return domain.ErrNilHandler
	}
	key, err := domain.NormalizeState(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasDefault {
		return domain.ErrDefaultAlreadyRegistered
	}
	m.defaultState = key
	m.defaultHandler = h
	m.hasDefault = true

	m.logger.Debug("entry point handler bound", "state", key)
	return nil
}

// DefaultState reports the entry point's state key, if one is registered.
func (m *Machine) DefaultState() (domain.State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultState, m.hasDefault
}

// Execute resolves the handler for state and runs it with the given input.
//
// A nil state, or a state equal to the entry point's key, resolves to the
// entry point handler. Anything else is looked up in the table. The returned
// state is whatever the handler returned, unvalidated: returning a state
// with no handler surfaces ErrNoHandlerForState on the next call, not this
// one.
func (m *Machine) Execute(ctx context.Context, state domain.State, input ...any) (domain.State, error) {
	resolved, h, err := m.resolve(state)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("executing handler", "state", resolved)

	// The invocation rides the context and dies with the call, so the
	// accessors go out of scope on every exit path, handler errors included.
	next, err := h(withInvocation(ctx, &invocation{state: resolved, handler: h}), input...)
	if err != nil {
		return nil, fmt.Errorf("handler for state %v: %w", resolved, err)
	}

	m.logger.Debug("handler returned", "state", resolved, "next", next)
	return next, nil
}

func (m *Machine) resolve(state domain.State) (domain.State, domain.Handler, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if state == nil {
		if !m.hasDefault {
			return nil, nil, domain.ErrNoDefaultRegistered
		}
		return m.defaultState, m.defaultHandler, nil
	}

	key, err := domain.NormalizeState(state)
	if err != nil {
		return nil, nil, err
	}

	if m.hasDefault && key == m.defaultState {
		return m.defaultState, m.defaultHandler, nil
	}

	h, bound := m.handlers[key]
	if !bound {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrNoHandlerForState, key)
	}
	return key, h, nil
}
