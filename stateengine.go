package stateengine

import (
	"context"
	"log/slog"

	"github.com/aymanimtyaz/stateengine/internal/logging"
	"github.com/aymanimtyaz/stateengine/internal/runtime"
	"github.com/aymanimtyaz/stateengine/pkg/adapters/memory"
	"github.com/aymanimtyaz/stateengine/pkg/domain"
	"github.com/aymanimtyaz/stateengine/pkg/ports"
)

// Re-exported domain types, so simple consumers only import this package.
type (
	State   = domain.State
	UID     = domain.UID
	Handler = domain.Handler
)

// Engine composes the dispatch core with a pluggable state store. The store
// is consulted only by managed execution; Execute bypasses it entirely.
type Engine struct {
	machine *runtime.Machine
	store   ports.StateStore
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects the state store used by managed execution. The default
// is an in-process map scoped to the engine's lifetime; inject the redis
// adapter for state that outlives the process.
func WithStore(store ports.StateStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine with an empty handler table.
func New(opts ...Option) *Engine {
	eng := &Engine{}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}

	eng.machine = runtime.NewMachine(runtime.WithLogger(eng.logger))
	return eng
}

// Handle binds a handler to a state. The state must be a string, integer, or
// real number and must not already have a handler.
func (e *Engine) Handle(state State, h Handler) error {
	return e.machine.Bind(state, h)
}

// HandleDefault binds the entry point handler. Its state is where executions
// with no state enter, and the resting state managed machines reset to. Only
// one default handler may be registered.
func (e *Engine) HandleDefault(state State, h Handler) error {
	return e.machine.BindDefault(state, h)
}

// MustHandle is Handle for declaration-site registration; it panics on the
// registration errors, which are always programmer mistakes.
func (e *Engine) MustHandle(state State, h Handler) {
	if err := e.Handle(state, h); err != nil {
		panic(err)
	}
}

// MustHandleDefault is HandleDefault with MustHandle's panic semantics.
func (e *Engine) MustHandleDefault(state State, h Handler) {
	if err := e.HandleDefault(state, h); err != nil {
		panic(err)
	}
}

// Execute runs the machine unmanaged: the caller supplies the current state
// (nil for the entry point) and keeps track of the returned next state
// themselves. The store is not consulted.
func (e *Engine) Execute(ctx context.Context, state State, input ...any) (State, error) {
	return e.machine.Execute(ctx, state, input...)
}

// ExecuteManaged runs the machine for the logical instance identified by
// uid: the current state is resolved through the store, the handler runs,
// and the next state is written back. A machine that returns to the entry
// point's state (or terminates by returning nil) is deleted from the store,
// so the store only ever holds machines away from their resting state.
//
// There is no transactional read-modify-write around the load/execute/save
// sequence: concurrent managed executions for the same uid are last-write-
// wins and can lose an update.
func (e *Engine) ExecuteManaged(ctx context.Context, uid UID, input ...any) (State, error) {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return nil, err
	}

	current, err := e.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	next, err := e.machine.Execute(ctx, current, input...)
	if err != nil {
		return nil, err
	}

	if e.atRest(next) {
		if err := e.store.Delete(ctx, key); err != nil {
			return nil, err
		}
		e.logger.Debug("machine at rest", "uid", key)
		return next, nil
	}

	if err := e.store.Save(ctx, key, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Seed primes the stored state for a machine without executing anything,
// bypassing the usual resolution. A nil or default-equal state removes the
// entry instead, preserving the resting-state invariant.
func (e *Engine) Seed(ctx context.Context, uid UID, state State) error {
	key, err := domain.NormalizeUID(uid)
	if err != nil {
		return err
	}

	if e.atRest(state) {
		return e.store.Delete(ctx, key)
	}
	return e.store.Save(ctx, key, state)
}

// atRest reports whether a state is the absence value or the entry point's
// key, the two forms a resting machine takes.
func (e *Engine) atRest(state State) bool {
	if state == nil {
		return true
	}
	norm, err := domain.NormalizeState(state)
	if err != nil {
		// Not comparable to the default key; persistence will reject it.
		return false
	}
	def, ok := e.machine.DefaultState()
	return ok && norm == def
}

// Store returns the state store backing managed execution.
func (e *Engine) Store() ports.StateStore {
	return e.store
}

// CurrentState reports the state resolved for the handler invocation carried
// by ctx. It is valid only inside a handler; anywhere else it fails with
// domain.ErrOutsideHandlerContext.
func CurrentState(ctx context.Context) (State, error) {
	return runtime.CurrentState(ctx)
}

// CurrentHandler reports the handler running in the invocation carried by
// ctx, under the same contract as CurrentState.
func CurrentHandler(ctx context.Context) (Handler, error) {
	return runtime.CurrentHandler(ctx)
}
