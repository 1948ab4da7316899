package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStateKind is returned when a state is not a string, integer,
	// or real number, or is a boolean.
	ErrInvalidStateKind = errors.New("state must be a string, integer, or real number")

	// ErrInvalidIdentifierKind is returned when a machine identifier is not a
	// string, integer, or real number, or is a boolean.
	ErrInvalidIdentifierKind = errors.New("machine identifier must be a string, integer, or real number")

	// ErrDefaultAlreadyRegistered is returned on a second default-handler
	// registration.
	ErrDefaultAlreadyRegistered = errors.New("an entry point handler is already registered")

	// ErrStateAlreadyBound is returned when a state already has a handler.
	ErrStateAlreadyBound = errors.New("state is already bound to a handler")

	// ErrNoDefaultRegistered is returned when execution is attempted before
	// any default handler exists.
	ErrNoDefaultRegistered = errors.New("no entry point handler registered")

	// ErrNoHandlerForState is returned when the resolved state has no bound
	// handler. Handlers must only return states that have handlers; an
	// unregistered return value surfaces here on the next execution.
	ErrNoHandlerForState = errors.New("no handler bound to state")

	// ErrNilHandler is returned when a registration is attempted with a nil
	// handler function.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrOutsideHandlerContext is returned when an invocation accessor is
	// queried with no handler execution in flight.
	ErrOutsideHandlerContext = errors.New("accessor queried outside a handler invocation")

	// ErrStoreUnavailable is the uniform kind for remote store
	// connectivity or protocol failures. Match with errors.Is; the
	// underlying transport error is available via errors.As on *StoreError.
	ErrStoreUnavailable = errors.New("state store unavailable")
)

// StoreError normalizes a remote backend failure: whatever the transport
// reported, callers see one error kind. Op and Key identify the failed
// operation for diagnostics; Cause is the transport error.
type StoreError struct {
	Op    string
	Key   string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("state store %s %q: %v", e.Op, e.Key, e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// Is makes every StoreError match ErrStoreUnavailable, so callers never
// need to know which transport is in use.
func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }
