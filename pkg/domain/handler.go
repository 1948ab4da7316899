package domain

import "context"

// Handler is a unit of behavior bound to exactly one state. It receives the
// caller-supplied input values and returns the next state, or nil to
// terminate and reset the machine to its entry point.
//
// The ctx passed to a handler carries the active invocation; the engine's
// CurrentState and CurrentHandler accessors resolve against it.
type Handler func(ctx context.Context, input ...any) (State, error)
