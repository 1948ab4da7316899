package runtime

import (
	"context"
	"fmt"

	"github.com/aymanimtyaz/stateengine/pkg/domain"
)

// invocation is the execution context of a single handler call: which state
// resolved and which handler is running. It is reachable only through the
// context passed to the handler, never through machine fields, so two
// concurrent executions cannot observe each other's invocation and nothing
// needs explicit clearing.
type invocation struct {
	state   domain.State
	handler domain.Handler
}

type invocationKey struct{}

func withInvocation(ctx context.Context, inv *invocation) context.Context {
	return context.WithValue(ctx, invocationKey{}, inv)
}

// CurrentState reports the state that resolved for the active handler
// invocation carried by ctx. Outside an invocation it fails with
// ErrOutsideHandlerContext.
func CurrentState(ctx context.Context) (domain.State, error) {
	inv, ok := ctx.Value(invocationKey{}).(*invocation)
	if !ok {
		return nil, fmt.Errorf("%w: current state", domain.ErrOutsideHandlerContext)
	}
	return inv.state, nil
}

// CurrentHandler reports the handler running in the active invocation
// carried by ctx. Outside an invocation it fails with
// ErrOutsideHandlerContext.
func CurrentHandler(ctx context.Context) (domain.Handler, error) {
	inv, ok := ctx.Value(invocationKey{}).(*invocation)
	if !ok {
		return nil, fmt.Errorf("%w: current handler", domain.ErrOutsideHandlerContext)
	}
	return inv.handler, nil
}
