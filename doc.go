/*
Package stateengine is a finite-state-machine dispatch library: you register
one handler per named state, then drive the machine by handing it a current
state and arbitrary input. The engine looks up the handler, runs it, and the
handler returns the next state.

States are plain scalars (strings, integers, or reals); a nil state means
"not started yet" and resolves to the single default handler, which is also
the resting state machines reset to. Handlers are ordinary functions, so the
transition logic lives in your code rather than in a transition table.

# Unmanaged execution

In unmanaged mode the caller owns the current state and passes it on every
call:

	package main

	import (
		"context"
		"log"

		"github.com/aymanimtyaz/stateengine"
	)

	func main() {
		eng := stateengine.New()

		eng.MustHandle("asleep", func(ctx context.Context, input ...any) (stateengine.State, error) {
			if len(input) > 0 && input[0] == "wake" {
				return "awake", nil
			}
			return "asleep", nil
		})
		eng.MustHandleDefault("awake", func(ctx context.Context, input ...any) (stateengine.State, error) {
			if len(input) > 0 && input[0] == "sleep" {
				return "asleep", nil
			}
			return "awake", nil
		})

		ctx := context.Background()
		state, err := eng.Execute(ctx, nil, "sleep") // enters through "awake"
		if err != nil {
			log.Fatal(err)
		}
		log.Println(state) // "asleep"
	}

# Managed execution

In managed mode the engine resolves and persists the state itself, keyed by a
machine identifier, through a pluggable store. The default store is an
in-process map; the redis adapter keeps state across processes:

	store := redis.New("localhost:6379", "", 0)
	eng := stateengine.New(stateengine.WithStore(store))

	// ...register handlers...

	next, err := eng.ExecuteManaged(ctx, "machine-42", "sleep")

A machine whose handler returns the default state (or nil) is deleted from
the store, so the store only holds machines currently away from rest.

# Introspection

Inside a handler, CurrentState and CurrentHandler report what is executing.
They resolve against the ctx the handler received and fail with
domain.ErrOutsideHandlerContext anywhere else.
*/
package stateengine
