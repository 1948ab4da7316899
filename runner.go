package stateengine

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Runner drives a managed machine from line-oriented IO: every line read
// from Input becomes one input to ExecuteManaged, and each resolved next
// state is echoed on Output. It exists for demos and tests; real hosts will
// usually call ExecuteManaged from their own loop.
type Runner struct {
	Input  io.Reader
	Output io.Writer

	// UID identifies the machine instance being driven. Left nil, a random
	// identifier is generated for the run.
	UID UID

	// Prompt, if set, is printed before each read.
	Prompt string
}

// Run feeds Input to the engine line by line until EOF or until the machine
// terminates by returning the absence state.
func (r *Runner) Run(ctx context.Context, engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	uid := r.UID
	if uid == nil {
		uid = uuid.NewString()
	}

	scanner := bufio.NewScanner(r.Input)
	for {
		if r.Prompt != "" {
			fmt.Fprint(r.Output, r.Prompt)
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		next, err := engine.ExecuteManaged(ctx, uid, scanner.Text())
		if err != nil {
			return fmt.Errorf("execute failed for %v: %w", uid, err)
		}

		if next == nil {
			fmt.Fprintln(r.Output, "machine terminated")
			return nil
		}
		fmt.Fprintf(r.Output, "state: %v\n", next)
	}
}
