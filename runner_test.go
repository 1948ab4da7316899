package stateengine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aymanimtyaz/stateengine"
)

func TestRunner_DrivesManagedMachine(t *testing.T) {
	eng := newSleepWakeEngine(t)

	var out strings.Builder
	runner := &stateengine.Runner{
		Input:  strings.NewReader("sleep\nwake\n"),
		Output: &out,
		UID:    "runner-test",
	}

	require.NoError(t, runner.Run(context.Background(), eng))
	assert.Equal(t, "state: asleep\nstate: awake\n", out.String())
}

func TestRunner_StopsOnTermination(t *testing.T) {
	eng := stateengine.New()
	eng.MustHandleDefault("idle", func(ctx context.Context, input ...any) (stateengine.State, error) {
		return nil, nil
	})

	var out strings.Builder
	runner := &stateengine.Runner{
		Input:  strings.NewReader("anything\nnever read\n"),
		Output: &out,
	}

	require.NoError(t, runner.Run(context.Background(), eng))
	assert.Equal(t, "machine terminated\n", out.String())
}

func TestRunner_RequiresIO(t *testing.T) {
	eng := newSleepWakeEngine(t)

	err := (&stateengine.Runner{Output: &strings.Builder{}}).Run(context.Background(), eng)
	assert.Error(t, err)

	err = (&stateengine.Runner{Input: strings.NewReader("")}).Run(context.Background(), eng)
	assert.Error(t, err)
}
