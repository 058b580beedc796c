package turing_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/dsl"
	"github.com/aretw0/turing/pkg/unary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToFibonacci(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	def := sim.Definition()
	assert.Equal(t, "q0", def.Initial)
	assert.Equal(t, []string{"qaccept"}, def.Accepting)
}

func TestSimulate(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	out, err := sim.Simulate(context.Background(), unary.Encode(5), 0)
	require.NoError(t, err)

	assert.True(t, out.Accepted)
	assert.Equal(t, domain.StatusAccepted, out.Status)
	assert.Equal(t, 312, out.Steps)
	assert.Equal(t, "qaccept", out.State)
	assert.Equal(t, "11111", out.CleanResult)
	assert.Equal(t, 5, out.Value)
	assert.Empty(t, out.Snapshots)
}

func TestSimulate_Budget(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	out, err := sim.Simulate(context.Background(), "11", 1)
	require.NoError(t, err)
	assert.False(t, out.Accepted)
	assert.Equal(t, domain.StatusRunning, out.Status)
	assert.Equal(t, 1, out.Steps)
}

func TestSimulate_InvalidInput(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	_, err = sim.Simulate(context.Background(), "1x1", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSimulate_Cancelled(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Simulate(ctx, "111", 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrace(t *testing.T) {
	sim, err := turing.New()
	require.NoError(t, err)

	out, err := sim.Trace(context.Background(), "1", 0)
	require.NoError(t, err)
	require.Len(t, out.Snapshots, 11)
	assert.Equal(t, "q0", out.Snapshots[0].State)
	assert.Equal(t, "qaccept", out.Snapshots[10].State)
}

func TestSimulate_Hooks(t *testing.T) {
	var steps, halts int
	sim, err := turing.New(turing.WithLifecycleHooks(domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) { steps++ },
		OnHalt: func(e *domain.HaltEvent) {
			halts++
			assert.Equal(t, domain.StatusAccepted, e.Status)
		},
	}))
	require.NoError(t, err)

	_, err = sim.Simulate(context.Background(), "11", 0)
	require.NoError(t, err)
	assert.Equal(t, 36, steps)
	assert.Equal(t, 1, halts)
}

func TestNew_Sources(t *testing.T) {
	b := dsl.New("once")
	b.Add("q0").On('1', "done", '1', domain.Right)
	b.Add("done").Accept()

	t.Run("definition", func(t *testing.T) {
		def, err := b.Build()
		require.NoError(t, err)

		sim, err := turing.New(turing.WithDefinition(def))
		require.NoError(t, err)
		out, err := sim.Simulate(context.Background(), "1", 0)
		require.NoError(t, err)
		assert.True(t, out.Accepted)
		assert.Equal(t, 1, out.Steps)
	})

	t.Run("loader", func(t *testing.T) {
		loader, err := b.Loader()
		require.NoError(t, err)

		sim, err := turing.New(turing.WithLoader(loader, "once.json"))
		require.NoError(t, err)
		assert.Equal(t, "once", sim.Definition().Name)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "m.yaml")
		doc := "states: [a]\ninitial_state: a\naccepting_states: [a]\ntape_alphabet: [_]\nblank_symbol: _\ntransitions: {}\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		sim, err := turing.New(turing.WithDefinitionFile(path))
		require.NoError(t, err)
		out, err := sim.Simulate(context.Background(), "", 0)
		require.NoError(t, err)
		assert.True(t, out.Accepted)
		assert.Equal(t, 0, out.Steps)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := turing.New(turing.WithLoader(memory.NewLoader(nil), "nope.json"))
		assert.ErrorContains(t, err, "failed to load machine")
	})

	t.Run("invalid definition", func(t *testing.T) {
		_, err := turing.New(turing.WithDefinition(&domain.Definition{Initial: "ghost"}))
		assert.ErrorIs(t, err, domain.ErrUnknownState)
	})
}
