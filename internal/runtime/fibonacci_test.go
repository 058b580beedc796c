package runtime_test

import (
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/machines"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/unary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fibonacciDefinition(t testing.TB) *domain.Definition {
	t.Helper()
	data, err := machines.FS.ReadFile(machines.Fibonacci)
	require.NoError(t, err)
	def, err := definition.Parse(data, definition.FormatJSON)
	require.NoError(t, err)
	return def
}

func fib(n int) int {
	a, b := 0, 1
	for range n {
		a, b = b, a+b
	}
	return a
}

func TestFibonacci_Values(t *testing.T) {
	def := fibonacciDefinition(t)

	tests := []struct {
		n      int
		steps  int
		result string
	}{
		{0, 1, "_"},
		{1, 10, "D#;;1"},
		{2, 36, "DD#;;1;1"},
		{3, 84, "DDD#;;1;1;11"},
		{4, 162, "DDDD#;;1;1;11;111"},
		{5, 312, "DDDDD#;;1;1;11;111;11111"},
		{6, 614, "DDDDDD#;;1;1;11;111;11111;11111111"},
		{7, 1286, "DDDDDDD#;;1;1;11;111;11111;11111111;1111111111111"},
	}

	for _, tt := range tests {
		t.Run(unary.Encode(tt.n), func(t *testing.T) {
			m := runtime.New(def)
			m.Reset(unary.Encode(tt.n))

			require.True(t, m.Run(domain.DefaultMaxSteps))
			assert.Equal(t, "qaccept", m.State())
			assert.Equal(t, tt.steps, m.StepCount())
			assert.Equal(t, tt.result, m.Result())
			assert.Equal(t, unary.Encode(fib(tt.n)), m.CleanResult())
			assert.Len(t, m.History(), tt.steps+1)
		})
	}
}

func TestFibonacci_LargerInputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long runs in short mode")
	}
	def := fibonacciDefinition(t)

	for n, steps := range map[int]int{8: 2860, 9: 6716, 10: 16398, 11: 41120, 12: 104854} {
		m := runtime.New(def, runtime.WithHistory(false))
		m.Reset(unary.Encode(n))

		require.True(t, m.Run(1_000_000), "n=%d", n)
		assert.Equal(t, steps, m.StepCount(), "n=%d", n)
		assert.Equal(t, fib(n), unary.Decode(m.CleanResult()), "n=%d", n)
	}
}

func TestFibonacci_FirstSteps(t *testing.T) {
	m := runtime.New(fibonacciDefinition(t))
	m.Reset("11")
	for range 4 {
		require.True(t, m.Step())
	}

	assert.Equal(t, []domain.Snapshot{
		{Step: 0, State: "q0", Head: 0, Tape: "___11___", Offset: -3},
		{Step: 1, State: "qSetup", Head: 1, Tape: "___D1___", Offset: -3},
		{Step: 2, State: "qSetup", Head: 2, Tape: "___DC___", Offset: -3},
		{Step: 3, State: "qS1", Head: 3, Tape: "___DC#___", Offset: -3},
		{Step: 4, State: "qS2", Head: 4, Tape: "___DC#;___", Offset: -3},
	}, m.History())
}

func TestFibonacci_StepBudget(t *testing.T) {
	def := fibonacciDefinition(t)

	t.Run("one step", func(t *testing.T) {
		m := runtime.New(def)
		m.Reset("11")

		assert.False(t, m.Run(1))
		assert.Equal(t, 1, m.StepCount())
		assert.Equal(t, "qSetup", m.State())
		assert.False(t, m.Halted())
	})

	t.Run("resumes after exhaustion", func(t *testing.T) {
		m := runtime.New(def)
		m.Reset("11111")

		assert.False(t, m.Run(100))
		assert.Equal(t, 100, m.StepCount())
		assert.True(t, m.Run(1000))
		assert.Equal(t, 312, m.StepCount())
	})

	t.Run("zero budget", func(t *testing.T) {
		m := runtime.New(def)
		m.Reset("1")

		assert.False(t, m.Run(0))
		assert.Equal(t, 0, m.StepCount())
	})
}

func TestFibonacci_InvalidInputRejects(t *testing.T) {
	def := fibonacciDefinition(t)

	tests := []struct {
		input  string
		state  string
		steps  int
		result string
	}{
		{"x", "q0", 0, "x"},
		{"1x1", "qSetup", 1, "Dx1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := runtime.New(def)
			m.Reset(tt.input)

			assert.False(t, m.Run(domain.DefaultMaxSteps))
			assert.Equal(t, domain.StatusRejected, m.Status())
			assert.Equal(t, tt.state, m.State())
			assert.Equal(t, tt.steps, m.StepCount())
			assert.Equal(t, tt.result, m.Result())
		})
	}
}

func TestFibonacci_Deterministic(t *testing.T) {
	m := runtime.New(fibonacciDefinition(t))

	m.Reset("1111")
	require.True(t, m.Run(domain.DefaultMaxSteps))
	steps, state, status := m.StepCount(), m.State(), m.Status()
	result, history := m.Result(), m.History()

	m.Reset("1111")
	require.True(t, m.Run(domain.DefaultMaxSteps))

	assert.Equal(t, steps, m.StepCount())
	assert.Equal(t, state, m.State())
	assert.Equal(t, status, m.Status())
	assert.Equal(t, result, m.Result())
	assert.Equal(t, history, m.History())
	assert.Equal(t, 162, steps)
}

func TestFibonacci_StepGrowth(t *testing.T) {
	def := fibonacciDefinition(t)

	var prev int
	for n := 6; n <= 11; n++ {
		m := runtime.New(def, runtime.WithHistory(false))
		m.Reset(unary.Encode(n))
		require.True(t, m.Run(1_000_000))

		if prev > 0 {
			ratio := float64(m.StepCount()) / float64(prev)
			assert.Greater(t, ratio, 2.0, "n=%d", n)
			assert.Less(t, ratio, 2.7, "n=%d", n)
		}
		prev = m.StepCount()
	}
}

func TestFibonacci_Outcome(t *testing.T) {
	m := runtime.New(fibonacciDefinition(t))
	m.Reset("11111")
	m.Run(domain.DefaultMaxSteps)

	out := m.Outcome("11111")
	assert.Equal(t, domain.Outcome{
		Input:       "11111",
		Steps:       312,
		State:       "qaccept",
		Status:      domain.StatusAccepted,
		Accepted:    true,
		Result:      "DDDDD#;;1;1;11;111;11111",
		CleanResult: "11111",
		Value:       5,
	}, out)
}
