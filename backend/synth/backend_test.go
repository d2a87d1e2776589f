package synth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbench/backend"
)

const smallCircuit = `OPENQASM 2.0;
include "qelib1.inc";
qreg q[3];
creg c[3];
h q[0];
measure q[0] -> c[0];
`

func TestConstantModeResult(t *testing.T) {
	b, err := NewWithConfig(smallCircuit, backend.MustCount(100), Config{
		Mode:  ModeConstant,
		Sleep: time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	m, err := b.Result()
	require.NoError(t, err)

	assert.Len(t, m, 8)
	assert.InDelta(t, 0.0, m.Total(), 1e-12)
}

func TestConstantLoadWorkload(t *testing.T) {
	b, err := New(smallCircuit, backend.MustCount(100))
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	m, err := b.Result()
	require.NoError(t, err)
	assert.Len(t, m, 8)
}

func TestAnalyticModeScalesWithParameters(t *testing.T) {
	// 1e-9 * 100 shots * 2^2 depth * 3^3 qubits ~= 10.8us: measurable but
	// far below the failure threshold.
	b, err := NewWithConfig(smallCircuit, backend.MustCount(100), Config{
		Mode:      ModeAnalytic,
		TimeConst: 1e-9,
		Depth:     2,
	})
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, b.Execute(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 10*time.Microsecond)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestExplicitDepthOverridesHint(t *testing.T) {
	b, err := NewWithConfig(smallCircuit, backend.MustCount(10), Config{Depth: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, b.Depth())
}

func TestDepthHintFallback(t *testing.T) {
	// Without an explicit depth the hint is the register width's leading
	// digit, 3 for this circuit.
	b, err := New(smallCircuit, backend.MustCount(10))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Depth())
}

func TestUnknownMode(t *testing.T) {
	_, err := NewWithConfig(smallCircuit, backend.MustCount(10), Config{Mode: "warp"})
	assert.Error(t, err)
}

func TestResultBeforeExecute(t *testing.T) {
	b, err := New(smallCircuit, backend.MustCount(10))
	require.NoError(t, err)

	_, err = b.Result()
	assert.ErrorIs(t, err, backend.ErrNotExecuted)
}

func TestGarbageSource(t *testing.T) {
	_, err := New("not a circuit", backend.MustCount(10))
	assert.ErrorIs(t, err, backend.ErrCircuitParse)
}
