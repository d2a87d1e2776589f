package freq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbench/backend"
)

const bellCircuit = `OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
creg c[2];
h q[0];
cx q[0],q[1];
measure q[0] -> c[0];
measure q[1] -> c[1];
`

func TestRunBell(t *testing.T) {
	b, err := New(bellCircuit, backend.MustCount(180))
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	m, err := b.Result()
	require.NoError(t, err)

	assert.Len(t, m, 4)
	assert.InDelta(t, 180, m.Total(), 1e-9)
	assert.Zero(t, m["01"])
	assert.Zero(t, m["10"])
}

func TestDivisionRewrittenBeforeImport(t *testing.T) {
	// The engine dialect rejects "/", so the adapter must inline it.
	b, err := New("qreg q[1];\ncreg c[1];\nrz(pi/2) q[0];\nmeasure q[0] -> c[0];\n",
		backend.MustCount(20))
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	m, err := b.Result()
	require.NoError(t, err)
	assert.Equal(t, float64(20), m["0"])
}

func TestExactRequestFailsNormalization(t *testing.T) {
	b, err := New(bellCircuit, backend.Distribution())
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	_, err = b.Result()
	assert.ErrorIs(t, err, backend.ErrNormalization)
}

func TestEvaluatorConfig(t *testing.T) {
	_, err := NewWithConfig(bellCircuit, backend.MustCount(10), Config{Evaluator: "sparse"})
	require.NoError(t, err)

	_, err = NewWithConfig(bellCircuit, backend.MustCount(10), Config{Evaluator: "tensor"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, backend.ErrCircuitParse)
}

func TestResultBeforeExecute(t *testing.T) {
	b, err := New(bellCircuit, backend.MustCount(10))
	require.NoError(t, err)

	_, err = b.Result()
	assert.ErrorIs(t, err, backend.ErrNotExecuted)
}

func TestGarbageSource(t *testing.T) {
	_, err := New("not a circuit", backend.MustCount(10))
	assert.ErrorIs(t, err, backend.ErrCircuitParse)
}
