package normed

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
	b, err := New(bellCircuit, backend.MustCount(400))
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	m, err := b.Result()
	require.NoError(t, err)

	assert.Len(t, m, 4)
	assert.InDelta(t, 1.0, m.Total(), 1e-9)
	assert.Zero(t, m["01"])
	assert.Zero(t, m["10"])
	assert.InDelta(t, 0.5, m["00"], 0.25)
}

func TestExactRequestFailsNormalization(t *testing.T) {
	b, err := New(bellCircuit, backend.Distribution())
	require.NoError(t, err)
	require.NoError(t, b.Execute(context.Background()))

	_, err = b.Result()
	assert.ErrorIs(t, err, backend.ErrNormalization)
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
