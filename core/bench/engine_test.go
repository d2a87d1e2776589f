package bench

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/version"
)

type stubBackend struct {
	executeErr error
	resultErr  error
	outcomes   outcome.Map
	executed   bool
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Execute(ctx context.Context) error {
	if s.executeErr != nil {
		return s.executeErr
	}
	s.executed = true
	return nil
}

func (s *stubBackend) Result() (outcome.Map, error) {
	if s.resultErr != nil {
		return nil, s.resultErr
	}
	return s.outcomes, nil
}

func stubFactory(b *stubBackend, err error) Factory {
	return func(src string, shots backend.Shots) (backend.Backend, error) {
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func testSpec() Spec {
	return Spec{
		Backend: "stub",
		Circuit: "qreg q[2];",
		Qubits:  2,
		Depth:   3,
		Shots:   backend.MustCount(50),
	}
}

func TestRunSuccess(t *testing.T) {
	stub := &stubBackend{outcomes: outcome.Map{"00": 25, "11": 25}}

	run, err := Engine{}.Run(context.Background(), stubFactory(stub, nil), testSpec())
	require.NoError(t, err)

	assert.True(t, stub.executed)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, version.SchemaVersion, run.Schema)
	assert.Equal(t, "stub", run.Backend)
	assert.Equal(t, 2, run.Qubits)
	assert.Equal(t, 3, run.Depth)
	assert.Equal(t, "50", run.Shots)
	assert.Equal(t, stub.outcomes, run.Outcomes)
	assert.Empty(t, run.Err)
	assert.False(t, run.CompletedAt.Before(run.StartedAt))
}

func TestRunUniqueIDs(t *testing.T) {
	stub := &stubBackend{outcomes: outcome.Map{}}

	a, err := Engine{}.Run(context.Background(), stubFactory(stub, nil), testSpec())
	require.NoError(t, err)
	b, err := Engine{}.Run(context.Background(), stubFactory(stub, nil), testSpec())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRunFactoryError(t *testing.T) {
	boom := errors.New("bad circuit")

	run, err := Engine{}.Run(context.Background(), stubFactory(nil, boom), testSpec())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "bad circuit", run.Err)
	assert.Nil(t, run.Outcomes)
	assert.False(t, run.CompletedAt.IsZero())
}

func TestRunExecuteError(t *testing.T) {
	boom := errors.New("engine fault")
	stub := &stubBackend{executeErr: boom}

	run, err := Engine{}.Run(context.Background(), stubFactory(stub, nil), testSpec())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "engine fault", run.Err)
	assert.Nil(t, run.Outcomes)
}

func TestRunResultError(t *testing.T) {
	stub := &stubBackend{resultErr: backend.ErrNormalization}

	run, err := Engine{}.Run(context.Background(), stubFactory(stub, nil), testSpec())
	assert.ErrorIs(t, err, backend.ErrNormalization)
	assert.NotEmpty(t, run.Err)
}
