package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qbench/core/bench"
	"qbench/core/outcome"
)

func openTestStore(t *testing.T) *RunStore {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func sampleRun(id string) bench.Run {
	return bench.Run{
		ID:          id,
		Backend:     "tally",
		Qubits:      2,
		Depth:       3,
		Shots:       "100",
		ConstructMs: 0.4,
		ExecuteMs:   1.7,
		Outcomes:    outcome.Map{"00": 52, "11": 48},
		StartedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		CompletedAt: time.Date(2025, 6, 1, 12, 0, 1, 0, time.UTC),
	}
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	want := sampleRun("run-a")

	require.NoError(t, s.Put(want))
	got, err := s.Get("run-a")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	run := sampleRun("run-a")
	require.NoError(t, s.Put(run))

	run.ExecuteMs = 9.9
	require.NoError(t, s.Put(run))

	got, err := s.Get("run-a")
	require.NoError(t, err)
	assert.Equal(t, 9.9, got.ExecuteMs)
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(sampleRun("b")))
	require.NoError(t, s.Put(sampleRun("a")))
	require.NoError(t, s.Put(sampleRun("c")))

	runs, err := s.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "a", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
	assert.Equal(t, "c", runs[2].ID)
}

func TestListEmpty(t *testing.T) {
	s := openTestStore(t)

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}
