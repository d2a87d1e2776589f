// Package bench times adapter lifecycles and produces the uniform run record
// every backend reports through.
package bench

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/version"
)

// Factory constructs a fresh adapter for one (circuit, shots) pair. Each run
// gets its own instance; adapters are never reused.
type Factory func(src string, shots backend.Shots) (backend.Backend, error)

// Spec describes a single benchmark run.
type Spec struct {
	Backend string
	Circuit string
	Qubits  int
	Depth   int
	Shots   backend.Shots
}

// Run is the record produced for every benchmark run, successful or not.
// Construction and execution are timed separately because both phases do
// real work: construction compiles the circuit, execution simulates it.
type Run struct {
	ID          string      `json:"id"`
	Schema      string      `json:"schema"`
	Backend     string      `json:"backend"`
	Qubits      int         `json:"qubits"`
	Depth       int         `json:"depth"`
	Shots       string      `json:"shots"`
	ConstructMs float64     `json:"construct_ms"`
	ExecuteMs   float64     `json:"execute_ms"`
	Outcomes    outcome.Map `json:"outcomes,omitempty"`
	Err         string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// Engine runs benchmark specs. The zero value is ready to use.
type Engine struct{}

// Run constructs the adapter, times Execute, and projects the result. The
// returned record is populated as far as the run got; the error, if any, is
// both recorded and returned.
func (e Engine) Run(ctx context.Context, factory Factory, spec Spec) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Schema:    version.SchemaVersion,
		Backend:   spec.Backend,
		Qubits:    spec.Qubits,
		Depth:     spec.Depth,
		Shots:     spec.Shots.String(),
		StartedAt: time.Now(),
	}

	constructStart := time.Now()
	b, err := factory(spec.Circuit, spec.Shots)
	run.ConstructMs = msSince(constructStart)
	if err != nil {
		return e.fail(run, err)
	}

	executeStart := time.Now()
	err = b.Execute(ctx)
	run.ExecuteMs = msSince(executeStart)
	if err != nil {
		return e.fail(run, err)
	}
	executeSeconds.WithLabelValues(run.Backend).Observe(run.ExecuteMs / 1e3)

	m, err := b.Result()
	if err != nil {
		return e.fail(run, err)
	}
	run.Outcomes = m
	run.CompletedAt = time.Now()
	runsTotal.WithLabelValues(run.Backend, "ok").Inc()
	return run, nil
}

func (e Engine) fail(run Run, err error) (Run, error) {
	run.Err = err.Error()
	run.CompletedAt = time.Now()
	runsTotal.WithLabelValues(run.Backend, "error").Inc()
	return run, err
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / 1e6
}
