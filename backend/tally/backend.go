// Package tally adapts the job-oriented counts engine. The raw result keys
// only the outcomes that were observed; projection copies them over and
// zero-pads the rest of the outcome space.
package tally

import (
	"context"
	"time"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

// Backend runs one compiled circuit on a sim.CountsEngine. With the exact
// distribution requested the engine falls back to its own default shot
// count, so the projected values are always raw counts.
type Backend struct {
	qubits int
	shots  backend.Shots
	engine *sim.CountsEngine
	prog   *sim.Program
	result *sim.CountsResult
}

var _ backend.Backend = (*Backend)(nil)

func New(src string, shots backend.Shots) (*Backend, error) {
	qubits, err := qasm.QubitCount(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	prog, err := sim.Compile(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	return &Backend{
		qubits: qubits,
		shots:  shots,
		engine: sim.NewCountsEngine(time.Now().UnixNano()),
		prog:   prog,
	}, nil
}

func (b *Backend) Name() string { return "tally" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	n, _ := b.shots.Value()
	job, err := b.engine.Execute(b.prog, n)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	b.result = job.Result()
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if b.result == nil {
		return nil, backend.ErrNotExecuted
	}
	m := outcome.Zero(b.qubits)
	for bits, c := range b.result.Counts() {
		m[bits] = float64(c)
	}
	return m, nil
}
