// Package sample adapts the sample-list engine: the raw result is a flat
// slice of sampled basis-state indices, and projection counts the matches
// per bitstring. The engine's dialect has neither measure statements nor
// classical registers, so both are stripped before import.
package sample

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

type Backend struct {
	qubits  int
	shots   backend.Shots
	engine  *sim.PulseEngine
	prog    *sim.Program
	samples []uint64
}

var _ backend.Backend = (*Backend)(nil)

func New(src string, shots backend.Shots) (*Backend, error) {
	qubits, err := qasm.QubitCount(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	engine := sim.NewPulseEngine(time.Now().UnixNano())
	prog, err := engine.Compile(qasm.StripClassical(qasm.StripMeasurements(src)))
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	return &Backend{qubits: qubits, shots: shots, engine: engine, prog: prog}, nil
}

func (b *Backend) Name() string { return "sample" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	n, ok := b.shots.Value()
	if !ok {
		return backend.Wrap(backend.ErrExecution,
			errors.New("sampling requires a concrete shot count"))
	}
	samples, err := b.engine.Sampling(b.prog, n)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	b.samples = samples
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if b.samples == nil {
		return nil, backend.ErrNotExecuted
	}
	m := outcome.Zero(b.qubits)
	for _, s := range b.samples {
		m[outcome.Bitstring(int(s), b.qubits)]++
	}
	return m, nil
}
