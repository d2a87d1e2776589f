// Package direct adapts the engine whose run call returns the counts map
// itself. Projection zero-pads without normalizing.
package direct

import (
	"context"
	"time"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

type Backend struct {
	qubits int
	shots  backend.Shots
	engine *sim.DirectEngine
	prog   *sim.Program
	counts map[string]int
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
		engine: sim.NewDirectEngine(time.Now().UnixNano()),
		prog:   prog,
	}, nil
}

func (b *Backend) Name() string { return "direct" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	n, _ := b.shots.Value()
	counts, err := b.engine.Run(b.prog, n)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	b.counts = counts
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if b.counts == nil {
		return nil, backend.ErrNotExecuted
	}
	m := outcome.Zero(b.qubits)
	for bits, c := range b.counts {
		m[bits] = float64(c)
	}
	return m, nil
}
