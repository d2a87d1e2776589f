// Package vector adapts the measurement-free statevector engine. The adapter
// derives per-outcome probabilities from the amplitudes itself: with a
// concrete shot count it draws categorical samples and reports counts, with
// the exact distribution requested it reports the probabilities directly.
package vector

import (
	"context"
	"math/rand"
	"time"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

type Backend struct {
	qubits   int
	shots    backend.Shots
	engine   *sim.UnitaryEngine
	prog     *sim.Program
	rng      *rand.Rand
	samples  []int
	probs    []float64
	executed bool
}

var _ backend.Backend = (*Backend)(nil)

func New(src string, shots backend.Shots) (*Backend, error) {
	qubits, err := qasm.QubitCount(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	prog, err := sim.Compile(qasm.StripMeasurements(src))
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	return &Backend{
		qubits: qubits,
		shots:  shots,
		engine: sim.NewUnitaryEngine(),
		prog:   prog,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (b *Backend) Name() string { return "vector" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	amps, err := b.engine.Statevector(b.prog)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	probs := make([]float64, len(amps))
	for i, a := range amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	if n, ok := b.shots.Value(); ok {
		b.samples = sim.SampleIndices(probs, n, b.rng)
	} else {
		b.probs = probs
	}
	b.executed = true
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if !b.executed {
		return nil, backend.ErrNotExecuted
	}
	m := outcome.Zero(b.qubits)
	if b.samples != nil {
		for _, idx := range b.samples {
			m[outcome.Bitstring(idx, b.qubits)]++
		}
		return m, nil
	}
	for i, p := range b.probs {
		m[outcome.Bitstring(i, b.qubits)] = p
	}
	return m, nil
}
