// Package normed adapts the device-oriented engine, whose importer has no
// measurement support. Raw counts are divided by the shot count during
// projection, so the outcome map holds probabilities.
package normed

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

// Backend runs one compiled circuit on a sim.Device selected by register
// width. Probability normalization needs a concrete shot count; with the
// exact distribution requested Result fails with ErrNormalization.
type Backend struct {
	qubits   int
	shots    backend.Shots
	device   *sim.Device
	prog     *sim.Program
	counts   map[string]int
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
	n, _ := shots.Value()
	return &Backend{
		qubits: qubits,
		shots:  shots,
		device: sim.NewDevice(qubits, n, time.Now().UnixNano()),
		prog:   prog,
	}, nil
}

func (b *Backend) Name() string { return "normed" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	counts, err := b.device.Counts(b.prog)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	b.counts = counts
	b.executed = true
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if !b.executed {
		return nil, backend.ErrNotExecuted
	}
	n, ok := b.shots.Value()
	if !ok {
		return nil, backend.Wrap(backend.ErrNormalization,
			errors.New("probability normalization requires a concrete shot count"))
	}
	m := outcome.Zero(b.qubits)
	for bits, c := range b.counts {
		m[bits] = float64(c) / float64(n)
	}
	return m, nil
}
