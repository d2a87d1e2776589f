// Package freq adapts the frequency-oriented engine, whose QASM dialect has
// no division operator: divisions are rewritten to multiplications before
// import. The evaluator is an explicit constructor parameter.
package freq

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
	"qbench/core/sim"
)

// Config selects the engine evaluator. The zero value picks the dense
// evaluator.
type Config struct {
	Evaluator string
}

type Backend struct {
	qubits int
	shots  backend.Shots
	engine *sim.FreqEngine
	prog   *sim.Program
	run    *sim.FreqRun
}

var _ backend.Backend = (*Backend)(nil)

func New(src string, shots backend.Shots) (*Backend, error) {
	return NewWithConfig(src, shots, Config{})
}

func NewWithConfig(src string, shots backend.Shots, cfg Config) (*Backend, error) {
	qubits, err := qasm.QubitCount(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	engine, err := sim.NewFreqEngine(sim.FreqConfig{Evaluator: cfg.Evaluator}, time.Now().UnixNano())
	if err != nil {
		return nil, errors.Wrap(err, "configure freq engine")
	}
	prog, err := engine.ImportQASM(qasm.InlineDivisions(src))
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	return &Backend{qubits: qubits, shots: shots, engine: engine, prog: prog}, nil
}

func (b *Backend) Name() string { return "freq" }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	n, _ := b.shots.Value()
	run, err := b.engine.Run(b.prog, n)
	if err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	b.run = run
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if b.run == nil {
		return nil, backend.ErrNotExecuted
	}
	freqs := b.run.Frequencies()
	if freqs == nil {
		return nil, backend.Wrap(backend.ErrNormalization,
			errors.New("no measurement samples recorded, a concrete shot count is required"))
	}
	m := outcome.Zero(b.qubits)
	for bits, c := range freqs {
		m[bits] = float64(c)
	}
	return m, nil
}
