package sim

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// GridEngine is the record-oriented engine: a sampled run produces one
// classical column per qubit, each holding the qubit's measured bit for every
// repetition. A simulate call evolves the state without sampling and yields
// no columns.
type GridEngine struct {
	rng *rand.Rand
}

func NewGridEngine(seed int64) *GridEngine {
	return &GridEngine{rng: rand.New(rand.NewSource(seed))}
}

// GridResult is the engine-native result. Columns is keyed "c_0".."c_{n-1}",
// one slice entry per repetition; it is nil for simulate-only results.
type GridResult struct {
	Columns    map[string][]int
	Amplitudes []complex128
}

// Rows returns the number of recorded repetitions.
func (r *GridResult) Rows() int {
	for _, col := range r.Columns {
		return len(col)
	}
	return 0
}

// Run samples the program for the given number of repetitions and records
// the per-qubit columns.
func (e *GridEngine) Run(prog *Program, repetitions int) (*GridResult, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if repetitions <= 0 {
		return nil, errors.Errorf("repetitions must be positive, got %d", repetitions)
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	columns := make(map[string][]int, prog.Qubits)
	for q := 0; q < prog.Qubits; q++ {
		columns[fmt.Sprintf("c_%d", q)] = make([]int, repetitions)
	}
	for row, idx := range SampleIndices(state.Probabilities(), repetitions, e.rng) {
		for q := 0; q < prog.Qubits; q++ {
			columns[fmt.Sprintf("c_%d", q)][row] = (idx >> q) & 1
		}
	}
	return &GridResult{Columns: columns}, nil
}

// Simulate evolves the program without sampling. The result carries
// amplitudes only; no classical columns are recorded.
func (e *GridEngine) Simulate(prog *Program) (*GridResult, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	return &GridResult{Amplitudes: state.Amplitudes()}, nil
}
