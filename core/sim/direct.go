package sim

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DirectEngine is the simplest engine surface: a single run call that
// returns the observed-outcome counts map itself.
type DirectEngine struct {
	rng *rand.Rand
}

func NewDirectEngine(seed int64) *DirectEngine {
	return &DirectEngine{rng: rand.New(rand.NewSource(seed))}
}

// Run executes the program and returns raw counts keyed by bitstring. A
// non-positive shot count falls back to DefaultShots.
func (e *DirectEngine) Run(prog *Program, shots int) (map[string]int, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if shots <= 0 {
		shots = DefaultShots
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, idx := range SampleIndices(state.Probabilities(), shots, e.rng) {
		counts[bitstring(idx, prog.Qubits)]++
	}
	return counts, nil
}
