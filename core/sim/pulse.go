package sim

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// PulseEngine is the sample-list engine: runs return a flat slice of sampled
// basis-state indices. Its importer understands neither measure statements
// nor classical registers.
type PulseEngine struct {
	rng *rand.Rand
}

func NewPulseEngine(seed int64) *PulseEngine {
	return &PulseEngine{rng: rand.New(rand.NewSource(seed))}
}

// Compile parses the source in the engine's dialect.
func (e *PulseEngine) Compile(src string) (*Program, error) {
	if strings.Contains(src, "measure") {
		return nil, errors.New("measure statements are not supported, strip them before import")
	}
	if strings.Contains(src, "creg") {
		return nil, errors.New("creg declarations are not supported, strip them before import")
	}
	return Compile(src)
}

// Sampling evolves the program and draws count basis-state samples.
func (e *PulseEngine) Sampling(prog *Program, count int) ([]uint64, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if count <= 0 {
		return nil, errors.Errorf("sampling count must be positive, got %d", count)
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	samples := make([]uint64, count)
	for i, idx := range SampleIndices(state.Probabilities(), count, e.rng) {
		samples[i] = uint64(idx)
	}
	return samples, nil
}
