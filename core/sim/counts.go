package sim

import (
	"math/rand"

	"github.com/pkg/errors"
)

// CountsEngine is the job-oriented engine: execution yields a job whose
// result object carries raw counts for the observed outcomes only.
type CountsEngine struct {
	rng *rand.Rand
}

func NewCountsEngine(seed int64) *CountsEngine {
	return &CountsEngine{rng: rand.New(rand.NewSource(seed))}
}

// Execute runs the program for the given number of shots. A non-positive
// shot count falls back to DefaultShots.
func (e *CountsEngine) Execute(prog *Program, shots int) (*CountsJob, error) {
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
	return &CountsJob{res: &CountsResult{counts: counts}}, nil
}

// CountsJob is a finished execution handle.
type CountsJob struct {
	res *CountsResult
}

func (j *CountsJob) Result() *CountsResult { return j.res }

// CountsResult holds raw counts keyed by bitstring. Outcomes that were never
// observed are absent.
type CountsResult struct {
	counts map[string]int
}

func (r *CountsResult) Counts() map[string]int { return r.counts }
