package sim

import (
	"math/rand"
	"regexp"

	"github.com/pkg/errors"
)

// FreqConfig selects the evaluator a FreqEngine uses. The evaluator is an
// explicit constructor parameter; there is no process-wide selection state.
type FreqConfig struct {
	// Evaluator is "dense" (default) or "sparse".
	Evaluator string
}

// FreqEngine is the frequency-oriented engine. Its QASM dialect has no
// division operator in gate arguments; callers must rewrite divisions before
// import.
type FreqEngine struct {
	evaluator string
	rng       *rand.Rand
}

func NewFreqEngine(cfg FreqConfig, seed int64) (*FreqEngine, error) {
	evaluator := cfg.Evaluator
	if evaluator == "" {
		evaluator = "dense"
	}
	switch evaluator {
	case "dense", "sparse":
	default:
		return nil, errors.Errorf("unknown evaluator %q", cfg.Evaluator)
	}
	return &FreqEngine{evaluator: evaluator, rng: rand.New(rand.NewSource(seed))}, nil
}

func (e *FreqEngine) Evaluator() string { return e.evaluator }

var divisionToken = regexp.MustCompile(`/\d`)

// ImportQASM parses the source in the engine's dialect. Sources containing a
// division in gate arguments are rejected.
func (e *FreqEngine) ImportQASM(src string) (*Program, error) {
	if divisionToken.MatchString(src) {
		return nil, errors.New("division is not supported in gate arguments, rewrite it as a multiplication")
	}
	return Compile(src)
}

// FreqRun is a finished execution. With no shot count the run holds only the
// final state and no frequencies.
type FreqRun struct {
	freq map[string]int
}

// Frequencies returns the raw observed-outcome frequencies, or nil when the
// run was not sampled.
func (r *FreqRun) Frequencies() map[string]int { return r.freq }

// Run executes the program. A non-positive shot count evolves the state
// without sampling, producing a run with no frequencies.
func (e *FreqEngine) Run(prog *Program, nshots int) (*FreqRun, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	if nshots <= 0 {
		return &FreqRun{}, nil
	}
	freq := make(map[string]int)
	for _, idx := range SampleIndices(state.Probabilities(), nshots, e.rng) {
		freq[bitstring(idx, prog.Qubits)]++
	}
	return &FreqRun{freq: freq}, nil
}
