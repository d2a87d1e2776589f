// Package synth is the synthetic-load adapter: it models execution cost
// without simulating any circuit physics, so harness overhead can be
// measured against a known baseline. Its result is always the all-zero
// outcome map.
package synth

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"qbench/backend"
	"qbench/core/outcome"
	"qbench/core/qasm"
)

// Mode selects the cost model.
type Mode string

const (
	// ModeConstant burns a roughly constant amount of CPU independent of the
	// circuit parameters, or sleeps for a fixed duration when the load
	// workload is disabled.
	ModeConstant Mode = "constant"
	// ModeAnalytic sleeps for TimeConst * shots * depth^2 * qubits^3 seconds.
	ModeAnalytic Mode = "analytic"
)

// Config tunes the cost model. The zero value means constant mode with the
// sleep fallback; New enables the load workload.
type Config struct {
	Mode      Mode
	TimeConst float64       // analytic scaling constant in seconds, default 1e-9
	Load      bool          // constant mode: run the numeric workload instead of sleeping
	Sleep     time.Duration // constant-mode sleep fallback, default 10ms
	Depth     int           // explicit circuit depth; non-positive falls back to the QASM hint
}

type Backend struct {
	qubits   int
	depth    int
	shots    backend.Shots
	cfg      Config
	executed bool
}

var _ backend.Backend = (*Backend)(nil)

func New(src string, shots backend.Shots) (*Backend, error) {
	return NewWithConfig(src, shots, Config{Load: true})
}

func NewWithConfig(src string, shots backend.Shots, cfg Config) (*Backend, error) {
	qubits, err := qasm.QubitCount(src)
	if err != nil {
		return nil, backend.Wrap(backend.ErrCircuitParse, err)
	}
	depth := cfg.Depth
	if depth <= 0 {
		depth, err = qasm.DepthHint(src)
		if err != nil {
			return nil, backend.Wrap(backend.ErrCircuitParse, err)
		}
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeConstant
	}
	if cfg.Mode != ModeConstant && cfg.Mode != ModeAnalytic {
		return nil, errors.Errorf("unknown synthetic mode %q", cfg.Mode)
	}
	if cfg.TimeConst == 0 {
		cfg.TimeConst = 1e-9
	}
	if cfg.Sleep == 0 {
		cfg.Sleep = 10 * time.Millisecond
	}
	return &Backend{qubits: qubits, depth: depth, shots: shots, cfg: cfg}, nil
}

func (b *Backend) Name() string { return "synth" }

// Depth reports the depth the cost model uses, explicit or hinted.
func (b *Backend) Depth() int { return b.depth }

func (b *Backend) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return backend.Wrap(backend.ErrExecution, err)
	}
	switch b.cfg.Mode {
	case ModeConstant:
		if b.cfg.Load {
			constantLoad()
		} else {
			time.Sleep(b.cfg.Sleep)
		}
	case ModeAnalytic:
		n, _ := b.shots.Value()
		seconds := b.cfg.TimeConst * float64(n) *
			float64(b.depth*b.depth) *
			float64(b.qubits*b.qubits*b.qubits)
		time.Sleep(time.Duration(seconds * float64(time.Second)))
	}
	b.executed = true
	return nil
}

func (b *Backend) Result() (outcome.Map, error) {
	if !b.executed {
		return nil, backend.ErrNotExecuted
	}
	return outcome.Zero(b.qubits), nil
}

// constantLoad reduces a fixed-size array of normal deviates to its mean,
// consuming a repeatable amount of CPU regardless of circuit parameters.
func constantLoad() float64 {
	const size = 300 * 300
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sum := 0.0
	for i := 0; i < size; i++ {
		sum += 10 + 0.1*rng.NormFloat64()
	}
	return sum / size
}
