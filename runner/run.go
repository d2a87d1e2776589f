// Package runner orchestrates benchmark sweeps: it fans a grid of generated
// circuits out over the configured backends and shot settings, collects the
// run records, and writes the summary.
package runner

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"qbench/backend"
	"qbench/backend/synth"
	"qbench/core/bench"
	"qbench/core/qasm"
	"qbench/harness/config"
	"qbench/harness/pool"
	"qbench/harness/registry"
	"qbench/store"
)

// SweepResult summarizes one full sweep.
type SweepResult struct {
	Runs   []bench.Run `json:"runs"`
	Failed int         `json:"failed"`
}

// Sweep runs the full benchmark grid described by cfg. Individual run
// failures are recorded and do not abort the sweep; only setup failures do.
func Sweep(ctx context.Context, cfg config.Config, logger *zap.Logger) (SweepResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return SweepResult{}, errors.Wrap(err, "validate config")
	}

	reg := registry.Default()
	for _, name := range cfg.Backends {
		if _, err := reg.Get(name); err != nil {
			return SweepResult{}, err
		}
	}

	var st *store.RunStore
	if cfg.StoreDir != "" {
		var err error
		st, err = store.Open(cfg.StoreDir)
		if err != nil {
			return SweepResult{}, err
		}
		defer st.Close()
	}

	var (
		engine bench.Engine
		p      = pool.New(cfg.Concurrency)
		mu     sync.Mutex
		result SweepResult
	)

	for _, qubits := range cfg.Qubits {
		for _, depth := range cfg.Depths {
			src := qasm.Generate(qubits, depth, cellSeed(cfg.Seed, qubits, depth))
			for _, name := range cfg.Backends {
				factory, err := factoryFor(reg, name, depth, cfg.Synthetic)
				if err != nil {
					return SweepResult{}, err
				}
				for _, s := range cfg.Shots {
					shots := backend.Distribution()
					if s > 0 {
						shots, err = backend.Count(s)
						if err != nil {
							return SweepResult{}, err
						}
					}
					spec := bench.Spec{
						Backend: name,
						Circuit: src,
						Qubits:  qubits,
						Depth:   depth,
						Shots:   shots,
					}
					p.Go(func() {
						run, runErr := engine.Run(ctx, factory, spec)
						if runErr != nil {
							logger.Warn("benchmark run failed",
								zap.String("backend", run.Backend),
								zap.Int("qubits", run.Qubits),
								zap.Int("depth", run.Depth),
								zap.String("shots", run.Shots),
								zap.Error(runErr),
							)
						} else {
							logger.Info("benchmark run complete",
								zap.String("backend", run.Backend),
								zap.Int("qubits", run.Qubits),
								zap.Int("depth", run.Depth),
								zap.String("shots", run.Shots),
								zap.Float64("execute_ms", run.ExecuteMs),
							)
						}
						if st != nil {
							if err := st.Put(run); err != nil {
								logger.Warn("persist run", zap.Error(err))
							}
						}
						mu.Lock()
						result.Runs = append(result.Runs, run)
						if runErr != nil {
							result.Failed++
						}
						mu.Unlock()
					})
				}
			}
		}
	}
	p.Wait()

	sort.Slice(result.Runs, func(i, j int) bool {
		return result.Runs[i].StartedAt.Before(result.Runs[j].StartedAt)
	})

	if err := writeSummary(cfg.OutputDir, result); err != nil {
		return result, err
	}
	return result, nil
}

// factoryFor resolves a backend factory, threading the sweep cell's depth
// and the synthetic-load settings into the synthetic backend explicitly
// instead of relying on its QASM depth hint.
func factoryFor(reg *registry.Registry, name string, depth int, syn config.Synthetic) (bench.Factory, error) {
	if name != "synth" {
		return reg.Get(name)
	}
	cfg := synth.Config{
		Mode:      synth.Mode(syn.Mode),
		TimeConst: syn.TimeConst,
		Load:      syn.Load,
		Sleep:     time.Duration(syn.SleepMs) * time.Millisecond,
		Depth:     depth,
	}
	return func(src string, shots backend.Shots) (backend.Backend, error) {
		return synth.NewWithConfig(src, shots, cfg)
	}, nil
}

func cellSeed(seed int64, qubits, depth int) int64 {
	return seed + int64(qubits)*1000 + int64(depth)
}

func writeSummary(dir string, result SweepResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode summary")
	}
	path := filepath.Join(dir, "results.json")
	return errors.Wrap(os.WriteFile(path, data, 0o644), "write summary")
}
