// Package registry maps backend names to adapter factories.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"qbench/backend"
	"qbench/backend/direct"
	"qbench/backend/freq"
	"qbench/backend/grid"
	"qbench/backend/normed"
	"qbench/backend/sample"
	"qbench/backend/synth"
	"qbench/backend/tally"
	"qbench/backend/vector"
	"qbench/core/bench"
)

// Registry maps backend names to bench.Factory values. Factories rather than
// instances are registered because every run needs a fresh adapter per
// (circuit, shots) pair.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]bench.Factory
}

func New() *Registry {
	return &Registry{factories: map[string]bench.Factory{}}
}

// Register adds or replaces a factory under a given name.
func (r *Registry) Register(name string, factory bench.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a factory by name or an error if missing.
func (r *Registry) Get(name string) (bench.Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if factory, ok := r.factories[name]; ok {
		return factory, nil
	}
	return nil, fmt.Errorf("backend %q not registered", name)
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Default returns a registry with every built-in adapter registered under
// its canonical name.
func Default() *Registry {
	r := New()
	r.Register("tally", func(src string, shots backend.Shots) (backend.Backend, error) {
		return tally.New(src, shots)
	})
	r.Register("normed", func(src string, shots backend.Shots) (backend.Backend, error) {
		return normed.New(src, shots)
	})
	r.Register("direct", func(src string, shots backend.Shots) (backend.Backend, error) {
		return direct.New(src, shots)
	})
	r.Register("vector", func(src string, shots backend.Shots) (backend.Backend, error) {
		return vector.New(src, shots)
	})
	r.Register("grid", func(src string, shots backend.Shots) (backend.Backend, error) {
		return grid.New(src, shots)
	})
	r.Register("freq", func(src string, shots backend.Shots) (backend.Backend, error) {
		return freq.New(src, shots)
	})
	r.Register("sample", func(src string, shots backend.Shots) (backend.Backend, error) {
		return sample.New(src, shots)
	})
	r.Register("synth", func(src string, shots backend.Shots) (backend.Backend, error) {
		return synth.New(src, shots)
	})
	return r
}
