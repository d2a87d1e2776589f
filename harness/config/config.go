// Package config drives sweep behavior.
package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Synthetic tunes the synthetic-load backend for a sweep.
type Synthetic struct {
	// Mode is "constant" or "analytic".
	Mode string `yaml:"mode"`
	// TimeConst is the analytic scaling constant in seconds.
	TimeConst float64 `yaml:"time_const"`
	// Load runs the numeric workload in constant mode instead of sleeping.
	Load bool `yaml:"load"`
	// SleepMs is the constant-mode sleep fallback.
	SleepMs int `yaml:"sleep_ms"`
}

// Config describes one benchmark sweep.
type Config struct {
	// Backends are the adapter names to benchmark.
	Backends []string `yaml:"backends"`
	// Qubits and Depths span the circuit grid; one random circuit is
	// generated per (qubits, depth) cell.
	Qubits []int `yaml:"qubits"`
	Depths []int `yaml:"depths"`
	// Shots lists the shot settings; 0 requests the exact distribution.
	Shots []int `yaml:"shots"`
	// Seed makes circuit generation reproducible.
	Seed int64 `yaml:"seed"`
	// OutputDir receives the results.json summary.
	OutputDir string `yaml:"output_dir"`
	// StoreDir, when set, enables the persistent run store.
	StoreDir string `yaml:"store_dir"`
	// Concurrency limits the number of runs in flight.
	Concurrency int       `yaml:"concurrency"`
	Synthetic   Synthetic `yaml:"synthetic"`
}

// Defaults returns a small sweep usable without any configuration file.
func Defaults() Config {
	return Config{
		Backends:    []string{"tally", "synth"},
		Qubits:      []int{2, 3},
		Depths:      []int{1, 2, 3},
		Shots:       []int{100},
		Seed:        1,
		OutputDir:   "results",
		Concurrency: 1,
		Synthetic: Synthetic{
			Mode:      "constant",
			TimeConst: 1e-9,
			Load:      true,
			SleepMs:   10,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// Validate ensures the config is usable.
func (c Config) Validate() error {
	if len(c.Backends) == 0 {
		return errors.New("at least one backend required")
	}
	if len(c.Qubits) == 0 || len(c.Depths) == 0 {
		return errors.New("at least one qubit count and depth required")
	}
	for _, q := range c.Qubits {
		if q <= 0 {
			return errors.Errorf("qubit count must be > 0, got %d", q)
		}
	}
	for _, d := range c.Depths {
		if d <= 0 {
			return errors.Errorf("depth must be > 0, got %d", d)
		}
	}
	if len(c.Shots) == 0 {
		return errors.New("at least one shot setting required")
	}
	for _, s := range c.Shots {
		if s < 0 {
			return errors.Errorf("shot setting must be >= 0, got %d", s)
		}
	}
	if c.Concurrency <= 0 {
		return errors.New("concurrency must be > 0")
	}
	if c.OutputDir == "" {
		return errors.New("output directory required")
	}
	return nil
}
