// Package store persists benchmark run records in a pebble database.
package store

import (
	"encoding/json"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"qbench/core/bench"
)

// ErrNotFound is returned when no run exists under the requested id.
var ErrNotFound = errors.New("run not found")

var (
	runPrefix = []byte("run/")
	// '0' is '/'+1, so [runPrefix, runEnd) spans exactly the run keyspace.
	runEnd = []byte("run0")
)

// RunStore is a pebble-backed store of bench.Run records.
type RunStore struct {
	db *pebble.DB
}

// Open opens or creates the store under dir.
func Open(dir string) (*RunStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "open run store")
	}
	return &RunStore{db: db}, nil
}

func runKey(id string) []byte {
	return append(append([]byte{}, runPrefix...), id...)
}

// Put writes one run record. Safe for concurrent use.
func (s *RunStore) Put(run bench.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(err, "encode run")
	}
	return errors.Wrap(s.db.Set(runKey(run.ID), data, pebble.Sync), "put run")
}

// Get reads one run record by id.
func (s *RunStore) Get(id string) (bench.Run, error) {
	data, closer, err := s.db.Get(runKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return bench.Run{}, ErrNotFound
		}
		return bench.Run{}, errors.Wrap(err, "get run")
	}
	defer closer.Close()

	var run bench.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return bench.Run{}, errors.Wrap(err, "decode run")
	}
	return run, nil
}

// List returns all stored runs in key order.
func (s *RunStore) List() ([]bench.Run, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: runPrefix,
		UpperBound: runEnd,
	})
	if err != nil {
		return nil, errors.Wrap(err, "iterate runs")
	}
	defer iter.Close()

	var runs []bench.Run
	for iter.First(); iter.Valid(); iter.Next() {
		var run bench.Run
		if err := json.Unmarshal(iter.Value(), &run); err != nil {
			return nil, errors.Wrap(err, "decode run")
		}
		runs = append(runs, run)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate runs")
	}
	return runs, nil
}

// Close releases the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}
