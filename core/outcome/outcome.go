// Package outcome defines the canonical measurement-outcome table shared by
// every backend adapter.
package outcome

import "fmt"

// Map assigns a non-negative weight to every possible joint measurement
// outcome of a circuit. The weight is a raw count or a probability, depending
// on the backend convention; the domain is always the complete set of
// 2^qubits bitstrings, including outcomes with zero observed weight.
type Map map[string]float64

// Zero returns a complete all-zero map over the outcome space of the given
// register width.
func Zero(qubits int) Map {
	size := 1 << qubits
	m := make(Map, size)
	for i := 0; i < size; i++ {
		m[Bitstring(i, qubits)] = 0
	}
	return m
}

// Bitstring renders a basis-state index as a zero-padded binary string of the
// given width. Bit k of the index is qubit k, printed most-significant-first,
// so qubit 0 is the rightmost character.
func Bitstring(index, width int) string {
	return fmt.Sprintf("%0*b", width, index)
}

// Total sums all weights in the map.
func (m Map) Total() float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
