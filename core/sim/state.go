package sim

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// State is a dense statevector over a fixed register width. The zero basis
// state starts with amplitude 1.
type State struct {
	amps   []complex128
	qubits int
}

// NewState returns the |0...0> state for the given register width.
func NewState(qubits int) *State {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &State{amps: amps, qubits: qubits}
}

// Evolve applies every gate of the program to a fresh state. Measure
// statements carry no unitary and are ignored here; engines that sample do so
// from the evolved amplitudes.
func Evolve(prog *Program) (*State, error) {
	state := NewState(prog.Qubits)
	for _, g := range prog.Gates {
		if err := state.Apply(g); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Apply updates the state with one gate.
func (s *State) Apply(g Gate) error {
	switch g.Name {
	case "id":
	case "h":
		h := complex(1/math.Sqrt2, 0)
		s.applySingle(g.Qubits[0], [2][2]complex128{{h, h}, {h, -h}})
	case "x":
		s.applySingle(g.Qubits[0], [2][2]complex128{{0, 1}, {1, 0}})
	case "y":
		s.applySingle(g.Qubits[0], [2][2]complex128{{0, -1i}, {1i, 0}})
	case "z":
		s.applyPhase(g.Qubits[0], -1)
	case "s":
		s.applyPhase(g.Qubits[0], 1i)
	case "sdg":
		s.applyPhase(g.Qubits[0], -1i)
	case "t":
		s.applyPhase(g.Qubits[0], cmplx.Exp(complex(0, math.Pi/4)))
	case "tdg":
		s.applyPhase(g.Qubits[0], cmplx.Exp(complex(0, -math.Pi/4)))
	case "rx":
		c := complex(math.Cos(g.Arg/2), 0)
		js := complex(0, -math.Sin(g.Arg/2))
		s.applySingle(g.Qubits[0], [2][2]complex128{{c, js}, {js, c}})
	case "ry":
		c := complex(math.Cos(g.Arg/2), 0)
		sn := complex(math.Sin(g.Arg/2), 0)
		s.applySingle(g.Qubits[0], [2][2]complex128{{c, -sn}, {sn, c}})
	case "rz":
		ph := cmplx.Exp(complex(0, g.Arg/2))
		s.applySingle(g.Qubits[0], [2][2]complex128{{cmplx.Conj(ph), 0}, {0, ph}})
	case "u1", "p":
		s.applyPhase(g.Qubits[0], cmplx.Exp(complex(0, g.Arg)))
	case "cx":
		s.applyCX(g.Qubits[0], g.Qubits[1])
	case "cz":
		s.applyCZ(g.Qubits[0], g.Qubits[1])
	case "swap":
		s.applySwap(g.Qubits[0], g.Qubits[1])
	default:
		return errors.Errorf("unsupported gate %q", g.Name)
	}
	return nil
}

// applySingle applies a 2x2 unitary to one qubit.
func (s *State) applySingle(q int, m [2][2]complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = m[0][0]*a0 + m[0][1]*a1
			s.amps[j] = m[1][0]*a0 + m[1][1]*a1
		}
	}
}

// applyPhase multiplies the |1> component of one qubit by a phase factor.
func (s *State) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= factor
		}
	}
}

func (s *State) applyCX(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *State) applyCZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] *= -1
		}
	}
}

func (s *State) applySwap(a, b int) {
	aBit, bBit := 1<<a, 1<<b
	for i := range s.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := (i &^ aBit) | bBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Amplitudes returns a copy of the statevector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Probabilities returns the squared-magnitude distribution over basis states.
func (s *State) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return out
}
