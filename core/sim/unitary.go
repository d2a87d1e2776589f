package sim

import "github.com/pkg/errors"

// UnitaryEngine is the measurement-free engine: it exposes only the evolved
// statevector. Callers that want sampled outcomes must sample the amplitudes
// themselves.
type UnitaryEngine struct{}

func NewUnitaryEngine() *UnitaryEngine { return &UnitaryEngine{} }

// Statevector evolves the program and returns its amplitude vector. Programs
// containing measure statements are rejected.
func (e *UnitaryEngine) Statevector(prog *Program) ([]complex128, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if len(prog.Measures) > 0 {
		return nil, errors.New("measurement statements are not supported, remove them before import")
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	return state.Amplitudes(), nil
}
