package sim

import (
	"math/rand"

	"github.com/pkg/errors"
)

// DeviceKind names the two execution devices.
type DeviceKind string

const (
	// DeviceDense keeps the full statevector in memory.
	DeviceDense DeviceKind = "dense"
	// DeviceLight is the device selected for wide registers.
	DeviceLight DeviceKind = "light"

	// denseWireLimit is the widest register the dense device accepts before
	// the light device takes over.
	denseWireLimit = 20
)

// Device is the device-oriented engine: it is configured once with a wire
// count and shot count, then asked for counts per program. Its importer has
// no notion of measurement statements.
type Device struct {
	kind  DeviceKind
	wires int
	shots int
	rng   *rand.Rand
}

// NewDevice selects the device kind from the wire count. A non-positive shot
// count falls back to DefaultShots.
func NewDevice(wires, shots int, seed int64) *Device {
	kind := DeviceDense
	if wires > denseWireLimit {
		kind = DeviceLight
	}
	if shots <= 0 {
		shots = DefaultShots
	}
	return &Device{kind: kind, wires: wires, shots: shots, rng: rand.New(rand.NewSource(seed))}
}

func (d *Device) Kind() DeviceKind { return d.kind }

// Counts executes the program and returns raw counts for observed outcomes.
// Programs containing measure statements are rejected.
func (d *Device) Counts(prog *Program) (map[string]int, error) {
	if prog == nil {
		return nil, errors.New("nil program")
	}
	if len(prog.Measures) > 0 {
		return nil, errors.New("measurement statements are not supported by this device")
	}
	if prog.Qubits != d.wires {
		return nil, errors.Errorf("program wants %d wires, device has %d", prog.Qubits, d.wires)
	}
	state, err := Evolve(prog)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, idx := range SampleIndices(state.Probabilities(), d.shots, d.rng) {
		counts[bitstring(idx, prog.Qubits)]++
	}
	return counts, nil
}
