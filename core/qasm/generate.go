package qasm

import (
	"fmt"
	"math/rand"
	"strings"
)

var (
	plainGates = []string{"h", "x", "y", "z", "s", "sdg", "t", "tdg"}
	angleGates = []string{"rx", "ry", "rz", "u1"}
	angleArgs  = []string{"pi/2", "pi/4", "pi/8", "-pi/2", "0.3", "1.2"}
	pairGates  = []string{"cx", "cz", "swap"}
)

// Generate emits a random OPENQASM 2.0 circuit over the given register width
// with one randomly chosen gate per qubit per layer, followed by a full
// measurement. The same seed reproduces the same circuit.
func Generate(qubits, depth int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", qubits)
	fmt.Fprintf(&b, "creg c[%d];\n", qubits)

	for layer := 0; layer < depth; layer++ {
		for q := 0; q < qubits; q++ {
			switch pick := rng.Intn(10); {
			case pick < 5:
				fmt.Fprintf(&b, "%s q[%d];\n", plainGates[rng.Intn(len(plainGates))], q)
			case pick < 8:
				gate := angleGates[rng.Intn(len(angleGates))]
				arg := angleArgs[rng.Intn(len(angleArgs))]
				fmt.Fprintf(&b, "%s(%s) q[%d];\n", gate, arg, q)
			default:
				if qubits < 2 {
					fmt.Fprintf(&b, "h q[%d];\n", q)
					continue
				}
				other := (q + 1 + rng.Intn(qubits-1)) % qubits
				gate := pairGates[rng.Intn(len(pairGates))]
				fmt.Fprintf(&b, "%s q[%d],q[%d];\n", gate, q, other)
			}
		}
	}
	for q := 0; q < qubits; q++ {
		fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", q, q)
	}
	return b.String()
}
