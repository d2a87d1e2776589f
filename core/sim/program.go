// Package sim contains the native circuit-simulation engines the backend
// adapters wrap. The engines share one QASM compiler and one dense
// statevector implementation but expose deliberately different run and
// result surfaces, the way independent simulators do.
package sim

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Registers wider than this would need more statevector memory than the
// harness is willing to allocate (2^24 amplitudes is already 256 MiB).
const maxRegisterWidth = 24

// Gate is one compiled circuit operation.
type Gate struct {
	Name   string
	Qubits []int
	Arg    float64
	HasArg bool
}

// Measure records one measure statement: qubit index to classical bit index.
type Measure struct {
	Qubit int
	Clbit int
}

// Program is an immutable compiled circuit. Programs are shared through the
// compile cache and must not be mutated after compilation.
type Program struct {
	Qubits   int
	Clbits   int
	Gates    []Gate
	Measures []Measure
}

var programCache = mustCache()

func mustCache() *lru.Cache[string, *Program] {
	c, err := lru.New[string, *Program](256)
	if err != nil {
		panic(err)
	}
	return c
}

// Compile parses a QASM source string into a Program. Compiled programs are
// cached by source hash, so repeated compiles of the same circuit across
// engines are free.
func Compile(src string) (*Program, error) {
	sum := sha256.Sum256([]byte(src))
	key := hex.EncodeToString(sum[:])
	if prog, ok := programCache.Get(key); ok {
		return prog, nil
	}
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	programCache.Add(key, prog)
	return prog, nil
}

var qubitRef = regexp.MustCompile(`^\w+\[(\d+)\]$`)

func compile(src string) (*Program, error) {
	prog := &Program{Qubits: -1, Clbits: -1}

	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, stmt := range strings.Split(line, ";") {
			stmt = strings.TrimSpace(stmt)
			if stmt == "" {
				continue
			}
			if err := compileStatement(prog, stmt); err != nil {
				return nil, err
			}
		}
	}

	if prog.Qubits < 0 {
		return nil, errors.New("no qreg declaration in circuit")
	}
	if prog.Clbits < 0 {
		prog.Clbits = 0
	}
	return prog, nil
}

func compileStatement(prog *Program, stmt string) error {
	switch {
	case strings.HasPrefix(stmt, "OPENQASM"), strings.HasPrefix(stmt, "include"):
		return nil
	case strings.HasPrefix(stmt, "barrier"):
		return nil
	case strings.HasPrefix(stmt, "qreg"):
		if prog.Qubits >= 0 {
			return errors.New("multiple qreg declarations in circuit")
		}
		width, err := declWidth(stmt)
		if err != nil {
			return err
		}
		if width > maxRegisterWidth {
			return errors.Errorf("register width %d exceeds the %d-qubit limit", width, maxRegisterWidth)
		}
		prog.Qubits = width
		return nil
	case strings.HasPrefix(stmt, "creg"):
		if prog.Clbits >= 0 {
			return errors.New("multiple creg declarations in circuit")
		}
		width, err := declWidth(stmt)
		if err != nil {
			return err
		}
		prog.Clbits = width
		return nil
	case strings.HasPrefix(stmt, "measure"):
		return compileMeasure(prog, stmt)
	default:
		return compileGate(prog, stmt)
	}
}

var declBracket = regexp.MustCompile(`\w+\[(\d+)\]`)

func declWidth(stmt string) (int, error) {
	m := declBracket.FindStringSubmatch(stmt)
	if m == nil {
		return 0, errors.Errorf("malformed register declaration %q", stmt)
	}
	return strconv.Atoi(m[1])
}

func compileMeasure(prog *Program, stmt string) error {
	body := strings.TrimSpace(strings.TrimPrefix(stmt, "measure"))
	parts := strings.Split(body, "->")
	if len(parts) != 2 {
		return errors.Errorf("malformed measure statement %q", stmt)
	}
	qubit, err := refIndex(parts[0], prog.Qubits)
	if err != nil {
		return errors.Wrapf(err, "measure %q", stmt)
	}
	clbit, err := refIndex(parts[1], prog.Clbits)
	if err != nil {
		return errors.Wrapf(err, "measure %q", stmt)
	}
	prog.Measures = append(prog.Measures, Measure{Qubit: qubit, Clbit: clbit})
	return nil
}

func compileGate(prog *Program, stmt string) error {
	head := stmt
	operands := ""
	if j := strings.Index(stmt, ")"); strings.Contains(stmt, "(") && j >= 0 {
		head, operands = stmt[:j+1], strings.TrimSpace(stmt[j+1:])
	} else if i := strings.IndexAny(stmt, " \t"); i >= 0 {
		head, operands = stmt[:i], strings.TrimSpace(stmt[i+1:])
	}

	name := head
	arg := 0.0
	hasArg := false
	if i := strings.Index(head, "("); i >= 0 {
		if !strings.HasSuffix(head, ")") {
			return errors.Errorf("malformed gate statement %q", stmt)
		}
		var err error
		arg, err = evalArg(head[i+1 : len(head)-1])
		if err != nil {
			return errors.Wrapf(err, "gate %q", stmt)
		}
		name = head[:i]
		hasArg = true
	}
	name = strings.ToLower(name)

	arity, ok := gateArity[name]
	if !ok {
		return errors.Errorf("unsupported gate %q", name)
	}

	refs := strings.Split(operands, ",")
	if operands == "" || len(refs) != arity {
		return errors.Errorf("gate %q wants %d operand(s), got %q", name, arity, operands)
	}
	qubits := make([]int, 0, arity)
	for _, ref := range refs {
		idx, err := refIndex(ref, prog.Qubits)
		if err != nil {
			return errors.Wrapf(err, "gate %q", stmt)
		}
		qubits = append(qubits, idx)
	}

	prog.Gates = append(prog.Gates, Gate{Name: name, Qubits: qubits, Arg: arg, HasArg: hasArg})
	return nil
}

var gateArity = map[string]int{
	"id": 1, "h": 1, "x": 1, "y": 1, "z": 1,
	"s": 1, "sdg": 1, "t": 1, "tdg": 1,
	"rx": 1, "ry": 1, "rz": 1, "u1": 1, "p": 1,
	"cx": 2, "cz": 2, "swap": 2,
}

func refIndex(ref string, width int) (int, error) {
	ref = strings.TrimSpace(ref)
	m := qubitRef.FindStringSubmatch(ref)
	if m == nil {
		return 0, errors.Errorf("malformed register reference %q", ref)
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	if width < 0 || idx >= width {
		return 0, errors.Errorf("register index %d out of range (width %d)", idx, width)
	}
	return idx, nil
}

// evalArg evaluates a gate-argument expression: factors of pi or numeric
// literals joined by * and /, with an optional leading minus.
func evalArg(expr string) (float64, error) {
	s := strings.ReplaceAll(expr, " ", "")
	if s == "" {
		return 0, errors.New("empty gate argument")
	}
	sign := 1.0
	for strings.HasPrefix(s, "-") {
		sign = -sign
		s = s[1:]
	}

	value := 0.0
	op := byte('*')
	first := true
	for s != "" {
		idx := strings.IndexAny(s, "*/")
		tok := s
		var next byte
		if idx >= 0 {
			tok, next = s[:idx], s[idx]
			s = s[idx+1:]
			if s == "" {
				return 0, errors.Errorf("trailing operator in %q", expr)
			}
		} else {
			s = ""
		}

		f, err := evalFactor(tok)
		if err != nil {
			return 0, err
		}
		switch {
		case first:
			value = f
			first = false
		case op == '*':
			value *= f
		default:
			if f == 0 {
				return 0, errors.Errorf("division by zero in %q", expr)
			}
			value /= f
		}
		op = next
	}
	return sign * value, nil
}

func evalFactor(tok string) (float64, error) {
	if tok == "pi" {
		return math.Pi, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Errorf("bad gate argument factor %q", tok)
	}
	return f, nil
}
