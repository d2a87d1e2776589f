// Package qasm holds the text-level helpers for the QASM subset the harness
// accepts: register-width extraction, statement stripping for engines whose
// dialects lack a feature, and the division rewrite.
package qasm

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var (
	qregDecl    = regexp.MustCompile(`qreg\s+\w+\[(\d+)\]`)
	measureStmt = regexp.MustCompile(`(?m)^\s*measure\s+[^;]+;[^\S\n]*\n?`)
	cregStmt    = regexp.MustCompile(`(?m)^\s*creg\s+[^;]+;[^\S\n]*\n?`)
	divisionArg = regexp.MustCompile(`/(\d+)`)
)

// QubitCount reads the declared register width out of a QASM source string.
// The source must contain exactly one qreg declaration.
func QubitCount(src string) (int, error) {
	matches := qregDecl.FindAllStringSubmatch(src, 2)
	if len(matches) == 0 {
		return 0, errors.New("no qreg declaration in circuit")
	}
	if len(matches) > 1 {
		return 0, errors.New("multiple qreg declarations in circuit")
	}
	n, err := strconv.Atoi(matches[0][1])
	if err != nil {
		return 0, errors.Wrap(err, "parse qreg width")
	}
	return n, nil
}

// DepthHint reads the single digit that follows the register declaration's
// opening bracket. Known-fragile: the digit is the first digit of the register
// width, so the hint is wrong whenever the true depth has more than one digit
// or differs from that leading digit. Callers that know the depth should pass
// it explicitly instead.
func DepthHint(src string) (int, error) {
	loc := qregDecl.FindStringSubmatchIndex(src)
	if loc == nil {
		return 0, errors.New("no qreg declaration in circuit")
	}
	ch := src[loc[2]]
	if ch < '0' || ch > '9' {
		return 0, errors.Errorf("depth hint: %q is not a digit", ch)
	}
	return int(ch - '0'), nil
}

// StripMeasurements removes all measure statements from the source.
func StripMeasurements(src string) string {
	return measureStmt.ReplaceAllString(src, "")
}

// StripClassical removes all creg declarations from the source.
func StripClassical(src string) string {
	return cregStmt.ReplaceAllString(src, "")
}

// InlineDivisions rewrites every integer division in gate arguments into a
// multiplication by the reciprocal, for engines whose importer has no
// division operator.
func InlineDivisions(src string) string {
	return divisionArg.ReplaceAllStringFunc(src, func(m string) string {
		den, err := strconv.Atoi(m[1:])
		if err != nil || den == 0 {
			return m
		}
		return "*" + strconv.FormatFloat(1/float64(den), 'g', -1, 64)
	})
}
