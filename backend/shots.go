package backend

import (
	"strconv"

	"github.com/pkg/errors"
)

// Shots selects between sampled execution with a fixed repetition count and
// an exact outcome distribution. The zero value requests the exact
// distribution; what "exact" means is backend-specific and documented per
// adapter.
type Shots struct {
	n   int
	set bool
}

// Count requests sampled execution with a positive number of shots.
func Count(n int) (Shots, error) {
	if n <= 0 {
		return Shots{}, errors.Errorf("shot count must be positive, got %d", n)
	}
	return Shots{n: n, set: true}, nil
}

// MustCount is Count for known-good literals; it panics on invalid input.
func MustCount(n int) Shots {
	s, err := Count(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Distribution requests the exact outcome distribution instead of sampling.
func Distribution() Shots { return Shots{} }

// Value returns the shot count and whether one was set.
func (s Shots) Value() (int, bool) { return s.n, s.set }

func (s Shots) String() string {
	if !s.set {
		return "exact"
	}
	return strconv.Itoa(s.n)
}
