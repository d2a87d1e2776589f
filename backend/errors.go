package backend

import (
	"fmt"

	"github.com/pkg/errors"
)

// Failure kinds shared by all adapters. None of them are recovered inside the
// adapters; they propagate so a benchmark run fails fast and visibly.
var (
	// ErrCircuitParse covers malformed or unsupported QASM at construction.
	ErrCircuitParse = errors.New("circuit parse failure")
	// ErrExecution covers failures while simulating or sampling.
	ErrExecution = errors.New("backend execution failure")
	// ErrNormalization covers result projection failures, such as a
	// probability normalization with no concrete shot count.
	ErrNormalization = errors.New("result normalization failure")
	// ErrNotExecuted is returned by Result before a successful Execute.
	ErrNotExecuted = errors.New("execute has not been called")
)

// Wrap tags a backend-native cause with one of the failure kinds above. The
// kind is matchable with errors.Is; the cause is kept in the message.
func Wrap(kind, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %v", kind, cause)
}
