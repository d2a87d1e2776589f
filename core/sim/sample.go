package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// bitstring renders a basis-state index in the engines' native key format:
// zero-padded binary, qubit 0 rightmost.
func bitstring(index, width int) string {
	return fmt.Sprintf("%0*b", width, index)
}

// DefaultShots is the repetition count sampling engines fall back to when a
// caller does not supply one.
const DefaultShots = 1024

// SampleIndices draws n basis-state indices from the probability weights by
// inverse-CDF sampling. Weights need not be normalized.
func SampleIndices(probs []float64, n int, rng *rand.Rand) []int {
	cdf := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cdf[i] = total
	}
	out := make([]int, n)
	if total == 0 {
		return out
	}
	for i := range out {
		r := rng.Float64() * total
		out[i] = sort.SearchFloat64s(cdf, r)
		if out[i] >= len(probs) {
			out[i] = len(probs) - 1
		}
	}
	return out
}
