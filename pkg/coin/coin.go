// Package coin provides the default deterministic CoinSource, a thin
// wrapper around math/rand/v2's PCG generator.
package coin

import (
	"math/rand/v2"

	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// Source draws equally likely forward/backward outcomes from a seeded PCG
// stream. It is not safe for concurrent use; the pipeline threads one
// source sequentially, which is what makes runs reproducible.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic source from a seed. Two sources built from
// the same seed produce identical outcome streams.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRandom creates a source seeded from the process-global generator.
// Useful when reproducibility is not required.
func NewRandom() *Source {
	return &Source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Flip consumes one draw and returns forward or backward with equal
// probability.
func (s *Source) Flip() domain.Outcome {
	if s.r.IntN(2) == 1 {
		return domain.OutcomeForward
	}
	return domain.OutcomeBackward
}
