// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-wave-defense/internal/defs"
)

// PRNGService wraps Go's random generator so the whole simulation can run
// on one predictable (seeded) stream.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. Seed 0 uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted draws one label from a weight table by cumulative-weight
// sampling. An empty table returns the empty string.
func (s *PRNGService) ChooseWeighted(entries []defs.WeightEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0.0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Label
	}

	r := s.Float64() * totalWeight
	upto := 0.0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Label
		}
		upto += entry.Weight
	}

	// Floating-point edge; fall through to the last bucket.
	return entries[len(entries)-1].Label
}

// Shuffle performs a uniform Fisher-Yates shuffle over n elements.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
