package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/defs"
)

func TestChooseWeightedConvergesToWeights(t *testing.T) {
	rng := NewPRNGService(42)
	table := []defs.WeightEntry{
		{Label: "common", Weight: 60},
		{Label: "special", Weight: 25},
		{Label: "rare", Weight: 12},
		{Label: "legendary", Weight: 2.5},
		{Label: "mythic", Weight: 0.5},
	}

	const draws = 200000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		counts[rng.ChooseWeighted(table)]++
	}

	for _, entry := range table {
		expected := entry.Weight / 100
		actual := float64(counts[entry.Label]) / draws
		assert.InDelta(t, expected, actual, 0.01, "bucket %s", entry.Label)
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	rng := NewPRNGService(1)

	assert.Equal(t, "", rng.ChooseWeighted(nil))

	// A zero-sum table falls back to the first entry instead of looping.
	zero := []defs.WeightEntry{{Label: "a", Weight: 0}, {Label: "b", Weight: 0}}
	assert.Equal(t, "a", rng.ChooseWeighted(zero))

	only := []defs.WeightEntry{{Label: "solo", Weight: 5}}
	for i := 0; i < 10; i++ {
		assert.Equal(t, "solo", rng.ChooseWeighted(only))
	}
}

func TestChooseWeightedNeverPicksZeroWeightBucket(t *testing.T) {
	rng := NewPRNGService(7)
	table := []defs.WeightEntry{
		{Label: "never", Weight: 0},
		{Label: "always", Weight: 10},
	}
	for i := 0; i < 1000; i++ {
		require.Equal(t, "always", rng.ChooseWeighted(table))
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	rng := NewPRNGService(99)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := make([]int, len(values))
	copy(shuffled, values)

	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assert.ElementsMatch(t, values, shuffled)
}

func TestSeededStreamsAreReproducible(t *testing.T) {
	a := NewPRNGService(123)
	b := NewPRNGService(123)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
