package rng_test

import (
	"testing"

	"github.com/myrjola/lightfingers/internal/rng"
	"github.com/stretchr/testify/require"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for range 1000 {
		require.InDelta(t, a.Next(), b.Next(), 0)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := rng.New(1)
	b := rng.New(2)
	diverged := false
	for range 10 {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	require.True(t, diverged)
}

func TestNextWithinUnitInterval(t *testing.T) {
	r := rng.New(7)
	for range 10000 {
		v := r.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{name: "single value", min: 3, max: 3},
		{name: "small range", min: 1, max: 2},
		{name: "negative bounds", min: -5, max: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rng.New(42)
			for range 1000 {
				v := r.IntBetween(tt.min, tt.max)
				require.GreaterOrEqual(t, v, tt.min)
				require.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestIntBetweenCoversBounds(t *testing.T) {
	r := rng.New(42)
	seen := map[int]bool{}
	for range 1000 {
		seen[r.IntBetween(1, 4)] = true
	}
	require.Len(t, seen, 4)
}

func TestPickEmptyList(t *testing.T) {
	r := rng.New(42)
	_, err := rng.Pick(r, []string{})
	require.ErrorIs(t, err, rng.ErrEmptyList)
}

func TestPickUniform(t *testing.T) {
	r := rng.New(42)
	list := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for range 300 {
		v, err := rng.Pick(r, list)
		require.NoError(t, err)
		seen[v] = true
	}
	require.Len(t, seen, 3)
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	r := rng.New(42)
	original := []int{1, 2, 3, 4, 5}
	shuffled := rng.Shuffle(r, original)
	require.Equal(t, []int{1, 2, 3, 4, 5}, original)
	require.ElementsMatch(t, original, shuffled)
}

func TestPickMultiple(t *testing.T) {
	r := rng.New(42)
	list := []int{1, 2, 3, 4, 5}

	picked := rng.PickMultiple(r, list, 3)
	require.Len(t, picked, 3)
	require.Subset(t, list, picked)

	// Clamps instead of padding.
	require.Len(t, rng.PickMultiple(r, list, 10), 5)
	require.Empty(t, rng.PickMultiple(r, list, 0))
}

func TestPickWeighted(t *testing.T) {
	t.Run("respects heavy weight", func(t *testing.T) {
		r := rng.New(42)
		items := []string{"rare", "common"}
		counts := map[string]int{}
		for range 1000 {
			v, err := rng.PickWeighted(r, items, []float64{1, 99})
			require.NoError(t, err)
			counts[v]++
		}
		require.Greater(t, counts["common"], counts["rare"])
	})

	t.Run("all-zero weights fall back to uniform", func(t *testing.T) {
		r := rng.New(42)
		v, err := rng.PickWeighted(r, []string{"a", "b"}, []float64{0, 0})
		require.NoError(t, err)
		require.Contains(t, []string{"a", "b"}, v)
	})

	t.Run("mismatched lengths error", func(t *testing.T) {
		r := rng.New(42)
		_, err := rng.PickWeighted(r, []string{"a", "b"}, []float64{1})
		require.Error(t, err)
	})

	t.Run("empty items error", func(t *testing.T) {
		r := rng.New(42)
		_, err := rng.PickWeighted(r, []string{}, []float64{})
		require.ErrorIs(t, err, rng.ErrEmptyList)
	})
}
