package catalog_test

import (
	"testing"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, category := range models.Categories {
		elements := c.Elements(category)
		require.NotEmpty(t, elements, "category %s", category)

		seen := map[string]bool{}
		for _, element := range elements {
			require.NotEmpty(t, element.ID)
			require.NotEmpty(t, element.Name)
			require.False(t, seen[element.ID], "duplicate id %s", element.ID)
			seen[element.ID] = true
		}
	}

	require.NotEmpty(t, c.Themes())
}

func TestDifficulties(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, name := range []string{"easy", "medium", "hard", "expert"} {
		t.Run(name, func(t *testing.T) {
			difficulty, err := c.Difficulty(name)
			require.NoError(t, err)

			distribution := difficulty.ActDistribution
			require.Equal(t, difficulty.ClueCount, distribution.Act1+distribution.Act2+distribution.Act3)
			require.GreaterOrEqual(t, difficulty.MinGroupSize, 1)
			require.GreaterOrEqual(t, difficulty.MaxGroupSize, difficulty.MinGroupSize)
		})
	}

	expert, err := c.Difficulty("expert")
	require.NoError(t, err)
	require.Equal(t, 7, expert.ClueCount)

	_, err = c.Difficulty("nightmare")
	require.ErrorIs(t, err, catalog.ErrUnknownDifficulty)
}

func TestMechanisms(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, category := range models.Categories {
		mechanisms := c.MechanismsFor(category)
		require.NotEmpty(t, mechanisms, "category %s", category)
		for _, mechanism := range mechanisms {
			require.Equal(t, category, mechanism.Category)
			require.NotEmpty(t, mechanism.PreferredSpeaker)

			found, ok := c.Mechanism(mechanism.ID)
			require.True(t, ok)
			require.Equal(t, mechanism, found)
		}
	}
}

func TestSizeClassFor(t *testing.T) {
	require.Equal(t, catalog.SizeSingle, catalog.SizeClassFor(1))
	require.Equal(t, catalog.SizeSmall, catalog.SizeClassFor(2))
	require.Equal(t, catalog.SizeMedium, catalog.SizeClassFor(3))
	require.Equal(t, catalog.SizeLarge, catalog.SizeClassFor(4))
	require.Equal(t, catalog.SizeLarge, catalog.SizeClassFor(9))
}

func TestThemeLookup(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	theme, ok := c.Theme("gala-night")
	require.True(t, ok)
	require.NotEmpty(t, theme.LockedLocations)

	_, ok = c.Theme("does-not-exist")
	require.False(t, ok)
}
