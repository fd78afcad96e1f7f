package planner_test

import (
	"io"
	"slices"
	"testing"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/myrjola/lightfingers/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func newPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return planner.New(c, testhelpers.NewLogger(io.Discard))
}

func seedPtr(seed int64) *int64 {
	return &seed
}

func TestGenerateDeterminism(t *testing.T) {
	p := newPlanner(t)

	for _, difficulty := range []string{"easy", "medium", "hard", "expert"} {
		t.Run(difficulty, func(t *testing.T) {
			req := models.Request{Difficulty: difficulty, Seed: seedPtr(42)}

			first, err := p.Generate(req)
			require.NoError(t, err)
			second, err := p.Generate(req)
			require.NoError(t, err)

			// Identity and wall-clock fields aside, the two plans are
			// bit-for-bit identical.
			require.Equal(t, first.Solution, second.Solution)
			require.Equal(t, first.ThemeID, second.ThemeID)
			require.Equal(t, first.EliminationPlans, second.EliminationPlans)
			require.Equal(t, first.Arc, second.Arc)
			require.Equal(t, first.Clues, second.Clues)
			require.Equal(t, first.Threads, second.Threads)
			require.Equal(t, first.RedHerrings, second.RedHerrings)
			require.Equal(t, first.DramaticEvents, second.DramaticEvents)
			require.Equal(t, first.Validation, second.Validation)
		})
	}
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	p := newPlanner(t)

	first, err := p.Generate(models.Request{Difficulty: "medium", Seed: seedPtr(1)})
	require.NoError(t, err)
	second, err := p.Generate(models.Request{Difficulty: "medium", Seed: seedPtr(2)})
	require.NoError(t, err)

	require.NotEqual(t, first.Solution, second.Solution)
}

func TestGenerateExpertSeed42(t *testing.T) {
	p := newPlanner(t)

	plan, err := p.Generate(models.Request{Difficulty: "expert", Seed: seedPtr(42)})
	require.NoError(t, err)

	require.Len(t, plan.Clues, 7)
	for i, clue := range plan.Clues {
		require.Equal(t, i+1, clue.Position)
	}

	// Act ranges tile [1, 7].
	acts := plan.Arc.Acts
	require.Equal(t, 1, acts[0].FirstPosition)
	require.Equal(t, acts[0].LastPosition+1, acts[1].FirstPosition)
	require.Equal(t, acts[1].LastPosition+1, acts[2].FirstPosition)
	require.Equal(t, 7, acts[2].LastPosition)

	require.True(t, plan.Validation.Valid)
	require.Empty(t, plan.Validation.Errors)
}

func TestGenerateNeverEliminatesSolution(t *testing.T) {
	p := newPlanner(t)

	for seed := int64(0); seed < 50; seed++ {
		for _, difficulty := range []string{"easy", "expert"} {
			plan, err := p.Generate(models.Request{Difficulty: difficulty, Seed: seedPtr(seed)})
			require.NoError(t, err)

			for _, clue := range plan.Clues {
				solutionID := plan.Solution.IDFor(clue.Elimination.Category)
				require.NotContains(t, clue.Elimination.ElementIDs, solutionID,
					"seed %d difficulty %s clue %d", seed, difficulty, clue.Position)
			}
		}
	}
}

func TestGenerateHonorsExclusions(t *testing.T) {
	p := newPlanner(t)

	for seed := int64(0); seed < 100; seed++ {
		plan, err := p.Generate(models.Request{
			Difficulty:      "medium",
			Seed:            seedPtr(seed),
			ExcludeSuspects: []string{"S01", "S02"},
		})
		require.NoError(t, err)
		require.NotEqual(t, "S01", plan.Solution.SuspectID)
		require.NotEqual(t, "S02", plan.Solution.SuspectID)
	}
}

func TestGenerateEmptyCandidatePool(t *testing.T) {
	p := newPlanner(t)

	c, err := catalog.Load()
	require.NoError(t, err)
	allLocations := c.ElementIDs(models.CategoryLocation)

	_, err = p.Generate(models.Request{
		Difficulty:       "easy",
		Seed:             seedPtr(42),
		ExcludeLocations: allLocations,
	})
	require.ErrorIs(t, err, planner.ErrEmptyCandidatePool)
}

func TestGenerateUnknownDifficulty(t *testing.T) {
	p := newPlanner(t)

	_, err := p.Generate(models.Request{Difficulty: "nightmare", Seed: seedPtr(42)})
	require.ErrorIs(t, err, catalog.ErrUnknownDifficulty)
}

func TestGenerateUnknownThemeDegradesToRandom(t *testing.T) {
	p := newPlanner(t)

	plan, err := p.Generate(models.Request{Difficulty: "easy", Seed: seedPtr(42), ThemeID: "no-such-theme"})
	require.NoError(t, err)
	require.NotEmpty(t, plan.ThemeID)
	require.NotEqual(t, "no-such-theme", plan.ThemeID)
}

func TestGenerateRequestedTheme(t *testing.T) {
	p := newPlanner(t)

	plan, err := p.Generate(models.Request{Difficulty: "easy", Seed: seedPtr(42), ThemeID: "storm-weekend"})
	require.NoError(t, err)
	require.Equal(t, "storm-weekend", plan.ThemeID)
}

func TestGeneratePartitionCompleteness(t *testing.T) {
	p := newPlanner(t)
	c, err := catalog.Load()
	require.NoError(t, err)

	for seed := int64(0); seed < 25; seed++ {
		plan, err := p.Generate(models.Request{Difficulty: "hard", Seed: seedPtr(seed)})
		require.NoError(t, err)

		for _, category := range models.Categories {
			var expected []string
			for _, id := range c.ElementIDs(category) {
				if id != plan.Solution.IDFor(category) {
					expected = append(expected, id)
				}
			}

			var covered []string
			for _, group := range plan.EliminationPlans[category].Groups {
				covered = append(covered, group.ElementIDs...)
			}

			slices.Sort(expected)
			slices.Sort(covered)
			require.Equal(t, expected, covered, "seed %d category %s", seed, category)
		}
	}
}

func TestGenerateCluePositionsContiguous(t *testing.T) {
	p := newPlanner(t)

	for seed := int64(0); seed < 25; seed++ {
		for _, difficulty := range []string{"easy", "medium", "hard", "expert"} {
			plan, err := p.Generate(models.Request{Difficulty: difficulty, Seed: seedPtr(seed)})
			require.NoError(t, err)

			positions := make([]int, len(plan.Clues))
			for i, clue := range plan.Clues {
				positions[i] = clue.Position
			}
			for i, position := range positions {
				require.Equal(t, i+1, position, "seed %d difficulty %s", seed, difficulty)
			}
		}
	}
}

func TestGenerateRedHerringSoundness(t *testing.T) {
	p := newPlanner(t)

	for seed := int64(0); seed < 50; seed++ {
		plan, err := p.Generate(models.Request{Difficulty: "expert", Seed: seedPtr(seed)})
		require.NoError(t, err)

		for _, herring := range plan.RedHerrings {
			require.NotEqual(t, plan.Solution.IDFor(herring.Category), herring.ElementID,
				"seed %d: herring targets the solution", seed)

			eliminatedBefore := false
			for _, clue := range plan.Clues {
				if clue.Position > herring.IntroducedInClue {
					continue
				}
				if clue.Elimination.Category != herring.Category {
					continue
				}
				if slices.Contains(clue.Elimination.ElementIDs, herring.ElementID) {
					eliminatedBefore = true
					break
				}
			}
			require.True(t, eliminatedBefore,
				"seed %d: herring target %s not eliminated by clue %d",
				seed, herring.ElementID, herring.IntroducedInClue)

			if herring.ResolvedInClue != 0 {
				require.Greater(t, herring.ResolvedInClue, herring.IntroducedInClue)
			}
		}
	}
}

func TestGenerateDramaticEventBounds(t *testing.T) {
	p := newPlanner(t)

	for seed := int64(0); seed < 25; seed++ {
		plan, err := p.Generate(models.Request{Difficulty: "expert", Seed: seedPtr(seed)})
		require.NoError(t, err)

		total := len(plan.Clues)
		for _, event := range plan.DramaticEvents {
			require.GreaterOrEqual(t, event.AfterClue, 2)
			require.LessOrEqual(t, event.AfterClue, total-1)
			require.NotContains(t, event.InvolvedSuspectIDs, plan.Solution.SuspectID)
			require.NotEmpty(t, event.EventType)
			require.NotEmpty(t, event.Purpose)
		}
	}
}
