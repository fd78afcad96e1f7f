package planner

import (
	"testing"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/stretchr/testify/require"
)

func clueFor(position int, category models.Category, mechanismType string) models.PlannedClue {
	return models.PlannedClue{
		Position: position,
		Elimination: models.EliminationRef{
			Category: category,
			Type:     mechanismType,
		},
	}
}

func TestPlanThreads(t *testing.T) {
	clues := []models.PlannedClue{
		clueFor(1, models.CategoryTime, catalog.MechanismWitnessPresent),
		clueFor(2, models.CategorySuspect, catalog.MechanismAlibiWitnessed),
		clueFor(3, models.CategoryItem, catalog.MechanismItemSecured),
		clueFor(4, models.CategoryTime, catalog.MechanismSecuritySweep),
		clueFor(5, models.CategorySuspect, catalog.MechanismAlibiDocumented),
		clueFor(6, models.CategoryLocation, catalog.MechanismLockedArea),
	}

	threads := planThreads(clues)
	byID := map[string]models.NarrativeThread{}
	for _, thread := range threads {
		byID[thread.ID] = thread
	}

	require.Contains(t, byID, "true-timeline")
	require.Equal(t, []int{1, 4}, byID["true-timeline"].CluePositions)

	require.Contains(t, byID, "alibi-network")
	require.Equal(t, []int{2, 5}, byID["alibi-network"].CluePositions)

	// Only one item clue: no item trail.
	require.NotContains(t, byID, "item-trail")
}

func TestPlanThreadsNeedsTwoQualifyingClues(t *testing.T) {
	clues := []models.PlannedClue{
		clueFor(1, models.CategoryTime, catalog.MechanismWitnessPresent),
		// A non-alibi suspect clue never joins the alibi network.
		clueFor(2, models.CategorySuspect, catalog.MechanismPhysicalMismatch),
		clueFor(3, models.CategorySuspect, catalog.MechanismAlibiWitnessed),
	}
	require.Empty(t, planThreads(clues))
}

func TestStampThreadIDs(t *testing.T) {
	clues := []models.PlannedClue{
		clueFor(1, models.CategoryTime, catalog.MechanismWitnessPresent),
		clueFor(2, models.CategoryLocation, catalog.MechanismLockedArea),
		clueFor(3, models.CategoryTime, catalog.MechanismAlarmLog),
	}
	threads := planThreads(clues)
	require.Len(t, threads, 1)

	stamped := stampThreadIDs(clues, threads)
	require.Equal(t, "true-timeline", stamped[0].Narrative.ThreadID)
	require.Empty(t, stamped[1].Narrative.ThreadID)
	require.Equal(t, "true-timeline", stamped[2].Narrative.ThreadID)

	// The input slice is left alone.
	require.Empty(t, clues[0].Narrative.ThreadID)
}
