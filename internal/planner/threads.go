package planner

import (
	"strings"

	"github.com/myrjola/lightfingers/internal/models"
)

// planThreads groups already-sequenced clues into named narrative threads.
// Threads are observational: they read the clue sequence and never change
// what any clue eliminates. A thread only exists once at least two clues
// qualify for it.
func planThreads(clues []models.PlannedClue) []models.NarrativeThread {
	var (
		timeline     []int
		alibiNetwork []int
		itemTrail    []int
	)
	for _, clue := range clues {
		switch clue.Elimination.Category {
		case models.CategoryTime:
			timeline = append(timeline, clue.Position)
		case models.CategorySuspect:
			if strings.HasPrefix(clue.Elimination.Type, "alibi") {
				alibiNetwork = append(alibiNetwork, clue.Position)
			}
		case models.CategoryItem:
			itemTrail = append(itemTrail, clue.Position)
		case models.CategoryLocation:
			// Location clues carry no shared thread of their own.
		}
	}

	var threads []models.NarrativeThread
	if len(timeline) >= 2 {
		threads = append(threads, models.NarrativeThread{
			ID:            "true-timeline",
			Theme:         "the true timeline of the night",
			CluePositions: timeline,
		})
	}
	if len(alibiNetwork) >= 2 {
		threads = append(threads, models.NarrativeThread{
			ID:            "alibi-network",
			Theme:         "who vouches for whom",
			CluePositions: alibiNetwork,
		})
	}
	if len(itemTrail) >= 2 {
		threads = append(threads, models.NarrativeThread{
			ID:            "item-trail",
			Theme:         "the trail of what was taken",
			CluePositions: itemTrail,
		})
	}
	return threads
}

// stampThreadIDs copies each clue with the id of the thread it belongs to.
// Runs once while the plan is being assembled, before the clue sequence
// freezes.
func stampThreadIDs(clues []models.PlannedClue, threads []models.NarrativeThread) []models.PlannedClue {
	threadByPosition := map[int]string{}
	for _, thread := range threads {
		for _, position := range thread.CluePositions {
			threadByPosition[position] = thread.ID
		}
	}

	stamped := make([]models.PlannedClue, len(clues))
	for i, clue := range clues {
		clue.Narrative.ThreadID = threadByPosition[clue.Position]
		stamped[i] = clue
	}
	return stamped
}
