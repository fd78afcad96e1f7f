package planner

import (
	"math"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
)

// A plan needs at least this many clues before dramatic events fit between them.
const minCluesForEvents = 3

const maxInvolvedSuspects = 2

var eventTypesByAct = map[int][]string{
	1: {"power_flicker", "anonymous_note", "uninvited_guest"},
	2: {"public_accusation", "second_theft_attempt", "staged_distraction"},
	3: {"attempted_departure", "hidden_passage_found", "confession_interrupted"},
}

// planDramaticEvents spreads interruptions evenly across the clue sequence.
// Involved suspects are drawn from non-solution suspects only, so an event
// never implies the truth.
func planDramaticEvents(
	r *rng.Rand,
	clues []models.PlannedClue,
	difficulty catalog.Difficulty,
	solution models.Solution,
	c *catalog.Catalog,
) ([]models.PlannedDramaticEvent, error) {
	count := difficulty.DramaticEventCount
	total := len(clues)
	if total < minCluesForEvents || count == 0 {
		return nil, nil
	}

	var nonSolutionSuspects []string
	for _, id := range c.ElementIDs(models.CategorySuspect) {
		if id != solution.SuspectID {
			nonSolutionSuspects = append(nonSolutionSuspects, id)
		}
	}

	var events []models.PlannedDramaticEvent
	for i := 1; i <= count; i++ {
		afterClue := int(math.Round(float64(total) / float64(count+1) * float64(i)))
		if afterClue < 2 {
			afterClue = 2
		}
		if afterClue > total-1 {
			afterClue = total - 1
		}

		act := clues[afterClue-1].Act
		eventType, err := rng.Pick(r, eventTypesByAct[act])
		if err != nil {
			return nil, errors.Wrap(err, "pick event type")
		}
		purpose, err := purposeForAct(r, act)
		if err != nil {
			return nil, err
		}

		involvedCount := r.IntBetween(0, maxInvolvedSuspects)
		involved := rng.PickMultiple(r, nonSolutionSuspects, involvedCount)

		events = append(events, models.PlannedDramaticEvent{
			AfterClue:          afterClue,
			EventType:          eventType,
			InvolvedSuspectIDs: involved,
			Purpose:            purpose,
		})
	}
	return events, nil
}

func purposeForAct(r *rng.Rand, act int) (string, error) {
	switch act {
	case 1:
		return "atmosphere", nil
	case 2:
		purpose, err := rng.Pick(r, []string{"tension", "misdirection"})
		if err != nil {
			return "", errors.Wrap(err, "pick event purpose")
		}
		return purpose, nil
	default:
		return "revelation", nil
	}
}
