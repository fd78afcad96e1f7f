package planner

import (
	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
)

// A plan needs at least this many clues before red herrings make sense.
const minCluesForHerrings = 4

var herringTypes = []string{"planted_evidence", "overheard_lie", "suspicious_behaviour"}

// planRedHerrings points suspicion at elements the player can already rule
// out. A herring's target must have been eliminated by a clue at or before
// the herring's introduction, so the misdirection never breaks solvability.
func planRedHerrings(
	r *rng.Rand,
	clues []models.PlannedClue,
	difficulty catalog.Difficulty,
	solution models.Solution,
) ([]models.RedHerring, error) {
	settings := difficulty.RedHerrings
	if len(clues) < minCluesForHerrings || settings.Count == 0 {
		return nil, nil
	}

	var act2Positions, act3Positions []int
	for _, clue := range clues {
		switch clue.Act {
		case 2:
			act2Positions = append(act2Positions, clue.Position)
		case 3:
			act3Positions = append(act3Positions, clue.Position)
		}
	}
	if len(act2Positions) == 0 {
		return nil, nil
	}

	count := settings.Count
	if count > len(act2Positions) {
		count = len(act2Positions)
	}

	var herrings []models.RedHerring
	for range count {
		introducedIn, err := rng.Pick(r, act2Positions)
		if err != nil {
			return nil, errors.Wrap(err, "pick herring introduction")
		}

		category, elementID, ok, err := pickEliminatedTarget(r, clues, introducedIn, solution)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Nothing eliminated yet at this point in the sequence.
			continue
		}

		herringType, err := rng.Pick(r, herringTypes)
		if err != nil {
			return nil, errors.Wrap(err, "pick herring type")
		}

		herring := models.RedHerring{
			Type:             herringType,
			Category:         category,
			ElementID:        elementID,
			IntroducedInClue: introducedIn,
		}
		if settings.MustResolve && len(act3Positions) > 0 {
			resolvedIn, pickErr := rng.Pick(r, act3Positions)
			if pickErr != nil {
				return nil, errors.Wrap(pickErr, "pick herring resolution")
			}
			herring.ResolvedInClue = resolvedIn
		}
		herrings = append(herrings, herring)
	}
	return herrings, nil
}

// pickEliminatedTarget chooses a category and then an element that some clue
// at or before the given position has already eliminated. The solution can
// never come back from this because no clue ever eliminates it.
func pickEliminatedTarget(
	r *rng.Rand,
	clues []models.PlannedClue,
	byPosition int,
	solution models.Solution,
) (models.Category, string, bool, error) {
	eliminated := map[models.Category][]string{}
	for _, clue := range clues {
		if clue.Position > byPosition {
			continue
		}
		category := clue.Elimination.Category
		for _, id := range clue.Elimination.ElementIDs {
			if id == solution.IDFor(category) {
				// Guarded by the validator; skip rather than propagate.
				continue
			}
			eliminated[category] = append(eliminated[category], id)
		}
	}

	var categories []models.Category
	for _, category := range models.Categories {
		if len(eliminated[category]) > 0 {
			categories = append(categories, category)
		}
	}
	if len(categories) == 0 {
		return "", "", false, nil
	}

	category, err := rng.Pick(r, categories)
	if err != nil {
		return "", "", false, errors.Wrap(err, "pick herring category")
	}
	elementID, err := rng.Pick(r, eliminated[category])
	if err != nil {
		return "", "", false, errors.Wrap(err, "pick herring target")
	}
	return category, elementID, true, nil
}
