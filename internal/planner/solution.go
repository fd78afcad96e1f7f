package planner

import (
	"log/slog"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
)

// ErrEmptyCandidatePool signals that an exclusion list removed every element
// of a category, leaving nothing to pick a solution from.
var ErrEmptyCandidatePool = errors.NewSentinel("no candidates remain in category")

// selectSolution picks the hidden truth, one element per category, honoring
// the request's exclusion lists. Exclusions constrain only this pick; the
// excluded elements still get eliminated by clues later.
func selectSolution(r *rng.Rand, c *catalog.Catalog, req models.Request) (models.Solution, error) {
	picked := map[models.Category]string{}
	for _, category := range models.Categories {
		excluded := map[string]bool{}
		for _, id := range req.ExclusionsFor(category) {
			excluded[id] = true
		}

		var candidates []string
		for _, id := range c.ElementIDs(category) {
			if !excluded[id] {
				candidates = append(candidates, id)
			}
		}
		if len(candidates) == 0 {
			return models.Solution{}, errors.Wrap(ErrEmptyCandidatePool, "select solution",
				slog.String("category", string(category)))
		}

		id, err := rng.Pick(r, candidates)
		if err != nil {
			return models.Solution{}, errors.Wrap(err, "pick solution element",
				slog.String("category", string(category)))
		}
		picked[category] = id
	}

	return models.Solution{
		SuspectID:  picked[models.CategorySuspect],
		ItemID:     picked[models.CategoryItem],
		LocationID: picked[models.CategoryLocation],
		TimeID:     picked[models.CategoryTime],
	}, nil
}
