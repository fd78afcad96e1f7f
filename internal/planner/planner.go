// Package planner generates theft-mystery campaign plans: a hidden solution
// plus a clue sequence that eliminates every other candidate without ever
// eliminating the truth. Generation is deterministic per seed: every random
// draw routes through one rng.Rand instance in a fixed order.
package planner

import (
	"log/slog"
	"time"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/rng"
	"github.com/oklog/ulid/v2"
)

// ErrPlanInvalid signals that the validator found a hard error in a freshly
// generated plan. That is a planner bug: such plans are never returned.
var ErrPlanInvalid = errors.NewSentinel("generated plan failed validation")

type Planner struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func New(c *catalog.Catalog, logger *slog.Logger) *Planner {
	return &Planner{
		catalog: c,
		logger:  logger.With("source", "Planner"),
	}
}

// Generate produces a complete campaign plan for the request, all or
// nothing. Hard failures (unknown difficulty, emptied candidate pool,
// partition or solvability violations) return an error and no plan; soft
// shortfalls surface as warnings on the plan's validation result.
func (p *Planner) Generate(req models.Request) (*models.CampaignPlan, error) {
	difficulty, err := p.catalog.Difficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	r := rng.New(seed)

	theme, err := p.pickTheme(r, req.ThemeID)
	if err != nil {
		return nil, err
	}

	solution, err := selectSolution(r, p.catalog, req)
	if err != nil {
		return nil, err
	}

	// Category order is fixed so the RNG draw order is reproducible.
	plans := make([]models.CategoryEliminationPlan, 0, len(models.Categories))
	for _, category := range models.Categories {
		var elementIDs []string
		for _, id := range p.catalog.ElementIDs(category) {
			if id != solution.IDFor(category) {
				elementIDs = append(elementIDs, id)
			}
		}

		plan, planErr := planCategoryEliminations(r, category, elementIDs, difficulty, solution, p.catalog, theme)
		if planErr != nil {
			return nil, planErr
		}
		if partitionErr := checkPartition(category, elementIDs, plan.Groups); partitionErr != nil {
			return nil, errors.Wrap(partitionErr, "elimination groups do not partition category",
				slog.String("category", string(category)))
		}
		plans = append(plans, plan)
	}

	arc := buildArc(difficulty)

	clues, err := sequenceClues(r, plans, arc, difficulty, p.catalog)
	if err != nil {
		return nil, err
	}

	threads := planThreads(clues)
	clues = stampThreadIDs(clues, threads)

	herrings, err := planRedHerrings(r, clues, difficulty, solution)
	if err != nil {
		return nil, err
	}
	events, err := planDramaticEvents(r, clues, difficulty, solution, p.catalog)
	if err != nil {
		return nil, err
	}

	validation := Validate(solution, plans, clues, difficulty.ClueCount)
	if !validation.Valid {
		return nil, errors.Wrap(ErrPlanInvalid, "validate plan",
			slog.Int64("seed", seed),
			slog.Any("errors", validation.Errors))
	}
	for _, warning := range validation.Warnings {
		p.logger.Debug("plan warning", slog.String("code", warning.Code), slog.String("message", warning.Message))
	}

	planByCategory := map[models.Category]models.CategoryEliminationPlan{}
	for _, plan := range plans {
		planByCategory[plan.Category] = plan
	}

	return &models.CampaignPlan{
		ID:               ulid.Make().String(),
		Seed:             seed,
		ThemeID:          theme.ID,
		Difficulty:       difficulty.Name,
		Solution:         solution,
		EliminationPlans: planByCategory,
		Arc:              arc,
		Clues:            clues,
		Threads:          threads,
		RedHerrings:      herrings,
		DramaticEvents:   events,
		Validation:       validation,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// pickTheme honors a requested theme id and degrades to a random pick when
// the id is unknown or absent. Unknown ids are a leniency, not an error.
func (p *Planner) pickTheme(r *rng.Rand, themeID string) (catalog.Theme, error) {
	if themeID != "" {
		if theme, ok := p.catalog.Theme(themeID); ok {
			return theme, nil
		}
		p.logger.Warn("requested theme not found, picking at random", slog.String("themeId", themeID))
	}
	theme, err := rng.Pick(r, p.catalog.Themes())
	if err != nil {
		return catalog.Theme{}, errors.Wrap(err, "pick theme")
	}
	return theme, nil
}
