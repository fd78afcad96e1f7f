package planner

import (
	"fmt"
	"slices"

	"github.com/myrjola/lightfingers/internal/models"
)

// Validate proves the plan is solvable. Two checks:
//
//  1. Non-elimination invariant (hard error): no clue may eliminate any of
//     the four solution ids. A violation is a planning bug and the plan must
//     never reach a player.
//  2. Coverage (warning): sequencing truncates low-priority groups, so some
//     planned eliminations may never become clues. That is deliberate at
//     harder settings and reported, not rejected.
//
// A clue-count mismatch against the configured target is also a warning; it
// happens when redistribution cannot fully backfill.
func Validate(
	solution models.Solution,
	plans []models.CategoryEliminationPlan,
	clues []models.PlannedClue,
	configuredClueCount int,
) models.ValidationResult {
	result := models.ValidationResult{
		Errors:   []models.ValidationIssue{},
		Warnings: []models.ValidationIssue{},
		Coverage: map[models.Category]models.CategoryCoverage{},
	}

	for _, clue := range clues {
		category := clue.Elimination.Category
		solutionID := solution.IDFor(category)
		if slices.Contains(clue.Elimination.ElementIDs, solutionID) {
			result.Errors = append(result.Errors, models.ValidationIssue{
				Code: models.CodeSolutionEliminated,
				Message: fmt.Sprintf("clue %d eliminates the solution %s %q",
					clue.Position, category, solutionID),
			})
		}
	}

	eliminatedByCategory := map[models.Category]map[string]bool{}
	for _, clue := range clues {
		category := clue.Elimination.Category
		if eliminatedByCategory[category] == nil {
			eliminatedByCategory[category] = map[string]bool{}
		}
		for _, id := range clue.Elimination.ElementIDs {
			eliminatedByCategory[category][id] = true
		}
	}

	for _, plan := range plans {
		eliminated := eliminatedByCategory[plan.Category]

		var missing []string
		planned := 0
		for _, group := range plan.Groups {
			for _, id := range group.ElementIDs {
				planned++
				if !eliminated[id] {
					missing = append(missing, id)
				}
			}
		}
		slices.Sort(missing)

		result.Coverage[plan.Category] = models.CategoryCoverage{
			PlannedElements:    planned,
			EliminatedElements: planned - len(missing),
			MissingElementIDs:  missing,
		}
		if len(missing) > 0 {
			result.Warnings = append(result.Warnings, models.ValidationIssue{
				Code: models.CodeIncompleteCoverage,
				Message: fmt.Sprintf("%d planned %s eliminations never became clues",
					len(missing), plan.Category),
			})
		}
	}

	if len(clues) != configuredClueCount {
		result.Warnings = append(result.Warnings, models.ValidationIssue{
			Code: models.CodeClueCountMismatch,
			Message: fmt.Sprintf("plan has %d clues, difficulty configures %d",
				len(clues), configuredClueCount),
		})
	}

	result.Valid = len(result.Errors) == 0
	return result
}
