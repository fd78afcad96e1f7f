package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/spf13/cobra"
)

var errPlanInvalid = errors.NewSentinel("plan has validation errors")

func newValidateCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct // this is better for readability
		Use:   "validate <plan.json>",
		Short: "Re-check a plan's solvability guarantees",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			document, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read plan file")
			}

			var plan models.CampaignPlan
			if err = json.Unmarshal(document, &plan); err != nil {
				return errors.Wrap(err, "unmarshal plan")
			}

			gameCatalog, err := catalog.Load()
			if err != nil {
				return errors.Wrap(err, "load catalog")
			}
			difficulty, err := gameCatalog.Difficulty(plan.Difficulty)
			if err != nil {
				return errors.Wrap(err, "look up difficulty", slog.String("difficulty", plan.Difficulty))
			}

			plans := make([]models.CategoryEliminationPlan, 0, len(plan.EliminationPlans))
			for _, category := range models.Categories {
				if categoryPlan, ok := plan.EliminationPlans[category]; ok {
					plans = append(plans, categoryPlan)
				}
			}

			result := planner.Validate(plan.Solution, plans, plan.Clues, difficulty.ClueCount)

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err = encoder.Encode(result); err != nil {
				return errors.Wrap(err, "encode validation result")
			}

			if !result.Valid {
				return fmt.Errorf("%w: %d", errPlanInvalid, len(result.Errors))
			}
			return nil
		},
	}
}
