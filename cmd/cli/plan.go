package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/spf13/cobra"
)

func newPlanCommand(logger *slog.Logger) *cobra.Command {
	var (
		difficulty       string
		themeID          string
		seed             int64
		excludeSuspects  []string
		excludeItems     []string
		excludeLocations []string
		excludeTimes     []string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct // this is better for readability
		Use:   "plan",
		Short: "Generate a campaign plan and print it as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gameCatalog, err := catalog.Load()
			if err != nil {
				return errors.Wrap(err, "load catalog")
			}

			req := models.Request{
				Difficulty:       difficulty,
				ThemeID:          themeID,
				ExcludeSuspects:  excludeSuspects,
				ExcludeItems:     excludeItems,
				ExcludeLocations: excludeLocations,
				ExcludeTimes:     excludeTimes,
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			plan, err := planner.New(gameCatalog, logger).Generate(req)
			if err != nil {
				return errors.Wrap(err, "generate plan")
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err = encoder.Encode(plan); err != nil {
				return errors.Wrap(err, "encode plan")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "difficulty preset (easy, medium, hard, expert)")
	cmd.Flags().StringVar(&themeID, "theme", "", "theme id, random when empty")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible plans, random when omitted")
	cmd.Flags().StringSliceVar(&excludeSuspects, "exclude-suspects", nil, "suspect ids barred from the solution")
	cmd.Flags().StringSliceVar(&excludeItems, "exclude-items", nil, "item ids barred from the solution")
	cmd.Flags().StringSliceVar(&excludeLocations, "exclude-locations", nil, "location ids barred from the solution")
	cmd.Flags().StringSliceVar(&excludeTimes, "exclude-times", nil, "time ids barred from the solution")

	return cmd
}
