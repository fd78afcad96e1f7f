package scenario_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/myrjola/lightfingers/internal/scenario"
	"github.com/myrjola/lightfingers/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T) *models.CampaignPlan {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)

	seed := int64(7)
	plan, err := planner.New(c, testhelpers.NewLogger(io.Discard)).
		Generate(models.Request{Difficulty: "medium", Seed: &seed})
	require.NoError(t, err)
	return plan
}

func TestAssemble(t *testing.T) {
	plan := testPlan(t)

	texts := make([]string, len(plan.Clues))
	for i := range texts {
		texts[i] = fmt.Sprintf("clue text %d", i+1)
	}

	s, err := scenario.Assemble(plan, texts)
	require.NoError(t, err)
	require.Len(t, s.Clues, len(plan.Clues))

	for i, clue := range s.Clues {
		require.Equal(t, plan.Clues[i].Position, clue.Position)
		require.Equal(t, plan.Clues[i].Act, clue.Act)
		require.Equal(t, plan.Clues[i].Delivery, clue.Delivery)
		require.Equal(t, texts[i], clue.Text)
	}
}

func TestAssembleCountMismatch(t *testing.T) {
	plan := testPlan(t)

	_, err := scenario.Assemble(plan, []string{"only one"})
	require.ErrorIs(t, err, scenario.ErrClueCountMismatch)
}
