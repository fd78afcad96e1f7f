// Package scenario pairs a validated campaign plan with the rendered clue
// texts into the shape the game client consumes.
package scenario

import (
	"log/slog"

	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
)

var ErrClueCountMismatch = errors.NewSentinel("rendered texts do not match plan clues")

// RenderedClue is one clue ready for play.
type RenderedClue struct {
	Position int             `json:"position"`
	Act      int             `json:"act"`
	Delivery models.Delivery `json:"delivery"`
	Text     string          `json:"text"`
}

// Scenario is the assembled output: the immutable plan plus prose.
type Scenario struct {
	Plan  *models.CampaignPlan `json:"plan"`
	Clues []RenderedClue       `json:"clues"`
}

// Assemble pairs each planned clue with its rendered text by position. The
// texts slice must align one-to-one with the plan's clue sequence.
func Assemble(plan *models.CampaignPlan, texts []string) (*Scenario, error) {
	if len(texts) != len(plan.Clues) {
		return nil, errors.Wrap(ErrClueCountMismatch, "assemble scenario",
			slog.Int("planClues", len(plan.Clues)),
			slog.Int("texts", len(texts)))
	}

	clues := make([]RenderedClue, len(plan.Clues))
	for i, clue := range plan.Clues {
		clues[i] = RenderedClue{
			Position: clue.Position,
			Act:      clue.Act,
			Delivery: clue.Delivery,
			Text:     texts[i],
		}
	}
	return &Scenario{Plan: plan, Clues: clues}, nil
}
