package main

import (
	"net/http"

	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/repositories"
	"github.com/myrjola/lightfingers/internal/scenario"
)

// renderScenario turns a stored plan into playable prose, one completion per
// clue. The whole scenario is rendered or nothing is returned.
func (app *application) renderScenario(w http.ResponseWriter, r *http.Request) {
	if app.clueWriter == nil {
		app.clientError(w, r, http.StatusServiceUnavailable)
		return
	}

	plan, err := app.campaigns.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	texts := make([]string, 0, len(plan.Clues))
	for _, clue := range plan.Clues {
		text, _, writeErr := app.clueWriter.WriteClue(r.Context(), plan, clue)
		if writeErr != nil {
			app.serverError(w, r, writeErr)
			return
		}
		texts = append(texts, text)
	}

	rendered, err := scenario.Assemble(plan, texts)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, rendered)
}
