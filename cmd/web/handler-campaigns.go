package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/myrjola/lightfingers/internal/catalog"
	"github.com/myrjola/lightfingers/internal/errors"
	"github.com/myrjola/lightfingers/internal/models"
	"github.com/myrjola/lightfingers/internal/planner"
	"github.com/myrjola/lightfingers/internal/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (app *application) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	plan, err := app.planner.Generate(req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownDifficulty):
			app.unprocessable(w, r, "UNKNOWN_DIFFICULTY", err)
		case errors.Is(err, planner.ErrEmptyCandidatePool):
			app.unprocessable(w, r, "EMPTY_CANDIDATE_POOL", err)
		case errors.Is(err, planner.ErrPlanInvalid):
			app.unprocessable(w, r, models.CodeSolutionEliminated, err)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	if err = app.campaigns.Insert(r.Context(), plan); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, plan)
}

func (app *application) getCampaign(w http.ResponseWriter, r *http.Request) {
	plan, err := app.campaigns.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrCampaignNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, plan)
}

func (app *application) listCampaigns(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxListLimit)
	}

	summaries, err := app.campaigns.Latest(r.Context(), limit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if summaries == nil {
		summaries = []repositories.CampaignSummary{}
	}

	app.writeJSON(w, r, http.StatusOK, summaries)
}
