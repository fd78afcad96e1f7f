package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	base := alice.New()

	mux.Handle("GET /api/healthy", base.ThenFunc(app.healthy))
	mux.Handle("POST /api/campaigns", base.ThenFunc(app.createCampaign))
	mux.Handle("GET /api/campaigns", base.ThenFunc(app.listCampaigns))
	mux.Handle("GET /api/campaigns/{id}", base.ThenFunc(app.getCampaign))
	mux.Handle("POST /api/campaigns/{id}/render", base.ThenFunc(app.renderScenario))

	return app.recoverPanic(app.logRequest(secureHeaders(mux)))
}
