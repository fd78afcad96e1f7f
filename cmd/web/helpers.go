package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myrjola/lightfingers/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Debug(http.StatusText(status), "method", method, "uri", uri)
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "error encoding response", errors.SlogError(err))
	}
}

// errorResponse is the structured failure shape for hard planning errors.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (app *application) unprocessable(w http.ResponseWriter, r *http.Request, code string, err error) {
	app.logger.Debug("rejecting request", "code", code, "uri", r.URL.RequestURI(), "error", err.Error())
	app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Code: code, Message: err.Error()})
}
