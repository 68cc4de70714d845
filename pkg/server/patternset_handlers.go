package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/revmark/revmark/pkg/models"
)

// CreatePatternSetHandler stores a new pattern set, replacing an existing
// one with the same name.
func CreatePatternSetHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.CreatePatternSetRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		record := &models.PatternSetRecord{
			Name:          request.Name,
			Phrases:       request.Phrases,
			Style:         request.Style,
			CaseSensitive: request.CaseSensitive,
			Enabled:       request.Enabled,
		}
		created, err := appState.ReviewStore.CreatePatternSet(r.Context(), record)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := encodeJSON(w, created); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// GetPatternSetHandler returns a pattern set by name.
func GetPatternSetHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "patternSetName")

		record, err := appState.ReviewStore.GetPatternSet(r.Context(), name)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, record); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// ListPatternSetsHandler returns all pattern sets. The enabled query
// parameter restricts the list to enabled sets.
func ListPatternSetsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabledOnly := r.URL.Query().Get("enabled") == "true"

		records, err := appState.ReviewStore.ListPatternSets(r.Context(), enabledOnly)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, records); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// DeletePatternSetHandler soft-deletes a pattern set by name.
func DeletePatternSetHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "patternSetName")

		if err := appState.ReviewStore.DeletePatternSet(r.Context(), name); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(OKResponse))
	}
}
