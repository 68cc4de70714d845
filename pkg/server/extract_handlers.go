package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/revmark/revmark/pkg/models"
)

// ExtractReviewPhrasesHandler sends a stored review's text to the upstream
// phrase-extraction service and stores the returned phrase groups as
// pattern sets. Returns 503 when no extractor is configured.
func ExtractReviewPhrasesHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if appState.Extractor == nil {
			renderError(
				w,
				errors.New("phrase extractor is not enabled"),
				http.StatusServiceUnavailable,
			)
			return
		}

		reviewUUID := parseUUIDFromURL(r, w, "reviewUUID")
		if reviewUUID == uuid.Nil {
			return
		}

		review, err := appState.ReviewStore.GetReview(r.Context(), reviewUUID)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		sets, err := appState.Extractor.ExtractPhrases(r.Context(), review.Text)
		if err != nil {
			renderError(w, err, http.StatusBadGateway)
			return
		}

		records := make([]models.PatternSetRecord, 0, len(sets))
		for _, set := range sets {
			record := &models.PatternSetRecord{
				Name:          set.ID,
				Phrases:       set.Phrases,
				Style:         set.Style,
				CaseSensitive: set.CaseSensitive,
				Enabled:       true,
			}
			created, err := appState.ReviewStore.CreatePatternSet(r.Context(), record)
			if err != nil {
				renderError(w, err, http.StatusInternalServerError)
				return
			}
			records = append(records, *created)
		}

		w.WriteHeader(http.StatusCreated)
		if err := encodeJSON(w, records); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
