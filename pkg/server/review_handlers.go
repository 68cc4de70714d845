package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/revmark/revmark/pkg/annotate"
	"github.com/revmark/revmark/pkg/models"
)

const OKResponse = "OK"

// CreateReviewHandler stores a new review.
func CreateReviewHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.CreateReviewRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		review := &models.Review{
			ProductID: request.ProductID,
			Author:    request.Author,
			Rating:    request.Rating,
			Text:      request.Text,
			Metadata:  request.Metadata,
		}
		created, err := appState.ReviewStore.CreateReview(r.Context(), review)
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

// GetReviewHandler returns a review by UUID.
func GetReviewHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewUUID := parseUUIDFromURL(r, w, "reviewUUID")
		if reviewUUID == uuid.Nil {
			return
		}

		review, err := appState.ReviewStore.GetReview(r.Context(), reviewUUID)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, review); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// ListReviewsHandler returns a page of reviews. Supports page and
// page_size query parameters.
func ListReviewsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := extractQueryStringValueToInt(r, "page")
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		pageSize, err := extractQueryStringValueToInt(r, "page_size")
		if err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		reviews, err := appState.ReviewStore.ListReviews(
			r.Context(),
			page,
			pageSize,
			"created_at",
			false,
		)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, reviews); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// UpdateReviewMetadataHandler merges the posted metadata into the review.
func UpdateReviewMetadataHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewUUID := parseUUIDFromURL(r, w, "reviewUUID")
		if reviewUUID == uuid.Nil {
			return
		}

		var metadata map[string]interface{}
		if err := decodeJSON(r, &metadata); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		review, err := appState.ReviewStore.UpdateReviewMetadata(
			r.Context(),
			reviewUUID,
			metadata,
		)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		if err := encodeJSON(w, review); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// DeleteReviewHandler soft-deletes a review.
func DeleteReviewHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewUUID := parseUUIDFromURL(r, w, "reviewUUID")
		if reviewUUID == uuid.Nil {
			return
		}

		if err := appState.ReviewStore.DeleteReview(r.Context(), reviewUUID); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(OKResponse))
	}
}

// GetReviewAnnotationHandler annotates a stored review with stored pattern
// sets and returns the run sequence. The sets query parameter restricts
// annotation to a comma-separated list of pattern set names; without it all
// enabled sets are used. Results are computed per request, never stored.
func GetReviewAnnotationHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewUUID := parseUUIDFromURL(r, w, "reviewUUID")
		if reviewUUID == uuid.Nil {
			return
		}

		review, err := appState.ReviewStore.GetReview(r.Context(), reviewUUID)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		records, err := appState.ReviewStore.ListPatternSets(r.Context(), true)
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}

		sets := selectPatternSets(records, r.URL.Query().Get("sets"))

		annotated := models.AnnotatedReview{
			Review: review,
			Runs:   annotate.Annotate(review.Text, sets),
		}
		if err := encodeJSON(w, annotated); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}

// selectPatternSets converts stored records to engine pattern sets,
// optionally restricted to a comma-separated list of names. Record order is
// preserved so resolver tie-breaks stay deterministic.
func selectPatternSets(records []models.PatternSetRecord, names string) []models.PatternSet {
	var wanted map[string]bool
	if names != "" {
		wanted = make(map[string]bool)
		for _, name := range strings.Split(names, ",") {
			wanted[strings.TrimSpace(name)] = true
		}
	}

	sets := make([]models.PatternSet, 0, len(records))
	for i := range records {
		if wanted != nil && !wanted[records[i].Name] {
			continue
		}
		sets = append(sets, records[i].PatternSet())
	}
	return sets
}
