package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/revmark/revmark/pkg/annotate"
	"github.com/revmark/revmark/pkg/models"
)

var validate = validator.New()

// AnnotateRequest is the payload for stateless annotation.
type AnnotateRequest struct {
	Text        string              `json:"text"         validate:"max=262144"`
	PatternSets []models.PatternSet `json:"pattern_sets" validate:"omitempty,dive"`
}

// AnnotateResponse is the ordered run sequence for the submitted text.
type AnnotateResponse struct {
	Runs []models.Run `json:"runs"`
}

// AnnotateHandler annotates caller-supplied text with caller-supplied
// pattern sets. The endpoint is referentially transparent: identical
// payloads produce identical run sequences.
func AnnotateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request AnnotateRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderError(w, err, http.StatusBadRequest)
			return
		}

		runs := annotate.Annotate(request.Text, request.PatternSets)

		if err := encodeJSON(w, AnnotateResponse{Runs: runs}); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
