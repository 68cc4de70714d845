package webhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/revmark/revmark/pkg/annotate"
	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/web"
)

func NewReviewDetails(reviewStore models.ReviewStore, reviewUUID uuid.UUID) *ReviewDetails {
	return &ReviewDetails{
		ReviewStore: reviewStore,
		ReviewUUID:  reviewUUID,
	}
}

type ReviewDetails struct {
	ReviewStore   models.ReviewStore
	ReviewUUID    uuid.UUID
	Review        *models.Review
	Runs          []models.Run
	AnnotatedText template.HTML
	RunReport     template.HTML
}

func (rd *ReviewDetails) Get(ctx context.Context) error {
	review, err := rd.ReviewStore.GetReview(ctx, rd.ReviewUUID)
	if err != nil {
		return err
	}
	rd.Review = review

	records, err := rd.ReviewStore.ListPatternSets(ctx, true)
	if err != nil {
		return err
	}
	sets := make([]models.PatternSet, len(records))
	for i := range records {
		sets[i] = records[i].PatternSet()
	}

	rd.Runs = annotate.Annotate(review.Text, sets)
	rd.AnnotatedText = web.RenderRuns(rd.Runs)

	return rd.buildRunReport()
}

// buildRunReport renders the run sequence as highlighted JSON for the
// inspector panel.
func (rd *ReviewDetails) buildRunReport() error {
	runJSON, err := json.MarshalIndent(rd.Runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}
	highlighted, err := web.CodeHighlight(string(runJSON), "json")
	if err != nil {
		return fmt.Errorf("failed to highlight runs: %w", err)
	}
	rd.RunReport = template.HTML(highlighted) //nolint:gosec

	return nil
}

func GetReviewDetailsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewUUID, err := uuid.Parse(chi.URLParam(r, "reviewUUID"))
		if err != nil {
			handleError(w, models.NewBadRequestError("invalid review UUID"), "invalid review UUID")
			return
		}

		rd := NewReviewDetails(appState.ReviewStore, reviewUUID)
		if err := rd.Get(r.Context()); err != nil {
			handleError(w, err, "failed to get review details")
			return
		}

		path := "/admin/reviews/" + reviewUUID.String()

		page := web.NewPage(
			"Review Details",
			rd.Review.ProductID,
			path,
			[]string{
				"templates/pages/review_details.html",
			},
			[]web.BreadCrumb{
				{
					Title: "Reviews",
					Path:  "/admin/reviews",
				},
				{
					Title: reviewUUID.String(),
					Path:  path,
				},
			},
			rd,
		)

		page.Render(w, r)
	}
}
