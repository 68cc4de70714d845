package webhandlers

import (
	"context"
	"net/http"

	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/web"
)

type Dashboard struct {
	ReviewCount     int
	PatternSetCount int
	EnabledSetCount int
	RecentReviews   []models.Review
	PatternSets     []models.PatternSetRecord
}

func (d *Dashboard) Get(ctx context.Context, appState *models.AppState) error {
	reviews, err := appState.ReviewStore.ListReviews(ctx, 1, 5, "created_at", false)
	if err != nil {
		return err
	}
	d.ReviewCount = reviews.TotalCount
	d.RecentReviews = reviews.Reviews

	sets, err := appState.ReviewStore.ListPatternSets(ctx, false)
	if err != nil {
		return err
	}
	d.PatternSetCount = len(sets)
	d.PatternSets = sets
	for _, set := range sets {
		if set.Enabled {
			d.EnabledSetCount++
		}
	}

	return nil
}

func GetDashboardHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const path = "/admin"

		dashboard := &Dashboard{}
		if err := dashboard.Get(r.Context(), appState); err != nil {
			handleError(w, err, "failed to get dashboard data")
			return
		}

		page := web.NewPage(
			"Dashboard",
			"Review annotation at a glance",
			path,
			[]string{
				"templates/pages/dashboard.html",
			},
			[]web.BreadCrumb{
				{
					Title: "Dashboard",
					Path:  path,
				},
			},
			dashboard,
		)

		page.Render(w, r)
	}
}
