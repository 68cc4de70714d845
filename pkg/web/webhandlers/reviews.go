package webhandlers

import (
	"context"
	"net/http"

	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/web"
)

var ReviewTableColumns = []web.Column{
	{
		Name:       "Product",
		Sortable:   true,
		OrderByKey: "product_id",
	},
	{
		Name:       "Author",
		Sortable:   true,
		OrderByKey: "author",
	},
	{
		Name:       "Rating",
		Sortable:   true,
		OrderByKey: "rating",
	},
	{
		Name:       "Created",
		Sortable:   true,
		OrderByKey: "created_at",
	},
}

func NewReviewList(reviewStore models.ReviewStore, r *http.Request) *ReviewList {
	rl := &ReviewList{
		ReviewStore: reviewStore,
		Table:       web.NewTable("review-table", ReviewTableColumns),
	}
	rl.ParseQueryParams(r)
	return rl
}

type ReviewList struct {
	ReviewStore models.ReviewStore
	*web.Table
}

func (rl *ReviewList) Get(ctx context.Context) error {
	reviewResponse, err := rl.ReviewStore.ListReviews(
		ctx,
		rl.CurrentPage,
		rl.PageSize,
		rl.GetOrderBy(),
		rl.Asc,
	)
	if err != nil {
		return err
	}
	rl.Rows = reviewResponse.Reviews
	rl.RowCount = reviewResponse.RowCount
	rl.TotalCount = reviewResponse.TotalCount
	rl.Offset = rl.GetOffset()
	rl.PageCount = rl.GetPageCount()

	return nil
}

func GetReviewListHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rl := NewReviewList(appState.ReviewStore, r)

		if err := rl.Get(r.Context()); err != nil {
			handleError(w, err, "failed to get review list")
			return
		}

		path := rl.GetTablePath("/admin/reviews")

		page := web.NewPage(
			"Reviews",
			"Browse and inspect reviews",
			path,
			[]string{
				"templates/pages/reviews.html",
				"templates/components/review_table.html",
			},
			[]web.BreadCrumb{
				{
					Title: "Reviews",
					Path:  path,
				},
			},
			rl,
		)

		page.Render(w, r)
	}
}
