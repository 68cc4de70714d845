package webhandlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revmark/revmark/config"
	"github.com/revmark/revmark/pkg/models"
)

type stubReviewStore struct {
	review models.Review
	sets   []models.PatternSetRecord
}

func (s *stubReviewStore) CreateReview(
	_ context.Context,
	review *models.Review,
) (*models.Review, error) {
	return review, nil
}

func (s *stubReviewStore) GetReview(
	_ context.Context,
	reviewUUID uuid.UUID,
) (*models.Review, error) {
	if reviewUUID != s.review.UUID {
		return nil, models.NewNotFoundError("review " + reviewUUID.String())
	}
	review := s.review
	return &review, nil
}

func (s *stubReviewStore) ListReviews(
	_ context.Context,
	_ int,
	_ int,
	_ string,
	_ bool,
) (*models.ReviewListResponse, error) {
	return &models.ReviewListResponse{
		Reviews:    []models.Review{s.review},
		TotalCount: 1,
		RowCount:   1,
	}, nil
}

func (s *stubReviewStore) UpdateReviewMetadata(
	_ context.Context,
	_ uuid.UUID,
	_ map[string]interface{},
) (*models.Review, error) {
	return &s.review, nil
}

func (s *stubReviewStore) DeleteReview(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *stubReviewStore) CreatePatternSet(
	_ context.Context,
	record *models.PatternSetRecord,
) (*models.PatternSetRecord, error) {
	return record, nil
}

func (s *stubReviewStore) GetPatternSet(
	_ context.Context,
	name string,
) (*models.PatternSetRecord, error) {
	return nil, models.NewNotFoundError("pattern set " + name)
}

func (s *stubReviewStore) ListPatternSets(
	_ context.Context,
	enabledOnly bool,
) ([]models.PatternSetRecord, error) {
	var records []models.PatternSetRecord
	for _, record := range s.sets {
		if enabledOnly && !record.Enabled {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *stubReviewStore) DeletePatternSet(_ context.Context, _ string) error {
	return nil
}

func (s *stubReviewStore) PurgeDeleted(_ context.Context) error {
	return nil
}

func (s *stubReviewStore) Close() error {
	return nil
}

func newStubAppState() (*models.AppState, *stubReviewStore) {
	store := &stubReviewStore{
		review: models.Review{
			UUID:      uuid.New(),
			CreatedAt: time.Now(),
			ProductID: "prod-123",
			Author:    "sam",
			Rating:    4,
			Text:      "The battery life is great.",
		},
		sets: []models.PatternSetRecord{
			{
				Name:    "aspects",
				Phrases: []string{"battery life"},
				Style:   "aspect",
				Enabled: true,
			},
		},
	}
	appState := &models.AppState{
		ReviewStore: store,
		Config:      &config.Config{},
	}
	return appState, store
}

func TestGetDashboardHandler(t *testing.T) {
	appState, _ := newStubAppState()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	res := httptest.NewRecorder()

	GetDashboardHandler(appState)(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Dashboard")
	assert.Contains(t, body, "prod-123")
}

func TestGetReviewListHandler(t *testing.T) {
	appState, _ := newStubAppState()

	req := httptest.NewRequest(http.MethodGet, "/admin/reviews", nil)
	res := httptest.NewRecorder()

	GetReviewListHandler(appState)(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "prod-123")
}

func TestGetReviewListHandlerPartial(t *testing.T) {
	appState, _ := newStubAppState()

	req := httptest.NewRequest(http.MethodGet, "/admin/reviews", nil)
	req.Header.Set("HX-Request", "true")
	res := httptest.NewRecorder()

	GetReviewListHandler(appState)(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "prod-123")
	assert.NotContains(t, body, "<!DOCTYPE html>")
}

func TestGetReviewDetailsHandler(t *testing.T) {
	appState, store := newStubAppState()

	router := chi.NewRouter()
	router.Get("/admin/reviews/{reviewUUID}", GetReviewDetailsHandler(appState))

	req := httptest.NewRequest(
		http.MethodGet,
		"/admin/reviews/"+store.review.UUID.String(),
		nil,
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, `<span class="run-aspect">battery life</span>`)
	assert.Contains(t, body, "Run Report")
}

func TestGetReviewDetailsHandlerNotFound(t *testing.T) {
	appState, _ := newStubAppState()

	router := chi.NewRouter()
	router.Get("/admin/reviews/{reviewUUID}", GetReviewDetailsHandler(appState))

	req := httptest.NewRequest(http.MethodGet, "/admin/reviews/"+uuid.NewString(), nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/missing", nil)
	res := httptest.NewRecorder()

	NotFoundHandler()(res, req)

	require.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), "404")
}
