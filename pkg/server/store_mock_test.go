package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/revmark/revmark/pkg/models"
)

// memReviewStore is an in-memory ReviewStore used to test handlers without
// a database connection.
type memReviewStore struct {
	reviews []models.Review
	sets    []models.PatternSetRecord
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{}
}

func (s *memReviewStore) CreateReview(
	_ context.Context,
	review *models.Review,
) (*models.Review, error) {
	created := *review
	created.UUID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.reviews = append(s.reviews, created)
	return &created, nil
}

func (s *memReviewStore) GetReview(
	_ context.Context,
	reviewUUID uuid.UUID,
) (*models.Review, error) {
	for i := range s.reviews {
		if s.reviews[i].UUID == reviewUUID {
			review := s.reviews[i]
			return &review, nil
		}
	}
	return nil, models.NewNotFoundError("review " + reviewUUID.String())
}

func (s *memReviewStore) ListReviews(
	_ context.Context,
	currentPage int,
	pageSize int,
	_ string,
	_ bool,
) (*models.ReviewListResponse, error) {
	if currentPage < 1 {
		currentPage = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (currentPage - 1) * pageSize
	if start > len(s.reviews) {
		start = len(s.reviews)
	}
	end := start + pageSize
	if end > len(s.reviews) {
		end = len(s.reviews)
	}
	page := s.reviews[start:end]
	return &models.ReviewListResponse{
		Reviews:    page,
		TotalCount: len(s.reviews),
		RowCount:   len(page),
	}, nil
}

func (s *memReviewStore) UpdateReviewMetadata(
	ctx context.Context,
	reviewUUID uuid.UUID,
	metadata map[string]interface{},
) (*models.Review, error) {
	for i := range s.reviews {
		if s.reviews[i].UUID == reviewUUID {
			if s.reviews[i].Metadata == nil {
				s.reviews[i].Metadata = make(map[string]interface{})
			}
			for k, v := range metadata {
				s.reviews[i].Metadata[k] = v
			}
			s.reviews[i].UpdatedAt = time.Now()
			review := s.reviews[i]
			return &review, nil
		}
	}
	return nil, models.NewNotFoundError("review " + reviewUUID.String())
}

func (s *memReviewStore) DeleteReview(_ context.Context, reviewUUID uuid.UUID) error {
	for i := range s.reviews {
		if s.reviews[i].UUID == reviewUUID {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("review " + reviewUUID.String())
}

func (s *memReviewStore) CreatePatternSet(
	_ context.Context,
	record *models.PatternSetRecord,
) (*models.PatternSetRecord, error) {
	created := *record
	created.UUID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.sets = append(s.sets, created)
	return &created, nil
}

func (s *memReviewStore) GetPatternSet(
	_ context.Context,
	name string,
) (*models.PatternSetRecord, error) {
	for i := range s.sets {
		if s.sets[i].Name == name {
			record := s.sets[i]
			return &record, nil
		}
	}
	return nil, models.NewNotFoundError("pattern set " + name)
}

func (s *memReviewStore) ListPatternSets(
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

func (s *memReviewStore) DeletePatternSet(_ context.Context, name string) error {
	for i := range s.sets {
		if s.sets[i].Name == name {
			s.sets = append(s.sets[:i], s.sets[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("pattern set " + name)
}

func (s *memReviewStore) PurgeDeleted(_ context.Context) error {
	return nil
}

func (s *memReviewStore) Close() error {
	return nil
}
