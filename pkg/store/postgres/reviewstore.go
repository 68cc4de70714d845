// Package postgres implements the ReviewStore on Postgres via bun.
//
// Subject texts and pattern sets are the only persisted entities.
// Annotation output is recomputed on every request and never written here.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/uptrace/bun"

	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/store"
)

// Force compiler to validate that PostgresReviewStore implements the
// ReviewStore interface.
var _ models.ReviewStore = &PostgresReviewStore{}

type PostgresReviewStore struct {
	db *bun.DB
}

// NewPostgresReviewStore returns a store backed by the given connection,
// creating the schema if needed.
func NewPostgresReviewStore(ctx context.Context, db *bun.DB) (*PostgresReviewStore, error) {
	if err := CreateSchema(ctx, db); err != nil {
		return nil, store.NewStorageError("failed to ensure postgres schema", err)
	}
	return &PostgresReviewStore{db: db}, nil
}

func (s *PostgresReviewStore) CreateReview(
	ctx context.Context,
	review *models.Review,
) (*models.Review, error) {
	if review.Text == "" {
		return nil, models.NewBadRequestError("review text cannot be empty")
	}

	dbReview := ReviewSchema{}
	if err := copier.Copy(&dbReview, review); err != nil {
		return nil, store.NewStorageError("unable to copy review", err)
	}

	_, err := s.db.NewInsert().
		Model(&dbReview).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, store.NewStorageError("failed to create review", err)
	}

	return reviewFromSchema(&dbReview)
}

func (s *PostgresReviewStore) GetReview(
	ctx context.Context,
	reviewUUID uuid.UUID,
) (*models.Review, error) {
	dbReview := ReviewSchema{}
	err := s.db.NewSelect().
		Model(&dbReview).
		Where("uuid = ?", reviewUUID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("review " + reviewUUID.String())
		}
		return nil, store.NewStorageError("failed to get review", err)
	}

	return reviewFromSchema(&dbReview)
}

func (s *PostgresReviewStore) ListReviews(
	ctx context.Context,
	currentPage int,
	pageSize int,
	orderBy string,
	asc bool,
) (*models.ReviewListResponse, error) {
	if currentPage < 1 {
		currentPage = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if orderBy == "" {
		orderBy = "created_at"
	}

	direction := "DESC"
	if asc {
		direction = "ASC"
	}

	var dbReviews []ReviewSchema
	query := s.db.NewSelect().
		Model(&dbReviews).
		Order(fmt.Sprintf("%s %s", orderBy, direction)).
		Limit(pageSize).
		Offset((currentPage - 1) * pageSize)

	count, err := query.ScanAndCount(ctx)
	if err != nil {
		return nil, store.NewStorageError("failed to list reviews", err)
	}

	reviews := make([]models.Review, len(dbReviews))
	for i := range dbReviews {
		review, err := reviewFromSchema(&dbReviews[i])
		if err != nil {
			return nil, err
		}
		reviews[i] = *review
	}

	return &models.ReviewListResponse{
		Reviews:    reviews,
		TotalCount: count,
		RowCount:   len(reviews),
	}, nil
}

// UpdateReviewMetadata merges the given metadata into the review's existing
// metadata map, creating keys and values if they don't exist.
func (s *PostgresReviewStore) UpdateReviewMetadata(
	ctx context.Context,
	reviewUUID uuid.UUID,
	metadata map[string]interface{},
) (*models.Review, error) {
	dbReview := ReviewSchema{}
	err := s.db.NewSelect().
		Model(&dbReview).
		Where("uuid = ?", reviewUUID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("review " + reviewUUID.String())
		}
		return nil, store.NewStorageError("failed to get review", err)
	}

	dbMetadata := dbReview.Metadata
	if dbMetadata == nil {
		dbMetadata = map[string]interface{}{}
	}
	if err := mergo.Merge(&dbMetadata, metadata, mergo.WithOverride); err != nil {
		return nil, store.NewStorageError("failed to merge metadata", err)
	}

	_, err = s.db.NewUpdate().
		Model(&dbReview).
		Set("metadata = ?", dbMetadata).
		Where("uuid = ?", reviewUUID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, store.NewStorageError("failed to update review metadata", err)
	}

	return reviewFromSchema(&dbReview)
}

func (s *PostgresReviewStore) DeleteReview(ctx context.Context, reviewUUID uuid.UUID) error {
	res, err := s.db.NewDelete().
		Model(&ReviewSchema{}).
		Where("uuid = ?", reviewUUID).
		Exec(ctx)
	if err != nil {
		return store.NewStorageError("failed to delete review", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return models.NewNotFoundError("review " + reviewUUID.String())
	}

	return nil
}

func (s *PostgresReviewStore) PurgeDeleted(ctx context.Context) error {
	return purgeDeleted(ctx, s.db)
}

func (s *PostgresReviewStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func reviewFromSchema(dbReview *ReviewSchema) (*models.Review, error) {
	review := models.Review{}
	if err := copier.Copy(&review, dbReview); err != nil {
		return nil, store.NewStorageError("unable to copy review", err)
	}
	return &review, nil
}
