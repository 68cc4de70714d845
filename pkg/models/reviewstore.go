package models

import (
	"context"

	"github.com/google/uuid"
)

// ReviewStore persists reviews and pattern sets. Annotation output is never
// stored; it is recomputed from these records on every request.
type ReviewStore interface {
	// CreateReview stores a new review and returns it with its UUID and
	// timestamps populated.
	CreateReview(ctx context.Context, review *Review) (*Review, error)
	// GetReview retrieves a review by UUID. Returns NotFoundError if the
	// review does not exist.
	GetReview(ctx context.Context, reviewUUID uuid.UUID) (*Review, error)
	// ListReviews returns a page of reviews ordered by the given column.
	ListReviews(
		ctx context.Context,
		currentPage int,
		pageSize int,
		orderBy string,
		asc bool,
	) (*ReviewListResponse, error)
	// UpdateReviewMetadata merges the given metadata into the review's
	// existing metadata and returns the updated review.
	UpdateReviewMetadata(
		ctx context.Context,
		reviewUUID uuid.UUID,
		metadata map[string]interface{},
	) (*Review, error)
	// DeleteReview soft-deletes a review.
	DeleteReview(ctx context.Context, reviewUUID uuid.UUID) error

	// CreatePatternSet stores a new pattern set.
	CreatePatternSet(ctx context.Context, record *PatternSetRecord) (*PatternSetRecord, error)
	// GetPatternSet retrieves a pattern set by name.
	GetPatternSet(ctx context.Context, name string) (*PatternSetRecord, error)
	// ListPatternSets returns all pattern sets. If enabledOnly is set, only
	// enabled sets are returned.
	ListPatternSets(ctx context.Context, enabledOnly bool) ([]PatternSetRecord, error)
	// DeletePatternSet soft-deletes a pattern set by name.
	DeletePatternSet(ctx context.Context, name string) error

	// PurgeDeleted hard deletes all soft-deleted rows.
	PurgeDeleted(ctx context.Context) error
	// Close releases the underlying database connection.
	Close() error
}
