package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a single piece of free-form review text with its product
// metadata. The Text field is the subject string that gets annotated.
type Review struct {
	UUID      uuid.UUID              `json:"uuid"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	ProductID string                 `json:"product_id"`
	Author    string                 `json:"author"`
	Rating    int                    `json:"rating"`
	Text      string                 `json:"text"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// CreateReviewRequest is the payload for creating a review.
type CreateReviewRequest struct {
	ProductID string                 `json:"product_id" validate:"required"`
	Author    string                 `json:"author"`
	Rating    int                    `json:"rating"     validate:"gte=0,lte=5"`
	Text      string                 `json:"text"       validate:"required"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// ReviewListResponse is a page of reviews.
type ReviewListResponse struct {
	Reviews    []Review `json:"reviews"`
	TotalCount int      `json:"total_count"`
	RowCount   int      `json:"row_count"`
}

// PatternSetRecord is a stored PatternSet with its lifecycle fields. The
// Name doubles as the engine-level pattern set ID.
type PatternSetRecord struct {
	UUID          uuid.UUID `json:"uuid"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Name          string    `json:"name"`
	Phrases       []string  `json:"phrases"`
	Style         string    `json:"style"`
	CaseSensitive bool      `json:"case_sensitive"`
	Enabled       bool      `json:"enabled"`
}

// PatternSet converts the stored record into the engine's value type.
func (r *PatternSetRecord) PatternSet() PatternSet {
	return PatternSet{
		ID:            r.Name,
		Phrases:       r.Phrases,
		Style:         r.Style,
		CaseSensitive: r.CaseSensitive,
	}
}

// CreatePatternSetRequest is the payload for creating a pattern set.
type CreatePatternSetRequest struct {
	Name          string   `json:"name"    validate:"required"`
	Phrases       []string `json:"phrases" validate:"required,min=1"`
	Style         string   `json:"style"   validate:"required"`
	CaseSensitive bool     `json:"case_sensitive"`
	Enabled       bool     `json:"enabled"`
}

// AnnotatedReview is a review with its text rendered as an ordered run
// sequence. Annotation results are computed per request and never persisted.
type AnnotatedReview struct {
	Review *Review `json:"review"`
	Runs   []Run   `json:"runs"`
}
