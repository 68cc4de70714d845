package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jinzhu/copier"

	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/store"
)

// CreatePatternSet stores a new pattern set or undeletes and replaces an
// existing one with the same name.
func (s *PostgresReviewStore) CreatePatternSet(
	ctx context.Context,
	record *models.PatternSetRecord,
) (*models.PatternSetRecord, error) {
	if record.Name == "" {
		return nil, models.NewBadRequestError("pattern set name cannot be empty")
	}

	dbSet := PatternSetSchema{}
	if err := copier.Copy(&dbSet, record); err != nil {
		return nil, store.NewStorageError("unable to copy pattern set", err)
	}

	_, err := s.db.NewInsert().
		Model(&dbSet).
		Column("name", "phrases", "style", "case_sensitive", "enabled", "deleted_at").
		On("CONFLICT (name) DO UPDATE").
		Set("phrases = EXCLUDED.phrases").
		Set("style = EXCLUDED.style").
		Set("case_sensitive = EXCLUDED.case_sensitive").
		Set("enabled = EXCLUDED.enabled").
		Set("deleted_at = null").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, store.NewStorageError("failed to create pattern set", err)
	}

	return patternSetFromSchema(&dbSet)
}

func (s *PostgresReviewStore) GetPatternSet(
	ctx context.Context,
	name string,
) (*models.PatternSetRecord, error) {
	dbSet := PatternSetSchema{}
	err := s.db.NewSelect().
		Model(&dbSet).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("pattern set " + name)
		}
		return nil, store.NewStorageError("failed to get pattern set", err)
	}

	return patternSetFromSchema(&dbSet)
}

// ListPatternSets returns pattern sets in creation order, which is also the
// discovery-order priority the annotation resolver uses for ties.
func (s *PostgresReviewStore) ListPatternSets(
	ctx context.Context,
	enabledOnly bool,
) ([]models.PatternSetRecord, error) {
	var dbSets []PatternSetSchema
	query := s.db.NewSelect().
		Model(&dbSets).
		Order("id ASC")
	if enabledOnly {
		query = query.Where("enabled = true")
	}
	if err := query.Scan(ctx); err != nil {
		return nil, store.NewStorageError("failed to list pattern sets", err)
	}

	records := make([]models.PatternSetRecord, len(dbSets))
	for i := range dbSets {
		record, err := patternSetFromSchema(&dbSets[i])
		if err != nil {
			return nil, err
		}
		records[i] = *record
	}

	return records, nil
}

func (s *PostgresReviewStore) DeletePatternSet(ctx context.Context, name string) error {
	res, err := s.db.NewDelete().
		Model(&PatternSetSchema{}).
		Where("name = ?", name).
		Exec(ctx)
	if err != nil {
		return store.NewStorageError("failed to delete pattern set", err)
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return models.NewNotFoundError("pattern set " + name)
	}

	return nil
}

func patternSetFromSchema(dbSet *PatternSetSchema) (*models.PatternSetRecord, error) {
	record := models.PatternSetRecord{}
	if err := copier.Copy(&record, dbSet); err != nil {
		return nil, store.NewStorageError("unable to copy pattern set", err)
	}
	return &record, nil
}
