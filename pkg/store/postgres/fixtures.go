package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dbfixture"
	"gopkg.in/yaml.v3"
)

type Row interface {
	ReviewSchema | PatternSetSchema
}

type FixtureModel[T Row] struct {
	Model string `yaml:"model"`
	Rows  []T    `yaml:"rows"`
}

type Fixtures[T Row] []FixtureModel[T]

func generateTimeLastNDays(nDays int) time.Time {
	now := time.Now()
	start := now.Add(time.Duration(-nDays) * 24 * time.Hour)
	return gofakeit.DateRange(start, now)
}

// aspect and sentiment phrases seeded into generated review texts so that
// fixture data actually lights up on the dashboard.
var fixturePhrases = map[string][]string{
	"praise":     {"great", "love it", "works perfectly", "excellent"},
	"complaints": {"broke", "too expensive", "stopped working", "disappointing"},
	"aspects":    {"battery life", "battery", "screen", "sound quality", "shipping"},
}

var fixtureStyles = map[string]string{
	"praise":     "positive",
	"complaints": "negative",
	"aspects":    "aspect",
}

func generateReviewText() string {
	sentences := []string{gofakeit.Sentence(gofakeit.Number(5, 12))}
	for group, phrases := range fixturePhrases {
		if gofakeit.Bool() {
			phrase := phrases[gofakeit.Number(0, len(phrases)-1)]
			switch group {
			case "complaints":
				sentences = append(sentences, fmt.Sprintf("Sadly it %s after a month.", phrase))
			case "aspects":
				sentences = append(sentences, fmt.Sprintf("The %s is what stands out.", phrase))
			default:
				sentences = append(sentences, fmt.Sprintf("Overall: %s.", phrase))
			}
		}
	}
	return strings.Join(sentences, " ")
}

// GenerateFixtureData writes YAML fixtures for reviews and pattern sets to
// outputDir.
func GenerateFixtureData(fixtureCount int, outputDir string) {
	fakerGlobal := gofakeit.NewUnlocked(0)
	gofakeit.SetGlobalFaker(fakerGlobal)

	reviews := make([]ReviewSchema, fixtureCount)
	for i := 0; i < fixtureCount; i++ {
		dateCreated := generateTimeLastNDays(14)
		reviews[i] = ReviewSchema{
			UUID:      uuid.New(),
			CreatedAt: dateCreated,
			UpdatedAt: dateCreated,
			ProductID: gofakeit.ProductName(),
			Author:    gofakeit.Name(),
			Rating:    gofakeit.Number(1, 5),
			Text:      generateReviewText(),
		}
	}

	patternSets := make([]PatternSetSchema, 0, len(fixturePhrases))
	for name, phrases := range fixturePhrases {
		dateCreated := generateTimeLastNDays(14)
		patternSets = append(patternSets, PatternSetSchema{
			UUID:          uuid.New(),
			CreatedAt:     dateCreated,
			UpdatedAt:     dateCreated,
			Name:          name,
			Phrases:       phrases,
			Style:         fixtureStyles[name],
			CaseSensitive: false,
			Enabled:       true,
		})
	}

	reviewFixture := Fixtures[ReviewSchema]{
		{Model: "ReviewSchema", Rows: reviews},
	}
	patternSetFixture := Fixtures[PatternSetSchema]{
		{Model: "PatternSetSchema", Rows: patternSets},
	}

	if err := writeFixtureToYAML(reviewFixture, outputDir, "reviews.yaml"); err != nil {
		log.Fatalf("Error writing review fixtures: %s", err)
	}
	if err := writeFixtureToYAML(patternSetFixture, outputDir, "pattern_sets.yaml"); err != nil {
		log.Fatalf("Error writing pattern set fixtures: %s", err)
	}
}

func writeFixtureToYAML[T Row](fixtures Fixtures[T], outputDir, filename string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}

	data, err := yaml.Marshal(fixtures)
	if err != nil {
		return fmt.Errorf("failed to marshal fixtures: %w", err)
	}

	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write fixture file: %w", err)
	}

	return nil
}

// LoadFixtures loads all YAML fixture files in fixturePath into the
// database, recreating tables.
func LoadFixtures(ctx context.Context, db *bun.DB, fixturePath string) error {
	db.RegisterModel(
		(*ReviewSchema)(nil),
		(*PatternSetSchema)(nil),
	)

	fixture := dbfixture.New(db, dbfixture.WithRecreateTables())

	files, err := os.ReadDir(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, file := range files {
		if !file.IsDir() {
			switch filepath.Ext(file.Name()) {
			case ".yaml", ".yml":
				err := fixture.Load(ctx, os.DirFS(fixturePath), file.Name())
				if err != nil {
					return fmt.Errorf("failed to load fixture %s: %w", file.Name(), err)
				}
			}
		}
	}

	return nil
}
