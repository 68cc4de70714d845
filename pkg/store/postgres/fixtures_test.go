package postgres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateFixtureData(t *testing.T) {
	outputDir := t.TempDir()
	GenerateFixtureData(5, outputDir)

	t.Run("reviews", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(outputDir, "reviews.yaml"))
		require.NoError(t, err)

		var fixtures Fixtures[ReviewSchema]
		require.NoError(t, yaml.Unmarshal(data, &fixtures))
		require.Len(t, fixtures, 1)
		assert.Equal(t, "ReviewSchema", fixtures[0].Model)
		require.Len(t, fixtures[0].Rows, 5)
		for _, row := range fixtures[0].Rows {
			assert.NotEmpty(t, row.Text)
			assert.NotEmpty(t, row.ProductID)
			assert.GreaterOrEqual(t, row.Rating, 1)
			assert.LessOrEqual(t, row.Rating, 5)
		}
	})

	t.Run("pattern sets", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(outputDir, "pattern_sets.yaml"))
		require.NoError(t, err)

		var fixtures Fixtures[PatternSetSchema]
		require.NoError(t, yaml.Unmarshal(data, &fixtures))
		require.Len(t, fixtures, 1)
		require.Len(t, fixtures[0].Rows, len(fixturePhrases))
		for _, row := range fixtures[0].Rows {
			assert.NotEmpty(t, row.Name)
			assert.NotEmpty(t, row.Phrases)
			assert.NotEmpty(t, row.Style)
			assert.True(t, row.Enabled)
		}
	})
}
