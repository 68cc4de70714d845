package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revmark/revmark/pkg/models"
)

func TestAnnotate(t *testing.T) {
	praise := models.PatternSet{
		ID:      "praise",
		Phrases: []string{"great", "love it"},
		Style:   "positive",
	}
	complaints := models.PatternSet{
		ID:      "complaints",
		Phrases: []string{"broke", "too expensive"},
		Style:   "negative",
	}

	t.Run("NoPatternSetsIsIdentity", func(t *testing.T) {
		text := "an unremarkable review"
		runs := Annotate(text, nil)
		assert.Equal(t, []models.Run{{Text: text}}, runs)
	})

	t.Run("EmptyText", func(t *testing.T) {
		assert.Empty(t, Annotate("", []models.PatternSet{praise}))
	})

	t.Run("AllBlankPhrasesIsIdentity", func(t *testing.T) {
		text := "an unremarkable review"
		runs := Annotate(text, []models.PatternSet{
			{ID: "blank", Phrases: []string{"", "   "}},
		})
		assert.Equal(t, []models.Run{{Text: text}}, runs)
	})

	t.Run("MultipleSets", func(t *testing.T) {
		text := "great sound but it broke in a week"
		runs := Annotate(text, []models.PatternSet{praise, complaints})
		assert.Equal(t, []models.Run{
			{Text: "great", Style: "positive"},
			{Text: " sound but it "},
			{Text: "broke", Style: "negative"},
			{Text: " in a week"},
		}, runs)
	})

	t.Run("OriginalCasingPreserved", func(t *testing.T) {
		runs := Annotate("This is GREAT value", []models.PatternSet{praise})
		require.Len(t, runs, 3)
		assert.Equal(t, "GREAT", runs[1].Text)
		assert.Equal(t, "positive", runs[1].Style)
	})

	t.Run("Deterministic", func(t *testing.T) {
		text := "love it, great battery, broke once"
		sets := []models.PatternSet{praise, complaints}
		first := Annotate(text, sets)
		second := Annotate(text, sets)
		assert.Equal(t, first, second)
	})

	t.Run("CoverageInvariant", func(t *testing.T) {
		texts := []string{
			"great",
			"no matches at all",
			"great great great",
			"I ❤ it, love it 👍 GREAT",
			"aaaa",
			"电池很好用, love it",
		}
		sets := []models.PatternSet{
			praise,
			complaints,
			{ID: "dup", Phrases: []string{"aa"}},
			{ID: "cjk", Phrases: []string{"很好"}},
		}
		for _, text := range texts {
			runs := Annotate(text, sets)
			assert.Equal(t, text, concatRuns(runs), "coverage broken for %q", text)
		}
	})
}
