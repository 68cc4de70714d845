package annotate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revmark/revmark/pkg/models"
)

func concatRuns(runs []models.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func TestBuildRuns(t *testing.T) {
	t.Run("PlainAnnotatedPlain", func(t *testing.T) {
		text := "the battery life is great"
		resolved := []models.Match{
			{Start: 4, End: 16, Style: "aspect", SetID: "aspects"},
		}
		runs := BuildRuns(text, resolved)
		assert.Equal(t, []models.Run{
			{Text: "the "},
			{Text: "battery life", Style: "aspect"},
			{Text: " is great"},
		}, runs)
	})

	t.Run("MatchAtTextBoundaries", func(t *testing.T) {
		text := "great phone, great price"
		resolved := []models.Match{
			{Start: 0, End: 5, Style: "positive", SetID: "praise"},
			{Start: 13, End: 18, Style: "positive", SetID: "praise"},
			{Start: 19, End: 24, Style: "aspect", SetID: "aspects"},
		}
		runs := BuildRuns(text, resolved)
		require.Len(t, runs, 5)
		assert.Equal(t, "great", runs[0].Text)
		assert.Equal(t, "price", runs[4].Text)
		assert.Equal(t, text, concatRuns(runs))
	})

	t.Run("AdjacentMatchesEmitNoPlainRunBetween", func(t *testing.T) {
		text := "abcd"
		resolved := []models.Match{
			{Start: 0, End: 2, Style: "x", SetID: "a"},
			{Start: 2, End: 4, Style: "y", SetID: "b"},
		}
		runs := BuildRuns(text, resolved)
		assert.Equal(t, []models.Run{
			{Text: "ab", Style: "x"},
			{Text: "cd", Style: "y"},
		}, runs)
	})

	t.Run("NoMatchesYieldsSinglePlainRun", func(t *testing.T) {
		text := "nothing to see here"
		runs := BuildRuns(text, nil)
		assert.Equal(t, []models.Run{{Text: text}}, runs)
	})

	t.Run("EmptyText", func(t *testing.T) {
		assert.Empty(t, BuildRuns("", nil))
	})

	t.Run("RunBoundariesNeverSplitCharacters", func(t *testing.T) {
		text := "I ❤ the battery life 👍"
		sets := []models.PatternSet{
			{ID: "aspects", Phrases: []string{"battery life"}, Style: "aspect"},
		}
		runs := BuildRuns(text, Resolve(FindMatches(text, sets)))
		require.Len(t, runs, 3)
		assert.Equal(t, "battery life", runs[1].Text)
		for _, r := range runs {
			assert.True(t, utf8.ValidString(r.Text))
		}
		assert.Equal(t, text, concatRuns(runs))
	})

	t.Run("CJKAdjacency", func(t *testing.T) {
		text := "电池很好用"
		sets := []models.PatternSet{
			{ID: "praise", Phrases: []string{"很好"}, Style: "positive"},
		}
		runs := BuildRuns(text, Resolve(FindMatches(text, sets)))
		assert.Equal(t, []models.Run{
			{Text: "电池"},
			{Text: "很好", Style: "positive"},
			{Text: "用"},
		}, runs)
	})

	t.Run("PanicsOnMalformedMatches", func(t *testing.T) {
		assert.Panics(t, func() {
			BuildRuns("short", []models.Match{{Start: 2, End: 10}})
		})
		assert.Panics(t, func() {
			BuildRuns("abcdef", []models.Match{{Start: 3, End: 3}})
		})
		assert.Panics(t, func() {
			// overlapping input is not a legal Resolve output
			BuildRuns("abcdef", []models.Match{
				{Start: 0, End: 4},
				{Start: 2, End: 6},
			})
		})
	})
}
