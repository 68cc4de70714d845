package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revmark/revmark/pkg/models"
)

func TestStyleClass(t *testing.T) {
	assert.Equal(t, "run-positive", StyleClass("positive"))
	assert.Equal(t, "run-negative", StyleClass("negative"))
	assert.Equal(t, defaultStyleClass, StyleClass("some-new-style"))
}

func TestRenderRuns(t *testing.T) {
	runs := []models.Run{
		{Text: "The "},
		{Text: "battery life", Style: "positive"},
		{Text: " is <great>"},
	}

	got := string(RenderRuns(runs))

	assert.Equal(
		t,
		`The <span class="run-positive">battery life</span> is &lt;great&gt;`,
		got,
	)
}

func TestRenderRunsEscapesStyledText(t *testing.T) {
	runs := []models.Run{
		{Text: "<script>", Style: "negative"},
	}

	got := string(RenderRuns(runs))

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestRenderRunsEmpty(t *testing.T) {
	assert.Empty(t, string(RenderRuns(nil)))
}

func TestCodeHighlight(t *testing.T) {
	highlighted, err := CodeHighlight(`{"text": "battery life"}`, "json")
	assert.NoError(t, err)
	assert.Contains(t, highlighted, "<pre")
	assert.Contains(t, highlighted, "battery life")
}
