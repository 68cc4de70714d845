package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revmark/revmark/pkg/models"
)

func postJSON(t *testing.T, router http.Handler, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestAnnotateHandler(t *testing.T) {
	router := setupRouter(testAppState(newMemReviewStore()))

	request := AnnotateRequest{
		Text: "The battery life is great. BATTERY included.",
		PatternSets: []models.PatternSet{
			{ID: "aspects", Phrases: []string{"battery", "battery life"}, Style: "aspect"},
			{ID: "praise", Phrases: []string{"great"}, Style: "positive"},
		},
	}

	res := postJSON(t, router, "/api/v1/annotate", request)
	require.Equal(t, http.StatusOK, res.Code)

	var response AnnotateResponse
	err := json.NewDecoder(res.Body).Decode(&response)
	require.NoError(t, err)

	expected := []models.Run{
		{Text: "The "},
		{Text: "battery life", Style: "aspect"},
		{Text: " is "},
		{Text: "great", Style: "positive"},
		{Text: ". "},
		{Text: "BATTERY", Style: "aspect"},
		{Text: " included."},
	}
	assert.Equal(t, expected, response.Runs)
}

func TestAnnotateHandlerEmptyText(t *testing.T) {
	router := setupRouter(testAppState(newMemReviewStore()))

	request := AnnotateRequest{
		Text: "",
		PatternSets: []models.PatternSet{
			{ID: "praise", Phrases: []string{"great"}, Style: "positive"},
		},
	}

	res := postJSON(t, router, "/api/v1/annotate", request)
	require.Equal(t, http.StatusOK, res.Code)

	var response AnnotateResponse
	err := json.NewDecoder(res.Body).Decode(&response)
	require.NoError(t, err)
	assert.Empty(t, response.Runs)
}

func TestAnnotateHandlerNoPatternSets(t *testing.T) {
	router := setupRouter(testAppState(newMemReviewStore()))

	request := AnnotateRequest{
		Text: "Nothing to see here.",
	}

	res := postJSON(t, router, "/api/v1/annotate", request)
	require.Equal(t, http.StatusOK, res.Code)

	var response AnnotateResponse
	err := json.NewDecoder(res.Body).Decode(&response)
	require.NoError(t, err)
	require.Len(t, response.Runs, 1)
	assert.Equal(t, "Nothing to see here.", response.Runs[0].Text)
	assert.True(t, response.Runs[0].Plain())
}

func TestAnnotateHandlerInvalidJSON(t *testing.T) {
	router := setupRouter(testAppState(newMemReviewStore()))

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/annotate",
		bytes.NewReader([]byte("{not json")),
	)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusBadRequest, res.Code)
}
