package extractors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/revmark/revmark/pkg/models"
)

// ExtractorError is returned when a call to the extraction service fails.
type ExtractorError struct {
	message       string
	originalError error
}

func (e *ExtractorError) Error() string {
	return fmt.Sprintf("extractor error: %s (original error: %v)", e.message, e.originalError)
}

func NewExtractorError(message string, originalError error) *ExtractorError {
	return &ExtractorError{message: message, originalError: originalError}
}

type phraseRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type phraseGroup struct {
	Label         string   `json:"label"`
	Phrases       []string `json:"phrases"`
	Style         string   `json:"style"`
	CaseSensitive bool     `json:"caseSensitive"`
}

type phraseResponse struct {
	Groups []phraseGroup `json:"groups"`
}

// ExtractPhrases posts the review text to the extraction service and
// returns the phrase groups as pattern sets, preserving the service's group
// order. Groups with no phrases are dropped.
func (c *Client) ExtractPhrases(
	ctx context.Context,
	text string,
) ([]models.PatternSet, error) {
	requestBody := phraseRequest{Text: text, Language: "en"}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, NewExtractorError("failed to marshal phrase request", err)
	}

	url := c.serverURL + "/phrases"
	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, NewExtractorError("failed to create phrase request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewExtractorError("phrase extraction call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewExtractorError(
			fmt.Sprintf("phrase extraction returned status %d", resp.StatusCode),
			nil,
		)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewExtractorError("failed to read phrase response", err)
	}

	var phrases phraseResponse
	if err := json.Unmarshal(bodyBytes, &phrases); err != nil {
		return nil, NewExtractorError("failed to unmarshal phrase response", err)
	}

	sets := make([]models.PatternSet, 0, len(phrases.Groups))
	for _, group := range phrases.Groups {
		if len(group.Phrases) == 0 {
			continue
		}
		sets = append(sets, models.PatternSet{
			ID:            group.Label,
			Phrases:       group.Phrases,
			Style:         group.Style,
			CaseSensitive: group.CaseSensitive,
		})
	}

	log.Debugf("extracted %d phrase groups", len(sets))
	return sets, nil
}
