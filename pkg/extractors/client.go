// Package extractors talks to the upstream phrase-extraction service.
// Extraction itself happens out of process; revmark posts review text and
// receives phrase groups, which it stores as pattern sets for annotation.
package extractors

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/revmark/revmark/config"
	"github.com/revmark/revmark/internal"
	"github.com/revmark/revmark/pkg/models"
)

var log = internal.GetLogger()

var _ models.PhraseExtractor = &Client{}

// Client is a retrying HTTP client for the phrase-extraction service.
type Client struct {
	serverURL string
	client    *retryablehttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		serverURL: cfg.Extractor.ServerURL,
		client: newRetryableHTTPClient(
			cfg.Extractor.MaxRetries,
			time.Duration(cfg.Extractor.Timeout)*time.Second,
		),
	}
}

func newRetryableHTTPClient(retryMax int, timeout time.Duration) *retryablehttp.Client {
	retryableHTTPClient := retryablehttp.NewClient()
	retryableHTTPClient.RetryMax = retryMax
	retryableHTTPClient.HTTPClient.Timeout = timeout
	retryableHTTPClient.Logger = internal.NewLeveledLogrus(log)
	retryableHTTPClient.Backoff = retryablehttp.DefaultBackoff
	retryableHTTPClient.CheckRetry = retryPolicy

	return retryableHTTPClient
}

// retryPolicy is a retryablehttp.CheckRetry function. It is used to determine
// whether a request should be retried or not.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	// do not retry on context.Canceled or context.DeadlineExceeded
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	// 400s indicate the review text was rejected; retrying won't help
	if resp != nil && resp.StatusCode == http.StatusBadRequest {
		return false, err
	}

	shouldRetry, _ := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	return shouldRetry, nil
}
