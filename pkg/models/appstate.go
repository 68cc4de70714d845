package models

import (
	"context"

	"github.com/revmark/revmark/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	ReviewStore ReviewStore
	Extractor   PhraseExtractor
	Config      *config.Config
}

// PhraseExtractor is a client for the upstream phrase-extraction service.
// It is nil when the extractor is disabled in config.
type PhraseExtractor interface {
	ExtractPhrases(ctx context.Context, text string) ([]PatternSet, error)
}
