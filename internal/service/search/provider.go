package search

import (
	"context"
	"errors"

	"answerbox/internal/model"
)

// Provider fetches web search results for a query and normalizes them into
// citation sources. location is optional and may be empty.
type Provider interface {
	Search(ctx context.Context, query, location string) ([]model.SearchSource, error)
}

var (
	ErrMissingAPIKey = errors.New("search: missing API key")
)
