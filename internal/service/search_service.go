package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"answerbox/internal/model"
	"answerbox/internal/ratelimit"
	"answerbox/internal/service/ai"
	"answerbox/internal/service/search"
	"answerbox/pkg/logger"
	"answerbox/pkg/sanitizer"
)

// SearchService validates an inbound query, applies the per-client rate
// limit, fetches web sources, and synthesizes a cited answer. The steps run
// strictly in sequence; synthesis happens even when the fetch yields zero
// sources.
type SearchService interface {
	Search(ctx context.Context, clientID string, body map[string]any) (model.SearchResponse, error)
}

type searchService struct {
	limiter        ratelimit.Store
	searcher       search.Provider
	synthesizer    ai.Provider
	aiLimiter      *ai.RateLimiter
	maxQueryLength int
}

func NewSearchService(limiter ratelimit.Store, searcher search.Provider, synthesizer ai.Provider, aiLimiter *ai.RateLimiter, maxQueryLength int) SearchService {
	return &searchService{
		limiter:        limiter,
		searcher:       searcher,
		synthesizer:    synthesizer,
		aiLimiter:      aiLimiter,
		maxQueryLength: maxQueryLength,
	}
}

func (s *searchService) Search(ctx context.Context, clientID string, body map[string]any) (model.SearchResponse, error) {
	req, err := s.validateRequest(body)
	if err != nil {
		return model.SearchResponse{}, err
	}

	if !s.limiter.Allow(clientID, time.Now()) {
		return model.SearchResponse{}, ErrRateLimited
	}

	sources, err := s.searcher.Search(ctx, req.Query, req.Location)
	if err != nil {
		logger.Error("web search failed", "client", clientID, "error", err)
		return model.SearchResponse{}, fmt.Errorf("failed to perform web search: %w", ErrUpstream)
	}

	if err := s.aiLimiter.Wait(ctx); err != nil {
		return model.SearchResponse{}, fmt.Errorf("failed to generate answer: %w", ErrUpstream)
	}
	answer, err := s.synthesizer.Synthesize(ctx, ai.SystemPrompt, ai.AnswerPrompt(req.Query, sources))
	if err != nil {
		logger.Error("answer synthesis failed", "client", clientID, "error", err)
		return model.SearchResponse{}, fmt.Errorf("failed to generate answer: %w", ErrUpstream)
	}
	if strings.TrimSpace(answer) == "" {
		answer = ai.FallbackAnswer
	}

	return model.SearchResponse{Answer: answer, Sources: sources}, nil
}

// validateRequest turns a decoded JSON body into a sanitized SearchRequest.
// Unknown fields are ignored; an unusable location is dropped silently
// rather than rejected.
func (s *searchService) validateRequest(body map[string]any) (model.SearchRequest, error) {
	raw, ok := body["query"].(string)
	if !ok {
		return model.SearchRequest{}, invalid("Query is required and must be a string")
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.SearchRequest{}, invalid("Query is required and must be a string")
	}
	if utf8.RuneCountInString(trimmed) > s.maxQueryLength {
		return model.SearchRequest{}, invalid(fmt.Sprintf("Query must be %d characters or less", s.maxQueryLength))
	}
	query := sanitizer.CleanQuery(trimmed)
	if query == "" {
		return model.SearchRequest{}, invalid("Query cannot be empty")
	}

	req := model.SearchRequest{Query: query}
	if rawLocation, ok := body["location"].(string); ok {
		location := sanitizer.CleanQuery(rawLocation)
		if n := utf8.RuneCountInString(location); n >= 1 && n <= 100 {
			req.Location = location
		}
	}
	return req, nil
}
