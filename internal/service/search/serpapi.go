package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"answerbox/internal/model"
	"answerbox/pkg/sanitizer"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// SerpAPIClient implements Provider on top of the SerpAPI web search API.
type SerpAPIClient struct {
	apiKey      string
	baseURL     string
	resultCount int
	httpClient  *http.Client
}

// NewSerpAPIClient creates a SerpAPI-backed search provider. An empty
// baseURL selects the public endpoint.
func NewSerpAPIClient(apiKey, baseURL string, resultCount int, httpClient *http.Client) (*SerpAPIClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SerpAPIClient{
		apiKey:      apiKey,
		baseURL:     baseURL,
		resultCount: resultCount,
		httpClient:  httpClient,
	}, nil
}

type serpResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Favicon string `json:"favicon"`
}

type serpResponse struct {
	Error          string       `json:"error"`
	OrganicResults []serpResult `json:"organic_results"`
}

// Search issues a single GET to the provider and maps organic results to
// sources. A missing results array is an empty answer set, not an error;
// results without a link are dropped, relative order otherwise preserved.
func (c *SerpAPIClient) Search(ctx context.Context, query, location string) ([]model.SearchSource, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("engine", "google")
	params.Set("num", strconv.Itoa(c.resultCount))
	params.Set("api_key", c.apiKey)
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search HTTP %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var parsed serpResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("search provider error: %s", parsed.Error)
	}

	sources := make([]model.SearchSource, 0, len(parsed.OrganicResults))
	for i, r := range parsed.OrganicResults {
		if r.Link == "" {
			continue
		}
		sources = append(sources, toSource(i, r))
	}
	return sources, nil
}

func toSource(index int, r serpResult) model.SearchSource {
	title := sanitizer.StripTags(r.Title)
	if title == "" {
		title = "No title"
	}
	description := sanitizer.StripTags(r.Snippet)
	if description == "" {
		description = "No description available"
	}
	favicon := r.Favicon
	if favicon == "" {
		if parsed, err := url.Parse(r.Link); err == nil && parsed.Hostname() != "" {
			favicon = "https://www.google.com/s2/favicons?domain=" + parsed.Hostname() + "&sz=64"
		}
	}
	return model.SearchSource{
		ID:          fmt.Sprintf("serp-%d", index+1),
		Title:       title,
		URL:         r.Link,
		Description: description,
		Favicon:     favicon,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
