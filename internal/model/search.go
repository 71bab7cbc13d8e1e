package model

// SearchRequest is a validated, sanitized inbound query.
type SearchRequest struct {
	Query    string
	Location string
}

// SearchSource is a single web search result normalized for citation display.
type SearchSource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Favicon     string `json:"favicon,omitempty"`
}

// SearchResponse is the assembled answer plus the sources it was grounded on.
type SearchResponse struct {
	Answer  string         `json:"answer"`
	Sources []SearchSource `json:"sources"`
}
