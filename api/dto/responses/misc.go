// ABOUTME: Response DTOs for sources, normalization and health endpoints
// ABOUTME: Small shapes that sit beside the article responses

package responses

import "time"

// SourceResponse is a configured feed
type SourceResponse struct {
	Name string `json:"name" doc:"Source label used by the articles filter"`
	URL  string `json:"url" doc:"Feed URL"`
}

// SourcesResponse lists configured feeds
type SourcesResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// NormalizeResponse exposes the text and time utilities directly
type NormalizeResponse struct {
	Text    string `json:"text" doc:"Cleaned text: no markup, entities or whitespace runs"`
	Decoded string `json:"decoded" doc:"Text with entities decoded only"`
	Minutes *int   `json:"minutes" doc:"Minutes from now until published, null when absent or unparsable"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status  string    `json:"status" example:"ok"`
	Time    time.Time `json:"time"`
	Sources int       `json:"sources" doc:"Number of configured sources"`
}
