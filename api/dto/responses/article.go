// ABOUTME: Response DTOs for article and feed endpoints
// ABOUTME: Field names follow the JSON the web client renders

package responses

import "time"

// ArticleResponse is one cleaned article
type ArticleResponse struct {
	ID             string   `json:"id" doc:"Item GUID or link"`
	Source         string   `json:"source" doc:"Label of the feed the article came from"`
	Title          string   `json:"title" doc:"Plain-text title"`
	Summary        string   `json:"summary" doc:"Plain-text summary"`
	Link           string   `json:"link,omitempty" doc:"Link to the full article"`
	Author         string   `json:"author,omitempty" doc:"Author of the article"`
	Published      string   `json:"published,omitempty" doc:"Publication time, RFC 3339 when parseable"`
	MinutesFromNow *int     `json:"minutes_from_now" doc:"Minutes from now until publication, 0 when past, null when unknown"`
	Image          string   `json:"image,omitempty" doc:"Illustrative image URL"`
	Categories     []string `json:"categories,omitempty" doc:"Item categories"`
	Duration       int      `json:"duration,omitempty" doc:"Podcast episode length in seconds"`
}

// ArticlesResponse is a page of articles merged across sources
type ArticlesResponse struct {
	Articles []ArticleResponse `json:"articles" doc:"Articles, newest first"`
	Total    int               `json:"total" doc:"Number of articles across all pages"`
	Page     int               `json:"page" doc:"Current page number"`
	PerPage  int               `json:"per_page" doc:"Items per page"`
	Sources  int               `json:"sources" doc:"Number of sources fetched"`
}

// FeedResponse is a single fetched feed
type FeedResponse struct {
	Title       string            `json:"title" doc:"Feed title"`
	Description string            `json:"description" doc:"Feed description"`
	URL         string            `json:"url" doc:"Feed URL"`
	Link        string            `json:"link,omitempty" doc:"Website URL"`
	Language    string            `json:"language,omitempty" doc:"Feed language"`
	Image       string            `json:"image,omitempty" doc:"Feed image URL"`
	FeedType    string            `json:"feed_type" doc:"podcast, article or rss"`
	Updated     *time.Time        `json:"updated,omitempty" doc:"When the feed last changed"`
	Articles    []ArticleResponse `json:"articles" doc:"Feed entries in document order"`
}
