// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps JSON field naming out of the core packages

package mappers

import (
	"newsbrief-api/api/dto/responses"
	"newsbrief-api/core/domain"
)

// ToArticleResponse converts a domain Article to its DTO
func ToArticleResponse(a domain.Article) responses.ArticleResponse {
	return responses.ArticleResponse{
		ID:             a.ID,
		Source:         a.Source,
		Title:          a.Title,
		Summary:        a.Summary,
		Link:           a.Link,
		Author:         a.Author,
		Published:      a.PublishedISO,
		MinutesFromNow: a.MinutesFromNow,
		Image:          a.Image,
		Categories:     a.Categories,
		Duration:       a.DurationSeconds,
	}
}

// ToArticleResponses converts a slice, never returning nil
func ToArticleResponses(articles []domain.Article) []responses.ArticleResponse {
	out := make([]responses.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ToArticleResponse(a))
	}
	return out
}

// ToFeedResponse converts a domain Feed to a FeedResponse DTO
func ToFeedResponse(feed *domain.Feed) *responses.FeedResponse {
	if feed == nil {
		return nil
	}

	return &responses.FeedResponse{
		Title:       feed.Title,
		Description: feed.Description,
		URL:         feed.URL,
		Link:        feed.Link,
		Language:    feed.Language,
		Image:       feed.Image,
		FeedType:    feed.FeedType,
		Updated:     feed.Updated,
		Articles:    ToArticleResponses(feed.Articles),
	}
}

// ToSourceResponses converts configured sources, labelling unnamed ones by host
func ToSourceResponses(sources []domain.Source) []responses.SourceResponse {
	out := make([]responses.SourceResponse, 0, len(sources))
	for _, s := range sources {
		out = append(out, responses.SourceResponse{Name: s.Label(), URL: s.URL})
	}
	return out
}
