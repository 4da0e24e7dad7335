// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the contracts the HTTP layer, CLI and library consume

package interfaces

import (
	"context"

	"newsbrief-api/core/domain"
)

// FeedService fetches feeds and turns their items into cleaned articles
type FeedService interface {
	FetchFeed(ctx context.Context, url string) (*domain.Feed, error)
	FetchSources(ctx context.Context, sources []domain.Source) ([]domain.Article, error)
}

// TimeAnnotator turns timestamps into minute offsets from now; nil is unknown
type TimeAnnotator interface {
	MinutesFromISO(iso string) *int
}
