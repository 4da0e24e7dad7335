// Package core contains the business logic for the Newsbrief API.
// It has no HTTP framework dependencies and can be used on its own,
// which is what the briefs library and the briefctl command do.
//
// The core package is organized into several sub-packages:
//
// - domain: Article, Feed and Source models
// - feed: Fetches RSS/Atom feeds and turns items into cleaned, annotated articles
// - errors: Domain error types and the sentinels the API maps to status codes
// - interfaces: Contracts for external dependencies (HTTP, logger, clock)
//
// Text cleaning and minute annotation live in pkg/utils so they can be
// called without a feed.
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: standard.NewStandardHTTPClient(15 * time.Second),
//	    Logger:     myLogger,
//	    Clock:      time.Now,
//	}
//
//	feedService := feed.NewFeedService(deps, feed.WithMaxItems(50))
//
//	articles, err := feedService.FetchSources(ctx, []domain.Source{
//	    {Name: "Example", URL: "https://example.com/feed.rss"},
//	})
package core
