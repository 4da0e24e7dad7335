// ABOUTME: Main client for the briefs library: fetch, clean and annotate feeds in-process
// ABOUTME: Offers the core pipeline without the HTTP server

package briefs

import (
	"context"

	"newsbrief-api/core/domain"
	"newsbrief-api/core/feed"
	"newsbrief-api/core/interfaces"
	stdhttp "newsbrief-api/infrastructure/http/standard"
	"newsbrief-api/pkg/utils/html"
	timeutil "newsbrief-api/pkg/utils/time"
)

// Article, Feed and Source are the core types, re-exported for callers
type (
	Article = domain.Article
	Feed    = domain.Feed
	Source  = domain.Source
)

// Client is the main entry point for the briefs library
type Client struct {
	feedService interfaces.FeedService
	annotator   *timeutil.Annotator
	config      Config
}

// New creates a new client with the given options
func New(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = stdhttp.NewStandardHTTPClient(config.Timeout)
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Clock:      config.Clock,
	}

	return &Client{
		feedService: feed.NewFeedService(deps, feed.WithMaxItems(config.MaxItems)),
		annotator:   timeutil.NewAnnotator(config.Clock),
		config:      config,
	}, nil
}

// Sources returns the configured sources
func (c *Client) Sources() []Source {
	out := make([]Source, len(c.config.Sources))
	copy(out, c.config.Sources)
	return out
}

// Articles fetches every configured source and returns their articles newest first
func (c *Client) Articles(ctx context.Context) ([]Article, error) {
	if len(c.config.Sources) == 0 {
		return nil, ErrNoSources
	}

	articles, err := c.feedService.FetchSources(ctx, c.config.Sources)
	if err != nil {
		return nil, classify(err, "fetching sources")
	}
	return articles, nil
}

// Feed fetches a single feed by URL
func (c *Client) Feed(ctx context.Context, url string) (*Feed, error) {
	f, err := c.feedService.FetchFeed(ctx, url)
	if err != nil {
		return nil, classify(err, "fetching feed")
	}
	return f, nil
}

// Clean turns raw feed text into plain text
func (c *Client) Clean(text string) string {
	return html.CleanText(text)
}

// Decode only decodes the recognized entities
func (c *Client) Decode(text string) string {
	return html.DecodeEntities(text)
}

// Minutes returns the minutes from the client's clock until iso, 0 if past, nil if unknown
func (c *Client) Minutes(iso string) *int {
	return c.annotator.MinutesFromISO(iso)
}
