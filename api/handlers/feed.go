// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Serves cleaned articles across configured sources and single feeds on demand

package handlers

import (
	"context"
	"net/http"

	"newsbrief-api/api/dto/mappers"
	"newsbrief-api/api/dto/responses"
	"newsbrief-api/core/domain"
	"newsbrief-api/core/errors"
	"newsbrief-api/core/feed"
	"newsbrief-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService interfaces.FeedService
	sources     domain.Sources
}

// NewFeedHandler creates a new feed handler over the configured sources
func NewFeedHandler(feedService interfaces.FeedService, sources []domain.Source) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		sources:     sources,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/api/articles",
		Summary:     "List cleaned articles",
		Description: "Fetches the configured sources, or one of them by name, and returns a page of cleaned articles newest first",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "getFeed",
		Method:      http.MethodGet,
		Path:        "/api/feed",
		Summary:     "Fetch a single RSS/Atom feed",
		Description: "Fetches the feed at the given URL and returns it with cleaned, time-annotated articles",
		Tags:        []string{"Feeds"},
	}, h.GetFeed)

	huma.Register(api, huma.Operation{
		OperationID: "listSources",
		Method:      http.MethodGet,
		Path:        "/api/sources",
		Summary:     "List configured sources",
		Tags:        []string{"Feeds"},
	}, h.ListSources)
}

// ListArticlesInput defines the query for the listArticles operation
type ListArticlesInput struct {
	Source  string `query:"source" doc:"Only return articles from this source"`
	Page    int    `query:"page" minimum:"1" default:"1" doc:"Page number (1-based)"`
	PerPage int    `query:"per_page" minimum:"1" maximum:"100" default:"20" doc:"Number of articles per page"`
}

// ListArticlesOutput defines the output for the listArticles operation
type ListArticlesOutput struct {
	Body responses.ArticlesResponse
}

// ListArticles handles GET /api/articles
func (h *FeedHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	if len(h.sources) == 0 {
		return nil, toHumaError(errors.ErrNoSources)
	}

	sources := []domain.Source(h.sources)
	if input.Source != "" {
		src, ok := h.sources.Lookup(input.Source)
		if !ok {
			return nil, toHumaError(&errors.NotFoundError{Resource: "source", ID: input.Source})
		}
		sources = []domain.Source{src}
	}

	articles, err := h.feedService.FetchSources(ctx, sources)
	if err != nil {
		return nil, toHumaError(err)
	}

	page, perPage := max(input.Page, 1), input.PerPage
	if perPage < 1 {
		perPage = feed.DefaultPerPage
	}

	return &ListArticlesOutput{
		Body: responses.ArticlesResponse{
			Articles: mappers.ToArticleResponses(feed.PaginateArticles(articles, page, perPage)),
			Total:    len(articles),
			Page:     page,
			PerPage:  perPage,
			Sources:  len(sources),
		},
	}, nil
}

// GetFeedInput defines the query for the getFeed operation
type GetFeedInput struct {
	URL string `query:"url" required:"true" doc:"RSS/Atom feed URL" example:"https://news.ycombinator.com/rss"`
}

// GetFeedOutput defines the output for the getFeed operation
type GetFeedOutput struct {
	Body responses.FeedResponse
}

// GetFeed handles GET /api/feed
func (h *FeedHandler) GetFeed(ctx context.Context, input *GetFeedInput) (*GetFeedOutput, error) {
	f, err := h.feedService.FetchFeed(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetFeedOutput{Body: *mappers.ToFeedResponse(f)}, nil
}

// ListSourcesOutput defines the output for the listSources operation
type ListSourcesOutput struct {
	Body responses.SourcesResponse
}

// ListSources handles GET /api/sources
func (h *FeedHandler) ListSources(ctx context.Context, input *struct{}) (*ListSourcesOutput, error) {
	return &ListSourcesOutput{
		Body: responses.SourcesResponse{Sources: mappers.ToSourceResponses(h.sources)},
	}, nil
}
