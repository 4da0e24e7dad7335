// ABOUTME: Feed service fetches RSS/Atom feeds and turns items into cleaned articles
// ABOUTME: Every title and summary goes through CleanText, every date through MinutesFromISO

package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsbrief-api/core/domain"
	coreerrors "newsbrief-api/core/errors"
	"newsbrief-api/core/interfaces"
	"newsbrief-api/pkg/utils/duration"
	"newsbrief-api/pkg/utils/html"
	timeutil "newsbrief-api/pkg/utils/time"

	"github.com/mmcdole/gofeed"
)

// maxFeedBytes bounds how much of a response body is read
const maxFeedBytes = 10 << 20

// FeedService handles feed fetching and normalization
type FeedService struct {
	deps      interfaces.Dependencies
	logger    interfaces.Logger
	annotator *timeutil.Annotator
	maxItems  int
}

// Option configures a FeedService
type Option func(*FeedService)

// WithMaxItems caps the number of articles kept per feed; 0 keeps all
func WithMaxItems(n int) Option {
	return func(s *FeedService) {
		if n > 0 {
			s.maxItems = n
		}
	}
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, opts ...Option) *FeedService {
	s := &FeedService{
		deps:      deps,
		logger:    deps.Logger,
		annotator: timeutil.NewAnnotator(deps.Clock),
	}
	if s.logger == nil {
		s.logger = interfaces.NopLogger{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchFeed fetches a single feed and returns it with cleaned articles
func (s *FeedService) FetchFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	return s.fetch(ctx, domain.Source{URL: feedURL})
}

// FetchSources fetches each source in turn and merges their articles,
// newest first. A failing source is logged and skipped; the call only fails
// when the context is done or no source could be fetched at all.
func (s *FeedService) FetchSources(ctx context.Context, sources []domain.Source) ([]domain.Article, error) {
	articles := make([]domain.Article, 0)
	if len(sources) == 0 {
		return articles, nil
	}

	var lastErr error
	succeeded := 0

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return articles, err
		}

		feed, err := s.fetch(ctx, src)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return articles, ctxErr
			}
			s.logger.Warn("Skipping source", map[string]interface{}{
				"source": src.Label(),
				"url":    src.URL,
				"error":  err.Error(),
			})
			lastErr = err
			continue
		}

		succeeded++
		articles = append(articles, feed.Articles...)
	}

	if succeeded == 0 && lastErr != nil {
		return nil, coreerrors.WrapError(lastErr, "no source could be fetched")
	}

	domain.SortNewestFirst(articles)
	return articles, nil
}

func (s *FeedService) fetch(ctx context.Context, src domain.Source) (*domain.Feed, error) {
	if strings.TrimSpace(src.URL) == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "feed URL cannot be empty"}
	}
	if err := src.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "url", Message: err.Error()}
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	host := hostOf(src.URL)
	start := time.Now()

	resp, err := s.deps.HTTPClient.Get(ctx, src.URL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "request failed",
			API:        host,
			Err:        err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        host,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxFeedBytes))
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "reading feed body failed",
			API:        host,
			Err:        err,
		}
	}

	feed, err := s.parseFeedContent(body, src)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    "document is not a valid RSS/Atom feed",
			API:        host,
			Err:        err,
		}
	}

	s.logger.Debug("Fetched feed", map[string]interface{}{
		"url":         src.URL,
		"articles":    len(feed.Articles),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return feed, nil
}

// parseFeedContent parses feed content from bytes
func (s *FeedService) parseFeedContent(content []byte, src domain.Source) (*domain.Feed, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("empty feed content")
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	feed := &domain.Feed{
		Title:       html.CleanText(parsed.Title),
		Description: html.CleanText(parsed.Description),
		URL:         src.URL,
		Link:        parsed.Link,
		Language:    parsed.Language,
		FeedType:    detectFeedType(parsed),
		Articles:    make([]domain.Article, 0, len(parsed.Items)),
	}

	if parsed.UpdatedParsed != nil {
		feed.Updated = parsed.UpdatedParsed
	} else if parsed.PublishedParsed != nil {
		feed.Updated = parsed.PublishedParsed
	}

	if parsed.Image != nil {
		feed.Image = parsed.Image.URL
	}
	if parsed.ITunesExt != nil && parsed.ITunesExt.Image != "" {
		feed.Image = parsed.ITunesExt.Image
	}

	label := src.Name
	if label == "" {
		label = feed.Title
	}
	if label == "" {
		label = src.Label()
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		article := s.convertItem(item, parsed, label)
		if !article.IsValid() {
			continue
		}
		feed.Articles = append(feed.Articles, article)
		if s.maxItems > 0 && len(feed.Articles) >= s.maxItems {
			break
		}
	}

	return feed, nil
}

// convertItem converts a gofeed item to a cleaned, annotated article
func (s *FeedService) convertItem(item *gofeed.Item, feed *gofeed.Feed, source string) domain.Article {
	article := domain.Article{
		ID:         item.GUID,
		Source:     source,
		Title:      html.CleanText(item.Title),
		Summary:    html.CleanText(firstNonEmpty(item.Description, item.Content, itunesSummary(item))),
		Link:       item.Link,
		Author:     authorOf(item),
		Image:      findImage(item, feed),
		Categories: item.Categories,
	}

	if article.ID == "" {
		article.ID = item.Link
	}

	switch {
	case item.PublishedParsed != nil:
		article.Published = item.PublishedParsed
	case item.UpdatedParsed != nil:
		article.Published = item.UpdatedParsed
	default:
		if t, ok := timeutil.ParseFlexibleTime(firstNonEmpty(item.Published, item.Updated)); ok {
			article.Published = &t
		}
	}

	if article.Published != nil {
		article.PublishedISO = article.Published.UTC().Format(time.RFC3339)
	} else {
		article.PublishedISO = strings.TrimSpace(firstNonEmpty(item.Published, item.Updated))
	}
	article.MinutesFromNow = s.annotator.MinutesFromISO(article.PublishedISO)

	if item.ITunesExt != nil {
		if secs, ok := duration.ToSeconds(item.ITunesExt.Duration); ok {
			article.DurationSeconds = secs
		}
	}

	return article
}

// detectFeedType determines if this is an article feed, podcast, or generic RSS
func detectFeedType(feed *gofeed.Feed) string {
	if feed.ITunesExt != nil {
		return "podcast"
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "audio/") || strings.HasPrefix(enc.Type, "video/") {
				return "podcast"
			}
		}
	}

	title := strings.ToLower(feed.Title)
	if strings.Contains(title, "news") || strings.Contains(title, "blog") ||
		strings.Contains(strings.ToLower(feed.Description), "news") {
		return "article"
	}

	return "rss"
}

func authorOf(item *gofeed.Item) string {
	if item.ITunesExt != nil && item.ITunesExt.Author != "" {
		return html.CleanText(item.ITunesExt.Author)
	}
	if item.Author != nil && item.Author.Name != "" {
		return html.CleanText(item.Author.Name)
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return html.CleanText(a.Name)
		}
	}
	return ""
}

func itunesSummary(item *gofeed.Item) string {
	if item.ITunesExt == nil {
		return ""
	}
	return item.ITunesExt.Summary
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func hostOf(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return u.Host
	}
	return raw
}
