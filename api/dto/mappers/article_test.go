package mappers

import (
	"testing"
	"time"

	"newsbrief-api/core/domain"
)

func TestToArticleResponse(t *testing.T) {
	published := time.Date(2024, 3, 10, 12, 5, 0, 0, time.UTC)
	minutes := 5
	article := domain.Article{
		ID:              "post-1",
		Source:          "example",
		Title:           "Hello & world",
		Summary:         "Hello & world !",
		Link:            "https://example.com/posts/1",
		Author:          "Jane",
		Published:       &published,
		PublishedISO:    "2024-03-10T12:05:00Z",
		MinutesFromNow:  &minutes,
		Image:           "https://example.com/a.png",
		Categories:      []string{"tech"},
		DurationSeconds: 90,
	}

	resp := ToArticleResponse(article)

	if resp.ID != "post-1" || resp.Source != "example" || resp.Title != "Hello & world" {
		t.Errorf("identity fields not copied: %+v", resp)
	}
	if resp.Published != "2024-03-10T12:05:00Z" {
		t.Errorf("Published = %q, want the RFC 3339 form", resp.Published)
	}
	if resp.MinutesFromNow == nil || *resp.MinutesFromNow != 5 {
		t.Errorf("MinutesFromNow = %v, want 5", resp.MinutesFromNow)
	}
	if resp.Duration != 90 {
		t.Errorf("Duration = %d, want 90", resp.Duration)
	}
}

func TestToArticleResponses_Empty(t *testing.T) {
	resp := ToArticleResponses(nil)
	if resp == nil || len(resp) != 0 {
		t.Errorf("ToArticleResponses(nil) = %v, want empty non-nil slice", resp)
	}
}

func TestToFeedResponse(t *testing.T) {
	if ToFeedResponse(nil) != nil {
		t.Error("ToFeedResponse(nil) should be nil")
	}

	feed := &domain.Feed{
		Title:    "Tech & News",
		URL:      "https://example.com/feed.xml",
		FeedType: "article",
		Articles: []domain.Article{{ID: "1", Title: "One"}, {ID: "2", Title: "Two"}},
	}

	resp := ToFeedResponse(feed)

	if resp.Title != feed.Title || resp.URL != feed.URL || resp.FeedType != "article" {
		t.Errorf("feed fields not copied: %+v", resp)
	}
	if len(resp.Articles) != 2 || resp.Articles[1].Title != "Two" {
		t.Errorf("Articles = %+v", resp.Articles)
	}
}

func TestToSourceResponses(t *testing.T) {
	resp := ToSourceResponses([]domain.Source{
		{Name: "lemonde", URL: "https://www.lemonde.fr/rss/une.xml"},
		{URL: "https://news.ycombinator.com/rss"},
	})

	if len(resp) != 2 {
		t.Fatalf("got %d sources, want 2", len(resp))
	}
	if resp[0].Name != "lemonde" {
		t.Errorf("Name = %q, want lemonde", resp[0].Name)
	}
	if resp[1].Name != "news.ycombinator.com" {
		t.Errorf("unnamed source Name = %q, want host", resp[1].Name)
	}
}
