// ABOUTME: Article domain model is one cleaned, time-annotated feed entry
// ABOUTME: Provides validation and ordering helpers

package domain

import (
	"sort"
	"time"
)

// Article is a feed item after text normalization and time annotation
type Article struct {
	// ID is the item GUID, or its link when the feed has none
	ID string

	// Source is the label of the feed the article came from
	Source string

	// Title and Summary are plain text: no markup, entities or whitespace runs
	Title   string
	Summary string

	Link   string
	Author string

	// Published is the parsed publish instant, nil when the feed omits it
	Published *time.Time

	// PublishedISO is Published rendered as RFC 3339, or the raw feed value
	// when it could not be parsed
	PublishedISO string

	// MinutesFromNow is the non-negative minute offset of PublishedISO from
	// the time of annotation; nil means unknown
	MinutesFromNow *int

	Image      string
	Categories []string

	// DurationSeconds is the podcast episode length, 0 when not a podcast
	DurationSeconds int
}

// IsValid checks the article has something to show
func (a *Article) IsValid() bool {
	return a.Title != "" || a.Link != ""
}

// SortNewestFirst orders articles by publish time, undated ones last.
// The sort is stable so feed order is kept among equals.
func SortNewestFirst(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		pi, pj := articles[i].Published, articles[j].Published
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})
}
