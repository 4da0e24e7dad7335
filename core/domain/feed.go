// ABOUTME: Feed domain model represents a fetched RSS/Atom feed with cleaned articles
// ABOUTME: Source describes a configured feed the service pulls from

package domain

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Source is a configured feed
type Source struct {
	// Name is the human-readable label used to filter articles
	Name string `yaml:"name" json:"name"`

	// URL is the RSS/Atom document URL
	URL string `yaml:"url" json:"url"`
}

// Validate checks the source has a usable absolute http(s) URL
func (s Source) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return errors.New("source URL cannot be empty")
	}

	u, err := url.Parse(s.URL)
	if err != nil || u.Host == "" {
		return errors.New("source URL is not a valid absolute URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("source URL must use http or https")
	}

	return nil
}

// Label returns the name, falling back to the URL host
func (s Source) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if u, err := url.Parse(s.URL); err == nil && u.Host != "" {
		return u.Host
	}
	return s.URL
}

// Sources is an ordered list of configured feeds
type Sources []Source

// Lookup finds a source by label, ignoring case
func (s Sources) Lookup(name string) (Source, bool) {
	for _, src := range s {
		if strings.EqualFold(src.Label(), name) {
			return src, true
		}
	}
	return Source{}, false
}

// Feed represents a fetched RSS or Atom feed
type Feed struct {
	// Title is the cleaned feed title
	Title string

	// Description is the cleaned feed description
	Description string

	// URL is the feed's source URL (the actual RSS/Atom URL)
	URL string

	// Link is the website URL associated with the feed
	Link string

	Language string
	Image    string
	FeedType string // "podcast", "article" or "rss"

	// Updated is when the feed says it last changed, nil if it doesn't say
	Updated *time.Time

	// Articles are the feed entries, already cleaned and annotated
	Articles []Article
}
