// ABOUTME: Image discovery for feed items
// ABOUTME: Looks at feed metadata first, then at the first <img> in the item HTML

package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// findImage picks an illustrative image for an item. Priority:
// iTunes image, image enclosure, item image, first <img> in the item HTML,
// then the feed-level images. No network requests are made.
func findImage(item *gofeed.Item, feed *gofeed.Feed) string {
	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}

	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	for _, markup := range []string{item.Content, item.Description} {
		if src := firstImageSrc(markup, item.Link); src != "" {
			return src
		}
	}

	if feed != nil && feed.ITunesExt != nil && feed.ITunesExt.Image != "" {
		return feed.ITunesExt.Image
	}

	if feed != nil && feed.Image != nil && feed.Image.URL != "" {
		return feed.Image.URL
	}

	return ""
}

// firstImageSrc returns the src of the first <img> in markup, resolved
// against base when it is relative.
func firstImageSrc(markup, base string) string {
	if !strings.Contains(markup, "<img") && !strings.Contains(markup, "<IMG") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	src, exists := doc.Find("img[src]").First().Attr("src")
	src = strings.TrimSpace(src)
	if !exists || src == "" || strings.HasPrefix(src, "data:") {
		return ""
	}

	return resolveURL(src, base)
}

func resolveURL(ref, base string) string {
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if refURL.IsAbs() {
		return refURL.String()
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
