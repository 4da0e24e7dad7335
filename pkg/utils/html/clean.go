// ABOUTME: Text cleaning for feed titles and summaries
// ABOUTME: Decodes entities, strips markup and collapses whitespace into plain text

package html

import (
	"regexp"
	"strings"
)

var (
	// tagPattern matches a markup tag: "<", anything but angle brackets, ">".
	tagPattern = regexp.MustCompile(`<[^<>]*>`)

	// strayBracketPattern matches angle brackets left over after tag removal.
	strayBracketPattern = regexp.MustCompile(`[<>]`)
)

// CleanText converts raw feed text into a single line of plain text.
//
// The result never contains "<" or ">", never contains two whitespace
// characters in a row, has no leading or trailing whitespace, and holds none
// of the entities DecodeEntities recognizes. CleanText is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	// Double-encoded input ("&amp;lt;p&amp;gt;") surfaces new entities and
	// tags after one pass, so keep going until the text settles.
	for {
		next := cleanOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanOnce(text string) string {
	text = DecodeEntities(text)
	text = tagPattern.ReplaceAllLiteralString(text, " ")
	text = strayBracketPattern.ReplaceAllLiteralString(text, " ")
	return CollapseWhitespace(text)
}

// CollapseWhitespace replaces every whitespace run with one ASCII space and
// trims both ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}
