// ABOUTME: HTML entity decoding for raw feed text
// ABOUTME: Applies a fixed, ordered table of case-insensitive entity rules

package html

import (
	"regexp"
	"strings"
	"unicode"
)

// Rule replaces every case-insensitive match of Entity with Replacement.
type Rule struct {
	Entity      string
	Replacement string
	pattern     *regexp.Regexp
}

func newRule(entity, replacement string) Rule {
	return Rule{
		Entity:      entity,
		Replacement: replacement,
		pattern:     regexp.MustCompile("(?i)" + regexp.QuoteMeta(entity)),
	}
}

// Apply runs the rule over text.
func (r Rule) Apply(text string) string {
	return r.pattern.ReplaceAllLiteralString(text, r.Replacement)
}

// entityRules is folded left to right. The order is part of the contract:
// &amp; runs before &lt; and &gt;, so "&amp;lt;" decodes all the way to "<".
var entityRules = []Rule{
	newRule("&nbsp;", " "),
	newRule("&amp;", "&"),
	newRule("&quot;", `"`),
	newRule("&apos;", "'"),
	newRule("&lt;", "<"),
	newRule("&gt;", ">"),
}

// Rules returns a copy of the entity table in application order.
func Rules() []Rule {
	out := make([]Rule, len(entityRules))
	copy(out, entityRules)
	return out
}

// DecodeEntities replaces the recognized HTML entities with their literal
// characters and trims surrounding whitespace. Empty input yields "".
func DecodeEntities(text string) string {
	if text == "" {
		return ""
	}

	result := text
	for _, rule := range entityRules {
		result = rule.Apply(result)
	}

	return strings.TrimFunc(result, isSpace)
}

// isSpace matches what browsers treat as whitespace in text nodes, which
// includes NBSP and the byte order mark.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
