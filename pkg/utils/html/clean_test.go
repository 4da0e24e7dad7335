package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "paragraph with entity and inline tag",
			input:    "\n<p> Hello &amp; <strong>world</strong> ! </p>\n",
			expected: "Hello & world !",
		},
		{
			name:     "encoded markup is stripped after decoding",
			input:    "Bonjour &amp; bienvenue &lt;strong&gt;à tous&lt;/strong&gt; !",
			expected: "Bonjour & bienvenue à tous !",
		},
		{
			name:     "tags become word separators",
			input:    "one<br>two<br/>three",
			expected: "one two three",
		},
		{
			name:     "brackets spanning text form a tag",
			input:    "a < b and c > d",
			expected: "a d",
		},
		{
			name:     "stray brackets are removed",
			input:    "a < b",
			expected: "a b",
		},
		{
			name:     "stray closing bracket",
			input:    "c > d >",
			expected: "c d",
		},
		{
			name:     "unterminated tag",
			input:    "text <img src=x",
			expected: "text img src=x",
		},
		{
			name:     "nested brackets",
			input:    "x <<b>> y",
			expected: "x y",
		},
		{
			name:     "tabs newlines and nbsp collapse",
			input:    "a\t\tb\r\n\nc&nbsp;&nbsp;d e",
			expected: "a b c d e",
		},
		{
			name:     "doubly encoded entities settle",
			input:    "&amp;amp; &amp;lt;i&amp;gt;x&amp;lt;/i&amp;gt;",
			expected: "& x",
		},
		{
			name:     "attributes with quotes",
			input:    `<a href="https://example.com?a=1&amp;b=2">link</a>`,
			expected: "link",
		},
		{
			name:     "only markup",
			input:    "<div><span></span></div>",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"\n<p> Hello &amp; <strong>world</strong> ! </p>\n",
		"&amp;amp;amp;lt;b&amp;amp;amp;gt;",
		"&amp;nbsp;&amp;nbsp;x",
		"<<<>>>",
		"a &lt; b",
		"  plain   text  ",
	}

	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "input %q", in)
	}
}

func TestCleanText_NoRecognizedEntitiesRemain(t *testing.T) {
	out := CleanText("&amp;amp;quot;hi&amp;amp;quot; &amp;apos;")

	for _, rule := range Rules() {
		assert.NotContains(t, strings.ToLower(out), rule.Entity)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b  c\uFEFF"))
	assert.Equal(t, "", CollapseWhitespace(" \t\n "))
}
