package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		minutesNow = ""
		fetchJSON = false
		fetchMaxItems = 0
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCleanCmd_Arg(t *testing.T) {
	out, err := run(t, "", "clean", "<p>Fish &amp;amp; <i>chips</i></p>")

	require.NoError(t, err)
	assert.Equal(t, "Fish & chips\n", out)
}

func TestCleanCmd_Stdin(t *testing.T) {
	out, err := run(t, "  <b>From</b>\n\n stdin&nbsp;\n", "clean")

	require.NoError(t, err)
	assert.Equal(t, "From stdin\n", out)
}

func TestCleanCmd_RejectsTwoArgs(t *testing.T) {
	_, err := run(t, "", "clean", "a", "b")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestDecodeCmd(t *testing.T) {
	out, err := run(t, "", "decode", "&LT;b&gt; &quot;hi&apos;")

	require.NoError(t, err)
	assert.Equal(t, "<b> \"hi'\n", out)
}

func TestEntitiesCmd(t *testing.T) {
	out, err := run(t, "", "entities")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "&nbsp;"))
	assert.True(t, strings.HasPrefix(lines[1], "&amp;"))
}

func TestMinutesCmd(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{"future", "2024-03-10T12:45:00Z", "45\n"},
		{"past clamps to zero", "2024-03-10T11:00:00Z", "0\n"},
		{"rounds half up", "2024-03-10T12:00:30Z", "1\n"},
		{"unparsable", "tomorrow", "unknown\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", "minutes", "--now", "2024-03-10T12:00:00Z", tt.iso)

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMinutesCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := run(t, "", "minutes")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestMinutesCmd_InvalidNow(t *testing.T) {
	_, err := run(t, "", "minutes", "--now", "soon", "2024-03-10T12:00:00Z")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --now")
}

func TestFetchCmd_HasFlags(t *testing.T) {
	flag := fetchCmd.Flags().Lookup("max-items")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)

	flag = fetchCmd.Flags().Lookup("timeout")
	require.NotNil(t, flag)
	assert.Equal(t, "15s", flag.DefValue)
}

const podcastFeed = `<?xml version="1.0"?>
<rss version="2.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"><channel>
  <title>Cast &amp; Crew</title>
  <item>
    <title>Episode 1 &amp;amp; more</title>
    <link>https://example.com/ep1</link>
    <itunes:duration>1:02:03</itunes:duration>
  </item>
  <item>
    <title>Episode 2</title>
    <link>https://example.com/ep2</link>
  </item>
</channel></rss>`

func podcastServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(podcastFeed))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchCmd_Text(t *testing.T) {
	server := podcastServer(t)

	out, err := run(t, "", "fetch", server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "Cast & Crew (2 articles)")
	assert.Contains(t, out, "- [unknown] Episode 1 & more")
	assert.Contains(t, out, "duration 01:02:03")
	assert.Contains(t, out, "https://example.com/ep2")
}

func TestFetchCmd_JSON(t *testing.T) {
	server := podcastServer(t)

	out, err := run(t, "", "fetch", "--json", "-n", "1", server.URL)
	require.NoError(t, err)

	var body struct {
		Title    string `json:"title"`
		FeedType string `json:"feed_type"`
		Articles []struct {
			Title    string `json:"title"`
			Duration int    `json:"duration"`
		} `json:"articles"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))

	assert.Equal(t, "Cast & Crew", body.Title)
	require.Len(t, body.Articles, 1)
	assert.Equal(t, 3723, body.Articles[0].Duration)
}

func TestFetchCmd_InvalidURL(t *testing.T) {
	_, err := run(t, "", "fetch", "not a url")

	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "now", formatMinutes(0))
	assert.Equal(t, "in 05:00", formatMinutes(5))
	assert.Equal(t, "in 01:30:00", formatMinutes(90))
}
