// ABOUTME: fetch command downloads one feed and prints its cleaned articles
// ABOUTME: Prints a text listing by default or the API's JSON shape with --json

package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"newsbrief-api/api/dto/mappers"
	"newsbrief-api/briefs"
	"newsbrief-api/pkg/utils/duration"
)

var (
	fetchTimeout  time.Duration
	fetchMaxItems int
	fetchJSON     bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a feed and print its articles",
	Long: `Downloads an RSS or Atom feed, cleans every title and summary and
annotates each article with the minutes until its publish time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Close()

		client, err := briefs.New(
			briefs.WithLogger(log),
			briefs.WithTimeout(fetchTimeout),
			briefs.WithMaxItems(fetchMaxItems),
		)
		if err != nil {
			return err
		}

		feed, err := client.Feed(cmd.Context(), args[0])
		if err != nil {
			log.Error("Fetch failed", map[string]interface{}{"url": args[0], "error": err.Error()})
			return err
		}

		if fetchJSON {
			out, err := json.MarshalIndent(mappers.ToFeedResponse(feed), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		}

		printFeed(cmd, feed)
		return nil
	},
}

func init() {
	fetchCmd.Flags().DurationVarP(&fetchTimeout, "timeout", "t", briefs.DefaultTimeout, "download timeout")
	fetchCmd.Flags().IntVarP(&fetchMaxItems, "max-items", "n", 0, "keep at most this many articles (0 keeps all)")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "print JSON instead of text")
	rootCmd.AddCommand(fetchCmd)
}

func printFeed(cmd *cobra.Command, feed *briefs.Feed) {
	cmd.Printf("%s (%d articles)\n", feed.Title, len(feed.Articles))
	for _, a := range feed.Articles {
		when := "unknown"
		if a.MinutesFromNow != nil {
			when = formatMinutes(*a.MinutesFromNow)
		}
		cmd.Printf("- [%s] %s\n", when, a.Title)
		if a.DurationSeconds > 0 {
			cmd.Printf("  duration %s\n", duration.Format(a.DurationSeconds))
		}
		if a.Link != "" {
			cmd.Printf("  %s\n", a.Link)
		}
	}
}

func formatMinutes(m int) string {
	if m == 0 {
		return "now"
	}
	return "in " + duration.Format(m*60)
}
