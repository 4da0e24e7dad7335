// ABOUTME: minutes command prints the minute offset of an ISO-8601 timestamp
// ABOUTME: Uses the same rounding and clamping as article annotation

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	timeutil "newsbrief-api/pkg/utils/time"
)

var minutesNow string

var minutesCmd = &cobra.Command{
	Use:   "minutes <iso>",
	Short: "Minutes from now until a timestamp",
	Long: `Prints the whole number of minutes from now until the given ISO-8601
timestamp. Past timestamps print 0; unparsable ones print "unknown".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		if minutesNow != "" {
			var ok bool
			now, ok = timeutil.ParseFlexibleTime(minutesNow)
			if !ok {
				return fmt.Errorf("invalid --now value %q", minutesNow)
			}
		}

		annotator := timeutil.NewAnnotator(func() time.Time { return now })
		if m := annotator.MinutesFromISO(args[0]); m != nil {
			cmd.Println(*m)
		} else {
			cmd.Println("unknown")
		}
		return nil
	},
}

func init() {
	minutesCmd.Flags().StringVar(&minutesNow, "now", "", "reference time instead of the current time")
	rootCmd.AddCommand(minutesCmd)
}
