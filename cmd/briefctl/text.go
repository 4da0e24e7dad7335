// ABOUTME: clean, decode and entities commands
// ABOUTME: Expose the text normalization steps for one-off use and scripting

package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"newsbrief-api/pkg/utils/html"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [text]",
	Short: "Strip markup and entities from text",
	Long: `Decodes the recognized HTML entities, removes tags and collapses
whitespace. Reads standard input when no text is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argOrStdin(cmd, args)
		if err != nil {
			return err
		}
		cmd.Println(html.CleanText(text))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode HTML entities only",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := argOrStdin(cmd, args)
		if err != nil {
			return err
		}
		cmd.Println(html.DecodeEntities(text))
		return nil
	},
}

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List the entities decode recognizes, in application order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, rule := range html.Rules() {
			cmd.Printf("%-8s %q\n", rule.Entity, rule.Replacement)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(entitiesCmd)
}

func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
