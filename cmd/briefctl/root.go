// ABOUTME: Root command and shared flags for briefctl
// ABOUTME: Builds the structured logger every subcommand writes diagnostics to

package main

import (
	"github.com/spf13/cobra"

	"newsbrief-api/infrastructure/logger"
)

var (
	logLevel   string
	logBackend string
)

var rootCmd = &cobra.Command{
	Use:   "briefctl",
	Short: "Clean and annotate RSS/Atom feeds",
	Long: `briefctl fetches RSS and Atom feeds and prints their articles as plain
text, with minutes until each publish time. It also exposes the text
cleaning and entity decoding steps on their own.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logBackend, "log-backend", logger.BackendLogrus, "log backend (logrus or zap)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes logs to the command's stderr so stdout stays parseable.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.New(logger.Config{
		Backend: logBackend,
		Level:   logLevel,
		Output:  cmd.ErrOrStderr(),
	})
}
