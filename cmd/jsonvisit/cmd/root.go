// Package cmd implements the jsonvisit CLI's commands.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/maniartech/jsonvisit/internal/runid"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jsonvisit",
		Short:        "jsonvisit",
		SilenceUsage: true,
		Long:         `Streaming JSON validator and tokenizer.`,
	}

	unchecked bool
	logLevel  string
	quiet     bool

	runID = runid.New()
	log   = logrus.NewEntry(logrus.StandardLogger()).WithField("run_id", runID)
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&unchecked, "unchecked", false, "skip grammar validation of subtrees the visitor asks to skip")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "panic|fatal|error|warn|info|debug|trace")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-file info logging")

	cobra.OnInitialize(func() {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.StandardLogger().SetLevel(level)
	})

	return rootCmd.Execute()
}

func init() {
}
