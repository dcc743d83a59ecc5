package cmd

import (
	"github.com/spf13/cobra"

	"github.com/timrosenblatt/org/pkg/services"
)

var publishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Publish a draft",
	Long: `Move a draft's metadata and content into the published collections
and commit both moves as one change.

Fails with "No such draft" and exit status 1 when the slug has no draft
metadata descriptor. Nothing is touched in that case.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		pub := services.NewPublisher(layout, logger)
		if err := pub.Publish(cmd.Context(), slug); err != nil {
			return err
		}
		// Success stays quiet: the commit is the record.
		logger.Debug("published", "slug", slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
