package cmd

import (
	"github.com/spf13/cobra"

	"github.com/timrosenblatt/org/pkg/services"
)

var (
	newTitle string
	newTags  []string
)

var newCmd = &cobra.Command{
	Use:   "new <slug>",
	Short: "Scaffold a draft",
	Long: `Create a draft's two files under the draft collections: a markdown
body and a metadata descriptor with title, date and tags. Both are staged in
git so that publish can later relocate them with git mv.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.SetOutput(cmd.OutOrStdout())

		slug := args[0]
		git := services.NewGit(layout.Root, logger)
		if err := services.CreateDraft(cmd.Context(), layout, git, slug, newTitle, newTags); err != nil {
			return err
		}
		printer.Success("Draft %q created", slug)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "article title (default: the slug)")
	newCmd.Flags().StringSliceVar(&newTags, "tag", nil, "article tags (repeatable)")
	rootCmd.AddCommand(newCmd)
}
