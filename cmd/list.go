package cmd

import (
	"github.com/spf13/cobra"

	"github.com/timrosenblatt/org/pkg/services"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts and published articles",
	Long: `Show every document in the working tree grouped by state. Titles
come from the metadata descriptors; entries with uncommitted changes are
marked with *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printer.SetOutput(cmd.OutOrStdout())

		git := services.NewGit(layout.Root, logger)
		entries, err := services.ListEntries(cmd.Context(), layout, git)
		if err != nil {
			return err
		}

		printSection := func(header string, published bool) {
			printer.Header(header)
			found := false
			for _, e := range entries {
				if e.Published != published {
					continue
				}
				found = true
				printer.Print("  %s  %s%s", e.Slug, printer.Dim(e.Title), printer.DirtyBadge(e.IsDirty))
			}
			if !found {
				printer.Print("  %s", printer.Dim("(none)"))
			}
		}

		printSection("Drafts", false)
		printSection("Articles", true)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
