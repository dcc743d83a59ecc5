package cmd

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the blogctl version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("blogctl " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
