// Package cmd contains all CLI commands for blogctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/timrosenblatt/org/pkg/config"
	"github.com/timrosenblatt/org/pkg/output"
)

var (
	verbose  bool
	quiet    bool
	blogRoot string
	layout   config.Layout
	printer  *output.Printer
	logger   *slog.Logger
	version  = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "Personal blog publishing CLI",
	Long: `blogctl manages a markdown blog stored in a git working tree.

Each document is two files keyed by one slug: a markdown body and a metadata
descriptor. Publishing moves both from the draft collections into the
published ones and records the transition as a single commit.

Example usage:
  blogctl new my-post -t "My Post"   # Scaffold a draft
  blogctl list                       # Show drafts and published articles
  blogctl publish my-post            # Move the draft to articles and commit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&blogRoot, "root", "", "blog working tree (default: $BLOG_ROOT or .)")
}

// initConfig loads environment configuration and builds the layout.
func initConfig() error {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	config.Init()
	if blogRoot != "" {
		config.BlogRoot = blogRoot
	}
	layout = config.CurrentLayout()

	if _, err := os.Stat(layout.Root); err != nil {
		return fmt.Errorf("blog root does not exist: %s", layout.Root)
	}

	printer = output.NewPrinter(true, quiet)

	logger.Debug("configuration loaded",
		"root", layout.Root,
		"drafts_dir", layout.DraftsDir,
		"articles_dir", layout.ArticlesDir,
		"meta_ext", layout.MetaExt,
	)
	return nil
}
