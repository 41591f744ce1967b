// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pathtrigger/pathtrigger/pkg/source"

	// Register sources
	_ "github.com/pathtrigger/pathtrigger/pkg/source/gitdiff"
	_ "github.com/pathtrigger/pathtrigger/pkg/source/githubpr"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logger is the shared CLI logger. Results go to stdout or the output
// sink; diagnostics always go to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var logLevel string

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "pathtrigger",
	Short: "Evaluate changed-path filters for CI pipelines",
	Long: `A CLI tool that decides which named path filters are satisfied by a set
of changed files (e.g., in a pull request) and emits one boolean per
filter for downstream automation ("run this suite only if these files
changed").

Filters are glob pattern lists with last-match-wins negation:

  docs:
    - docs/**
  code:
    - src/**
    - "!src/**/*.md"

Workflow:
  1. Write a filter definition file
  2. Run eval in CI; changed files come from the GitHub PR API or git diff
  3. Downstream steps read the emitted name=true/false outputs

Examples:
  # Evaluate filters against a local diff
  pathtrigger eval --filters .pathtrigger.yml --source git-diff --base origin/main

  # Evaluate filters for a pull request
  pathtrigger eval --filters .pathtrigger.yml --source github-pr \
    --repo acme/widgets --pr 1234

  # Validate a filter definition file
  pathtrigger validate --filters .pathtrigger.yml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logger.SetLevel(lvl)
		return nil
	},
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pathtrigger %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

// sourcesCmd lists available changed-file sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available changed-file sources",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Available sources:")
		for _, name := range source.List() {
			src, err := source.Get(name)
			if err != nil {
				continue
			}
			fmt.Printf("  %-12s - %s\n", name, src.Description())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(sourcesCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version information for the CLI.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}
