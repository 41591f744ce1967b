package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathtrigger/pathtrigger/pkg/engine"
	"github.com/pathtrigger/pathtrigger/pkg/output"
	"github.com/pathtrigger/pathtrigger/pkg/report"
	"github.com/pathtrigger/pathtrigger/pkg/selector"
	"github.com/pathtrigger/pathtrigger/pkg/source"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate filters against the changed-file set",
	Long: `Evaluate every filter in the definition file against the changed-file
set and emit one "name=true|false" output line per filter.

The changed-file list comes from the configured source (GitHub PR API or
local git diff), or from explicit --changed-file flags. When the source
cannot produce a list (not a PR context, missing credentials), filters
are evaluated against an empty list rather than failing the run.

Internal errors after configuration never fail the invocation: they are
logged and the run exits successfully without emitting outputs, so that
downstream boolean gates are never blocked by the gate evaluator itself.

Examples:
  # Evaluate against a local diff and write to $GITHUB_OUTPUT
  pathtrigger eval --filters .pathtrigger.yml --base origin/main

  # Evaluate a pull request, emitting matched file lists too
  pathtrigger eval --filters .pathtrigger.yml --source github-pr \
    --repo acme/widgets --pr 1234 --list-files

  # Require every changed file to match (all-match quantifier)
  pathtrigger eval --filters .pathtrigger.yml --quantifier all

  # Evaluate an explicit file list (no source)
  pathtrigger eval --filters .pathtrigger.yml \
    --changed-file docs/readme.md --changed-file src/main.go`,
	RunE: runEval,
}

var (
	evalConfig        string
	evalFilters       string
	evalSource        string
	evalQuantifier    string
	evalRepo          string
	evalPullNumber    int
	evalToken         string
	evalBase          string
	evalOutput        string
	evalListFiles     bool
	evalReport        string
	evalChangedFiles  []string
	evalSelect        []string
	evalSelectExclude []string
)

func init() {
	evalCmd.Flags().StringVar(&evalConfig, "config", "", "YAML config file with eval defaults")
	evalCmd.Flags().StringVarP(&evalFilters, "filters", "f", "", "Filter definition file path")
	evalCmd.Flags().StringVarP(&evalSource, "source", "s", "git-diff", "Changed-file source (git-diff, github-pr)")
	evalCmd.Flags().StringVarP(&evalQuantifier, "quantifier", "q", "any", "Aggregation mode (any, all)")
	evalCmd.Flags().StringVar(&evalRepo, "repo", "", "Repository slug owner/name (github-pr source)")
	evalCmd.Flags().IntVar(&evalPullNumber, "pr", 0, "Pull request number (github-pr source)")
	evalCmd.Flags().StringVar(&evalToken, "github-token", "", "API token (defaults to GITHUB_TOKEN)")
	evalCmd.Flags().StringVar(&evalBase, "base", "", "Base revision to diff against (git-diff source)")
	evalCmd.Flags().StringVarP(&evalOutput, "output", "o", "", "Output file path (defaults to GITHUB_OUTPUT)")
	evalCmd.Flags().BoolVar(&evalListFiles, "list-files", false, "Also emit per-filter matched file lists as <name>_files")
	evalCmd.Flags().StringVar(&evalReport, "report", "", "Write a JSON evaluation report to this path")
	evalCmd.Flags().StringArrayVar(&evalChangedFiles, "changed-file", []string{}, "Explicit changed file (repeatable, bypasses the source)")
	evalCmd.Flags().StringArrayVar(&evalSelect, "select", []string{}, "Only emit filters with names matching these globs")
	evalCmd.Flags().StringArrayVar(&evalSelectExclude, "select-exclude", []string{}, "Skip filters with names matching these globs")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := applyEvalConfig(cmd); err != nil {
		return err
	}

	if evalFilters == "" {
		return fmt.Errorf("no filter definition file (use --filters or a config file)")
	}

	// A missing or empty definition file means the caller is misconfigured.
	// This is the only failure worth surfacing loudly; everything past this
	// point fails open.
	data, err := os.ReadFile(evalFilters)
	if err != nil {
		return fmt.Errorf("read filter definitions: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return fmt.Errorf("filter definition file %s is empty", evalFilters)
	}

	set, err := engine.ParseString(string(data))
	if err != nil {
		failOpen("filter definition rejected", err)
		return nil
	}

	sel, err := selector.New(evalSelect, evalSelectExclude)
	if err != nil {
		failOpen("invalid filter selection pattern", err)
		return nil
	}

	quantifier, err := engine.ParseQuantifier(evalQuantifier)
	if err != nil {
		failOpen("invalid quantifier", err)
		return nil
	}

	changed := resolveChangedFiles(ctx)
	logger.Debug("evaluating filters", "filters", set.Len(), "changed_files", len(changed), "quantifier", quantifier.String())

	results := engine.Evaluate(set, changed, quantifier)

	sinkPath := evalOutput
	if sinkPath == "" {
		sinkPath = os.Getenv("GITHUB_OUTPUT")
	}
	sink := output.NewSink(sinkPath, nil)

	rep := report.New(evalSource, quantifier.String(), len(changed))

	for _, name := range sel.Apply(set.Names()) {
		res := results[name]

		if err := sink.SetBool(name, res.Satisfied); err != nil {
			logger.Error("failed to emit output", "filter", name, "err", err)
		}

		if evalListFiles {
			files := res.MatchedFiles
			if files == nil {
				files = []string{}
			}
			if err := sink.SetJSON(name+"_files", files); err != nil {
				logger.Error("failed to emit matched files", "filter", name, "err", err)
			}
		}

		f, _ := set.Get(name)
		rep.AddFilter(report.FilterOutcome{
			Name:         name,
			Satisfied:    res.Satisfied,
			Patterns:     rawPatterns(f),
			MatchedFiles: res.MatchedFiles,
		})

		logger.Info("filter evaluated", "filter", name, "satisfied", res.Satisfied, "matched", len(res.MatchedFiles))
	}

	if evalReport != "" {
		if err := rep.Write(evalReport); err != nil {
			logger.Error("failed to write report", "path", evalReport, "err", err)
		}
	}

	return nil
}

// resolveChangedFiles produces the changed-file snapshot. Source failures
// degrade to an empty list so a result is always present downstream.
func resolveChangedFiles(ctx context.Context) []string {
	if len(evalChangedFiles) > 0 {
		return evalChangedFiles
	}

	src, err := source.Get(evalSource)
	if err != nil {
		logger.Error("unknown changed-file source; evaluating empty set", "source", evalSource, "err", err)
		return nil
	}

	token := evalToken
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	opts := source.Options{
		Repo:       evalRepo,
		PullNumber: evalPullNumber,
		Token:      token,
		BaseRef:    evalBase,
	}

	if err := src.Configure(ctx, opts); err != nil {
		warnUnavailable(err)
		return nil
	}

	changed, err := src.ChangedFiles(ctx)
	if err != nil {
		warnUnavailable(err)
		return nil
	}

	return changed
}

func warnUnavailable(err error) {
	if errors.Is(err, source.ErrSourceUnavailable) {
		logger.Warn("changed-file source unavailable; evaluating empty set", "source", evalSource, "err", err)
		return
	}

	logger.Error("changed-file source failed; evaluating empty set", "source", evalSource, "err", err)
}

// failOpen logs an internal error without emitting outputs. The command
// still exits successfully so downstream gates are not blocked.
func failOpen(msg string, err error) {
	logger.Error(msg+"; emitting no outputs", "err", err)
}

// applyEvalConfig overlays config-file defaults under explicitly set flags.
func applyEvalConfig(cmd *cobra.Command) error {
	if evalConfig == "" {
		return nil
	}

	cfg, err := LoadConfig(evalConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("filters") && cfg.Filters != "" {
		evalFilters = cfg.Filters
	}
	if !flags.Changed("source") && cfg.Source != "" {
		evalSource = cfg.Source
	}
	if !flags.Changed("quantifier") && cfg.Quantifier != "" {
		evalQuantifier = cfg.Quantifier
	}
	if !flags.Changed("repo") && cfg.Repo != "" {
		evalRepo = cfg.Repo
	}
	if !flags.Changed("pr") && cfg.PullNumber != 0 {
		evalPullNumber = cfg.PullNumber
	}
	if !flags.Changed("base") && cfg.Base != "" {
		evalBase = cfg.Base
	}
	if !flags.Changed("output") && cfg.Output != "" {
		evalOutput = cfg.Output
	}
	if !flags.Changed("list-files") && cfg.ListFiles {
		evalListFiles = true
	}
	if !flags.Changed("report") && cfg.Report != "" {
		evalReport = cfg.Report
	}
	if !flags.Changed("select") && len(cfg.Select) > 0 {
		evalSelect = cfg.Select
	}
	if !flags.Changed("select-exclude") && len(cfg.SelectExclude) > 0 {
		evalSelectExclude = cfg.SelectExclude
	}

	return nil
}

// rawPatterns returns the filter's original pattern texts.
func rawPatterns(f *engine.Filter) []string {
	if f == nil {
		return nil
	}

	out := make([]string, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		out = append(out, p.Raw)
	}

	return out
}
