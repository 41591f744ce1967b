package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pathtrigger/pathtrigger/pkg/engine"
	"github.com/pathtrigger/pathtrigger/pkg/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a filter definition or report file",
	Long: `Validate a filter definition file before using it in CI, or check a
previously written evaluation report against its schema.

For filter definitions this checks:
  - Every filter name is a valid, unique identifier
  - Every pattern compiles (glob syntax, negation, quoting)
  - At least one filter is defined

Examples:
  pathtrigger validate --filters .pathtrigger.yml
  pathtrigger validate --report results.json`,
	RunE: runValidate,
}

var (
	validateFilters string
	validateReport  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateFilters, "filters", "f", "", "Filter definition file path")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Evaluation report file path")

	validateCmd.MarkFlagsOneRequired("filters", "report")
	validateCmd.MarkFlagsMutuallyExclusive("filters", "report")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateReport != "" {
		return runValidateReport()
	}

	data, err := os.ReadFile(validateFilters)
	if err != nil {
		return fmt.Errorf("read filter definitions: %w", err)
	}

	set, err := engine.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("✓ Filter definition file is valid")
	fmt.Println()
	fmt.Printf("  File:    %s\n", validateFilters)
	fmt.Printf("  Filters: %d\n", set.Len())
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FILTER\tPATTERNS\tNEGATIONS")
	fmt.Fprintln(w, "  ------\t--------\t---------")
	for _, name := range set.Names() {
		f, _ := set.Get(name)

		negated := 0
		for _, p := range f.Patterns {
			if p.Negated {
				negated++
			}
		}

		fmt.Fprintf(w, "  %s\t%d\t%d\n", name, len(f.Patterns), negated)
	}
	w.Flush()

	return nil
}

func runValidateReport() error {
	rep, err := report.ValidateFile(validateReport)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Println("✓ Report file is valid")
	fmt.Println()
	fmt.Printf("  File:           %s\n", validateReport)
	fmt.Printf("  Schema version: %s\n", rep.Version)
	fmt.Printf("  Source:         %s\n", rep.Metadata.Source)
	fmt.Printf("  Evaluated at:   %s\n", rep.Metadata.EvaluatedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("  Quantifier:     %s\n", rep.Metadata.Quantifier)
	fmt.Printf("  Changed files:  %d\n", rep.Metadata.ChangedFiles)
	fmt.Printf("  Filters:        %d\n", rep.Metadata.TotalFilters)

	if len(rep.Filters) > 0 {
		fmt.Println()
		fmt.Println("  Verdicts:")
		for _, f := range rep.Filters {
			fmt.Printf("    %s=%t\n", f.Name, f.Satisfied)
		}
	}

	return nil
}
