package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/workflow"
)

var (
	reviewAccept bool
	reviewJSON   bool
	reviewToon   bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the gap analysis and generated drafts",
	Long: `Show the backend's gap analysis for the current case: the raw gap text,
the structured gaps tagged by priority, and the generated drafts in both
languages.

Pass --accept to take the generated drafts into the working case and move on
to editing.

Examples:
  rti review
  rti review --accept
  rti review --json`,
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().BoolVar(&reviewAccept, "accept", false, "Accept the drafts and continue to editing")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "Output as JSON")
	reviewCmd.Flags().BoolVar(&reviewToon, "toon", false, "Output in LLM-friendly toon format")
}

func runReview(cmd *cobra.Command, args []string) error {
	store := caseStore()

	c, err := store.Load()
	if err != nil {
		return workflow.Guard(nil, models.StageAnalyzed)
	}
	if err := workflow.Guard(c, models.StageAnalyzed); err != nil {
		return err
	}

	if reviewJSON {
		output, err := json.MarshalIndent(c.Analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(output))
	} else if reviewToon {
		output, err := gotoon.Encode(c.Analysis)
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		fmt.Println(output)
	} else {
		renderReview(cmd.OutOrStdout(), c)
	}

	if !reviewAccept {
		return nil
	}

	release, err := store.Lock()
	if err != nil {
		return err
	}
	defer release()

	if err := workflow.AcceptDrafts(c); err != nil {
		return err
	}
	if err := store.Save(c); err != nil {
		return err
	}

	fmt.Println("\n✓ Drafts accepted")
	fmt.Println("Next: rti edit (or go straight to rti finalize)")

	return nil
}

func renderReview(w io.Writer, c *models.Case) {
	a := c.Analysis

	fmt.Fprintf(w, "Gap Analysis — %s (%s)\n", c.Department, c.FiscalYear)
	fmt.Fprintln(w, strings.Repeat("─", 40))

	fmt.Fprintln(w, "\nRaw gaps:")
	fmt.Fprintln(w, indent(a.RawGaps, "  "))

	fmt.Fprintf(w, "\nStructured gaps (%d):\n", len(a.StructuredGaps))
	for _, gap := range a.StructuredGaps {
		fmt.Fprintf(w, "  %s %s\n", gap.Tag(), gap.Gap)
		if gap.Category != "" {
			fmt.Fprintf(w, "      %s\n", gap.Category)
		}
	}

	for _, lang := range models.Languages() {
		draft, ok := a.Drafts[lang]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "\nDraft (%s):\n", lang)
		fmt.Fprintln(w, indent(draft, "  "))
	}
}

// indent prefixes every line of s
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
