package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/casefile"
	"github.com/rtiworkbench/rti-cli/internal/config"
	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/rti"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current case and its stage",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// nextStep maps each stage to the command that moves the case forward
var nextStep = map[models.Stage]string{
	models.StageIntake:   "rti start",
	models.StageAnalyzed: "rti review",
	models.StageDrafting: "rti edit (or rti finalize)",
	models.StageEdited:   "rti finalize --send",
}

func runStatus(cmd *cobra.Command, args []string) error {
	baseURL := config.GetBackendBaseURL()
	if rti.IsAvailable(baseURL) {
		fmt.Printf("Backend: %s (reachable)\n\n", baseURL)
	} else {
		fmt.Printf("Backend: %s (unreachable)\n\n", baseURL)
	}

	c, err := caseStore().Load()
	if err != nil {
		if errors.Is(err, casefile.ErrNoCase) {
			fmt.Println("No case in progress")
			fmt.Println("Start one: rti start --file <document.pdf> --department <ministry> --year <fiscal-year>")
			return nil
		}
		return err
	}

	fmt.Printf("Case %s\n", c.ID)
	fmt.Printf("  Stage:       %s\n", c.Stage)
	fmt.Printf("  Department:  %s\n", c.Department)
	fmt.Printf("  Fiscal year: %s\n", c.FiscalYear)

	if c.Source.FilePath != "" {
		fmt.Printf("  Document:    %s\n", c.Source.FilePath)
	} else if c.Source.URL != "" {
		fmt.Printf("  Document:    %s\n", c.Source.URL)
	}

	if c.Analysis != nil {
		fmt.Printf("  Gaps found:  %d\n", len(c.Analysis.StructuredGaps))
	}

	if len(c.Drafts) > 0 {
		var langs []string
		for _, lang := range models.Languages() {
			if _, ok := c.Drafts[lang]; ok {
				langs = append(langs, string(lang))
			}
		}
		fmt.Printf("  Drafts:      %s\n", strings.Join(langs, ", "))
		fmt.Printf("  Edit mode:   %s\n", c.EditMode)
	}

	if c.Submission != nil {
		fmt.Printf("  Submitted:   %s (%s)\n", c.Submission.SubmittedAt.Format("2006-01-02 15:04"), c.Submission.Language)
		if c.Submission.Filename != "" {
			fmt.Printf("  Filed as:    %s\n", c.Submission.Filename)
		}
	}

	if next, ok := nextStep[c.Stage]; ok {
		fmt.Printf("\nNext: %s\n", next)
	} else {
		fmt.Println("\nThis case is complete. Track it with: rti history")
	}

	return nil
}
