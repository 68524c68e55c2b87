package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/fileio"
	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/workflow"
)

var (
	startFile       string
	startURL        string
	startDepartment string
	startYear       string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new RTI case by analyzing a document",
	Long: `Start a new RTI case: upload a PDF document or point at a government URL,
and receive a gap analysis plus generated draft letters from the backend.

A new case replaces any case in progress that has not been submitted yet.

Departments:
  ` + strings.Join(models.Departments, "\n  ") + `

Fiscal years: ` + strings.Join(models.FiscalYears, ", ") + `

Examples:
  rti start --file budget_2024.pdf --department "Ministry of Education" --year 2024-25
  rti start --url https://example.gov.in/report --department "Ministry of Health" --year 2023-24`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVar(&startFile, "file", "", "PDF document to upload")
	startCmd.Flags().StringVar(&startURL, "url", "", "Government URL to analyze")
	startCmd.Flags().StringVar(&startDepartment, "department", "", "Target ministry")
	startCmd.Flags().StringVar(&startYear, "year", "", "Fiscal year")
}

func runStart(cmd *cobra.Command, args []string) error {
	intake := models.Intake{
		FilePath:   startFile,
		URL:        startURL,
		Department: startDepartment,
		FiscalYear: startYear,
	}

	// Validate locally before any network activity
	if err := intake.Validate(); err != nil {
		return err
	}

	if intake.FilePath != "" {
		// Reject non-PDF documents before the upload
		if _, _, err := fileio.ReadDocument(intake.FilePath); err != nil {
			return err
		}
	}

	store := caseStore()
	release, err := store.Lock()
	if err != nil {
		return err
	}
	defer release()

	if prev, err := store.Load(); err == nil && prev.Submission != nil {
		return fmt.Errorf("the current case was already submitted; run 'rti reset' before starting a new one")
	}

	client := backendClient()

	fmt.Printf("Analyzing document for %s (%s)...\n", intake.Department, intake.FiscalYear)

	var analysis *models.Analysis
	if intake.FilePath != "" {
		analysis, err = client.AnalyzeFromUpload(cmd.Context(), intake.FilePath, intake.Department, intake.FiscalYear)
	} else {
		analysis, err = client.AnalyzeFromURL(cmd.Context(), intake.URL, intake.Department, intake.FiscalYear)
	}
	if err != nil {
		// Failed analysis leaves any previous case untouched
		return err
	}

	c := models.NewCase(intake)
	if err := workflow.SetAnalysis(c, analysis); err != nil {
		return err
	}

	if err := store.Save(c); err != nil {
		return err
	}

	fmt.Printf("\n✓ Analysis complete (case %s)\n", c.ID)
	fmt.Printf("  Gaps found: %d\n", len(analysis.StructuredGaps))
	fmt.Printf("  Drafts:     %d language(s)\n", len(analysis.Drafts))
	fmt.Println("\nNext: rti review")

	return nil
}
