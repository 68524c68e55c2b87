package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/rti"
	"github.com/rtiworkbench/rti-cli/internal/workflow"
)

var (
	finalizePIOEmail string
	finalizeLocation string
	finalizeLanguage string
	finalizeSend     bool
	finalizeFull     bool
)

// previewLines caps the collapsed draft preview
const previewLines = 12

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Preview and submit the RTI request",
	Long: `Preview the final draft and submit it. Without --send only the preview is
shown; with --send the backend records the submission, dispatches the email
and schedules a follow-up reminder for 30 days.

The PIO email is optional — leave it empty for automatic office detection.
The location is used for fallback office search if needed.

Examples:
  rti finalize
  rti finalize --language hindi --full
  rti finalize --location Pune --send
  rti finalize --pio-email pio@ministry.gov.in --send`,
	RunE: runFinalize,
}

func init() {
	rootCmd.AddCommand(finalizeCmd)

	finalizeCmd.Flags().StringVar(&finalizePIOEmail, "pio-email", "", "PIO email address (optional)")
	finalizeCmd.Flags().StringVar(&finalizeLocation, "location", "", "Your city or district (optional)")
	finalizeCmd.Flags().StringVar(&finalizeLanguage, "language", "english", "Submission language: english|hindi")
	finalizeCmd.Flags().BoolVar(&finalizeSend, "send", false, "Submit the request")
	finalizeCmd.Flags().BoolVar(&finalizeFull, "full", false, "Show the full draft instead of a collapsed preview")
}

func runFinalize(cmd *cobra.Command, args []string) error {
	lang, err := models.ParseLanguage(finalizeLanguage)
	if err != nil {
		return err
	}

	store := caseStore()

	c, err := store.Load()
	if err != nil {
		return workflow.Guard(nil, models.StageDrafting)
	}
	if err := workflow.Guard(c, models.StageDrafting); err != nil {
		return err
	}
	if c.Submission != nil {
		return fmt.Errorf("this case was already submitted (run 'rti history' to track it, 'rti reset' to start over)")
	}

	draft := c.Draft(lang)
	if draft == "" {
		return fmt.Errorf("no %s draft to submit (run 'rti edit --language %s' first)", lang, lang)
	}

	fmt.Printf("Final draft (%s) — %s, %s\n", lang, c.Department, c.FiscalYear)
	fmt.Println(strings.Repeat("─", 40))
	fmt.Println(indent(preview(draft, finalizeFull), "  "))

	if !finalizeSend {
		fmt.Println("\nRun again with --send to submit.")
		return nil
	}

	release, err := store.Lock()
	if err != nil {
		return err
	}
	defer release()

	fmt.Println("\nSubmitting...")

	ack, err := backendClient().FinalizeAndSend(cmd.Context(), rti.FinalizeRequest{
		FinalDraft: draft,
		Department: c.Department,
		Year:       c.FiscalYear,
		PIOEmail:   finalizePIOEmail,
		Location:   finalizeLocation,
		Language:   lang,
	})
	if err != nil {
		return err
	}

	sub := &models.Submission{
		PIOEmail:    finalizePIOEmail,
		Location:    finalizeLocation,
		Language:    lang,
		FinalDraft:  draft,
		Filename:    ack.Filename,
		SubmittedAt: time.Now(),
	}
	if err := workflow.SetSubmission(c, sub); err != nil {
		return err
	}
	if err := store.Save(c); err != nil {
		return err
	}

	fmt.Println("\n✓ RTI submitted")
	if ack.Message != "" {
		fmt.Printf("  %s\n", ack.Message)
	} else {
		fmt.Println("  A follow-up reminder is scheduled for 30 days from today.")
	}
	fmt.Println("\nNext: rti history")

	return nil
}

// preview collapses a long draft to its first lines unless full output was
// requested
func preview(draft string, full bool) string {
	if full {
		return draft
	}
	lines := strings.Split(draft, "\n")
	if len(lines) <= previewLines {
		return draft
	}
	collapsed := append(lines[:previewLines:previewLines], fmt.Sprintf("... (%d more lines, use --full)", len(lines)-previewLines))
	return strings.Join(collapsed, "\n")
}
