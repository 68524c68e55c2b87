package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/models"
	"github.com/rtiworkbench/rti-cli/internal/workflow"
)

var (
	editMode        string
	editLanguage    string
	editText        string
	editDraftFile   string
	editInstruction string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the working draft",
	Long: `Edit the working draft for the current case.

Modes:
  manual (default)  - Replace the draft with text you provide (--text or --draft-file)
  ai                - Send an instruction to the backend and take its revision
  keep              - Keep the draft exactly as it is

Each edit overwrites the stored draft for the chosen language; no history
is kept.

Examples:
  rti edit --text "To the Public Information Officer, ..."
  rti edit --draft-file revised.txt --language hindi
  rti edit --mode ai --instruction "make it more formal"
  rti edit --mode keep`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editMode, "mode", "manual", "Edit mode: manual|ai|keep")
	editCmd.Flags().StringVar(&editLanguage, "language", "english", "Draft language: english|hindi")
	editCmd.Flags().StringVar(&editText, "text", "", "Replacement draft text (manual mode)")
	editCmd.Flags().StringVar(&editDraftFile, "draft-file", "", "File with replacement draft text (manual mode)")
	editCmd.Flags().StringVar(&editInstruction, "instruction", "", "Instruction for the AI revision (ai mode)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	mode, err := models.ParseEditMode(editMode)
	if err != nil {
		return err
	}
	lang, err := models.ParseLanguage(editLanguage)
	if err != nil {
		return err
	}

	replacement := editText
	if editDraftFile != "" {
		if editText != "" {
			return fmt.Errorf("--text and --draft-file are mutually exclusive")
		}
		data, err := os.ReadFile(editDraftFile)
		if err != nil {
			return fmt.Errorf("failed to read draft file: %w", err)
		}
		replacement = string(data)
	}

	store := caseStore()
	release, err := store.Lock()
	if err != nil {
		return err
	}
	defer release()

	c, err := store.Load()
	if err != nil {
		return workflow.Guard(nil, models.StageDrafting)
	}
	if err := workflow.Guard(c, models.StageDrafting); err != nil {
		return err
	}
	if c.Submission != nil {
		return fmt.Errorf("this case was already submitted and is read-only (run 'rti reset' to start a new one)")
	}

	current := c.Draft(lang)

	change := workflow.DraftChange{
		Mode:        mode,
		Replacement: replacement,
		Instruction: editInstruction,
	}

	if mode == models.EditAIAssist {
		fmt.Println("Revising draft...")
	}

	text, err := workflow.ResolveDraftText(cmd.Context(), change, lang, current, backendClient())
	if err != nil {
		return err
	}

	if mode == models.EditUnchanged {
		// keep-as-is records the mode but never alters the stored text
		c.EditMode = models.EditUnchanged
	} else {
		if err := workflow.SetDraft(c, lang, text, mode); err != nil {
			return err
		}
	}

	if err := store.Save(c); err != nil {
		return err
	}

	if mode == models.EditUnchanged {
		fmt.Printf("✓ Draft (%s) kept as-is\n\n", lang)
	} else {
		fmt.Printf("✓ Draft (%s) updated via %s edit\n\n", lang, mode)
	}
	fmt.Println(indent(c.Draft(lang), "  "))
	fmt.Println("\nNext: rti finalize")

	return nil
}
