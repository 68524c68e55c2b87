package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/models"
)

var (
	historyJSON bool
	historyToon bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your submitted RTI requests",
	Long: `List every submitted RTI request with its response status.

Statuses come from the backend: pending, received or overdue.

Examples:
  rti history
  rti history --json
  rti history --toon`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	historyCmd.Flags().BoolVar(&historyToon, "toon", false, "Output in LLM-friendly toon format")
}

func runHistory(cmd *cobra.Command, args []string) error {
	summaries, err := backendClient().ListRTIs(cmd.Context())
	if err != nil {
		return err
	}

	if historyJSON {
		output, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if historyToon {
		output, err := gotoon.Encode(summaries)
		if err != nil {
			return fmt.Errorf("failed to encode history: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	renderHistory(cmd.OutOrStdout(), summaries)
	return nil
}

func renderHistory(w io.Writer, summaries []models.RTISummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No RTI applications yet")
		fmt.Fprintln(w, "Start your first one: rti start --file <document.pdf> --department <ministry> --year <fiscal-year>")
		return
	}

	fmt.Fprintf(w, "Found %d RTI application(s):\n\n", len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(w, "  %s %s\n", s.StatusTag(), s.Title())
		fmt.Fprintf(w, "    File:       %s\n", s.Filename)
		fmt.Fprintf(w, "    Submitted:  %s\n", s.Timestamp)
		fmt.Fprintf(w, "    Department: %s\n", s.Department)
		fmt.Fprintf(w, "    Language:   %s\n", s.Language)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Download a copy: rti download <filename>")
}
