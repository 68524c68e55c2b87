package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/casefile"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current case",
	Long: `Discard the current case snapshot so a fresh one can be started.

A submitted case stays tracked on the backend; reset only clears the local
workspace.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Discard without confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	store := caseStore()

	c, err := store.Load()
	if err != nil {
		if errors.Is(err, casefile.ErrNoCase) {
			fmt.Println("No case in progress")
			return nil
		}
		return err
	}

	if !resetForce && c.Submission == nil {
		return fmt.Errorf("case %s (stage %s) has not been submitted; re-run with --force to discard it", c.ID, c.Stage)
	}

	release, err := store.Lock()
	if err != nil {
		return err
	}
	defer release()

	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Printf("✓ Case %s discarded\n", c.ID)
	return nil
}
