package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/casefile"
)

var (
	officesLocation   string
	officesDepartment string
)

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "Find RTI offices for a location",
	Long: `Find RTI offices for a location and department. Useful when no response
arrives within 30 days and you need somewhere to follow up.

The department defaults to the current case's department when one exists.

Examples:
  rti offices --location Pune
  rti offices --location "New Delhi" --department "Ministry of Railways"`,
	RunE: runOffices,
}

func init() {
	rootCmd.AddCommand(officesCmd)

	officesCmd.Flags().StringVar(&officesLocation, "location", "", "City, district or state")
	officesCmd.Flags().StringVar(&officesDepartment, "department", "", "Target ministry")
}

func runOffices(cmd *cobra.Command, args []string) error {
	if officesLocation == "" {
		return fmt.Errorf("location is required (--location)")
	}

	department := officesDepartment
	if department == "" {
		c, err := caseStore().Load()
		if err != nil {
			if errors.Is(err, casefile.ErrNoCase) {
				return fmt.Errorf("department is required (--department) when no case is in progress")
			}
			return err
		}
		department = c.Department
	}

	offices, err := backendClient().FindOffices(cmd.Context(), officesLocation, department)
	if err != nil {
		return err
	}

	if len(offices) == 0 {
		fmt.Printf("No RTI offices found for %s (%s)\n", officesLocation, department)
		return nil
	}

	fmt.Printf("RTI offices for %s (%s):\n\n", officesLocation, department)
	for _, office := range offices {
		fmt.Printf("  - %s\n", office)
	}

	return nil
}
