package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtiworkbench/rti-cli/internal/config"
	"github.com/rtiworkbench/rti-cli/internal/fileio"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <filename>",
	Short: "Download a submitted RTI document",
	Long: `Download the stored copy of a submitted RTI request. Filenames come from
'rti history'.

Examples:
  rti download education_budget_rti_2024.pdf
  rti download education_budget_rti_2024.pdf --output ~/Documents`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringVar(&downloadOutput, "output", "", "Output directory (default from config)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := backendClient().DownloadRTI(cmd.Context(), filename)
	if err != nil {
		return err
	}

	dir := downloadOutput
	if dir == "" {
		dir = config.GetDownloadDir()
	}

	path, err := fileio.SaveAttachment(dir, filename, data)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Saved %s (%d bytes)\n", path, len(data))
	return nil
}
