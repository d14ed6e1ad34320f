package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all baselines as JSON",
	Long: `Serialises the full baseline collection as an indented JSON array,
the same shape as the persisted store. Writes to stdout unless
--output is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the export to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	data, err := baselineService.Export(context.Background())
	if err != nil {
		return fmt.Errorf("failed to export baselines: %w", err)
	}

	if exportOutput == "" {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	cmd.Printf("Exported baselines to %s\n", exportOutput)
	return nil
}
