package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored baselines",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output baselines as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	baselines, err := baselineService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list baselines: %w", err)
	}

	if listJSON {
		return printJSON(cmd, baselines)
	}

	if len(baselines) == 0 {
		cmd.Println("No baselines stored.")
		return nil
	}

	cmd.Println("Baselines:")
	cmd.Println()
	for i := range baselines {
		b := &baselines[i]
		cmd.Printf("  %s\n", b.ID)
		cmd.Printf("    Name:    %s\n", b.Name)
		cmd.Printf("    Size:    %d bytes\n", b.Size)
		cmd.Printf("    Digest:  %s\n", b.Digest)
		cmd.Printf("    Saved:   %s\n", b.SavedTime().Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d baselines\n", len(baselines))
	return nil
}
