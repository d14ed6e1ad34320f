package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [file]",
	Short: "Store a file's digest as a new baseline",
	Long: `Computes the SHA-256 digest of the file and stores it, together with
the file's name, size and modification time, as a new baseline record.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	baseline, err := baselineService.Register(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to register baseline: %w", err)
	}

	cmd.Printf("Baseline registered: %s\n\n", baseline.ID)
	cmd.Printf("  Name:    %s\n", baseline.Name)
	cmd.Printf("  Size:    %d bytes\n", baseline.Size)
	cmd.Printf("  Digest:  %s\n", baseline.Digest)
	cmd.Printf("  Saved:   %s\n", baseline.SavedTime().Format("2006-01-02 15:04:05"))
	return nil
}
