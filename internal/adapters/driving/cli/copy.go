package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [id]",
	Short: "Copy a baseline's digest to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}
	if systemClipboard == nil {
		return errors.New("clipboard not available")
	}

	baseline, err := baselineService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to look up baseline: %w", err)
	}

	if err := systemClipboard.Write(baseline.Digest); err != nil {
		return fmt.Errorf("failed to copy digest: %w", err)
	}

	cmd.Printf("Copied digest of %s to clipboard.\n", baseline.Name)
	return nil
}
