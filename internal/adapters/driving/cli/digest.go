package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var digestCopy bool

var digestCmd = &cobra.Command{
	Use:   "digest [file]",
	Short: "Compute a file's digest without storing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runDigest,
}

func init() {
	digestCmd.Flags().BoolVar(&digestCopy, "copy", false, "also copy the digest to the clipboard")
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	if fileDigester == nil {
		return errors.New("digester not configured")
	}

	digest, err := fileDigester.File(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to compute digest: %w", err)
	}

	cmd.Println(digest)

	if digestCopy {
		if systemClipboard == nil {
			return errors.New("clipboard not available")
		}
		if err := systemClipboard.Write(digest); err != nil {
			return fmt.Errorf("failed to copy digest: %w", err)
		}
		cmd.Println("Copied to clipboard.")
	}
	return nil
}
