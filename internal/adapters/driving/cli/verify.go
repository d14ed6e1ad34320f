package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

var (
	verifyJSON   bool
	verifyRecord string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Verify a file against stored baselines",
	Long: `Computes the file's digest and matches it against the baseline store.

A digest match reports MATCH with the matching record. When no digest
matches but a stored baseline shares the file's name, the same-name
records are listed as a hint that the content changed. With --record,
the file is compared against that one baseline only (quick-verify).`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "output the result as JSON")
	verifyCmd.Flags().StringVar(&verifyRecord, "record", "", "verify against this baseline ID only")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	path := args[0]
	ctx := context.Background()

	if verifyRecord != "" {
		return runQuickVerify(ctx, cmd, verifyRecord, path)
	}

	result, err := baselineService.Verify(ctx, path)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verifyJSON {
		return printJSON(cmd, result)
	}

	switch result.Status {
	case domain.StatusMatch:
		cmd.Println(styleMatch.Render("MATCH"))
		cmd.Printf("\n  Digest:    %s\n", result.Digest)
		cmd.Printf("  Baseline:  %s (%s)\n", result.Matched.ID, result.Matched.Name)
		cmd.Printf("  Saved:     %s\n", result.Matched.SavedTime().Format("2006-01-02 15:04:05"))

	case domain.StatusNameMatch:
		cmd.Println(styleMismatch.Render("NO MATCH") + styleHint.Render(" (same name, different content)"))
		cmd.Printf("\n  Digest: %s\n\n", result.Digest)
		cmd.Printf("Baselines with the same name:\n")
		for _, b := range result.SameName {
			cmd.Printf("  %s\n", b.ID)
			cmd.Printf("    Digest: %s\n", b.Digest)
			cmd.Printf("    Saved:  %s\n", b.SavedTime().Format("2006-01-02 15:04:05"))
		}
		cmd.Println(styleHint.Render("\nThe file content changed since these baselines were captured."))

	case domain.StatusNoMatch:
		cmd.Println(styleMismatch.Render("NO MATCH"))
		cmd.Printf("\n  Digest: %s\n", result.Digest)

	case domain.StatusNoBaselines:
		cmd.Println(styleMuted.Render("No baselines stored yet."))
		cmd.Printf("\n  Digest: %s\n", result.Digest)
	}

	return nil
}

func runQuickVerify(ctx context.Context, cmd *cobra.Command, id, path string) error {
	result, err := baselineService.QuickVerify(ctx, id, path)
	if err != nil {
		return fmt.Errorf("quick-verify failed: %w", err)
	}

	if verifyJSON {
		return printJSON(cmd, result)
	}

	if result.Match {
		cmd.Println(styleMatch.Render("MATCH"))
	} else {
		cmd.Println(styleMismatch.Render("MISMATCH"))
	}
	cmd.Printf("\n  Computed:  %s\n", result.Digest)
	cmd.Printf("  Baseline:  %s (%s)\n", result.Record.Digest, result.Record.Name)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
