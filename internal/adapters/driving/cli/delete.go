package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashmark-labs/hashmark-cli/internal/core/domain"
)

var (
	deleteYes bool
	clearYes  bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete one baseline",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all baselines",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	id := args[0]
	ctx := context.Background()

	baseline, err := baselineService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleting an absent record is a no-op, not an error.
			cmd.Printf("No baseline with ID %s.\n", id)
			return nil
		}
		return fmt.Errorf("failed to look up baseline: %w", err)
	}

	ok, err := confirm(cmd, fmt.Sprintf("Delete baseline %s (%s)?", id, baseline.Name), deleteYes)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("Aborted.")
		return nil
	}

	if err := baselineService.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete baseline: %w", err)
	}

	cmd.Printf("Baseline %s deleted.\n", id)
	return nil
}

func runClear(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	ctx := context.Background()

	baselines, err := baselineService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list baselines: %w", err)
	}
	if len(baselines) == 0 {
		cmd.Println("No baselines stored.")
		return nil
	}

	ok, err := confirm(cmd, fmt.Sprintf("Delete all %d baselines?", len(baselines)), clearYes)
	if err != nil {
		return err
	}
	if !ok {
		cmd.Println("Aborted.")
		return nil
	}

	if err := baselineService.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear baselines: %w", err)
	}

	cmd.Printf("Deleted %d baselines.\n", len(baselines))
	return nil
}
