// Package cli implements the cobra command tree driving the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driving"
	"github.com/hashmark-labs/hashmark-cli/internal/logger"
)

// version is set at startup via SetVersion.
var version = "dev"

// Services injected at startup via SetServices. Commands check for nil
// so the tree stays testable without full wiring.
var (
	baselineService driving.BaselineService
	fileDigester    driven.Digester
	systemClipboard driven.Clipboard
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "hashmark",
	Short: "Register file baselines and verify files against them",
	Long: `hashmark computes SHA-256 digests of local files, stores them as
named baselines, and later re-verifies files against the stored
baselines to detect content changes.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging to stderr")
}

// SetServices injects the service implementations used by the commands.
func SetServices(baselines driving.BaselineService, digester driven.Digester, clipboard driven.Clipboard) {
	baselineService = baselines
	fileDigester = digester
	systemClipboard = clipboard
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
