// Command hashmark registers file baselines and verifies files against them.
package main

import (
	"fmt"
	"os"

	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/clipboard"
	configfile "github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/config/file"
	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/digest"
	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driven/storage/sqlite"
	"github.com/hashmark-labs/hashmark-cli/internal/adapters/driving/cli"
	"github.com/hashmark-labs/hashmark-cli/internal/core/ports/driven"
	"github.com/hashmark-labs/hashmark-cli/internal/core/services"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hashmark: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dataDir := config.GetString("data_dir")

	var store driven.BaselineStore
	switch backend := config.GetString("storage"); backend {
	case "sqlite":
		s, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening sqlite store: %w", err)
		}
		defer s.Close()
		store = s
	case "", "json":
		s, err := jsonfile.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("opening baseline store: %w", err)
		}
		store = s
	default:
		return fmt.Errorf("unknown storage backend %q in %s", backend, config.Path())
	}

	digester := digest.NewSHA256()
	baselines := services.NewBaselineService(store, digester)

	cli.SetVersion(Version)
	cli.SetServices(baselines, digester, clipboard.NewSystem())

	return cli.Execute()
}
