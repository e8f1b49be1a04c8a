// Package cli provides the cobra-based command line interface for idmap.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkage-labs/idmap-cli/internal/adapters/driven/config/file"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driving"
	"github.com/linkage-labs/idmap-cli/internal/core/services"
	"github.com/linkage-labs/idmap-cli/internal/logger"
	"github.com/linkage-labs/idmap-cli/internal/resolvers/uniprot"
)

// version is set by Execute from the main package build info.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

// Services used by the commands. Populated by initServices on first run;
// tests inject their own implementations.
var (
	configStore    driven.ConfigStore
	mappingService driving.MappingService
)

var rootCmd = &cobra.Command{
	Use:   "idmap",
	Short: "Resolve protein identifiers to current UniProt accessions",
	Long: `idmap resolves protein identifiers against the UniProt registry.

Historical (secondary) accessions are mapped to the primary accessions
that replaced them, demerged entries report every successor, and deleted
entries are flagged as obsolete. Composite identifiers joined with "," or
"_" are split, resolved per part, and reported with per-part detail.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.idmap)")
}

// Execute runs the root command. The version string is injected by main;
// the context carries signal cancellation for long-running commands.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}

// initServices wires the config store and mapping service. It is a no-op
// when a service is already present, which is how tests inject stubs.
func initServices() error {
	if mappingService != nil {
		return nil
	}

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = store

	resolver := uniprot.New(uniprot.ConfigFromStore(store))
	mappingService = services.NewMappingService(resolver)
	return nil
}
