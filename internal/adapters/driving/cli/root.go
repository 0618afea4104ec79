// Package cli implements the sidegraph command line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphref/sidegraph/internal/adapters/driven/config/file"
	"github.com/graphref/sidegraph/internal/adapters/driven/storage/datadir"
	"github.com/graphref/sidegraph/internal/adapters/driven/storage/fasta"
	"github.com/graphref/sidegraph/internal/adapters/driven/storage/sqlite"
	"github.com/graphref/sidegraph/internal/core/ports/driving"
	"github.com/graphref/sidegraph/internal/core/services"
	"github.com/graphref/sidegraph/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	flagVerbose bool
	flagDataDir string
	flagGraph   string
)

// configStore is loaded once per invocation. Tests may pre-seed it.
var configStore *file.ConfigStore

// graphService, when non-nil, short-circuits graph resolution.
// Tests inject a mock here.
var graphService driving.GraphService

var rootCmd = &cobra.Command{
	Use:   "sidegraph",
	Short: "Query genome side graphs",
	Long: `Sidegraph queries genome side graphs: reference sequences joined
into a graph by adjacencies between sequence positions.

Graphs live under a data directory (one subdirectory per graph, holding
a topology database and FASTA files). Point sidegraph at it with
--data-dir or the data_dir config key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if configStore == nil {
			store, err := file.NewConfigStore("")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			configStore = store
		}
		if flagVerbose || configStore.GetBool(file.KeyVerbose) {
			logger.SetVerbose(true)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding side graphs (default ~/.sidegraph/data)")
	rootCmd.PersistentFlags().StringVarP(&flagGraph, "graph", "g", "", "graph to query (default from config)")
}

func dataDir() (string, error) {
	if flagDataDir != "" {
		return flagDataDir, nil
	}
	return configStore.DataDir()
}

func openRegistry() (*datadir.Registry, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return datadir.NewRegistry(dir)
}

// openGraph resolves the graph named by --graph (falling back to the
// default_graph config key, or the sole discovered graph) and opens it.
// The returned cleanup must be called when done.
func openGraph(ctx context.Context) (driving.GraphService, func(), error) {
	if graphService != nil {
		return graphService, func() {}, nil
	}

	registry, err := openRegistry()
	if err != nil {
		return nil, nil, err
	}

	name := flagGraph
	if name == "" {
		name = configStore.GetString(file.KeyDefaultGraph)
	}
	if name == "" {
		graphs := registry.List()
		if len(graphs) != 1 {
			return nil, nil, fmt.Errorf("no graph selected: pass --graph or set the default_graph config key (%d graphs available)", len(graphs))
		}
		name = graphs[0].Name
	}

	source, err := registry.Get(name)
	if err != nil {
		return nil, nil, err
	}

	topology, err := sqlite.Open(source.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening topology %s: %w", source.DBPath, err)
	}
	sequences, err := fasta.NewDir(source.FastaDir)
	if err != nil {
		_ = topology.Close()
		return nil, nil, fmt.Errorf("opening FASTA directory %s: %w", source.FastaDir, err)
	}

	graph, err := services.Open(ctx, topology, sequences)
	if err != nil {
		_ = topology.Close()
		_ = sequences.Close()
		return nil, nil, err
	}

	logger.Debug("opened graph %s (handle %s)", name, graph.ID())
	return graph, func() {
		if err := graph.Close(); err != nil {
			logger.Warn("closing graph %s: %v", name, err)
		}
	}, nil
}
