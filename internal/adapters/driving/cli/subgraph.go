package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driving"
	"github.com/graphref/sidegraph/internal/core/services"
	"github.com/graphref/sidegraph/internal/logger"
)

var (
	subgraphRadius int64
	subgraphJSON   bool
)

var subgraphCmd = &cobra.Command{
	Use:   "subgraph [reference] [position]",
	Short: "Extract the subgraph around a position",
	Long: `Extracts the subgraph within a radius of a seed position. The radius
is spent on bases traveled along references and on join crossings (one
base each), so the result covers everything reachable within that many
steps of the seed.`,
	Args: cobra.ExactArgs(2),
	RunE: runSubgraph,
}

func init() {
	subgraphCmd.Flags().Int64VarP(&subgraphRadius, "radius", "r", 100, "traversal radius in bases")
	subgraphCmd.Flags().BoolVar(&subgraphJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(subgraphCmd)
}

func runSubgraph(cmd *cobra.Command, args []string) error {
	position, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: position %q is not an integer", domain.ErrInvalidInput, args[1])
	}

	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := extract(cmd.Context(), graph, args[0], position, subgraphRadius)
	if err != nil {
		return fmt.Errorf("extracting subgraph: %w", err)
	}

	if subgraphJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if result.IsEmpty() {
		cmd.Println("Empty subgraph.")
		return nil
	}

	cmd.Printf("Segments (%d):\n", len(result.Segments))
	for i := range result.Segments {
		cmd.Printf("  %s\n", result.Segments[i].String())
	}
	cmd.Printf("Joins (%d):\n", len(result.Joins))
	for i := range result.Joins {
		cmd.Printf("  %s\n", result.Joins[i].String())
	}
	return nil
}

// extract runs the extraction, forwarding trace events to the logger
// when verbose mode is on.
func extract(ctx context.Context, graph driving.GraphService, ref string, pos, radius int64) (domain.Subgraph, error) {
	g, ok := graph.(*services.Graph)
	if !ok || !logger.IsVerbose() {
		return graph.Subgraph(ctx, ref, pos, radius)
	}
	return g.Extract(ctx, ref, pos, radius, services.WithTrace(func(ev services.TraceEvent) {
		if ev.Via != nil {
			logger.Debug("%s %s:%d remaining=%d via %s", ev.Kind, ev.Reference, ev.Anchor, ev.Remaining, ev.Via)
			return
		}
		logger.Debug("%s %s:%d remaining=%d", ev.Kind, ev.Reference, ev.Anchor, ev.Remaining)
	}))
}
