package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graphref/sidegraph/internal/core/domain"
)

var (
	joinsStart int64
	joinsEnd   int64
	joinsJSON  bool
)

var joinsCmd = &cobra.Command{
	Use:   "joins [reference]",
	Short: "List joins, optionally filtered to a reference interval",
	Long: `Lists the joins of a graph. With a reference argument, only joins
touching that reference are shown; --start and --end further narrow to
joins with a side inside the inclusive interval [start, end].`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJoins,
}

func init() {
	joinsCmd.Flags().Int64Var(&joinsStart, "start", 0, "interval start (requires a reference)")
	joinsCmd.Flags().Int64Var(&joinsEnd, "end", 0, "interval end (requires --start)")
	joinsCmd.Flags().BoolVar(&joinsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(joinsCmd)
}

func runJoins(cmd *cobra.Command, args []string) error {
	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var filter domain.JoinFilter
	if len(args) == 1 {
		filter.Reference = args[0]
	}
	if cmd.Flags().Changed("start") {
		start := joinsStart
		filter.Start = &start
	}
	if cmd.Flags().Changed("end") {
		end := joinsEnd
		filter.End = &end
	}

	joins, err := graph.Joins(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("listing joins: %w", err)
	}

	if joinsJSON {
		data, err := json.MarshalIndent(joins, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(joins) == 0 {
		cmd.Println("No joins found.")
		return nil
	}
	for i := range joins {
		cmd.Println(joins[i].String())
	}
	return nil
}
