package cli

import (
	"github.com/spf13/cobra"
)

var graphsCmd = &cobra.Command{
	Use:   "graphs",
	Short: "List the graphs in the data directory",
	Args:  cobra.NoArgs,
	RunE:  runGraphs,
}

func init() {
	rootCmd.AddCommand(graphsCmd)
}

func runGraphs(cmd *cobra.Command, _ []string) error {
	registry, err := openRegistry()
	if err != nil {
		return err
	}

	graphs := registry.List()
	if len(graphs) == 0 {
		cmd.Println("No graphs found.")
		return nil
	}
	for _, g := range graphs {
		cmd.Printf("%s\t%s\n", g.Name, g.DBPath)
	}
	return nil
}
