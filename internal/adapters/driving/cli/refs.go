package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var refsJSON bool

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "List the references in a graph",
	Args:  cobra.NoArgs,
	RunE:  runRefs,
}

func init() {
	refsCmd.Flags().BoolVar(&refsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(refsCmd)
}

func runRefs(cmd *cobra.Command, _ []string) error {
	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	names, err := graph.ReferenceNames(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing references: %w", err)
	}

	if refsJSON {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
