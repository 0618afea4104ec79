package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var refCmdJSON bool

var refCmd = &cobra.Command{
	Use:   "ref [name]",
	Short: "Show a reference's metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runRef,
}

func init() {
	refCmd.Flags().BoolVar(&refCmdJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(refCmd)
}

func runRef(cmd *cobra.Command, args []string) error {
	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	ref, err := graph.Reference(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("reference %q: %w", args[0], err)
	}

	if refCmdJSON {
		data, err := json.MarshalIndent(ref, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Name:       %s\n", ref.Name)
	cmd.Printf("Span:       [%d, %d)\n", ref.Start, ref.End())
	cmd.Printf("Length:     %d\n", ref.Length)
	cmd.Printf("Sequence:   %s\n", ref.SequenceID)
	cmd.Printf("MD5:        %s\n", ref.MD5Checksum)
	cmd.Printf("Derived:    %t\n", ref.IsDerived)
	if ref.SourceDivergence != nil {
		cmd.Printf("Divergence: %g\n", *ref.SourceDivergence)
	}
	if ref.NCBITaxonID != nil {
		cmd.Printf("Taxon:      %d\n", *ref.NCBITaxonID)
	}
	if len(ref.SourceAccessions) > 0 {
		cmd.Printf("Accessions: %s\n", strings.Join(ref.SourceAccessions, ", "))
	}
	return nil
}
