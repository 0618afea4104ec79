package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/graphref/sidegraph/internal/core/domain"
)

var basesReverse bool

var basesCmd = &cobra.Command{
	Use:   "bases [reference] [start] [end]",
	Short: "Print the bases of a reference window",
	Long: `Prints the bases of the half-open window [start, end) of a reference.
With --reverse the window is reverse-complemented, reading the other
strand.`,
	Args: cobra.ExactArgs(3),
	RunE: runBases,
}

func init() {
	basesCmd.Flags().BoolVar(&basesReverse, "reverse", false, "reverse-complement the window")
	rootCmd.AddCommand(basesCmd)
}

func runBases(cmd *cobra.Command, args []string) error {
	start, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: start %q is not an integer", domain.ErrInvalidInput, args[1])
	}
	end, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: end %q is not an integer", domain.ErrInvalidInput, args[2])
	}

	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	strand := domain.StrandForward
	if basesReverse {
		strand = domain.StrandReverse
	}

	bases, err := graph.Bases(cmd.Context(), args[0], start, end, strand)
	if err != nil {
		return fmt.Errorf("reading bases: %w", err)
	}
	cmd.Println(bases)
	return nil
}
