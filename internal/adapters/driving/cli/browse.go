package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/graphref/sidegraph/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a graph interactively",
	Long: `Launch the interactive terminal browser for a side graph.

Controls:
  ↑/k, ↓/j - Navigate references
  Enter    - Show reference details and joins
  Esc      - Back
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic in browser: %v\n%s\n", r, debug.Stack())
		}
	}()

	graph, cleanup, err := openGraph(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	app, err := tui.NewApp(&tui.Ports{Graph: graph})
	if err != nil {
		return fmt.Errorf("creating browser: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
