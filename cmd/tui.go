package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse instruments and offers interactively in the terminal",
	Example: `  offerscout tui
  offerscout tui --data ./data`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`offerscout tui` requires an interactive terminal",
			"Use `offerscout --query NAME --json` in pipelines.",
		)
	}

	if info, err := os.Stat(flagData); err != nil || !info.IsDir() {
		return invalidArgsError(
			fmt.Sprintf("data directory %q not found", flagData),
			"offerscout tui --data ./data",
		)
	}

	model := newLoadingBrowserModel(tuiLoadConfig{
		ctx: cmd.Context(),
		dir: flagData,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(browserModel); ok && m.fatalErr != nil {
		return upstreamError("loading data", m.fatalErr)
	}
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
