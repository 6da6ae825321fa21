package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mehulsinha/offerscout/internal/display"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show offer datasets with row counts and load status",
	Example: `  offerscout sources
  offerscout sources --data ./data --json`,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	state, err := loadData(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		return display.PrintSourcesJSON(cmd.OutOrStdout(), state.Datasets)
	}
	display.PrintSources(cmd.OutOrStdout(), state.Datasets)
	return nil
}
