package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mehulsinha/offerscout/internal/display"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List known instruments per kind",
	Long: "Lists the instruments the matcher knows about. By default this is the\n" +
		"full catalog; with --with-offers it narrows to instruments that appear\n" +
		"in at least one current offer dataset.",
	Example: `  offerscout entities
  offerscout entities --with-offers
  offerscout entities --with-offers --json`,
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)

	entitiesCmd.Flags().BoolVar(&flagWithOffers, "with-offers", false, "Only instruments present in current offer datasets")
}

func runEntities(cmd *cobra.Command, _ []string) error {
	state, err := loadData(cmd)
	if err != nil {
		return err
	}

	if flagJSON {
		return display.PrintEntitiesJSON(cmd.OutOrStdout(), state.Derived, flagWithOffers)
	}
	display.PrintEntities(cmd.OutOrStdout(), state.Derived, flagWithOffers)
	return nil
}
