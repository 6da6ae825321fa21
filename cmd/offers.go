package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mehulsinha/offerscout/internal/browse"
	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/display"
	"github.com/mehulsinha/offerscout/internal/resolver"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Show every offer for one instrument, grouped by source",
	Example: `  offerscout offers --name "HDFC Regalia"
  offerscout offers --name "sbi platinm debit" --kind debit
  offerscout offers -q "google pay" --kind upi --json`,
	RunE: runOffers,
}

func init() {
	rootCmd.AddCommand(offersCmd)

	offersCmd.Flags().StringVar(&flagName, "name", "", "Instrument name (fuzzy-matched when not exact)")
	registerMatchFlags(offersCmd.Flags())
}

func runOffers(cmd *cobra.Command, _ []string) error {
	name := flagName
	if name == "" {
		name = flagQuery
	}
	if name == "" {
		return invalidArgsError(
			"please provide --name INSTRUMENT",
			"offerscout offers --name \"HDFC Regalia\"",
			"offerscout offers --name \"google pay\" --kind upi",
		)
	}
	kind, kindSet, err := parseKindFlag()
	if err != nil {
		return err
	}

	state, err := loadData(cmd)
	if err != nil {
		return err
	}

	entity, err := resolveEntity(cmd, state, name, kind, kindSet)
	if err != nil {
		return err
	}

	opts := resolver.DefaultOptions()
	groups := resolver.Resolve(entity, state.Datasets, opts)
	if len(groups) == 0 {
		return notFoundError(
			fmt.Sprintf("no current offers for %s", entity.Name),
			"See which instruments have offers with `offerscout entities --with-offers`.",
		)
	}

	if flagJSON {
		return display.PrintOffersJSON(cmd.OutOrStdout(), groups, opts)
	}
	display.PrintOffers(cmd.OutOrStdout(), entity, groups, opts)
	return nil
}

// resolveEntity finds the instrument for a possibly misspelled name:
// exact normalized lookup first, then the top-ranked fuzzy suggestion
// with a note on stderr.
func resolveEntity(cmd *cobra.Command, state browse.State, name string, kind catalog.Kind, kindSet bool) (catalog.Entity, error) {
	key := catalog.Normalize(name)
	if kindSet {
		if e, ok := state.Derived.Catalog.Lookup(kind, key); ok {
			return e, nil
		}
	} else {
		for _, k := range catalog.Kinds() {
			if e, ok := state.Derived.Catalog.Lookup(k, key); ok {
				return e, nil
			}
		}
	}

	sections, ok := catalog.Rank(state.Derived.Catalog, name, rankConfig())
	if kindSet {
		sections = filterSections(sections, kind)
	}
	if !ok || len(sections) == 0 || len(sections[0].Items) == 0 {
		return catalog.Entity{}, notFoundError(
			fmt.Sprintf("no instrument matches %q", name),
			"List known instruments with `offerscout entities`.",
		)
	}

	best := sections[0].Items[0].Entity
	if !flagJSON {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: no exact match for %q; showing %s\n", name, best.Name)
	}
	return best, nil
}
