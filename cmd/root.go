package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mehulsinha/offerscout/internal/browse"
	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
	"github.com/mehulsinha/offerscout/internal/display"
)

var (
	flagData  string
	flagQuery string
	flagKind  string
	flagName  string
	flagLimit int
	flagJSON  bool

	flagWithOffers bool
)

var rootCmd = &cobra.Command{
	Use:   "offerscout",
	Short: "Search payment-instrument offers across grocery datasets",
	Long: "CLI tool that matches credit cards, debit cards, UPI apps, and net-banking\n" +
		"providers against offer datasets, with typo-tolerant fuzzy search.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -query regalia, query=regalia, --qery regalia).",
	Example: `  offerscout --query "hdfc regalia"
  offerscout --query "sbi debit" --limit 10
  offerscout offers --name "HDFC Regalia"
  offerscout entities --with-offers --json
  offerscout sources --data ./data`,
	RunE: runSuggest,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagData, "data", "d", "data", "Directory holding the catalog and offer CSV files")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")

	registerMatchFlags(rootCmd.Flags())
	rootCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Limit suggestions per kind (0 = default cap)")
}

func registerMatchFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagQuery, "query", "q", "", "Search instruments by (possibly misspelled) name")
	f.StringVarP(&flagKind, "kind", "k", "", "Restrict to one kind (credit, debit, upi, netbanking)")
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			display.PrintError(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				display.PrintError(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			display.PrintError(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdout, stderr io.Writer) {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdout, stderr)
	}
}

func resetCLIState() {
	resetHelpFlags(rootCmd)
	flagData = "data"
	flagQuery = ""
	flagKind = ""
	flagName = ""
	flagLimit = 0
	flagJSON = false
	flagWithOffers = false
}

// resetHelpFlags clears cobra's internal --help flag on every command so
// one invocation's help request does not leak into the next runCLI call.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, child := range cmd.Commands() {
		resetHelpFlags(child)
	}
}

func parseKindFlag() (catalog.Kind, bool, error) {
	if flagKind == "" {
		return catalog.Credit, false, nil
	}
	kind, ok := catalog.ParseKind(flagKind)
	if !ok {
		return catalog.Credit, false, invalidArgsError(
			"invalid value for --kind (use credit, debit, upi, or netbanking)",
			"offerscout --query regalia --kind credit",
			"offerscout offers --name \"Google Pay\" --kind upi",
		)
	}
	return kind, true, nil
}

func rankConfig() catalog.Config {
	cfg := catalog.DefaultConfig()
	if flagLimit > 0 {
		cfg.MaxSuggestions = flagLimit
	}
	return cfg
}

// loadData reads the catalog file and every offer dataset from the data
// directory and derives the searchable state.
func loadData(cmd *cobra.Command) (browse.State, error) {
	ctx := cmd.Context()

	if info, err := os.Stat(flagData); err != nil || !info.IsDir() {
		return browse.State{}, invalidArgsError(
			fmt.Sprintf("data directory %q not found", flagData),
			"offerscout --data ./data --query regalia",
		)
	}

	// A missing or unreadable catalog degrades like a failed offer
	// source: the credit/debit pools stay empty while UPI and
	// net-banking entities are still harvested from the offer datasets.
	catalogRows, err := dataset.LoadCatalog(ctx, flagData)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: catalog unavailable: %v\n", err)
		catalogRows = nil
	}

	datasets := dataset.LoadAll(ctx, flagData, dataset.DefaultSources())

	r := browse.NewReducer()
	state := r.Reduce(browse.State{}, browse.DatasetsLoaded{
		CatalogRows: catalogRows,
		Datasets:    datasets,
	})
	return state, nil
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if flagQuery == "" {
		return invalidArgsError(
			"please provide --query TEXT",
			"offerscout --query \"hdfc regalia\"",
			"offerscout --query \"sbi upi\" --json",
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

	sections, ok := catalog.Rank(state.Derived.Catalog, flagQuery, rankConfig())
	if kindSet {
		sections = filterSections(sections, kind)
		ok = ok && len(sections) > 0
	}
	if !ok || len(sections) == 0 {
		return notFoundError(
			fmt.Sprintf("no instruments match %q", flagQuery),
			"Check the spelling, or list everything with `offerscout entities`.",
		)
	}

	if flagJSON {
		return display.PrintSuggestionsJSON(cmd.OutOrStdout(), sections)
	}
	display.PrintSuggestions(cmd.OutOrStdout(), sections, flagQuery)
	return nil
}

func filterSections(sections []catalog.Section, kind catalog.Kind) []catalog.Section {
	out := sections[:0:0]
	for _, s := range sections {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
