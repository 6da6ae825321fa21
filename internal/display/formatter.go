package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mehulsinha/offerscout/internal/browse"
	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
	"github.com/mehulsinha/offerscout/internal/resolver"
)

// Styles for terminal output.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	scoreStyle   = lipgloss.NewStyle().Faint(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	cyanStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	benefitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// SuggestionJSON is the JSON output shape for one suggestion.
type SuggestionJSON struct {
	Kind  string  `json:"kind"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SectionJSON is the JSON output shape for one suggestion section.
type SectionJSON struct {
	Label string           `json:"label"`
	Items []SuggestionJSON `json:"items"`
}

// OfferJSON is the JSON output shape for one resolved offer.
type OfferJSON struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Benefit     string `json:"benefit,omitempty"`
	Link        string `json:"link,omitempty"`
	Image       string `json:"image,omitempty"`
	Variant     string `json:"variant,omitempty"`
	VariantNote bool   `json:"variantNote"`
	Permanent   bool   `json:"permanent"`
}

// PrintSuggestions renders the sectioned suggestion list.
func PrintSuggestions(w io.Writer, sections []catalog.Section, query string) {
	total := 0
	for _, s := range sections {
		total += len(s.Items)
	}
	fmt.Fprintf(w, "\n%s — %s\n",
		headerStyle.Render(fmt.Sprintf("Matches for %q", query)),
		cyanStyle.Render(fmt.Sprintf("%d suggestions", total)),
	)

	for _, s := range sections {
		fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(s.Label))
		for _, item := range s.Items {
			fmt.Fprintf(w, "  %s %s\n",
				titleStyle.Render(item.Entity.Name),
				scoreStyle.Render(fmt.Sprintf("(%.2f)", item.Score)),
			)
		}
	}
	fmt.Fprintln(w)
}

// PrintSuggestionsJSON renders the sectioned suggestion list as JSON.
func PrintSuggestionsJSON(w io.Writer, sections []catalog.Section) error {
	out := make([]SectionJSON, 0, len(sections))
	for _, s := range sections {
		sec := SectionJSON{Label: s.Label, Items: make([]SuggestionJSON, 0, len(s.Items))}
		for _, item := range s.Items {
			sec.Items = append(sec.Items, SuggestionJSON{
				Kind:  item.Entity.Kind.String(),
				Name:  item.Entity.Name,
				Score: item.Score,
			})
		}
		out = append(out, sec)
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintOffers renders the grouped offers for a selected entity.
func PrintOffers(w io.Writer, entity catalog.Entity, groups []resolver.Group, opts resolver.Options) {
	total := 0
	for _, g := range groups {
		total += len(g.Matches)
	}
	fmt.Fprintf(w, "\n%s — %s\n",
		headerStyle.Render(fmt.Sprintf("Offers for %s", entity.Name)),
		cyanStyle.Render(fmt.Sprintf("%d offers", total)),
	)

	for _, g := range groups {
		heading := "Offers On " + g.Source
		if g.Permanent {
			heading = "Permanent Offers"
		}
		fmt.Fprintf(w, "\n%s\n\n", sectionStyle.Render(heading))
		for _, m := range g.Matches {
			printOffer(w, g, m, opts)
			fmt.Fprintln(w)
		}
	}
}

// PrintOffersJSON renders the grouped offers as JSON.
func PrintOffersJSON(w io.Writer, groups []resolver.Group, opts resolver.Options) error {
	out := make([]OfferJSON, 0)
	for _, g := range groups {
		for _, m := range g.Matches {
			out = append(out, toOfferJSON(g, m, opts))
		}
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintEntities renders per-kind entity listings from the catalog, or
// the chip strips when withOffers is set.
func PrintEntities(w io.Writer, d browse.Derived, withOffers bool) {
	heading := "Catalog instruments"
	if withOffers {
		heading = "Instruments with current offers"
	}
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(heading))

	for _, kind := range catalog.Kinds() {
		var names []string
		if withOffers {
			names = d.Chips[kind]
		} else {
			for _, e := range d.Catalog.Entities(kind) {
				names = append(names, e.Name)
			}
		}
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s %s\n",
			sectionStyle.Render(kind.Label()),
			dimStyle.Render(fmt.Sprintf("(%d)", len(names))),
		)
		for _, name := range names {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	fmt.Fprintln(w)
}

// PrintEntitiesJSON renders the entity listings as JSON.
func PrintEntitiesJSON(w io.Writer, d browse.Derived, withOffers bool) error {
	out := make(map[string][]string, 4)
	for _, kind := range catalog.Kinds() {
		names := []string{}
		if withOffers {
			names = append(names, d.Chips[kind]...)
		} else {
			for _, e := range d.Catalog.Entities(kind) {
				names = append(names, e.Name)
			}
		}
		out[kind.String()] = names
	}
	return json.NewEncoder(w).Encode(out)
}

// SourceJSON is the JSON output shape for one dataset.
type SourceJSON struct {
	Name   string `json:"name"`
	Rows   int    `json:"rows"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// PrintSources renders the datasets with row counts and load status.
func PrintSources(w io.Writer, datasets []dataset.Dataset) {
	fmt.Fprintf(w, "\n%s\n\n", headerStyle.Render("Offer sources"))
	for _, ds := range datasets {
		if ds.Err != nil {
			fmt.Fprintf(w, "  %s  %s\n", titleStyle.Render(ds.Name), errorStyle.Render("unavailable"))
			fmt.Fprintf(w, "        %s\n", dimStyle.Render(ds.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n",
			titleStyle.Render(ds.Name),
			cyanStyle.Render(fmt.Sprintf("%d rows", len(ds.Rows))),
		)
	}
	fmt.Fprintln(w)
}

// PrintSourcesJSON renders the dataset statuses as JSON.
func PrintSourcesJSON(w io.Writer, datasets []dataset.Dataset) error {
	out := make([]SourceJSON, 0, len(datasets))
	for _, ds := range datasets {
		s := SourceJSON{Name: ds.Name, Rows: len(ds.Rows), Status: "ok"}
		if ds.Err != nil {
			s.Status = "unavailable"
			s.Error = ds.Err.Error()
		}
		out = append(out, s)
	}
	return json.NewEncoder(w).Encode(out)
}

// PrintError prints a styled error message.
func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

func printOffer(w io.Writer, g resolver.Group, m resolver.Match, opts resolver.Options) {
	title := offerTitle(g, m)
	fmt.Fprintf(w, "  %s\n", titleStyle.Render(title))

	if g.Permanent {
		if benefit := m.Row.First(dataset.PermanentBenefitFields); benefit != "" {
			fmt.Fprintf(w, "    %s\n", benefitStyle.Render(wordWrap(benefit, 72, "    ")))
		}
		fmt.Fprintf(w, "    %s\n", dimStyle.Render("Inbuilt feature of this credit card"))
	} else if desc := m.Row.First(dataset.DescriptionFields); desc != "" {
		fmt.Fprintf(w, "    %s\n", dimStyle.Render(wordWrap(desc, 72, "    ")))
	}

	if opts.ShowVariant(m) {
		fmt.Fprintf(w, "    %s\n", noteStyle.Render(fmt.Sprintf("Note: applicable only on the %s variant", m.Variant)))
	}
	if link := strings.TrimSpace(m.Row.First(dataset.LinkFields)); link != "" {
		fmt.Fprintf(w, "    %s\n", cyanStyle.Render(link))
	}
}

// offerTitle mirrors the card header: the title field when present,
// then the site name, then the card name for permanent rows.
func offerTitle(g resolver.Group, m resolver.Match) string {
	if t := strings.TrimSpace(m.Row.First(dataset.TitleFields)); t != "" {
		return t
	}
	if t := strings.TrimSpace(m.Row.First(dataset.WebsiteFields)); t != "" {
		return t
	}
	if g.Permanent {
		if t := strings.TrimSpace(m.Row.First(dataset.PermanentNameFields)); t != "" {
			return t
		}
	}
	return "Offer"
}

func toOfferJSON(g resolver.Group, m resolver.Match, opts resolver.Options) OfferJSON {
	out := OfferJSON{
		Source:      m.Source,
		Title:       offerTitle(g, m),
		Description: strings.TrimSpace(m.Row.First(dataset.DescriptionFields)),
		Link:        strings.TrimSpace(m.Row.First(dataset.LinkFields)),
		Variant:     m.Variant,
		VariantNote: opts.ShowVariant(m),
		Permanent:   g.Permanent,
	}
	if g.Permanent {
		out.Benefit = strings.TrimSpace(m.Row.First(dataset.PermanentBenefitFields))
	}
	site := m.Row.First(dataset.WebsiteFields)
	if site == "" {
		site = m.Source
	}
	out.Image, _ = ResolveImage(site, m.Row.First(dataset.ImageFields))
	return out
}

func wordWrap(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+indent)
}
