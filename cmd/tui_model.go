package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mehulsinha/offerscout/internal/browse"
	"github.com/mehulsinha/offerscout/internal/catalog"
	"github.com/mehulsinha/offerscout/internal/dataset"
	"github.com/mehulsinha/offerscout/internal/resolver"
)

const (
	minTUIWidth  = 84
	minTUIHeight = 22
)

var (
	tuiHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	tuiNoteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tuiMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type tuiLoadConfig struct {
	ctx context.Context
	dir string
}

type tuiDataLoadedMsg struct {
	catalogRows []dataset.Row
	datasets    []dataset.Dataset
}

type tuiDataLoadErrMsg struct {
	err error
}

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
)

type tuiSectionItem struct {
	label   string
	count   int
	ordinal int
}

func (s tuiSectionItem) FilterValue() string { return strings.ToLower(s.label) }
func (s tuiSectionItem) Title() string       { return fmt.Sprintf("%d. %s", s.ordinal, s.label) }
func (s tuiSectionItem) Description() string {
	return fmt.Sprintf("Section header • %d matches", s.count)
}

type tuiSuggestionItem struct {
	entity  catalog.Entity
	score   float64
	section string
}

func (s tuiSuggestionItem) FilterValue() string { return strings.ToLower(s.entity.Name) }
func (s tuiSuggestionItem) Title() string       { return s.entity.Name }
func (s tuiSuggestionItem) Description() string {
	return fmt.Sprintf("%s • score %.2f", s.section, s.score)
}

type browserModel struct {
	loading  bool
	spinner  spinner.Model
	loadCmd  tea.Cmd
	fatalErr error

	reducer browse.Reducer
	state   browse.State

	input  textinput.Model
	list   list.Model
	detail viewport.Model

	focus    tuiFocus
	showHelp bool

	groupStarts []int

	width, height   int
	bodyHeight      int
	listPaneWidth   int
	detailPaneWidth int
	tooSmall        bool
}

func newLoadingBrowserModel(cfg tuiLoadConfig) browserModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New([]list.Item{}, delegate, 0, 0)
	lst.Title = "Instruments"
	lst.SetStatusBarItemName("match", "matches")
	lst.SetShowStatusBar(true)
	// Ranking already answers "what matches the query"; the list's own
	// fuzzy filter would fight it.
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "Type a card, UPI app, or bank name..."
	input.Prompt = "search> "
	input.Focus()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("pgdown")
	detail.KeyMap.PageUp.SetKeys("pgup")
	detail.KeyMap.HalfPageDown.SetKeys("ctrl+d")
	detail.KeyMap.HalfPageUp.SetKeys("ctrl+u")

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return browserModel{
		loading: true,
		spinner: spin,
		loadCmd: loadTUIDataCmd(cfg),
		reducer: browse.NewReducer(),
		input:   input,
		list:    lst,
		detail:  detail,
		focus:   tuiFocusList,
	}
}

func loadTUIDataCmd(cfg tuiLoadConfig) tea.Cmd {
	return func() tea.Msg {
		if err := cfg.ctx.Err(); err != nil {
			return tuiDataLoadErrMsg{err: err}
		}
		// A missing catalog degrades like a missing source: UPI and
		// net-banking entities still come from the offer datasets.
		catalogRows, _ := dataset.LoadCatalog(cfg.ctx, cfg.dir)
		datasets := dataset.LoadAll(cfg.ctx, cfg.dir, dataset.DefaultSources())
		return tuiDataLoadedMsg{catalogRows: catalogRows, datasets: datasets}
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd, textinput.Blink)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tuiDataLoadedMsg:
		m.loading = false
		m.state = m.reducer.Reduce(m.state, browse.DatasetsLoaded{
			CatalogRows: msg.catalogRows,
			Datasets:    msg.datasets,
		})
		m.rebuildList()
		m.refreshDetail()
		m.resize()
		return m, nil

	case tuiDataLoadErrMsg:
		m.loading = false
		m.fatalErr = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			if keyMsg.String() == "esc" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	if m.loading {
		return m, nil
	}

	if isKey {
		switch keyMsg.String() {
		case "esc":
			if m.focus == tuiFocusDetail {
				m.focus = tuiFocusList
				return m, nil
			}
			if m.state.Selected != nil {
				// Back out of the offer view into the suggestion list.
				m.state = m.reducer.Reduce(m.state, browse.QueryChanged{Query: m.input.Value()})
				m.rebuildList()
				m.refreshDetail()
				return m, nil
			}
			if m.input.Value() != "" {
				m.input.SetValue("")
				m.state = m.reducer.Reduce(m.state, browse.QueryChanged{Query: ""})
				m.rebuildList()
				m.refreshDetail()
				return m, nil
			}
			return m, tea.Quit

		case "tab":
			if m.focus == tuiFocusList {
				m.focus = tuiFocusDetail
			} else {
				m.focus = tuiFocusList
			}
			return m, nil

		case "ctrl+h":
			m.showHelp = !m.showHelp
			m.resize()
			return m, nil

		case "enter":
			if item, ok := m.list.SelectedItem().(tuiSuggestionItem); ok {
				m.state = m.reducer.Reduce(m.state, browse.EntitySelected{Entity: item.entity})
				m.input.SetValue(m.state.Query)
				m.input.CursorEnd()
				m.rebuildList()
				m.refreshDetail()
				m.focus = tuiFocusDetail
			}
			return m, nil

		case "]":
			m.jumpSection(1)
			return m, nil
		case "[":
			m.jumpSection(-1)
			return m, nil

		case "up", "down", "pgup", "pgdown", "home", "end":
			if m.focus == tuiFocusDetail {
				var cmd tea.Cmd
				m.detail, cmd = m.detail.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			m.refreshDetail()
			return m, cmd
		}

		// Everything else is query text.
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.state = m.reducer.Reduce(m.state, browse.QueryChanged{Query: m.input.Value()})
			m.focus = tuiFocusList
			m.rebuildList()
			m.refreshDetail()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.loading {
		return m.loadingView()
	}
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Loading interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal too small (%dx%d).\nResize to at least %dx%d for the two-pane offer browser.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m browserModel) loadingView() string {
	width := m.width
	if width == 0 {
		width = 80
	}
	lines := []string{
		tuiHeaderStyle.Render("offerscout tui"),
		tuiMetaStyle.Render("Preparing interactive interface..."),
		"",
		fmt.Sprintf("%s Reading catalog and offer datasets", m.spinner.View()),
		tuiHintStyle.Render("Tip: press esc to cancel."),
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (m *browserModel) resize() {
	if m.width == 0 || m.height == 0 || m.loading {
		return
	}

	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerH := 4
	footerH := 2
	if m.showHelp {
		footerH = 6
	}
	m.bodyHeight = maxInt(8, m.height-headerH-footerH-1)

	listWidth := maxInt(36, int(float64(m.width)*0.42))
	detailWidth := m.width - listWidth - 1
	if detailWidth < 36 {
		detailWidth = 36
		listWidth = m.width - detailWidth - 1
	}

	m.listPaneWidth = listWidth
	m.detailPaneWidth = detailWidth

	listInnerWidth := maxInt(24, listWidth-4)
	detailInnerWidth := maxInt(24, detailWidth-4)
	panelInnerHeight := maxInt(6, m.bodyHeight-2)

	m.input.Width = maxInt(20, m.width-14)
	m.list.SetSize(listInnerWidth, panelInnerHeight)
	m.detail.Width = detailInnerWidth
	m.detail.Height = panelInnerHeight
	m.refreshDetail()
}

func (m browserModel) headerView() string {
	focus := "list"
	if m.focus == tuiFocusDetail {
		focus = "detail"
	}

	visible := 0
	for _, s := range m.state.Sections {
		visible += len(s.Items)
	}

	status := fmt.Sprintf("catalog: %d instruments  |  focus: %s", m.state.Derived.Catalog.Len(), focus)
	switch {
	case m.state.Selected != nil:
		status = fmt.Sprintf("selected: %s  |  focus: %s", m.state.Selected.Name, focus)
	case m.state.NoMatches:
		status = fmt.Sprintf("no instruments match %q", m.state.Query)
	case visible > 0:
		status = fmt.Sprintf("matches: %d  |  focus: %s", visible, focus)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(
			tuiHeaderStyle.Render("offerscout tui") + "\n" +
				m.input.View() + "\n" +
				tuiMetaStyle.Render(status),
		)
}

func (m browserModel) bodyView() string {
	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)
	detailBorder := listBorder

	if m.focus == tuiFocusList {
		listBorder = listBorder.BorderForeground(lipgloss.Color("86"))
	} else {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("86"))
	}

	left := listBorder.
		Width(m.listPaneWidth).
		Height(m.bodyHeight).
		Render(m.list.View())
	right := detailBorder.
		Width(m.detailPaneWidth).
		Height(m.bodyHeight).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m browserModel) footerView() string {
	base := "type to search • ↑/↓ move • enter offers • [/] section jump • tab switch pane • esc back • ctrl+h help • ctrl+c quit"
	if m.focus == tuiFocusDetail {
		base = "Detail: ↑/↓ scroll • ctrl+u/ctrl+d half-page • esc list • ctrl+c quit"
	}

	if !m.showHelp {
		return lipgloss.NewStyle().Padding(0, 1).Render(tuiHintStyle.Render(base))
	}

	lines := []string{
		"Key Help",
		"search: every printable key edits the query; matches re-rank on each keystroke",
		"list pane: ↑/↓ move • enter show offers • ] next section • [ previous section",
		"detail pane: ↑/↓ scroll • ctrl+u/ctrl+d half-page • tab/esc back to list",
		"global: esc steps back (detail → list → clear query → quit) • ctrl+c force quit",
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(strings.Join(lines, "\n")))
}

// rebuildList projects the reducer's sections into list items with
// section headers, recording where each section starts for jump keys.
func (m *browserModel) rebuildList() {
	items := make([]list.Item, 0)
	starts := make([]int, 0, len(m.state.Sections))

	for idx, section := range m.state.Sections {
		starts = append(starts, len(items))
		items = append(items, tuiSectionItem{
			label:   section.Label,
			count:   len(section.Items),
			ordinal: idx + 1,
		})
		for _, sug := range section.Items {
			items = append(items, tuiSuggestionItem{
				entity:  sug.Entity,
				score:   sug.Score,
				section: section.Label,
			})
		}
	}

	m.groupStarts = starts
	m.list.SetItems(items)
	if target := firstSuggestionIndexFrom(items, 0); target >= 0 {
		m.list.Select(target)
	} else if len(items) > 0 {
		m.list.Select(0)
	}

	switch {
	case m.state.Selected != nil:
		m.list.Title = "Selected instrument"
	case len(items) == 0:
		m.list.Title = "Instruments"
	default:
		m.list.Title = fmt.Sprintf("Matches • %d", len(items)-len(starts))
	}
}

func (m *browserModel) refreshDetail() {
	m.detail.SetContent(m.detailContent())
	m.detail.GotoTop()
}

func (m browserModel) detailContent() string {
	if m.state.Selected != nil {
		return m.renderOffers()
	}
	if item, ok := m.list.SelectedItem().(tuiSuggestionItem); ok {
		return strings.Join([]string{
			tuiTitleStyle.Render(item.entity.Name),
			tuiMetaStyle.Render(fmt.Sprintf("%s • score %.2f", item.section, item.score)),
			"",
			"Press enter to load offers for this instrument.",
		}, "\n")
	}
	if m.state.NoMatches {
		return tuiNoteStyle.Render(fmt.Sprintf("No instruments match %q.", m.state.Query)) +
			"\n\nCheck the spelling; close misspellings like \"regaila\" still match."
	}
	return m.renderOverview()
}

// renderOverview is the landing screen: which instruments currently
// have offers, per kind.
func (m browserModel) renderOverview() string {
	lines := []string{
		tuiTitleStyle.Render("Instruments with current offers"),
		"",
	}
	empty := true
	for _, kind := range catalog.Kinds() {
		chips := m.state.Derived.Chips[kind]
		if len(chips) == 0 {
			continue
		}
		empty = false
		lines = append(lines, tuiSectionStyle.Render(kind.Label()))
		preview := chips
		if len(preview) > 8 {
			preview = preview[:8]
		}
		for _, name := range preview {
			lines = append(lines, "• "+name)
		}
		if len(chips) > len(preview) {
			lines = append(lines, tuiMutedStyle.Render(fmt.Sprintf("…and %d more", len(chips)-len(preview))))
		}
		lines = append(lines, "")
	}
	if empty {
		lines = append(lines, tuiMetaStyle.Render("No offer datasets loaded."))
	}
	lines = append(lines, tuiHintStyle.Render("Start typing to search."))
	return strings.Join(lines, "\n")
}

func (m browserModel) renderOffers() string {
	entity := *m.state.Selected
	if !m.state.HasOffers() {
		return tuiTitleStyle.Render(entity.Name) +
			"\n\n" + tuiMetaStyle.Render("No current offers for this instrument.")
	}

	width := maxInt(24, m.detail.Width)
	opts := m.reducer.Options

	lines := []string{tuiTitleStyle.Render("Offers for "+entity.Name), ""}
	for _, g := range m.state.Offers {
		heading := "Offers On " + g.Source
		if g.Permanent {
			heading = "Permanent Offers"
		}
		lines = append(lines, tuiSectionStyle.Render(heading))
		for _, match := range g.Matches {
			lines = append(lines, renderOfferLines(g, match, opts, width)...)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderOfferLines(g resolver.Group, match resolver.Match, opts resolver.Options, width int) []string {
	lines := []string{"", tuiTitleStyle.Render(wrapText(offerTUITitle(g, match), width))}

	if g.Permanent {
		if benefit := match.Row.First(dataset.PermanentBenefitFields); benefit != "" {
			lines = append(lines, wrapText(benefit, width))
		}
		lines = append(lines, tuiMutedStyle.Render("Inbuilt feature of this credit card"))
	} else if desc := match.Row.First(dataset.DescriptionFields); desc != "" {
		lines = append(lines, tuiMetaStyle.Render(wrapText(desc, width)))
	}

	if opts.ShowVariant(match) {
		lines = append(lines, tuiNoteStyle.Render(wrapText(
			fmt.Sprintf("Note: applicable only on the %s variant", match.Variant), width)))
	}
	if link := strings.TrimSpace(match.Row.First(dataset.LinkFields)); link != "" {
		lines = append(lines, tuiMutedStyle.Render(wrapText(link, width)))
	}
	return lines
}

func offerTUITitle(g resolver.Group, match resolver.Match) string {
	if t := strings.TrimSpace(match.Row.First(dataset.TitleFields)); t != "" {
		return t
	}
	if t := strings.TrimSpace(match.Row.First(dataset.WebsiteFields)); t != "" {
		return t
	}
	if g.Permanent {
		if t := strings.TrimSpace(match.Row.First(dataset.PermanentNameFields)); t != "" {
			return t
		}
	}
	return "Offer"
}

func (m *browserModel) jumpSection(delta int) {
	if len(m.groupStarts) == 0 {
		return
	}

	current := m.currentSectionIndex()
	if current < 0 {
		current = 0
	}
	next := current + delta
	if next < 0 {
		next = len(m.groupStarts) - 1
	}
	if next >= len(m.groupStarts) {
		next = 0
	}

	target := firstSuggestionIndexFrom(m.list.Items(), m.groupStarts[next])
	if target < 0 {
		target = m.groupStarts[next]
	}
	m.list.Select(target)
	m.refreshDetail()
}

func (m browserModel) currentSectionIndex() int {
	if len(m.groupStarts) == 0 {
		return -1
	}
	cursor := m.list.GlobalIndex()
	current := 0
	for i, start := range m.groupStarts {
		if start <= cursor {
			current = i
			continue
		}
		break
	}
	return current
}

func firstSuggestionIndexFrom(items []list.Item, start int) int {
	for i := start; i < len(items); i++ {
		if _, ok := items[i].(tuiSuggestionItem); ok {
			return i
		}
	}
	return -1
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width < 12 {
		width = 12
	}

	line := words[0]
	lines := make([]string, 0, len(words)/6+1)
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
