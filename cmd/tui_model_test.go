package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehulsinha/offerscout/internal/dataset"
)

func loadedBrowserModel(t *testing.T) browserModel {
	t.Helper()

	m := newLoadingBrowserModel(tuiLoadConfig{})
	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 110, Height: 32})
	m = applyMsg(t, m, tuiDataLoadedMsg{
		catalogRows: []dataset.Row{
			{"Eligible Credit Cards": "HDFC Regalia (Visa Signature), HDFC Millennia"},
		},
		datasets: []dataset.Dataset{
			{Name: "Permanent", Rows: []dataset.Row{
				{"Eligible Credit Cards": "HDFC Regalia (Visa Signature)", "Benefit": "Lounge access"},
			}},
			{Name: "Blinkit", Rows: []dataset.Row{
				{"Offer": "10% off groceries", "Eligible Credit Cards": "HDFC Regalia", "UPI": "Google Pay"},
			}},
		},
	})

	require.False(t, m.loading)
	return m
}

func applyMsg(t *testing.T, m browserModel, msg tea.Msg) browserModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(browserModel)
	require.True(t, ok)
	return out
}

func typeQuery(t *testing.T, m browserModel, text string) browserModel {
	t.Helper()
	for _, r := range text {
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestBrowserModel_TypingReranksSuggestions(t *testing.T) {
	m := loadedBrowserModel(t)

	m = typeQuery(t, m, "regalia")

	require.NotEmpty(t, m.state.Sections)
	assert.False(t, m.state.NoMatches)

	items := m.list.Items()
	require.NotEmpty(t, items)
	header, ok := items[0].(tuiSectionItem)
	require.True(t, ok)
	assert.Equal(t, "Credit Cards", header.label)

	selected, ok := m.list.SelectedItem().(tuiSuggestionItem)
	require.True(t, ok, "cursor starts on the first suggestion, not the header")
	assert.Equal(t, "HDFC Regalia", selected.entity.Name)
}

func TestBrowserModel_GibberishShowsNoMatches(t *testing.T) {
	m := loadedBrowserModel(t)

	m = typeQuery(t, m, "xyzzy")

	assert.True(t, m.state.NoMatches)
	assert.Empty(t, m.list.Items())
}

func TestBrowserModel_EnterSelectsAndShowsOffers(t *testing.T) {
	m := loadedBrowserModel(t)
	m = typeQuery(t, m, "regalia")

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.state.Selected)
	assert.Equal(t, "HDFC Regalia", m.state.Selected.Name)
	assert.Equal(t, "HDFC Regalia", m.input.Value(), "selection writes the canonical name into the query box")
	assert.Equal(t, tuiFocusDetail, m.focus)
	assert.True(t, m.state.HasOffers())
}

func TestBrowserModel_EscStepsBack(t *testing.T) {
	m := loadedBrowserModel(t)
	m = typeQuery(t, m, "regalia")
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.state.Selected)

	// detail -> list
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, tuiFocusList, m.focus)
	require.NotNil(t, m.state.Selected)

	// selection -> suggestion list
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.state.Selected)
	require.NotEmpty(t, m.state.Sections)

	// query -> cleared
	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.state.Sections)
	assert.False(t, m.state.NoMatches)
}

func TestBrowserModel_SectionJumpLandsOnSuggestion(t *testing.T) {
	m := loadedBrowserModel(t)
	// "hdfc" matches credit cards; "pay" would match UPI. Use a query
	// hitting two kinds via shared words.
	m = typeQuery(t, m, "hdfc")

	require.NotEmpty(t, m.groupStarts)

	m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	_, ok := m.list.SelectedItem().(tuiSuggestionItem)
	assert.True(t, ok)
}

func TestBrowserModel_TooSmallTerminal(t *testing.T) {
	m := loadedBrowserModel(t)

	m = applyMsg(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.True(t, m.tooSmall)
	assert.Contains(t, m.View(), "Terminal too small")
}
