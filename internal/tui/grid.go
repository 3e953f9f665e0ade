package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/PGP-Health-System/pgp/internal/catalog"
	"github.com/PGP-Health-System/pgp/internal/log"
)

const (
	cardMinWidth  = 8
	cardMaxWidth  = 18
	searchMaxWide = 60
)

// arrowsWidth is the room taken by the two paging arrows.
func arrowsWidth() int {
	return lipgloss.Width(arrowStyle.Render("‹")) + lipgloss.Width(arrowStyle.Render("›"))
}

// gridColumns returns how many bordered cards fit in width next to the
// paging arrows, between 1 and catalog.Columns.
func gridColumns(width int) int {
	cell := cardMinWidth + cardStyle.GetHorizontalFrameSize()
	return min(catalog.Columns, max(1, (width-arrowsWidth())/cell))
}

// cardWidth returns the inner width of a card when cols cards share width.
func cardWidth(width, cols int) int {
	inner := (width-arrowsWidth())/cols - cardStyle.GetHorizontalFrameSize()
	return min(cardMaxWidth, max(cardMinWidth, inner))
}

// gridModel is the launcher grid shown on the home tab.
type gridModel struct {
	source   []catalog.Descriptor
	filtered []catalog.Descriptor
	search   textinput.Model
	cursor   int
	pager    catalog.Pager
	cols     int
}

func newGrid(items []catalog.Descriptor) gridModel {
	ti := textinput.New()
	ti.Placeholder = "Pesquisar função"
	ti.Prompt = "⌕ "
	ti.Focus()

	return gridModel{
		source:   items,
		filtered: items,
		search:   ti,
		pager:    catalog.NewPager(len(items)),
		cols:     catalog.Columns,
	}
}

// resize reflows the cards for a terminal of the given width.
func (g gridModel) resize(width int) gridModel {
	g.cols = gridColumns(width)
	return g
}

// query returns the current filter text.
func (g gridModel) query() string {
	return g.search.Value()
}

// selected returns the descriptor under the cursor.
func (g gridModel) selected() (catalog.Descriptor, bool) {
	if g.cursor < 0 || g.cursor >= len(g.filtered) {
		return catalog.Descriptor{}, false
	}
	return g.filtered[g.cursor], true
}

func (g gridModel) refilter() gridModel {
	g.filtered = catalog.Filter(g.source, g.search.Value())
	g.pager = g.pager.SetTotal(len(g.filtered))
	if g.cursor >= len(g.filtered) {
		g.cursor = 0
	}
	g = g.syncPage()
	log.Debug(log.CatGrid, "filter", "query", g.search.Value(), "matches", len(g.filtered))
	return g
}

// syncPage keeps the pager on the page holding the cursor.
func (g gridModel) syncPage() gridModel {
	want := catalog.PageOf(g.cursor)
	for g.pager.Page() < want {
		g.pager = g.pager.Next()
	}
	for g.pager.Page() > want {
		g.pager = g.pager.Prev()
	}
	return g
}

func (g gridModel) move(delta int) gridModel {
	if len(g.filtered) == 0 {
		return g
	}
	g.cursor = min(max(g.cursor+delta, 0), len(g.filtered)-1)
	return g.syncPage()
}

func (g gridModel) nextPage() gridModel {
	g.pager = g.pager.Next()
	g.cursor, _ = g.pager.Bounds()
	return g
}

func (g gridModel) prevPage() gridModel {
	g.pager = g.pager.Prev()
	g.cursor, _ = g.pager.Bounds()
	return g
}

// update handles navigation and typing. Opening the selection is handled by
// the shell, which owns the workspace.
func (g gridModel) update(msg tea.Msg) (gridModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, gridKeys.Left):
			return g.move(-1), nil
		case key.Matches(msg, gridKeys.Right):
			return g.move(1), nil
		case key.Matches(msg, gridKeys.Up):
			return g.move(-g.cols), nil
		case key.Matches(msg, gridKeys.Down):
			return g.move(g.cols), nil
		case key.Matches(msg, gridKeys.PrevPage):
			return g.prevPage(), nil
		case key.Matches(msg, gridKeys.NextPage):
			return g.nextPage(), nil
		case key.Matches(msg, gridKeys.Clear):
			g.search.SetValue("")
			return g.refilter(), nil
		}
	}

	before := g.search.Value()
	var cmd tea.Cmd
	g.search, cmd = g.search.Update(msg)
	if g.search.Value() != before {
		g = g.refilter()
	}
	return g, cmd
}

// click returns the descriptor whose card contains the mouse event, and
// handles the paging arrows.
func (g gridModel) click(msg tea.MouseMsg) (gridModel, catalog.Descriptor, bool) {
	if g.pager.Paged() {
		if z := zone.Get(zoneGridPrev); z != nil && z.InBounds(msg) {
			return g.prevPage(), catalog.Descriptor{}, false
		}
		if z := zone.Get(zoneGridNext); z != nil && z.InBounds(msg) {
			return g.nextPage(), catalog.Descriptor{}, false
		}
	}
	start, end := g.pager.Bounds()
	for i := start; i < end; i++ {
		d := g.filtered[i]
		if z := zone.Get(cardZoneID(d.ID)); z != nil && z.InBounds(msg) {
			g.cursor = i
			return g, d, true
		}
	}
	return g, catalog.Descriptor{}, false
}

func (g gridModel) view(width, height int) string {
	searchWidth := min(searchMaxWide, max(width-4, 10))
	// Padding, prompt and cursor cell take five columns inside the box.
	g.search.Width = searchWidth - 5
	search := fieldFocusedStyle.Width(searchWidth).Render(g.search.View())

	var body string
	if len(g.filtered) == 0 {
		body = dimStyle.Render("Nenhuma função encontrada.")
	} else {
		body = g.cards(width)
	}

	if g.pager.Paged() {
		prev := zone.Mark(zoneGridPrev, arrowStyle.Render("‹"))
		next := zone.Mark(zoneGridNext, arrowStyle.Render("›"))
		body = lipgloss.JoinHorizontal(lipgloss.Center, prev, body, next)
		indicator := dimStyle.Render(fmt.Sprintf("%d/%d", g.pager.Page()+1, g.pager.Pages()))
		body = lipgloss.JoinVertical(lipgloss.Center, body, indicator)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, search, "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// cards renders the current page as rows of g.cols cards.
func (g gridModel) cards(width int) string {
	inner := cardWidth(width, g.cols)

	start, end := g.pager.Bounds()
	var rows []string
	var row []string
	for i := start; i < end; i++ {
		d := g.filtered[i]
		style := cardStyle
		if i == g.cursor {
			style = cardSelectedStyle
		}
		card := style.Width(inner).Render(
			cardIconStyle.Render(d.Icon) + "\n" + cardLabelStyle.Render(ansi.Truncate(d.Label, inner, "…")),
		)
		row = append(row, zone.Mark(cardZoneID(d.ID), card))
		if len(row) == g.cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
