package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/PGP-Health-System/pgp/internal/catalog"
	"github.com/PGP-Health-System/pgp/internal/log"
	"github.com/PGP-Health-System/pgp/internal/workspace"
)

const (
	adminID    = "admin"
	adminLabel = "Administração"

	capacityMessage = "Limite de 10 abas atingido."

	overflowMark = "…"
)

// shellAction tells the root model about transitions it owns.
type shellAction int

const (
	actionNone shellAction = iota
	actionCapacity
	actionLogout
)

type profileItem int

const (
	profileAdmin profileItem = iota
	profileLogout
	profileItemCount
)

// shellModel is the tabbed workspace shown once the gate is open.
type shellModel struct {
	ws          *workspace.Workspace
	userName    string
	grid        gridModel
	gridStamp   int64
	profileOpen bool
	profileItem profileItem
	help        help.Model
	width       int
}

func newShell(userName string, opts ...workspace.Option) shellModel {
	ws := workspace.New(opts...)
	return shellModel{
		ws:        ws,
		userName:  userName,
		grid:      newGrid(catalog.All()),
		gridStamp: ws.Active().Stamp,
		help:      help.New(),
	}
}

// resize lays the shell out for a terminal of the given width.
func (s shellModel) resize(width int) shellModel {
	s.width = width
	s.grid = s.grid.resize(width)
	s.help.Width = max(width-statusBarStyle.GetHorizontalFrameSize(), 0)
	return s
}

// openModule opens or focuses the tab for id/label.
func (s shellModel) openModule(id, label string) (shellModel, shellAction) {
	idx, err := s.ws.OpenOrFocus(id, label)
	if errors.Is(err, workspace.ErrTabCapacityExceeded) {
		log.Warn(log.CatTabs, "tab limit reached", "id", id, "open", s.ws.Len())
		return s, actionCapacity
	}
	log.Info(log.CatTabs, "tab focused", "id", id, "index", idx, "open", s.ws.Len())
	return s, actionNone
}

func (s shellModel) closeTab(i int) shellModel {
	if s.ws.Close(i) {
		log.Info(log.CatTabs, "tab closed", "index", i, "active", s.ws.ActiveIndex())
	}
	return s
}

// refreshTab remounts the content of tab i. Remounting the home tab resets
// the launcher grid.
func (s shellModel) refreshTab(i int) shellModel {
	if !s.ws.Refresh(i) {
		return s
	}
	tab := s.ws.Tabs()[i]
	if tab.IsHome() && tab.Stamp != s.gridStamp {
		s.grid = newGrid(catalog.All()).resize(s.width)
		s.gridStamp = tab.Stamp
	}
	log.Info(log.CatTabs, "tab refreshed", "index", i, "stamp", tab.Stamp)
	return s
}

// dismissMenus is the single point where any outside interaction clears
// the transient menus.
func (s shellModel) dismissMenus() shellModel {
	s.ws.DismissContextMenu()
	s.profileOpen = false
	return s
}

func (s shellModel) menusOpen() bool {
	_, ok := s.ws.ContextMenu()
	return ok || s.profileOpen
}

func (s shellModel) update(msg tea.Msg) (shellModel, shellAction, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		s, action := s.handleMouse(msg)
		return s, action, nil
	}

	if s.ws.Active().IsHome() {
		var cmd tea.Cmd
		s.grid, cmd = s.grid.update(msg)
		return s, actionNone, cmd
	}
	return s, actionNone, nil
}

func (s shellModel) handleKey(msg tea.KeyMsg) (shellModel, shellAction, tea.Cmd) {
	if menu, ok := s.ws.ContextMenu(); ok {
		switch {
		case key.Matches(msg, menuKeys.Select):
			return s.refreshTab(menu.Index).dismissMenus(), actionNone, nil
		case key.Matches(msg, shellKeys.Dismiss):
			return s.dismissMenus(), actionNone, nil
		}
		s = s.dismissMenus()
	}

	if s.profileOpen {
		switch {
		case key.Matches(msg, menuKeys.Up):
			s.profileItem = (s.profileItem - 1 + profileItemCount) % profileItemCount
			return s, actionNone, nil
		case key.Matches(msg, menuKeys.Down):
			s.profileItem = (s.profileItem + 1) % profileItemCount
			return s, actionNone, nil
		case key.Matches(msg, menuKeys.Select):
			return s.chooseProfile(s.profileItem)
		case key.Matches(msg, shellKeys.Dismiss), key.Matches(msg, shellKeys.ProfileMenu):
			return s.dismissMenus(), actionNone, nil
		}
		s = s.dismissMenus()
	}

	switch {
	case key.Matches(msg, shellKeys.NextTab):
		s.ws.Next()
		return s, actionNone, nil
	case key.Matches(msg, shellKeys.PrevTab):
		s.ws.Prev()
		return s, actionNone, nil
	case key.Matches(msg, shellKeys.JumpTab):
		s.ws.Activate(jumpIndex(msg.String()))
		return s, actionNone, nil
	case key.Matches(msg, shellKeys.CloseTab):
		return s.closeTab(s.ws.ActiveIndex()), actionNone, nil
	case key.Matches(msg, shellKeys.RefreshTab):
		return s.refreshTab(s.ws.ActiveIndex()), actionNone, nil
	case key.Matches(msg, shellKeys.ContextMenu):
		s.ws.RequestContextMenu(s.ws.ActiveIndex(), s.tabOffset(s.ws.ActiveIndex()), 0)
		log.Debug(log.CatUI, "context menu", "index", s.ws.ActiveIndex(), "source", "key")
		return s, actionNone, nil
	case key.Matches(msg, shellKeys.ProfileMenu):
		log.Debug(log.CatUI, "profile menu", "source", "key")
		s.profileOpen = true
		s.profileItem = profileAdmin
		return s, actionNone, nil
	}

	if !s.ws.Active().IsHome() {
		return s, actionNone, nil
	}
	if key.Matches(msg, gridKeys.Open) {
		if d, ok := s.grid.selected(); ok {
			log.Debug(log.CatGrid, "open", "id", d.ID)
			s, action := s.openModule(d.ID, d.Label)
			return s, action, nil
		}
		return s, actionNone, nil
	}
	var cmd tea.Cmd
	s.grid, cmd = s.grid.update(msg)
	return s, actionNone, cmd
}

func (s shellModel) chooseProfile(item profileItem) (shellModel, shellAction, tea.Cmd) {
	s = s.dismissMenus()
	switch item {
	case profileAdmin:
		d, ok := catalog.Lookup(adminID)
		if !ok {
			log.Warn(log.CatTabs, "admin module missing from catalog", "id", adminID)
			d = catalog.Descriptor{ID: adminID, Label: adminLabel}
		}
		s, action := s.openModule(d.ID, d.Label)
		return s, action, nil
	case profileLogout:
		return s, actionLogout, nil
	}
	return s, actionNone, nil
}

func (s shellModel) handleMouse(msg tea.MouseMsg) (shellModel, shellAction) {
	if msg.Action != tea.MouseActionPress {
		return s, actionNone
	}

	if menu, ok := s.ws.ContextMenu(); ok {
		if inZone(zoneMenuRefresh, msg) {
			return s.refreshTab(menu.Index).dismissMenus(), actionNone
		}
		if inZone(zoneContextMenu, msg) {
			return s, actionNone
		}
		s = s.dismissMenus()
	}
	if s.profileOpen {
		switch {
		case inZone(zoneProfileAdmin, msg):
			s, action, _ := s.chooseProfile(profileAdmin)
			return s, action
		case inZone(zoneProfileLogout, msg):
			s, action, _ := s.chooseProfile(profileLogout)
			return s, action
		case inZone(zoneProfileMenu, msg):
			return s, actionNone
		}
		s = s.dismissMenus()
	}

	first, last := s.tabWindow(s.width)
	switch msg.Button {
	case tea.MouseButtonRight:
		for i := first; i < last; i++ {
			if inZone(tabZoneID(i), msg) || inZone(closeZoneID(i), msg) {
				s.ws.RequestContextMenu(i, msg.X, msg.Y)
				log.Debug(log.CatUI, "context menu", "index", i, "x", msg.X, "y", msg.Y)
				return s, actionNone
			}
		}
	case tea.MouseButtonLeft:
		for i := first; i < last; i++ {
			if inZone(closeZoneID(i), msg) {
				return s.closeTab(i), actionNone
			}
			if inZone(tabZoneID(i), msg) {
				s.ws.Activate(i)
				return s, actionNone
			}
		}
		if inZone(zoneProfile, msg) {
			log.Debug(log.CatUI, "profile menu", "source", "mouse")
			s.profileOpen = true
			s.profileItem = profileAdmin
			return s, actionNone
		}
		if s.ws.Active().IsHome() {
			var d catalog.Descriptor
			var ok bool
			s.grid, d, ok = s.grid.click(msg)
			if ok {
				return s.openModule(d.ID, d.Label)
			}
		}
	}
	return s, actionNone
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

// ── Rendering ───────────────

func (s shellModel) view(width, height int) string {
	bar := s.tabBar(width)
	footer := statusBarStyle.Width(width).Render(s.help.ShortHelpView(shellKeys.ShortHelp()))
	contentHeight := max(height-lipgloss.Height(bar)-lipgloss.Height(footer), 1)

	content := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(s.content(width, contentHeight))

	view := lipgloss.JoinVertical(lipgloss.Left, bar, content, footer)

	if menu, ok := s.ws.ContextMenu(); ok {
		// Drop the menu just below the anchor row so the tab stays visible.
		view = place(placement{Width: width, Height: height, Pos: posAt, X: menu.X, Y: menu.Y + 1},
			s.contextMenuView(), view)
	}
	if s.profileOpen {
		view = place(placement{Width: width, Height: height, Pos: posTopRight, PadY: 1},
			s.profileMenuView(), view)
	}
	return view
}

// tabLabel is the visible text of a tab without the close control.
func tabLabel(t workspace.Tab) string {
	if t.IsHome() {
		return "⌂ " + t.Label
	}
	return t.Label
}

// tabWidth is the rendered width of tab t including its close control.
func tabWidth(t workspace.Tab) int {
	w := lipgloss.Width(inactiveTabStyle.Render(tabLabel(t)))
	if !t.IsHome() {
		w += lipgloss.Width(closeInactiveStyle.Render("×"))
	}
	return w
}

func overflowWidth() int {
	return lipgloss.Width(inactiveTabStyle.Render(overflowMark))
}

// tabWindow returns the half-open range of tabs shown in a bar of the given
// width. The range always contains the active tab; hidden tabs on either
// side are replaced by an overflow marker.
func (s shellModel) tabWindow(width int) (first, last int) {
	tabs := s.ws.Tabs()
	n, active := len(tabs), s.ws.ActiveIndex()
	avail := width - lipgloss.Width(userBadgeStyle.Render("● "+s.userName))

	total := 0
	for _, t := range tabs {
		total += tabWidth(t)
	}
	if width <= 0 || total <= avail {
		return 0, n
	}

	mark := overflowWidth()
	for first < active {
		used := 0
		if active+1 < n {
			used += mark
		}
		if first > 0 {
			used += mark
		}
		for j := first; j <= active; j++ {
			used += tabWidth(tabs[j])
		}
		if used <= avail {
			break
		}
		first++
	}

	used := 0
	if first > 0 {
		used = mark
	}
	for last = first; last < n; last++ {
		reserve := 0
		if last+1 < n {
			reserve = mark
		}
		if last > active && used+tabWidth(tabs[last])+reserve > avail {
			break
		}
		used += tabWidth(tabs[last])
	}
	return first, last
}

// tabOffset returns the screen column where tab i starts.
func (s shellModel) tabOffset(i int) int {
	first, _ := s.tabWindow(s.width)
	x := 0
	if first > 0 {
		x = overflowWidth()
	}
	tabs := s.ws.Tabs()
	for j := first; j < i && j < len(tabs); j++ {
		x += tabWidth(tabs[j])
	}
	return x
}

func (s shellModel) tabBar(width int) string {
	tabs := s.ws.Tabs()
	first, last := s.tabWindow(width)

	var parts []string
	if first > 0 {
		parts = append(parts, inactiveTabStyle.Render(overflowMark))
	}
	for i := first; i < last; i++ {
		t := tabs[i]
		tabStyle, closeStyle := inactiveTabStyle, closeInactiveStyle
		if i == s.ws.ActiveIndex() {
			tabStyle, closeStyle = activeTabStyle, closeActiveStyle
		}
		parts = append(parts, zone.Mark(tabZoneID(i), tabStyle.Render(tabLabel(t))))
		if !t.IsHome() {
			parts = append(parts, zone.Mark(closeZoneID(i), closeStyle.Render("×")))
		}
	}
	if last < len(tabs) {
		parts = append(parts, inactiveTabStyle.Render(overflowMark))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	badge := zone.Mark(zoneProfile, userBadgeStyle.Render("● "+s.userName))

	gap := max(width-lipgloss.Width(row)-lipgloss.Width(badge), 0)
	line := row + tabBarStyle.Render(strings.Repeat(" ", gap)) + badge
	// Only reachable on terminals too narrow for a single tab and the badge.
	if lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "")
	}
	return tabBarStyle.Width(width).Render(line)
}

func (s shellModel) content(width, height int) string {
	tab := s.ws.Active()
	switch tab.ID {
	case workspace.HomeID:
		return s.grid.view(width, height)
	case adminID:
		return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render("Administração do Sistema"),
			dimStyle.Render("Gerencie usuários, permissões e configurações gerais."),
		))
	default:
		return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			headingStyle.Render("Módulo: "+tab.Label),
			dimStyle.Render(fmt.Sprintf("ID: %s | Render: %d", tab.ID, tab.Stamp)),
			"",
			"Este módulo está em desenvolvimento.",
		))
	}
}

func (s shellModel) contextMenuView() string {
	item := zone.Mark(zoneMenuRefresh, menuItemSelectedStyle.Render("↻ Atualizar Conteúdo"))
	return zone.Mark(zoneContextMenu, menuStyle.Render(item))
}

func (s shellModel) profileMenuView() string {
	render := func(item profileItem, text string, base lipgloss.Style) string {
		if item == s.profileItem {
			return menuItemSelectedStyle.Render("› " + text)
		}
		return base.Render("  " + text)
	}
	items := lipgloss.JoinVertical(lipgloss.Left,
		zone.Mark(zoneProfileAdmin, render(profileAdmin, "⚙ Administração", menuItemStyle)),
		dimStyle.Render(strings.Repeat("─", 18)),
		zone.Mark(zoneProfileLogout, render(profileLogout, "⏻ Sair do sistema", menuDangerStyle)),
	)
	return zone.Mark(zoneProfileMenu, menuStyle.Render(items))
}
