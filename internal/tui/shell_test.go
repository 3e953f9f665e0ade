package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PGP-Health-System/pgp/internal/workspace"
)

// openFromGrid filters the launcher grid and opens the first match.
func openFromGrid(t *testing.T, a App, query string) App {
	t.Helper()
	a = send(a, alt("1"))
	require.Equal(t, workspace.HomeID, activeID(a))
	a = send(a, keyOf(tea.KeyCtrlU))
	a = typeText(a, query)
	return send(a, keyOf(tea.KeyEnter))
}

func TestScenario_OpenFocusCloseHome(t *testing.T) {
	a := loggedIn(t)

	a = openFromGrid(t, a, "agenda")
	assert.Equal(t, []string{"home", "agenda"}, tabIDs(a))
	assert.Equal(t, "agenda", activeID(a))

	a = openFromGrid(t, a, "AGENDA")
	assert.Equal(t, []string{"home", "agenda"}, tabIDs(a))
	assert.Equal(t, "agenda", activeID(a))

	a = send(a, alt("1"), keyOf(tea.KeyCtrlW))
	assert.Equal(t, []string{"home", "agenda"}, tabIDs(a))
}

func TestModuleContentPlaceholder(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "esto")

	view := a.View()
	assert.Contains(t, view, "Módulo: Estoque")
	assert.Contains(t, view, "ID: estoque")
	assert.Contains(t, view, "Este módulo está em desenvolvimento.")
}

func TestCloseTabKey(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")
	a = openFromGrid(t, a, "estoque")
	a = send(a, alt("2"))
	require.Equal(t, "agenda", activeID(a))

	a = send(a, keyOf(tea.KeyCtrlW))
	assert.Equal(t, []string{"home", "estoque"}, tabIDs(a))
	assert.Equal(t, workspace.HomeID, activeID(a))
}

func TestNextPrevTab(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")

	a = send(a, keyOf(tea.KeyCtrlRight))
	assert.Equal(t, workspace.HomeID, activeID(a))
	a = send(a, keyOf(tea.KeyCtrlLeft))
	assert.Equal(t, "agenda", activeID(a))
}

func TestRefreshKeyChangesOnlyStamp(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")
	before := a.shell.ws.Tabs()

	a = send(a, keyOf(tea.KeyCtrlR))
	after := a.shell.ws.Tabs()

	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[1].ID, after[1].ID)
	assert.Greater(t, after[1].Stamp, before[1].Stamp)
	assert.Contains(t, a.View(), fmt.Sprintf("Render: %d", after[1].Stamp))
}

func TestRefreshHomeResetsFilter(t *testing.T) {
	a := loggedIn(t)
	a = typeText(a, "agen")
	require.Equal(t, "agen", a.shell.grid.query())

	a = send(a, keyOf(tea.KeyCtrlR))
	assert.Equal(t, "", a.shell.grid.query())
}

func TestContextMenuKeyboard(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")
	stamp := a.shell.ws.Tabs()[1].Stamp

	a = send(a, keyOf(tea.KeyF2))
	menu, ok := a.shell.ws.ContextMenu()
	require.True(t, ok)
	assert.Equal(t, 1, menu.Index)
	assert.Contains(t, a.View(), "Atualizar Conteúdo")

	a = send(a, keyOf(tea.KeyEnter))
	_, ok = a.shell.ws.ContextMenu()
	assert.False(t, ok)
	assert.Greater(t, a.shell.ws.Tabs()[1].Stamp, stamp)
}

func TestContextMenuDismissedByOtherInput(t *testing.T) {
	a := loggedIn(t)

	a = send(a, keyOf(tea.KeyF2))
	require.True(t, a.shell.menusOpen())
	a = send(a, keyOf(tea.KeyEsc))
	assert.False(t, a.shell.menusOpen())

	a = send(a, keyOf(tea.KeyF2))
	a = send(a, runes("x"))
	assert.False(t, a.shell.menusOpen())
	// The key that dismissed the menu still reaches the grid.
	assert.Equal(t, "x", a.shell.grid.query())
}

func TestProfileMenuOpensAdmin(t *testing.T) {
	a := loggedIn(t)

	a = send(a, keyOf(tea.KeyF10))
	require.True(t, a.shell.profileOpen)
	view := a.View()
	assert.Contains(t, view, "Administração")
	assert.Contains(t, view, "Sair do sistema")

	a = send(a, keyOf(tea.KeyEnter))
	assert.False(t, a.shell.profileOpen)
	assert.Equal(t, adminID, activeID(a))
	assert.Contains(t, a.View(), "Administração do Sistema")

	// Opening it again from the menu focuses the existing tab.
	a = send(a, alt("1"), keyOf(tea.KeyF10), keyOf(tea.KeyEnter))
	assert.Equal(t, []string{"home", "admin"}, tabIDs(a))
	assert.Equal(t, adminID, activeID(a))
}

func TestProfileMenuWraps(t *testing.T) {
	a := loggedIn(t)
	a = send(a, keyOf(tea.KeyF10), keyOf(tea.KeyUp))
	assert.Equal(t, profileLogout, a.shell.profileItem)
	a = send(a, keyOf(tea.KeyDown))
	assert.Equal(t, profileAdmin, a.shell.profileItem)
}

func TestGridNavigationAndOpen(t *testing.T) {
	a := loggedIn(t)

	a = send(a, keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	d, ok := a.shell.grid.selected()
	require.True(t, ok)
	assert.Equal(t, "estoque", d.ID)

	a = send(a, keyOf(tea.KeyEnter))
	assert.Equal(t, "estoque", activeID(a))
}

func TestGridNoMatches(t *testing.T) {
	a := loggedIn(t)
	a = typeText(a, "zzz")

	assert.Contains(t, a.View(), "Nenhuma função encontrada.")
	a = send(a, keyOf(tea.KeyEnter))
	assert.Equal(t, []string{"home"}, tabIDs(a))
}

func TestMouse_TabClickAndClose(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")

	a = click(t, a, tabZoneID(0), tea.MouseButtonLeft)
	assert.Equal(t, workspace.HomeID, activeID(a))

	a = click(t, a, closeZoneID(1), tea.MouseButtonLeft)
	assert.Equal(t, []string{"home"}, tabIDs(a))
}

func TestMouse_RightClickRefresh(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")
	stamp := a.shell.ws.Tabs()[1].Stamp

	a = click(t, a, tabZoneID(1), tea.MouseButtonRight)
	menu, ok := a.shell.ws.ContextMenu()
	require.True(t, ok)
	assert.Equal(t, 1, menu.Index)

	a = click(t, a, zoneMenuRefresh, tea.MouseButtonLeft)
	_, ok = a.shell.ws.ContextMenu()
	assert.False(t, ok)
	assert.Greater(t, a.shell.ws.Tabs()[1].Stamp, stamp)
}

func TestMouse_OutsideClickDismissesMenu(t *testing.T) {
	a := loggedIn(t)
	a = openFromGrid(t, a, "agenda")

	a = click(t, a, tabZoneID(1), tea.MouseButtonRight)
	require.True(t, a.shell.menusOpen())

	// Clicking another tab dismisses the menu and still activates the tab.
	a = click(t, a, tabZoneID(0), tea.MouseButtonLeft)
	assert.False(t, a.shell.menusOpen())
	assert.Equal(t, workspace.HomeID, activeID(a))
}

func TestMouse_CardOpensModule(t *testing.T) {
	a := loggedIn(t)

	a = click(t, a, cardZoneID("pacientes"), tea.MouseButtonLeft)
	assert.Equal(t, "pacientes", activeID(a))
}

func TestMouse_ProfileLogout(t *testing.T) {
	a := loggedIn(t)

	a = click(t, a, zoneProfile, tea.MouseButtonLeft)
	require.True(t, a.shell.profileOpen)

	a = click(t, a, zoneProfileLogout, tea.MouseButtonLeft)
	assert.False(t, a.Authenticated())
}
