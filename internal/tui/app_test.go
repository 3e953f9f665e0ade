package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PGP-Health-System/pgp/internal/config"
	"github.com/PGP-Health-System/pgp/internal/workspace"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	a := New(Options{Config: config.Defaults()})
	assert.Equal(t, "Carregando…", a.View())
}

func TestLogin_ViewShowsForm(t *testing.T) {
	a := newTestApp()
	view := a.View()

	assert.Contains(t, view, "PGP Health System")
	assert.Contains(t, view, "Acesso Restrito")
	assert.Contains(t, view, "Entrar")
}

func TestLogin_InvalidShowsNotice(t *testing.T) {
	a := newTestApp()
	a = typeText(a, "admin")
	a = send(a, keyOf(tea.KeyTab))
	a = typeText(a, "wrong")

	m, cmd := a.Update(keyOf(tea.KeyEnter))
	a = m.(App)

	assert.False(t, a.Authenticated())
	assert.True(t, a.notice.visible)
	assert.Equal(t, loginErrorMessage, a.notice.message)
	assert.NotNil(t, cmd, "expected an expiry tick")
	assert.Contains(t, a.View(), loginErrorMessage)
}

func TestLogin_PasswordIsMasked(t *testing.T) {
	a := newTestApp()
	a = send(a, keyOf(tea.KeyTab))
	a = typeText(a, "s3cr3t")

	assert.NotContains(t, a.View(), "s3cr3t")
}

func TestLogin_SuccessOpensWorkspace(t *testing.T) {
	a := loggedIn(t)

	assert.Equal(t, []string{workspace.HomeID}, tabIDs(a))
	view := a.View()
	assert.Contains(t, view, "Início")
	assert.Contains(t, view, "admin")
	assert.Contains(t, view, "Prontuário")
}

func TestLogin_ClickSubmit(t *testing.T) {
	a := newTestApp()
	a = typeText(a, "admin")
	a = send(a, keyOf(tea.KeyTab))
	a = typeText(a, "123")

	a = click(t, a, zoneLoginSubmit, tea.MouseButtonLeft)
	assert.True(t, a.Authenticated())
}

func TestLogin_FocusCycles(t *testing.T) {
	a := newTestApp()
	assert.Equal(t, focusUser, a.login.focus)
	a = send(a, keyOf(tea.KeyTab), keyOf(tea.KeyTab))
	assert.Equal(t, focusSubmit, a.login.focus)
	a = send(a, keyOf(tea.KeyTab))
	assert.Equal(t, focusUser, a.login.focus)
	a = send(a, keyOf(tea.KeyShiftTab))
	assert.Equal(t, focusSubmit, a.login.focus)
}

func TestNotice_StaleTickIgnored(t *testing.T) {
	a := newTestApp()
	a = send(a, keyOf(tea.KeyEnter)) // first failure, seq 1
	a = send(a, keyOf(tea.KeyEnter)) // second failure, seq 2
	require.True(t, a.notice.visible)

	a = send(a, dismissNoticeMsg{seq: 1})
	assert.True(t, a.notice.visible, "an older tick must not hide a newer notice")

	a = send(a, dismissNoticeMsg{seq: 2})
	assert.False(t, a.notice.visible)
}

func TestNotice_EscDismisses(t *testing.T) {
	a := newTestApp()
	a = send(a, keyOf(tea.KeyEnter))
	require.True(t, a.notice.visible)

	a = send(a, keyOf(tea.KeyEsc))
	assert.False(t, a.notice.visible)
}

func TestNotice_ClickCloseDismisses(t *testing.T) {
	a := newTestApp()
	a = send(a, keyOf(tea.KeyEnter))
	require.True(t, a.notice.visible)

	a = click(t, a, zoneNoticeClose, tea.MouseButtonLeft)
	assert.False(t, a.notice.visible)
}

func TestCapacityNotice(t *testing.T) {
	a := loggedIn(t)
	for i := 1; i < workspace.MaxTabs; i++ {
		var action shellAction
		a.shell, action = a.shell.openModule(fmt.Sprintf("m%d", i), fmt.Sprintf("M%d", i))
		require.Equal(t, actionNone, action)
	}
	require.Equal(t, workspace.MaxTabs, a.shell.ws.Len())

	a = send(a, alt("1"))
	require.Equal(t, workspace.HomeID, activeID(a))
	a = typeText(a, "agen")
	m, cmd := a.Update(keyOf(tea.KeyEnter))
	a = m.(App)

	assert.Equal(t, workspace.MaxTabs, a.shell.ws.Len())
	assert.True(t, a.notice.visible)
	assert.Equal(t, capacityMessage, a.notice.message)
	assert.NotNil(t, cmd)
	assert.Contains(t, a.View(), capacityMessage)
}

func TestLogoutResetsWorkspace(t *testing.T) {
	a := loggedIn(t)
	a = typeText(a, "agen")
	a = send(a, keyOf(tea.KeyEnter))
	require.Equal(t, []string{"home", "agenda"}, tabIDs(a))

	a = send(a, keyOf(tea.KeyF10), keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	require.False(t, a.Authenticated())
	assert.Contains(t, a.View(), "Acesso Restrito")

	a = typeText(a, "admin")
	a = send(a, keyOf(tea.KeyTab))
	a = typeText(a, "123")
	a = send(a, keyOf(tea.KeyEnter))
	require.True(t, a.Authenticated())
	assert.Equal(t, []string{"home"}, tabIDs(a))
}

func TestConfigReload(t *testing.T) {
	updates := make(chan config.Config, 1)
	a := New(Options{Config: config.Defaults(), ConfigUpdates: updates})

	reloaded := config.Defaults()
	reloaded.LoginNotice = "9s"
	a = send(a, configReloadedMsg{cfg: reloaded})

	assert.Equal(t, 9*time.Second, a.cfg.LoginNoticeDuration())
}

func TestWaitForConfig(t *testing.T) {
	assert.Nil(t, waitForConfig(nil))

	updates := make(chan config.Config, 1)
	updates <- config.Defaults()
	msg := waitForConfig(updates)()
	_, ok := msg.(configReloadedMsg)
	assert.True(t, ok)

	close(updates)
	assert.Nil(t, waitForConfig(updates)())
}

func TestCtrlCQuits(t *testing.T) {
	a := newTestApp()
	_, cmd := a.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
