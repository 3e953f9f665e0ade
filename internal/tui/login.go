package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const loginWidth = 36

type loginFocus int

const (
	focusUser loginFocus = iota
	focusPass
	focusSubmit
	focusCount
)

// loginModel is the credential form shown while the gate is closed.
type loginModel struct {
	user  textinput.Model
	pass  textinput.Model
	focus loginFocus
}

func newLogin() loginModel {
	user := textinput.New()
	user.Placeholder = "Insira seu usuário"
	user.Prompt = "› "
	user.Width = loginWidth - 8
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "••••••••"
	pass.Prompt = "› "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.Width = loginWidth - 8

	return loginModel{user: user, pass: pass}
}

// credentials returns the entered username and password.
func (m loginModel) credentials() (string, string) {
	return m.user.Value(), m.pass.Value()
}

func (m loginModel) setFocus(f loginFocus) loginModel {
	m.focus = f
	m.user.Blur()
	m.pass.Blur()
	switch f {
	case focusUser:
		m.user.Focus()
	case focusPass:
		m.pass.Focus()
	}
	return m
}

// update handles field navigation and typing. Submission is handled by the
// caller, which owns the gate.
func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, loginKeys.Next):
			return m.setFocus((m.focus + 1) % focusCount), nil
		case key.Matches(msg, loginKeys.Prev):
			return m.setFocus((m.focus - 1 + focusCount) % focusCount), nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusUser:
		m.user, cmd = m.user.Update(msg)
	case focusPass:
		m.pass, cmd = m.pass.Update(msg)
	}
	return m, cmd
}

func (m loginModel) view(width, height int) string {
	field := func(label string, in textinput.Model, focused bool) string {
		style := fieldStyle
		if focused {
			style = fieldFocusedStyle
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			fieldLabelStyle.Render(label),
			style.Width(loginWidth).Render(in.View()),
		)
	}

	btn := buttonStyle
	if m.focus == focusSubmit {
		btn = buttonFocusedStyle
	}
	submit := zone.Mark(zoneLoginSubmit,
		btn.Width(loginWidth+2).Align(lipgloss.Center).Render("Entrar"))

	form := lipgloss.JoinVertical(lipgloss.Center,
		brandStyle.Render("PGP Health System"),
		subtitleStyle.Render("Acesso Restrito"),
		"",
		field("Usuário", m.user, m.focus == focusUser),
		"",
		field("Senha", m.pass, m.focus == focusPass),
		"",
		submit,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
