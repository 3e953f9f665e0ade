package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/PGP-Health-System/pgp/internal/config"
	"github.com/PGP-Health-System/pgp/internal/log"
	"github.com/PGP-Health-System/pgp/internal/session"
	"github.com/PGP-Health-System/pgp/internal/workspace"
)

const loginErrorMessage = "Usuário ou senha incorretos."

// Options configures the root model.
type Options struct {
	Config config.Config
	// ConfigUpdates and ConfigErrors, when set, deliver hot-reloaded config.
	ConfigUpdates <-chan config.Config
	ConfigErrors  <-chan error
	// WorkspaceOptions are passed to every workspace created after login.
	WorkspaceOptions []workspace.Option
}

// App is the root Bubble Tea model. It shows the login form until the gate
// opens, then the workspace shell.
type App struct {
	opts   Options
	cfg    config.Config
	gate   *session.Gate
	login  loginModel
	shell  shellModel
	notice notice
	width  int
	height int
	ready  bool
}

// New creates the root model with a closed gate.
func New(opts Options) App {
	return App{
		opts:  opts,
		cfg:   opts.Config,
		gate:  session.NewGate(),
		login: newLogin(),
	}
}

// Authenticated reports whether the workspace is showing.
func (a App) Authenticated() bool {
	return a.gate.Authenticated()
}

// configReloadedMsg carries a hot-reloaded config.
type configReloadedMsg struct{ cfg config.Config }

// configErrorMsg carries a config reload failure.
type configErrorMsg struct{ err error }

func waitForConfig(updates <-chan config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func waitForConfigError(errs <-chan error) tea.Cmd {
	if errs == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return configErrorMsg{err: err}
	}
}

// ── Bubble Tea interface ───────────────

func (a App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForConfig(a.opts.ConfigUpdates),
		waitForConfigError(a.opts.ConfigErrors),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if a.gate.Authenticated() {
			a.shell = a.shell.resize(msg.Width)
		}
		return a, nil

	case dismissNoticeMsg:
		a.notice = a.notice.expire(msg)
		return a, nil

	case configReloadedMsg:
		a.cfg = msg.cfg
		log.Info(log.CatConfig, "config reloaded",
			"login_notice", a.cfg.LoginNoticeDuration(), "capacity_notice", a.cfg.CapacityNoticeDuration())
		return a, waitForConfig(a.opts.ConfigUpdates)

	case configErrorMsg:
		log.ErrorErr(log.CatConfig, "config reload failed", msg.err)
		return a, waitForConfigError(a.opts.ConfigErrors)

	case tea.KeyMsg:
		if key.Matches(msg, loginKeys.Quit) {
			return a, tea.Quit
		}
		if a.notice.visible && key.Matches(msg, loginKeys.Dismiss) {
			a.notice = a.notice.hide()
			return a, nil
		}

	case tea.MouseMsg:
		if a.notice.visible && msg.Action == tea.MouseActionPress && inZone(zoneNoticeClose, msg) {
			a.notice = a.notice.hide()
			return a, nil
		}
	}

	if !a.gate.Authenticated() {
		return a.updateLogin(msg)
	}
	return a.updateShell(msg)
}

func (a App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	submit := false
	switch msg := msg.(type) {
	case tea.KeyMsg:
		submit = key.Matches(msg, loginKeys.Submit)
	case tea.MouseMsg:
		submit = msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			inZone(zoneLoginSubmit, msg)
	}
	if submit {
		return a.submitLogin()
	}

	var cmd tea.Cmd
	a.login, cmd = a.login.update(msg)
	return a, cmd
}

func (a App) submitLogin() (tea.Model, tea.Cmd) {
	user, pass := a.login.credentials()
	s, err := a.gate.Login(user, pass)
	if errors.Is(err, session.ErrInvalidCredentials) {
		log.Warn(log.CatAuth, "login rejected", "user", user)
		var cmd tea.Cmd
		a.notice, cmd = a.notice.show(loginErrorMessage, posTop, a.cfg.LoginNoticeDuration())
		return a, cmd
	}

	log.Info(log.CatAuth, "login", "session", s.ID, "user", s.DisplayName)
	a.notice = a.notice.hide()
	a.login = newLogin()
	a.shell = newShell(s.DisplayName, a.opts.WorkspaceOptions...).resize(a.width)
	return a, textinput.Blink
}

func (a App) updateShell(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		action shellAction
		cmd    tea.Cmd
	)
	a.shell, action, cmd = a.shell.update(msg)

	switch action {
	case actionCapacity:
		var noticeCmd tea.Cmd
		a.notice, noticeCmd = a.notice.show(capacityMessage, posBottom, a.cfg.CapacityNoticeDuration())
		return a, tea.Batch(cmd, noticeCmd)
	case actionLogout:
		log.Info(log.CatAuth, "logout", "session", a.gate.Current().ID)
		a.gate.Logout()
		a.shell = shellModel{}
		a.notice = a.notice.hide()
		return a, textinput.Blink
	}
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return "Carregando…"
	}

	var view string
	if a.gate.Authenticated() {
		view = a.shell.view(a.width, a.height)
	} else {
		view = a.login.view(a.width, a.height)
	}
	view = a.notice.overlay(view, a.width, a.height)
	return zone.Scan(view)
}

// Run starts the shell in the alternate screen.
func Run(opts Options) error {
	zone.NewGlobal()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Config.MouseEnabled() {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}
