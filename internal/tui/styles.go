// Package tui provides the Bubble Tea front end: login gate, tabbed
// workspace shell and module launcher grid.
package tui

import "github.com/charmbracelet/lipgloss"

// ── Palette ───────────

var (
	colorPrimary     = lipgloss.Color("#2563EB")
	colorPrimaryDark = lipgloss.Color("#1E40AF")
	colorPrimarySoft = lipgloss.Color("#BFDBFE")
	colorBody        = lipgloss.Color("#F8FAFC")
	colorSurface     = lipgloss.Color("#FFFFFF")
	colorText        = lipgloss.Color("#0F172A")
	colorMuted       = lipgloss.Color("#64748B")
	colorDivider     = lipgloss.Color("#E2E8F0")
	colorDanger      = lipgloss.Color("#C41C1C")
	colorIcon        = lipgloss.Color("#1E3A8A")
)

// ── Styles ────────────

var (
	// Login screen
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Padding(0, 1)

	fieldFocusedStyle = fieldStyle.
				BorderForeground(colorPrimary)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSurface).
			Background(colorPrimary).
			Padding(0, 2)

	buttonFocusedStyle = buttonStyle.
				Background(colorPrimaryDark).
				Underline(true)

	// Tab bar
	tabBarStyle = lipgloss.NewStyle().
			Background(colorPrimaryDark)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Background(colorBody).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorPrimarySoft).
				Background(colorPrimaryDark).
				Padding(0, 1)

	closeActiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorBody).
				PaddingRight(1)

	closeInactiveStyle = lipgloss.NewStyle().
				Foreground(colorPrimarySoft).
				Background(colorPrimaryDark).
				PaddingRight(1)

	userBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSurface).
			Background(colorPrimaryDark).
			Padding(0, 1)

	// Menus
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Background(colorSurface).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorText)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	menuDangerStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Launcher grid
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDivider).
			Align(lipgloss.Center)

	cardSelectedStyle = cardStyle.
				BorderForeground(colorPrimary)

	cardIconStyle = lipgloss.NewStyle().
			Foreground(colorIcon).
			Bold(true)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(colorText)

	arrowStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	// Module content
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Notices
	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSurface).
			Background(colorDanger).
			Padding(0, 1)

	noticeButtonStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Background(colorSurface).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)
)
