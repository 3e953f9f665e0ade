package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/PGP-Health-System/pgp/internal/log"
)

// notice is a dismissable, auto-expiring message shown over the current view.
type notice struct {
	message string
	pos     position
	visible bool
	seq     int
}

// dismissNoticeMsg hides the notice if it is still the one with seq.
type dismissNoticeMsg struct{ seq int }

// show replaces any visible notice and schedules its expiry.
func (n notice) show(message string, pos position, d time.Duration) (notice, tea.Cmd) {
	n.seq++
	n.message = message
	n.pos = pos
	n.visible = true
	seq := n.seq
	log.Debug(log.CatUI, "notice", "message", message, "seq", seq, "ttl", d)
	return n, tea.Tick(d, func(time.Time) tea.Msg {
		return dismissNoticeMsg{seq: seq}
	})
}

func (n notice) hide() notice {
	n.visible = false
	n.message = ""
	return n
}

// expire handles a dismissal tick. Ticks from older notices are ignored.
func (n notice) expire(msg dismissNoticeMsg) notice {
	if msg.seq != n.seq {
		return n
	}
	return n.hide()
}

func (n notice) view() string {
	if !n.visible || n.message == "" {
		return ""
	}
	body := noticeStyle.Render("⚠ " + n.message)
	btn := zone.Mark(zoneNoticeClose, noticeButtonStyle.Render("Fechar"))
	return lipgloss.JoinHorizontal(lipgloss.Center, body, noticeStyle.Render(" "), btn)
}

// overlay renders the notice on top of bg.
func (n notice) overlay(bg string, width, height int) string {
	fg := n.view()
	if fg == "" {
		return bg
	}
	return place(placement{Width: width, Height: height, Pos: n.pos, PadY: 1}, fg, bg)
}
