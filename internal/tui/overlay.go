package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// position specifies where to place overlay content.
type position int

const (
	posCenter position = iota
	posTop
	posBottom
	posTopRight
	posAt // anchored at X/Y
)

// placement controls overlay rendering.
type placement struct {
	Width, Height int
	Pos           position
	X, Y          int // used by posAt
	PadY          int // distance from the edge for posTop/posBottom
}

// place renders fg on top of bg, preserving ANSI styling in both.
func place(p placement, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < p.Height {
		bgLines = append(bgLines, strings.Repeat(" ", p.Width))
	}

	startX, startY := p.origin(lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLine := bgLines[y]

		left := ansi.Truncate(bgLine, startX, "")
		if w := ansi.StringWidth(left); w < startX {
			left += strings.Repeat(" ", startX-w)
		}

		var right string
		endX := startX + ansi.StringWidth(fgLine)
		if endX < ansi.StringWidth(bgLine) {
			right = ansi.TruncateLeft(bgLine, endX, "")
		}
		bgLines[y] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

// origin returns the top-left corner of the overlay, kept on screen.
func (p placement) origin(fgWidth, fgHeight int) (x, y int) {
	switch p.Pos {
	case posTop:
		x, y = (p.Width-fgWidth)/2, p.PadY
	case posBottom:
		x, y = (p.Width-fgWidth)/2, p.Height-fgHeight-p.PadY
	case posTopRight:
		x, y = p.Width-fgWidth, p.PadY
	case posAt:
		x, y = p.X, p.Y
		// Flip inward when the menu would run off the screen.
		if x+fgWidth > p.Width {
			x = p.Width - fgWidth
		}
		if y+fgHeight > p.Height {
			y = p.Height - fgHeight
		}
	default:
		x, y = (p.Width-fgWidth)/2, (p.Height-fgHeight)/2
	}
	return max(x, 0), max(y, 0)
}
