// Package workspace manages the set of open module tabs in the shell.
package workspace

import (
	"errors"
	"strings"
	"time"
)

// MaxTabs is the maximum number of concurrently open tabs, home included.
const MaxTabs = 10

const (
	// HomeID identifies the permanent launcher tab.
	HomeID = "home"
	// HomeLabel is the label shown on the home tab.
	HomeLabel = "Início"
)

// ErrTabCapacityExceeded is returned by OpenOrFocus when MaxTabs tabs are
// already open and the request does not match any of them.
var ErrTabCapacityExceeded = errors.New("tab limit reached")

// Tab is an open module instance.
type Tab struct {
	ID    string
	Label string
	// Stamp changes whenever the tab content must be remounted.
	Stamp int64
}

// IsHome reports whether t is the permanent home tab.
func (t Tab) IsHome() bool {
	return t.ID == HomeID
}

// matches reports whether t has the given id or label, ignoring case.
func (t Tab) matches(id, label string) bool {
	return strings.EqualFold(t.ID, id) || strings.EqualFold(t.Label, label)
}

// ContextMenu records which tab a context menu was requested for and where.
type ContextMenu struct {
	Index int
	X, Y  int
}

// Clock returns a timestamp used for tab stamps.
type Clock func() int64

// Option configures a Workspace.
type Option func(*Workspace)

// WithClock overrides the stamp source.
func WithClock(c Clock) Option {
	return func(w *Workspace) { w.clock = c }
}

// Workspace owns the ordered tab collection and the active position.
// It is not safe for concurrent use; the UI loop is its only caller.
type Workspace struct {
	tabs      []Tab
	active    int
	menu      *ContextMenu
	clock     Clock
	lastStamp int64
}

// New returns a workspace holding only the home tab.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		clock: func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(w)
	}
	w.tabs = []Tab{{ID: HomeID, Label: HomeLabel, Stamp: w.stamp()}}
	return w
}

// stamp returns the next stamp, strictly greater than any handed out before.
func (w *Workspace) stamp() int64 {
	s := w.clock()
	if s <= w.lastStamp {
		s = w.lastStamp + 1
	}
	w.lastStamp = s
	return s
}

// OpenOrFocus activates the tab matching id or label, or opens a new one.
// It returns the index of the now active tab. When the workspace is full and
// nothing matches, it returns ErrTabCapacityExceeded and changes nothing.
func (w *Workspace) OpenOrFocus(id, label string) (int, error) {
	for i, t := range w.tabs {
		if t.matches(id, label) {
			w.active = i
			return i, nil
		}
	}
	if len(w.tabs) >= MaxTabs {
		return w.active, ErrTabCapacityExceeded
	}

	w.tabs = append(w.tabs, Tab{ID: id, Label: label, Stamp: w.stamp()})
	// Activate only after the append is committed.
	w.active = len(w.tabs) - 1
	return w.active, nil
}

// Close removes the tab at index. The home tab and out-of-range indexes are
// ignored. It reports whether a tab was removed.
func (w *Workspace) Close(index int) bool {
	if !w.valid(index) || w.tabs[index].IsHome() {
		return false
	}

	w.tabs = append(w.tabs[:index:index], w.tabs[index+1:]...)
	if w.active >= index {
		w.active = max(0, w.active-1)
	}
	w.menu = nil
	return true
}

// Refresh regenerates the stamp of the tab at index so its content remounts.
func (w *Workspace) Refresh(index int) bool {
	if !w.valid(index) {
		return false
	}
	w.tabs[index].Stamp = w.stamp()
	return true
}

// Activate makes the tab at index active.
func (w *Workspace) Activate(index int) bool {
	if !w.valid(index) {
		return false
	}
	w.active = index
	return true
}

// Next activates the tab to the right of the active one, wrapping around.
func (w *Workspace) Next() {
	w.active = (w.active + 1) % len(w.tabs)
}

// Prev activates the tab to the left of the active one, wrapping around.
func (w *Workspace) Prev() {
	w.active = (w.active - 1 + len(w.tabs)) % len(w.tabs)
}

// RequestContextMenu records a context menu for the tab at index, anchored
// at the given screen position.
func (w *Workspace) RequestContextMenu(index, x, y int) bool {
	if !w.valid(index) {
		return false
	}
	w.menu = &ContextMenu{Index: index, X: x, Y: y}
	return true
}

// DismissContextMenu clears any pending context menu.
func (w *Workspace) DismissContextMenu() {
	w.menu = nil
}

// ContextMenu returns the pending context menu, if any.
func (w *Workspace) ContextMenu() (ContextMenu, bool) {
	if w.menu == nil {
		return ContextMenu{}, false
	}
	return *w.menu, true
}

// Tabs returns a copy of the open tabs in display order.
func (w *Workspace) Tabs() []Tab {
	out := make([]Tab, len(w.tabs))
	copy(out, w.tabs)
	return out
}

// Len returns the number of open tabs.
func (w *Workspace) Len() int { return len(w.tabs) }

// ActiveIndex returns the position of the active tab.
func (w *Workspace) ActiveIndex() int { return w.active }

// Active returns the active tab.
func (w *Workspace) Active() Tab { return w.tabs[w.active] }

func (w *Workspace) valid(index int) bool {
	return index >= 0 && index < len(w.tabs)
}
