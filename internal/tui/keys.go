package tui

import "github.com/charmbracelet/bubbles/key"

type loginKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func (k loginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Quit}
}

func (k loginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev, k.Dismiss}}
}

var loginKeys = loginKeyMap{
	Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "entrar")),
	Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type shellKeyMap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	JumpTab     key.Binding
	CloseTab    key.Binding
	RefreshTab  key.Binding
	ContextMenu key.Binding
	ProfileMenu key.Binding
	Dismiss     key.Binding
	Quit        key.Binding
}

func (k shellKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.CloseTab, k.RefreshTab, k.ContextMenu, k.ProfileMenu, k.Quit}
}

func (k shellKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.PrevTab, k.JumpTab, k.Dismiss}}
}

var shellKeys = shellKeyMap{
	NextTab:     key.NewBinding(key.WithKeys("ctrl+right", "ctrl+pgdown"), key.WithHelp("ctrl+→", "next tab")),
	PrevTab:     key.NewBinding(key.WithKeys("ctrl+left", "ctrl+pgup"), key.WithHelp("ctrl+←", "prev tab")),
	JumpTab:     key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9", "alt+0"), key.WithHelp("alt+1-0", "jump")),
	CloseTab:    key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "close")),
	RefreshTab:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	ContextMenu: key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "tab menu")),
	ProfileMenu: key.NewBinding(key.WithKeys("f10"), key.WithHelp("f10", "profile")),
	Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var menuKeys = menuKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "shift+tab")),
	Down:   key.NewBinding(key.WithKeys("down", "tab")),
	Select: key.NewBinding(key.WithKeys("enter")),
}

type gridKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Clear    key.Binding
}

var gridKeys = gridKeyMap{
	Left:     key.NewBinding(key.WithKeys("left")),
	Right:    key.NewBinding(key.WithKeys("right")),
	Up:       key.NewBinding(key.WithKeys("up")),
	Down:     key.NewBinding(key.WithKeys("down")),
	PrevPage: key.NewBinding(key.WithKeys("pgup")),
	NextPage: key.NewBinding(key.WithKeys("pgdown")),
	Open:     key.NewBinding(key.WithKeys("enter")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+u")),
}

// jumpIndex maps alt+1..alt+9 to 0..8 and alt+0 to 9.
func jumpIndex(k string) int {
	d := k[len(k)-1]
	if d == '0' {
		return 9
	}
	return int(d - '1')
}
