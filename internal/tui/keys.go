package tui

import "github.com/charmbracelet/bubbles/key"

// appKeys are honoured on every screen.
type appKeys struct {
	Back key.Binding
	Quit key.Binding
}

var globalKeys = appKeys{
	Back: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "menu")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter", "1", "2", "3"), key.WithHelp("enter", "open")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// calcKeyMap only documents the calculator keys; dispatch goes through
// calculator.KeyAction.
type calcKeyMap struct {
	Digits     key.Binding
	Operators  key.Binding
	Evaluate   key.Binding
	ClearAll   key.Binding
	ClearEntry key.Binding
	Backspace  key.Binding
}

func newCalcKeyMap() calcKeyMap {
	return calcKeyMap{
		Digits:     key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "enter")),
		Operators:  key.NewBinding(key.WithKeys("+", "-", "*", "/"), key.WithHelp("+-*/", "operator")),
		Evaluate:   key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		ClearAll:   key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "clear")),
		ClearEntry: key.NewBinding(key.WithKeys("delete", "e"), key.WithHelp("del", "clear entry")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete digit")),
	}
}

func (k calcKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Operators, k.Evaluate, k.ClearAll, k.ClearEntry, k.Backspace, globalKeys.Back}
}

func (k calcKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type playerKeyMap struct {
	Play     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Select   key.Binding
	SeekBack key.Binding
	SeekFwd  key.Binding
	VolDown  key.Binding
	VolUp    key.Binding
	Autoplay key.Binding
}

func newPlayerKeyMap() playerKeyMap {
	return playerKeyMap{
		Play:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "play/pause")),
		Prev:     key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next")),
		Select:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select")),
		SeekBack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "seek -10%")),
		SeekFwd:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "seek +10%")),
		VolDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "vol down")),
		VolUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "vol up")),
		Autoplay: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autoplay")),
	}
}

func (k playerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Prev, k.Next, k.SeekBack, k.SeekFwd, k.VolDown, k.VolUp, k.Autoplay, globalKeys.Back}
}

func (k playerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Select}}
}

type galleryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Close  key.Binding
	Add    key.Binding
	Remove key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func newGalleryKeyMap() galleryKeyMap {
	return galleryKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view")),
		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// galleryHelp selects the bindings shown for the current gallery mode.
type galleryHelp struct {
	keys     galleryKeyMap
	open     bool
	adding   bool
	controls bool
}

func (h galleryHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch {
	case h.adding:
		return []key.Binding{k.Submit, k.Cancel}
	case h.open && h.controls:
		return []key.Binding{k.Prev, k.Next, k.Close, k.Add, k.Remove, globalKeys.Back}
	case h.open:
		return []key.Binding{k.Close, k.Add, k.Remove, globalKeys.Back}
	default:
		return []key.Binding{k.Up, k.Down, k.Open, k.Add, k.Remove, globalKeys.Back}
	}
}

func (h galleryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
