package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	sort  key.Binding
	copy  key.Binding
	info  key.Binding
	quit  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	sort:  key.NewBinding(key.WithKeys("s")),
	copy:  key.NewBinding(key.WithKeys("c")),
	info:  key.NewBinding(key.WithKeys("i")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
