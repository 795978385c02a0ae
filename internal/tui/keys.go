package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter        key.Binding
	esc          key.Binding
	quit         key.Binding
	forceQuit    key.Binding
	copyPassword key.Binding
	copyTOTP     key.Binding
}

var keys = keyMap{
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	quit:         key.NewBinding(key.WithKeys("q")),
	forceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	copyPassword: key.NewBinding(key.WithKeys("c")),
	copyTOTP:     key.NewBinding(key.WithKeys("t")),
}
