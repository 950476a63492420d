package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	nextTab   key.Binding
	prevTab   key.Binding
	jumpTab   key.Binding
	operation key.Binding
	encrypt   key.Binding
	submit    key.Binding
	clearFile key.Binding
	buildInfo key.Binding
	download  key.Binding
	copy      key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	nextTab:   key.NewBinding(key.WithKeys("ctrl+n", "ctrl+right")),
	prevTab:   key.NewBinding(key.WithKeys("ctrl+p", "ctrl+left")),
	jumpTab:   key.NewBinding(key.WithKeys("f1", "f2", "f3", "f4")),
	operation: key.NewBinding(key.WithKeys("ctrl+o")),
	encrypt:   key.NewBinding(key.WithKeys("ctrl+e")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	clearFile: key.NewBinding(key.WithKeys("ctrl+x")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	download:  key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
}

// tabIndex maps the function keys of jumpTab to zero-based tab indexes.
func tabIndex(k string) (int, bool) {
	switch k {
	case "f1":
		return 0, true
	case "f2":
		return 1, true
	case "f3":
		return 2, true
	case "f4":
		return 3, true
	default:
		return 0, false
	}
}
