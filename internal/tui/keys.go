package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	buildInfo key.Binding
	operation key.Binding
	mode      key.Binding
	submit    key.Binding
	download  key.Binding
	copy      key.Binding
	reset     key.Binding
	history   key.Binding
}

var keys = keyMap{
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	operation: key.NewBinding(key.WithKeys("ctrl+o")),
	mode:      key.NewBinding(key.WithKeys("ctrl+t")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	download:  key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	history:   key.NewBinding(key.WithKeys("f2")),
}

const hotKeysHelp = "←/→ cipher  ctrl+o operation  ctrl+t mode  tab next field  ctrl+s submit\n" +
	"  ctrl+d download  ctrl+y copy  ctrl+r reset  f2 history  f1 about"
