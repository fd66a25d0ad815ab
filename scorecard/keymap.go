package scorecard

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	score key.Binding
	ten   key.Binding
	inner key.Binding
	miss  key.Binding
	clear key.Binding
	left  key.Binding
	right key.Binding
	up    key.Binding
	down  key.Binding
	help  key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	score: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
		key.WithHelp("0-9", "score"),
	),
	ten: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "ten"),
	),
	inner: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "inner ten"),
	),
	miss: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "miss"),
	),
	clear: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("⌫", "clear"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "arrow"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←/→", "arrow"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "volley"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑/↓", "volley"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "save and quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.score, k.inner, k.miss, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.score, k.ten, k.inner, k.miss},
		{k.clear, k.left, k.up},
		{k.help, k.quit},
	}
}
