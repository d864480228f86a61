package session

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is an abstract command produced from a raw key press.
type Action int

const (
	ActionSwitch Action = iota
	ActionFetch
	ActionRefresh
	ActionMoveUp
	ActionMoveDown
	ActionQuit
)

type control struct {
	action  Action
	binding key.Binding
}

// Controls maps key presses to actions. The table is fixed and ordered;
// first-match order doubles as help-text order.
type Controls struct {
	table []control
}

func NewControls() Controls {
	return Controls{table: []control{
		{ActionSwitch, key.NewBinding(key.WithKeys("s"), key.WithHelp("<s>", "Switch"))},
		{ActionFetch, key.NewBinding(key.WithKeys("f"), key.WithHelp("<f>", "Fetch"))},
		{ActionRefresh, key.NewBinding(key.WithKeys("r"), key.WithHelp("<r>", "Refresh"))},
		{ActionMoveUp, key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("<↑>", "Up"))},
		{ActionMoveDown, key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("<↓>", "Down"))},
		{ActionQuit, key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("<q>", "Quit"))},
	}}
}

// Resolve returns the action bound to msg, or false for unrecognized keys.
func (c Controls) Resolve(msg tea.KeyMsg) (Action, bool) {
	for _, entry := range c.table {
		if key.Matches(msg, entry.binding) {
			return entry.action, true
		}
	}
	return 0, false
}

// HelpText renders the footer hint line, e.g. "Switch <s> | Fetch <f> | ...".
func (c Controls) HelpText() string {
	parts := make([]string, 0, len(c.table))
	for _, entry := range c.table {
		help := entry.binding.Help()
		parts = append(parts, help.Desc+" "+help.Key)
	}
	return strings.Join(parts, " | ")
}
