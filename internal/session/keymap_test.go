package session

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestResolveKnownKeys(t *testing.T) {
	controls := NewControls()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"switch", runeKey('s'), ActionSwitch},
		{"fetch", runeKey('f'), ActionFetch},
		{"refresh", runeKey('r'), ActionRefresh},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, ActionMoveUp},
		{"up vim", runeKey('k'), ActionMoveUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, ActionMoveDown},
		{"down vim", runeKey('j'), ActionMoveDown},
		{"quit", runeKey('q'), ActionQuit},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := controls.Resolve(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestResolveUnknownKeyProducesNoAction(t *testing.T) {
	controls := NewControls()

	for _, msg := range []tea.KeyMsg{runeKey('x'), runeKey('Z'), {Type: tea.KeyEnter}} {
		_, ok := controls.Resolve(msg)
		assert.False(t, ok, "key %q should be ignored", msg.String())
	}
}

func TestHelpTextOrder(t *testing.T) {
	controls := NewControls()

	want := "Switch <s> | Fetch <f> | Refresh <r> | Up <↑> | Down <↓> | Quit <q>"
	assert.Equal(t, want, controls.HelpText())
}
