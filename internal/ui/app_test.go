package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholst/branchdeck/internal/models"
	"github.com/mholst/branchdeck/internal/session"
)

type fakeBackend struct {
	branches []models.Branch
	head     string
}

func (b *fakeBackend) ListLocalBranches() ([]models.Branch, error) { return b.branches, nil }
func (b *fakeBackend) CurrentHead() (string, error)                { return b.head, nil }
func (b *fakeBackend) IsWorkingTreeClean() (bool, error)           { return true, nil }
func (b *fakeBackend) Checkout(models.Branch) error                { return nil }
func (b *fakeBackend) FetchRemoteFor(models.Branch) error          { return nil }

func newTestModel(branches ...string) Model {
	backend := &fakeBackend{head: "main"}
	for _, name := range branches {
		backend.branches = append(backend.branches, models.Branch{
			Name: name,
			Ref:  "refs/heads/" + name,
			Hash: strings.Repeat("a", 40),
		})
	}
	return NewModel(session.New(backend))
}

func TestViewRendersBranches(t *testing.T) {
	m := newTestModel("main", "dev")
	m.width = 80

	view := m.View()
	assert.Contains(t, view, "main")
	assert.Contains(t, view, "dev")
	assert.Contains(t, view, "Branches (2 local)")
	assert.Contains(t, view, "Quit <q>")
}

func TestViewEmptyCatalogDoesNotPanic(t *testing.T) {
	m := newTestModel()
	m.width = 80

	view := m.View()
	assert.Contains(t, view, "No local branches")
	assert.Contains(t, view, "Ready")
}

func TestKeyDispatchMovesCursor(t *testing.T) {
	m := newTestModel("main", "dev")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	model := updated.(Model)
	assert.Equal(t, 1, model.session.Cursor())
}

func TestQuitKeyEndsProgram(t *testing.T) {
	m := newTestModel("main")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowSizeTracked(t *testing.T) {
	m := newTestModel("main")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}
