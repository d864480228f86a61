package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mholst/branchdeck/internal/session"
)

// Model renders one session. It holds no state of its own beyond the window
// size; everything drawn comes from read-only session accessors.
type Model struct {
	session *session.Session
	width   int
	height  int
}

func NewModel(s *session.Session) Model {
	return Model{session: s}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action, ok := m.session.Controls().Resolve(msg); ok {
			m.session.Apply(action)
		}
		if m.session.Exiting() {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("green")).
		MarginRight(2)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	title := titleStyle.Render(fmt.Sprintf("Git Branch Explorer ( %s)", m.session.HeadDisplay()))
	status := m.renderStatus()

	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, title, status)
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, headerLine, divider)
}

func (m Model) renderStatus() string {
	text, severity := m.session.StatusLine()

	var style lipgloss.Style
	switch severity {
	case session.SeveritySuccess:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	case session.SeverityError:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("white"))
	}

	return style.Render(severity.Glyph() + " " + text)
}

func (m Model) renderBody() string {
	branches := m.session.Branches()
	if len(branches) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Render("No local branches")
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true).
		MarginBottom(1)

	branchStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("white"))

	currentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	hashStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("yellow"))

	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("238"))

	current := m.session.HeadDisplay()
	cursor := m.session.Cursor()

	var out strings.Builder

	header := fmt.Sprintf("Branches (%d local)", len(branches))
	out.WriteString(headerStyle.Render(header) + "\n")

	for i, branch := range branches {
		var line string
		if branch.Name == current {
			line = "* " + currentStyle.Render(branch.Name)
		} else {
			line = "  " + branchStyle.Render(branch.Name)
		}

		if len(branch.Hash) >= 7 {
			line += " " + hashStyle.Render(branch.Hash[:7])
		}

		if i == cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}

		out.WriteString(line + "\n")
	}

	return out.String()
}

func (m Model) renderFooter() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	divider := dividerStyle.Render(strings.Repeat("─", m.width))
	helpText := helpStyle.Render(m.session.HelpText())

	return lipgloss.JoinVertical(lipgloss.Left, divider, helpText)
}
