package session

import (
	"fmt"

	"github.com/mholst/branchdeck/internal/git"
	"github.com/mholst/branchdeck/internal/logging"
	"github.com/mholst/branchdeck/internal/models"
)

// Session owns the branch catalog, selection cursor, operation status and
// exit flag for one interactive run. Actions are applied synchronously; the
// renderer only reads.
type Session struct {
	backend  git.Backend
	catalog  *git.Catalog
	controls Controls
	status   *Status
	cursor   int
	exiting  bool
}

// New builds a session over backend and loads the initial branch list. A
// failed initial listing is not fatal; it surfaces as an Error status over
// an empty catalog, like any later refresh failure.
func New(backend git.Backend) *Session {
	s := &Session{
		backend:  backend,
		catalog:  git.NewCatalog(backend),
		controls: NewControls(),
		status:   NewStatus(),
		cursor:   -1,
	}
	if err := s.catalog.Refresh(); err != nil {
		logging.Error(err)
		s.status.Set(fmt.Sprintf("Failed to refresh branches: %v", err), SeverityError)
	}
	s.clampCursor()
	return s
}

// Apply dispatches one action. Backend errors are converted to Error
// statuses here and never propagate further up.
func (s *Session) Apply(action Action) {
	switch action {
	case ActionMoveUp:
		s.moveCursor(-1)
	case ActionMoveDown:
		s.moveCursor(1)
	case ActionRefresh:
		s.refresh()
	case ActionSwitch:
		s.switchBranch()
	case ActionFetch:
		s.fetchBranch()
	case ActionQuit:
		s.exiting = true
	}
}

func (s *Session) moveCursor(delta int) {
	if s.catalog.Len() == 0 {
		s.cursor = -1
		return
	}
	next := s.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= s.catalog.Len() {
		next = s.catalog.Len() - 1
	}
	s.cursor = next
}

func (s *Session) clampCursor() {
	n := s.catalog.Len()
	switch {
	case n == 0:
		s.cursor = -1
	case s.cursor < 0:
		s.cursor = 0
	case s.cursor >= n:
		s.cursor = n - 1
	}
}

func (s *Session) refresh() {
	s.status.Set("Refreshing", SeverityInfo)
	if err := s.catalog.Refresh(); err != nil {
		logging.Error(err)
		s.status.Set(fmt.Sprintf("Failed to refresh branches: %v", err), SeverityError)
	} else {
		s.status.Set("Refreshed Branches", SeveritySuccess)
	}
	s.clampCursor()
}

func (s *Session) switchBranch() {
	branch, ok := s.catalog.At(s.cursor)
	if !ok {
		s.status.Set("No branch selected", SeverityInfo)
		return
	}
	s.status.Set(fmt.Sprintf("Switching to %s...", branch.Name), SeverityInfo)

	// HEAD is only needed for the refusal message below; failing to
	// resolve it must not block the switch attempt.
	current, err := s.backend.CurrentHead()
	if err != nil {
		current = "HEAD"
	}

	clean, err := s.backend.IsWorkingTreeClean()
	if err != nil {
		logging.Error(err)
		s.status.Set(fmt.Sprintf("Error switching to %s: %v", branch.Name, err), SeverityError)
		return
	}
	if !clean {
		// Never attempt a checkout over a dirty working tree.
		s.status.Set(fmt.Sprintf("Error switching to %s: Uncommitted local changes on branch %s", branch.Name, current), SeverityError)
		return
	}

	if err := s.backend.Checkout(branch); err != nil {
		logging.Error(err)
		s.status.Set(fmt.Sprintf("Error switching to %s: %v", branch.Name, err), SeverityError)
		return
	}
	s.status.Set(fmt.Sprintf("Successfully switched to branch %s", branch.Name), SeveritySuccess)
}

func (s *Session) fetchBranch() {
	branch, ok := s.catalog.At(s.cursor)
	if !ok {
		s.status.Set("No branch selected", SeverityInfo)
		return
	}
	s.status.Set(fmt.Sprintf("Fetching %s...", branch.Name), SeverityInfo)
	if err := s.backend.FetchRemoteFor(branch); err != nil {
		logging.Error(err)
		s.status.Set(fmt.Sprintf("Error fetching %s: %v", branch.Name, err), SeverityError)
		return
	}
	s.status.Set(fmt.Sprintf("Successfully fetched %s", branch.Name), SeveritySuccess)
}

// HeadDisplay returns the current branch name, a detached commit id, or
// "ERROR" when HEAD cannot be resolved. It is recomputed on every call
// because a switch invalidates it.
func (s *Session) HeadDisplay() string {
	head, err := s.backend.CurrentHead()
	if err != nil {
		return "ERROR"
	}
	return head
}

// BranchNames returns the display names in catalog order.
func (s *Session) BranchNames() []string {
	return s.catalog.Names()
}

// Branches returns the cached branch list in catalog order.
func (s *Session) Branches() []models.Branch {
	return s.catalog.Branches()
}

// Cursor returns the selection index, or -1 when the catalog is empty.
func (s *Session) Cursor() int {
	return s.cursor
}

// StatusLine returns the current status text and severity, applying lazy
// expiry.
func (s *Session) StatusLine() (string, Severity) {
	return s.status.CurrentOrDefault()
}

// HelpText returns the footer hint line.
func (s *Session) HelpText() string {
	return s.controls.HelpText()
}

// Controls exposes the key table for input dispatch.
func (s *Session) Controls() Controls {
	return s.controls
}

// Exiting reports whether a quit was requested.
func (s *Session) Exiting() bool {
	return s.exiting
}
