package git

import "github.com/mholst/branchdeck/internal/models"

// Backend abstracts access to the version-control subsystem.
//
// The default implementation is backed by go-git, but the interface allows
// alternative implementations (e.g. shelling out to git) without changing
// callers, and lets session tests substitute a stub.
type Backend interface {
	// ListLocalBranches returns all local branches in backend order.
	ListLocalBranches() ([]models.Branch, error)

	// CurrentHead returns the branch name when HEAD is symbolic, otherwise
	// the commit id of a detached HEAD.
	CurrentHead() (string, error)

	// IsWorkingTreeClean reports whether there are zero pending changes,
	// counting staged, unstaged and untracked files.
	IsWorkingTreeClean() (bool, error)

	// Checkout moves HEAD and the working tree to branch.
	Checkout(branch models.Branch) error

	// FetchRemoteFor updates the remote-tracking ref for branch from the
	// remote named "origin". It never touches local branches or the
	// working tree.
	FetchRemoteFor(branch models.Branch) error
}
