package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/mholst/branchdeck/internal/models"
)

const remoteName = "origin"

// Repository implements Backend against a go-git repository.
type Repository struct {
	repo *gogit.Repository
}

// Open locates the repository containing path, searching parent directories
// for the .git directory the same way the git CLI does.
func Open(path string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return &Repository{repo: repo}, nil
}

// NewRepository wraps an already-opened go-git repository.
func NewRepository(repo *gogit.Repository) *Repository {
	return &Repository{repo: repo}
}

// ListLocalBranches returns all local branches in iteration order.
func (r *Repository) ListLocalBranches() ([]models.Branch, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	var branches []models.Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, models.Branch{
			Name: ref.Name().Short(),
			Ref:  ref.Name().String(),
			Hash: ref.Hash().String(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// CurrentHead resolves HEAD without requiring the caller to know whether it
// is detached: a symbolic HEAD yields the branch name, a detached HEAD the
// commit id.
func (r *Repository) CurrentHead() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String(), nil
}

func (r *Repository) IsWorkingTreeClean() (bool, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to open working tree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read working tree status: %w", err)
	}
	return status.IsClean(), nil
}

// Checkout moves HEAD and the working tree to branch. go-git resolves the
// reference before touching anything, so an unresolvable branch fails
// without partial state change.
func (r *Repository) Checkout(branch models.Branch) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open working tree: %w", err)
	}
	return worktree.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.ReferenceName(branch.Ref),
	})
}

// FetchRemoteFor updates origin's remote-tracking ref for branch. Tags are
// not fetched, and an already up-to-date remote counts as success.
func (r *Repository) FetchRemoteFor(branch models.Branch) error {
	err := r.repo.Fetch(&gogit.FetchOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{fetchRefSpec(branch.Name)},
		Tags:       gogit.NoTags,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

func fetchRefSpec(name string) config.RefSpec {
	return config.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", name, remoteName, name))
}
