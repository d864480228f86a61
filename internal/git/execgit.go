package git

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mholst/branchdeck/internal/models"
)

// ExecBackend implements Backend by shelling out to the git executable. It
// exists for repositories go-git cannot read (exotic extensions, partial
// clones); both implementations satisfy the same contract and are covered by
// the same tests.
type ExecBackend struct {
	dir string
}

func NewExecBackend(dir string) *ExecBackend {
	return &ExecBackend{dir: dir}
}

func (b *ExecBackend) git(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = b.dir
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return output, nil
}

func (b *ExecBackend) ListLocalBranches() ([]models.Branch, error) {
	output, err := b.git("for-each-ref", "refs/heads", "--format=%(refname)%00%(refname:short)%00%(objectname)")
	if err != nil {
		return nil, err
	}

	var branches []models.Branch
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\x00", 3)
		if len(fields) != 3 {
			continue
		}
		branches = append(branches, models.Branch{
			Name: fields[1],
			Ref:  fields[0],
			Hash: fields[2],
		})
	}
	return branches, nil
}

func (b *ExecBackend) CurrentHead() (string, error) {
	// A symbolic HEAD resolves to a branch name; otherwise fall back to
	// the detached commit id.
	output, err := b.git("symbolic-ref", "-q", "--short", "HEAD")
	if err == nil {
		return strings.TrimSpace(string(output)), nil
	}
	output, err = b.git("rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

func (b *ExecBackend) IsWorkingTreeClean() (bool, error) {
	output, err := b.git("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return len(bytes.TrimSpace(output)) == 0, nil
}

func (b *ExecBackend) Checkout(branch models.Branch) error {
	_, err := b.git("checkout", branch.Name)
	return err
}

func (b *ExecBackend) FetchRemoteFor(branch models.Branch) error {
	spec := fetchRefSpec(branch.Name)
	_, err := b.git("fetch", "--no-tags", remoteName, spec.String())
	return err
}
