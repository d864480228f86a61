package git

import (
	"unicode/utf8"

	"github.com/mholst/branchdeck/internal/models"
)

// Catalog caches the local branch set between refreshes. The order is
// whatever the backend returned on the last successful refresh.
type Catalog struct {
	backend  Backend
	branches []models.Branch
}

func NewCatalog(backend Backend) *Catalog {
	return &Catalog{backend: backend}
}

// Refresh replaces the catalog contents wholesale. On failure the existing
// contents are left untouched and the error is returned to the caller.
func (c *Catalog) Refresh() error {
	branches, err := c.backend.ListLocalBranches()
	if err != nil {
		return err
	}
	c.branches = branches
	return nil
}

// Names returns display names in catalog order. Branches whose name is not
// valid UTF-8 are excluded; that is a backend-handle defect, not something
// to surface to the user.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.branches))
	for _, branch := range c.branches {
		if !utf8.ValidString(branch.Name) {
			continue
		}
		names = append(names, branch.Name)
	}
	return names
}

// Branches returns the cached branch list in catalog order.
func (c *Catalog) Branches() []models.Branch {
	return c.branches
}

// At returns the branch at index, or false when out of range.
func (c *Catalog) At(index int) (models.Branch, bool) {
	if index < 0 || index >= len(c.branches) {
		return models.Branch{}, false
	}
	return c.branches[index], true
}

func (c *Catalog) Len() int {
	return len(c.branches)
}
