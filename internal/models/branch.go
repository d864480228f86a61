package models

// Branch identifies a local branch. Ref is the full reference name used to
// issue checkout and fetch calls; Hash is the tip commit id for display.
type Branch struct {
	Name string
	Ref  string
	Hash string
}
