package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// HashChange is a changed element detected by hash-based diffing.
type HashChange struct {
	ID      int                  `yaml:"i"           json:"i"`
	Role    string               `yaml:"r,omitempty" json:"r,omitempty"`
	Title   string               `yaml:"t,omitempty" json:"t,omitempty"`
	Changes map[string][2]string `yaml:"changes"     json:"changes"`
}

// TreeDiff is the result of comparing two element snapshots by content hash.
type TreeDiff struct {
	Added          []FlatElement `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatElement `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []HashChange  `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int           `yaml:"unchanged_count"   json:"unchanged_count"`
}

// Empty reports whether the diff found no additions, removals or changes.
func (d TreeDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ElementHash computes a stable identity hash for an element based on its
// semantic content and position in the tree. This allows matching elements
// across separate reads where sequential IDs may shift.
func ElementHash(el FlatElement) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", el.Role, el.Title, el.Ref, el.Path)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// DiffElementsByHash compares two flat element lists using content hashing
// for stable identity. Elements sharing a hash are paired in order.
func DiffElementsByHash(prev, curr []FlatElement) TreeDiff {
	prevByHash := make(map[string][]FlatElement, len(prev))
	for _, el := range prev {
		h := ElementHash(el)
		prevByHash[h] = append(prevByHash[h], el)
	}

	var diff TreeDiff
	for _, el := range curr {
		h := ElementHash(el)
		queue := prevByHash[h]
		if len(queue) == 0 {
			diff.Added = append(diff.Added, el)
			continue
		}
		prevEl := queue[0]
		prevByHash[h] = queue[1:]

		if changes := diffProperties(prevEl, el); len(changes) > 0 {
			diff.Changed = append(diff.Changed, HashChange{
				ID:      el.ID,
				Role:    el.Role,
				Title:   el.Title,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	// Whatever was not paired is gone
	for _, el := range prev {
		h := ElementHash(el)
		if queue := prevByHash[h]; len(queue) > 0 && queue[0].ID == el.ID {
			diff.Removed = append(diff.Removed, el)
			prevByHash[h] = queue[1:]
		}
	}
	return diff
}

// diffProperties compares the mutable properties of two elements matched by
// content hash.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Value != curr.Value {
		diffs["v"] = [2]string{prev.Value, curr.Value}
	}
	if prev.Description != curr.Description {
		diffs["d"] = [2]string{prev.Description, curr.Description}
	}
	if prev.Focused != curr.Focused {
		diffs["f"] = [2]string{
			fmt.Sprintf("%v", prev.Focused),
			fmt.Sprintf("%v", curr.Focused),
		}
	}
	if a, b := strings.Join(prev.States, ","), strings.Join(curr.States, ","); a != b {
		diffs["st"] = [2]string{a, b}
	}
	if a, b := fmt.Sprint(prev.Size), fmt.Sprint(curr.Size); a != b {
		diffs["sz"] = [2]string{a, b}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
