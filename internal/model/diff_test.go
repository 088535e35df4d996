package model

import "testing"

func TestDiffElementsByHash_ValueChange(t *testing.T) {
	prev := []FlatElement{
		{ID: 1, Role: "window", Title: "Main", Path: "window"},
		{ID: 2, Role: "slider", Title: "Zoom", Value: "3", Path: "window > slider"},
	}
	curr := []FlatElement{
		{ID: 1, Role: "window", Title: "Main", Path: "window"},
		{ID: 2, Role: "slider", Title: "Zoom", Value: "4", Path: "window > slider"},
	}
	diff := DiffElementsByHash(prev, curr)
	if len(diff.Changed) != 1 {
		t.Fatalf("expected 1 change, got %+v", diff)
	}
	if got := diff.Changed[0].Changes["v"]; got != [2]string{"3", "4"} {
		t.Errorf("unexpected value change %v", got)
	}
	if diff.UnchangedCount != 1 || len(diff.Added) != 0 || len(diff.Removed) != 0 {
		t.Errorf("unexpected diff %+v", diff)
	}
}

func TestDiffElementsByHash_IDShift(t *testing.T) {
	prev := []FlatElement{
		{ID: 1, Role: "btn", Title: "OK", Path: "btn"},
	}
	curr := []FlatElement{
		{ID: 1, Role: "txt", Title: "Saved", Path: "txt"},
		{ID: 2, Role: "btn", Title: "OK", Path: "btn"},
	}
	diff := DiffElementsByHash(prev, curr)
	if len(diff.Added) != 1 || diff.Added[0].Title != "Saved" {
		t.Errorf("expected Saved added, got %+v", diff.Added)
	}
	if diff.UnchangedCount != 1 {
		t.Errorf("expected OK unchanged despite ID shift, got %+v", diff)
	}
}

func TestDiffElementsByHash_DuplicatesPairInOrder(t *testing.T) {
	prev := []FlatElement{
		{ID: 1, Role: "item", Title: "Row", Path: "item"},
		{ID: 2, Role: "item", Title: "Row", Path: "item"},
	}
	curr := []FlatElement{
		{ID: 1, Role: "item", Title: "Row", Path: "item"},
	}
	diff := DiffElementsByHash(prev, curr)
	if len(diff.Removed) != 1 || diff.Removed[0].ID != 2 {
		t.Errorf("expected second row removed, got %+v", diff.Removed)
	}
	if diff.Empty() {
		t.Error("diff should not be empty")
	}
	if !DiffElementsByHash(curr, curr).Empty() {
		t.Error("identical snapshots should produce an empty diff")
	}
}
