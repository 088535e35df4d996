package model

import "testing"

func TestFilterElements_NoFilters(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "btn"},
		{ID: 2, Role: "txt"},
	}
	result := FilterElements(elements, nil)
	if len(result) != 2 {
		t.Errorf("expected 2 elements, got %d", len(result))
	}
}

func TestFilterElements_RoleFilter(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "btn"},
		{ID: 2, Role: "txt"},
		{ID: 3, Role: "chk"},
	}
	result := FilterElements(elements, []string{"btn", "chk"})
	if len(result) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(result))
	}
	if result[0].Role != "btn" || result[1].Role != "chk" {
		t.Errorf("unexpected roles: %s, %s", result[0].Role, result[1].Role)
	}
}

func TestFilterElements_PromotesMatchingDescendants(t *testing.T) {
	elements := []Element{
		{
			ID: 1, Role: "window",
			Children: []Element{
				{ID: 2, Role: "group", Children: []Element{
					{ID: 3, Role: "btn"},
					{ID: 4, Role: "txt"},
				}},
			},
		},
	}
	result := FilterElements(elements, []string{"group", "btn"})
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("expected group promoted to top level, got %+v", result)
	}
	if len(result[0].Children) != 1 || result[0].Children[0].Role != "btn" {
		t.Errorf("expected single btn child, got %+v", result[0].Children)
	}
}

func TestFilterByText(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "window", Title: "Main", Children: []Element{
			{ID: 2, Role: "btn", Title: "Zoom in"},
			{ID: 3, Role: "route", Value: "51.500000, -0.120000"},
			{ID: 4, Role: "map", Description: "Street map"},
		}},
	}
	result := FilterByText(elements, "ZOOM")
	if len(result) != 1 || len(result[0].Children) != 1 || result[0].Children[0].ID != 2 {
		t.Errorf("title match failed: %+v", result)
	}
	result = FilterByText(elements, "-0.12")
	if len(result) != 1 || result[0].Children[0].ID != 3 {
		t.Errorf("value match failed: %+v", result)
	}
	result = FilterByText(elements, "street")
	if len(result) != 1 || result[0].Children[0].ID != 4 {
		t.Errorf("description match failed: %+v", result)
	}
	if got := FilterByText(elements, "absent"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestFilterByFocused(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "window", Children: []Element{
			{ID: 2, Role: "btn"},
			{ID: 3, Role: "group", Children: []Element{
				{ID: 4, Role: "input", Focused: true},
			}},
		}},
	}
	result := FilterByFocused(elements)
	if len(result) != 1 || len(result[0].Children) != 1 {
		t.Fatalf("expected ancestry only, got %+v", result)
	}
	if got := result[0].Children[0].Children[0]; got.ID != 4 {
		t.Errorf("expected focused input, got %+v", got)
	}
}

func TestPruneEmptyGroups(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "group", Children: []Element{
			{ID: 2, Role: "group", Title: "Toolbar", Children: []Element{
				{ID: 3, Role: "btn"},
			}},
		}},
	}
	result := PruneEmptyGroups(elements)
	if len(result) != 1 || result[0].ID != 2 {
		t.Fatalf("expected labeled group promoted, got %+v", result)
	}

	flat := PruneEmptyGroupsFlat(FlattenElements(elements))
	if len(flat) != 2 {
		t.Errorf("expected 2 flat elements after pruning, got %d", len(flat))
	}
}
