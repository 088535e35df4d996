package model

import "testing"

func TestDetectModal_None(t *testing.T) {
	elements := []Element{{ID: 1, Role: "window", Children: []Element{{ID: 2, Role: "btn"}}}}
	if got := DetectModal(elements); got != nil {
		t.Errorf("expected no modal, got %+v", got)
	}
}

func TestDetectModal_PrefersFocusedDialog(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "window", Children: []Element{
			{ID: 2, Role: "dialog", Title: "Confirm", Children: []Element{
				{ID: 3, Role: "btn", Focused: true},
			}},
			{ID: 4, Role: "dialog", Title: "Later"},
		}},
	}
	if got := DetectModal(elements); got == nil || got.ID != 2 {
		t.Errorf("expected focused dialog 2, got %+v", got)
	}
}

func TestDetectModal_LastDialogWithoutFocus(t *testing.T) {
	elements := []Element{
		{ID: 1, Role: "window", Children: []Element{
			{ID: 2, Role: "dialog"},
			{ID: 3, Role: "dialog"},
		}},
	}
	if got := DetectModal(elements); got == nil || got.ID != 3 {
		t.Errorf("expected last dialog 3, got %+v", got)
	}
}
