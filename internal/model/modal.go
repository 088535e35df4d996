package model

// DetectModal finds the dialog that should scope a read: the innermost
// dialog holding the focused element, else the last dialog in document order.
// Returns nil when the tree has no dialog.
func DetectModal(elements []Element) *Element {
	var last, focused *Element
	walk(elements, func(el *Element) {
		if el.Role != "dialog" {
			return
		}
		last = el
		if containsFocused(el) {
			focused = el
		}
	})
	if focused != nil {
		return focused
	}
	return last
}

// walk visits elements in document order, parents before children.
func walk(elements []Element, visit func(*Element)) {
	for i := range elements {
		visit(&elements[i])
		walk(elements[i].Children, visit)
	}
}

// containsFocused recursively checks if an element or any descendant has focus.
func containsFocused(el *Element) bool {
	if el.Focused {
		return true
	}
	for i := range el.Children {
		if containsFocused(&el.Children[i]) {
			return true
		}
	}
	return false
}
