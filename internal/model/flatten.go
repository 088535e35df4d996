package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID          int      `yaml:"i"                 json:"i"`
	Role        string   `yaml:"r"                 json:"r"`
	Title       string   `yaml:"t,omitempty"       json:"t,omitempty"`
	Value       string   `yaml:"v,omitempty"       json:"v,omitempty"`
	Description string   `yaml:"d,omitempty"       json:"d,omitempty"`
	Size        []int    `yaml:"sz,flow,omitempty" json:"sz,omitempty"`
	Focused     bool     `yaml:"f,omitempty"       json:"f,omitempty"`
	States      []string `yaml:"st,flow,omitempty" json:"st,omitempty"`
	Actions     []string `yaml:"a,flow,omitempty"  json:"a,omitempty"`
	Ref         string   `yaml:"ref,omitempty"     json:"ref,omitempty"`
	Path        string   `yaml:"p,omitempty"       json:"p,omitempty"`
}

// FlattenElements converts a tree of elements into a flat list.
// Each element gets a path string showing its location in the tree
// using abbreviated role names joined with " > ".
func FlattenElements(elements []Element) []FlatElement {
	var result []FlatElement
	for _, el := range elements {
		flattenRecursive(el, "", &result)
	}
	return result
}

func flattenRecursive(el Element, parentPath string, result *[]FlatElement) {
	currentPath := el.Role
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Role
	}

	*result = append(*result, FlatElement{
		ID:          el.ID,
		Role:        el.Role,
		Title:       el.Title,
		Value:       el.Value,
		Description: el.Description,
		Size:        el.Size,
		Focused:     el.Focused,
		States:      el.States,
		Actions:     el.Actions,
		Ref:         el.Ref,
		Path:        currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, result)
	}
}

// FlattenSubset flattens tree but keeps only the rows whose IDs appear in
// subset, so breadcrumbs always name the element's real ancestors even when
// a filter has dropped them from subset.
func FlattenSubset(tree, subset []Element) []FlatElement {
	keep := make(map[int]bool)
	Walk(subset, func(el *Element) bool {
		keep[el.ID] = true
		return true
	})
	result := []FlatElement{}
	for _, row := range FlattenElements(tree) {
		if keep[row.ID] {
			result = append(result, row)
		}
	}
	return result
}
