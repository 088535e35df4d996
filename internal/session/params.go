package session

import "fmt"

// StringParam reads a string from a step or tool argument map. Numbers
// that YAML or JSON decoded as such are formatted back to text.
func StringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func IntParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		case uint64:
			return int(n)
		}
	}
	return defaultVal
}

func BoolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// TargetParams reads the element addressing keys: id, ref, text, roles,
// exact and scope-id.
func TargetParams(params map[string]interface{}) Target {
	return Target{
		ID:      IntParam(params, "id", 0),
		Ref:     StringParam(params, "ref", ""),
		Text:    StringParam(params, "text", ""),
		Roles:   StringParam(params, "roles", ""),
		Exact:   BoolParam(params, "exact", false),
		ScopeID: IntParam(params, "scope-id", 0),
	}
}
