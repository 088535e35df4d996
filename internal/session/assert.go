package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/model"
)

// AssertResult is the outcome of one assertion check.
type AssertResult struct {
	OK      bool           `yaml:"ok"                json:"ok"`
	Action  string         `yaml:"action"            json:"action"`
	Pass    bool           `yaml:"pass"              json:"pass"`
	Error   string         `yaml:"error,omitempty"   json:"error,omitempty"`
	Element *model.Element `yaml:"element,omitempty" json:"element,omitempty"`
}

// AssertOptions selects an element and the properties it must have. Nil
// pointers are not checked.
type AssertOptions struct {
	Target        Target
	Role          string
	Name          *string
	Value         *string
	ValueContains string
	Checked       *bool
	Focused       *bool
	Action        string
	Gone          bool
}

// AssertParams reads assertion options from a step map.
func AssertParams(params map[string]interface{}) AssertOptions {
	opts := AssertOptions{
		Target:        TargetParams(params),
		Role:          StringParam(params, "role", ""),
		ValueContains: StringParam(params, "value-contains", ""),
		Action:        StringParam(params, "has-action", ""),
		Gone:          BoolParam(params, "gone", false),
	}
	if _, ok := params["name"]; ok {
		v := StringParam(params, "name", "")
		opts.Name = &v
	}
	if _, ok := params["value"]; ok {
		v := StringParam(params, "value", "")
		opts.Value = &v
	}
	if _, ok := params["checked"]; ok {
		v := BoolParam(params, "checked", false)
		opts.Checked = &v
	}
	if _, ok := params["focused"]; ok {
		v := BoolParam(params, "focused", false)
		opts.Focused = &v
	}
	return opts
}

// CheckAssert performs a single check.
func (s *Session) CheckAssert(opts AssertOptions) AssertResult {
	r, err := s.Resolve(opts.Target)

	if opts.Gone {
		if err != nil {
			return AssertResult{OK: true, Action: "assert", Pass: true}
		}
		return AssertResult{
			Action:  "assert",
			Error:   fmt.Sprintf("expected element to be gone but found: %s", describeElement(&r.Element)),
			Element: &r.Element,
		}
	}
	if err != nil {
		return AssertResult{Action: "assert", Error: err.Error()}
	}
	if err := checkProperties(&r.Element, opts); err != nil {
		return AssertResult{Action: "assert", Error: err.Error(), Element: &r.Element}
	}
	return AssertResult{OK: true, Action: "assert", Pass: true, Element: &r.Element}
}

func checkProperties(el *model.Element, opts AssertOptions) error {
	if opts.Role != "" {
		want := opts.Role
		if code, ok := model.RoleMap[opts.Role]; ok {
			want = code
		}
		if el.Role != want {
			return fmt.Errorf("expected role %q but got %q", want, el.Role)
		}
	}
	if opts.Name != nil && el.Title != *opts.Name {
		return fmt.Errorf("expected name %q but got %q", *opts.Name, el.Title)
	}
	if opts.Value != nil && el.Value != *opts.Value {
		return fmt.Errorf("expected value %q but got %q", *opts.Value, el.Value)
	}
	if opts.ValueContains != "" && !strings.Contains(strings.ToLower(el.Value), strings.ToLower(opts.ValueContains)) {
		return fmt.Errorf("expected value to contain %q but got %q", opts.ValueContains, el.Value)
	}
	if opts.Checked != nil {
		checked := slices.Contains(el.States, "checked")
		if checked != *opts.Checked {
			return fmt.Errorf("expected checked=%v but got %v", *opts.Checked, checked)
		}
	}
	if opts.Focused != nil && el.Focused != *opts.Focused {
		return fmt.Errorf("expected focused=%v but got %v", *opts.Focused, el.Focused)
	}
	if opts.Action != "" && !el.HasAction(opts.Action) {
		return fmt.Errorf("expected action %q but element has %v", opts.Action, el.Actions)
	}
	return nil
}

func describeElement(el *model.Element) string {
	parts := []string{fmt.Sprintf("id=%d", el.ID), fmt.Sprintf("role=%s", el.Role)}
	if el.Title != "" {
		parts = append(parts, fmt.Sprintf("title=%q", el.Title))
	}
	if el.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", el.Value))
	}
	return strings.Join(parts, " ")
}
