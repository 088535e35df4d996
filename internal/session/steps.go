package session

import (
	"fmt"
	"time"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/model"
)

// StepResult is the outcome of one write operation, alone or within a batch.
type StepResult struct {
	Step    int             `yaml:"step,omitempty"    json:"step,omitempty"`
	OK      bool            `yaml:"ok"                json:"ok"`
	Action  string          `yaml:"action"            json:"action"`
	Error   string          `yaml:"error,omitempty"   json:"error,omitempty"`
	Target  *model.Element  `yaml:"target,omitempty"  json:"target,omitempty"`
	Focused *model.Element  `yaml:"focused,omitempty" json:"focused,omitempty"`
	Elapsed string          `yaml:"elapsed,omitempty" json:"elapsed,omitempty"`
	Tree    []model.Element `yaml:"tree,omitempty"    json:"tree,omitempty"`
}

// Steps lists the step types Execute accepts.
var Steps = []string{"focus", "invoke", "set-value", "set-name", "set-description", "assert", "read", "sleep"}

// Execute runs one named step. The result carries the target as it was
// after the step, and the focused element for steps that can move focus.
func (s *Session) Execute(action string, params map[string]interface{}) (StepResult, error) {
	switch action {
	case "focus":
		return s.executeFocus(params)
	case "invoke", "action":
		return s.executeInvoke(params)
	case "set-value":
		return s.executeSetValue(params)
	case "set-name":
		return s.executeSetName(params)
	case "set-description":
		return s.executeSetDescription(params)
	case "assert":
		return s.executeAssert(params)
	case "read":
		return s.executeRead(params)
	case "sleep":
		return executeSleep(params)
	default:
		return StepResult{Action: action}, fmt.Errorf("unknown step type %q (supported: %v)", action, Steps)
	}
}

// after describes the target again once a step has run.
func (s *Session) after(r *Resolved) *model.Element {
	el := s.Bridge.Describe(r.Adapter)
	el.ID = r.Element.ID
	el.Ref = r.Element.Ref
	return &el
}

func (s *Session) executeFocus(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "focus"}
	r, err := s.Resolve(TargetParams(params))
	if err != nil {
		return res, err
	}
	if err := r.Adapter.TryGrabFocus(); err != nil {
		return res, err
	}
	res.Target = s.after(r)
	res.Focused, _ = s.Focused()
	return res, nil
}

func (s *Session) executeInvoke(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "invoke"}
	r, err := s.Resolve(TargetParams(params))
	if err != nil {
		return res, err
	}
	i, err := ActionIndex(r.Adapter, StringParam(params, "name", ""), IntParam(params, "index", -1))
	if err != nil {
		return res, err
	}
	res.Action = "invoke " + mustActionName(r.Adapter, i)
	if err := r.Adapter.TryInvoke(i); err != nil {
		return res, err
	}
	res.Target = s.after(r)
	res.Focused, _ = s.Focused()
	return res, nil
}

// ActionIndex picks an action by name, else by index, else the first one.
func ActionIndex(a *a11y.Adapter, name string, index int) (int, error) {
	switch {
	case name != "":
		i := a.ActionIndex(name)
		if i < 0 {
			return 0, fmt.Errorf("no action %q (available: %v)", name, a.ActionNames())
		}
		return i, nil
	case index >= 0:
		if index >= a.ActionCount() {
			return 0, fmt.Errorf("action index %d out of range (%d actions)", index, a.ActionCount())
		}
		return index, nil
	case a.ActionCount() == 0:
		return 0, fmt.Errorf("%s has no actions", a.Role())
	}
	return 0, nil
}

func mustActionName(a *a11y.Adapter, i int) string {
	name, _ := a.ActionName(i)
	return name
}

func (s *Session) executeSetValue(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "set-value"}
	raw, ok := params["value"]
	if !ok {
		return res, fmt.Errorf("value is required")
	}
	r, err := s.Resolve(TargetParams(params))
	if err != nil {
		return res, err
	}
	text := fmt.Sprintf("%v", raw)
	if r.Adapter.Has(a11y.CapValue) {
		err = r.Adapter.TrySetCurrentValue(a11y.Text(text))
	} else {
		err = r.Adapter.TrySetTextContents(text)
	}
	if err != nil {
		return res, err
	}
	res.Target = s.after(r)
	return res, nil
}

func (s *Session) executeSetName(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "set-name"}
	r, err := s.Resolve(TargetParams(params))
	if err != nil {
		return res, err
	}
	if !r.Adapter.SetName(StringParam(params, "name", "")) {
		return res, fmt.Errorf("cannot rename %s", r.Adapter.Role())
	}
	res.Target = s.after(r)
	return res, nil
}

func (s *Session) executeSetDescription(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "set-description"}
	r, err := s.Resolve(TargetParams(params))
	if err != nil {
		return res, err
	}
	if !r.Adapter.SetImageDescription(StringParam(params, "description", "")) {
		return res, fmt.Errorf("%s has no image: %w", r.Adapter.Role(), a11y.ErrUnsupported)
	}
	res.Target = s.after(r)
	return res, nil
}

func (s *Session) executeAssert(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "assert"}
	opts := AssertParams(params)
	ar := s.CheckAssert(opts)
	res.Target = ar.Element
	if !ar.Pass {
		return res, fmt.Errorf("assert failed: %s", ar.Error)
	}
	return res, nil
}

func (s *Session) executeRead(params map[string]interface{}) (StepResult, error) {
	res := StepResult{Action: "read"}
	tree, err := s.Snapshot(IntParam(params, "depth", 0))
	if err != nil {
		return res, err
	}
	res.Tree = tree.Elements
	return res, nil
}

func executeSleep(params map[string]interface{}) (StepResult, error) {
	ms := IntParam(params, "ms", 0)
	if ms <= 0 {
		return StepResult{Action: "sleep"}, fmt.Errorf("ms must be > 0")
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return StepResult{Action: "sleep", Elapsed: fmt.Sprintf("%dms", ms)}, nil
}
