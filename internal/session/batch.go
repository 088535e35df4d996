package session

import "fmt"

// Step is one entry of a batch: a single step name mapped to its arguments.
type Step map[string]map[string]interface{}

// DoResult is the outcome of a batch.
type DoResult struct {
	OK        bool         `yaml:"ok"              json:"ok"`
	Action    string       `yaml:"action"          json:"action"`
	Steps     int          `yaml:"steps"           json:"steps"`
	Completed int          `yaml:"completed"       json:"completed"`
	Error     string       `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []StepResult `yaml:"results"         json:"results"`
}

// Run executes steps in order against this session. With stopOnError the
// batch ends at the first failing step.
func (s *Session) Run(steps []Step, stopOnError bool) DoResult {
	res := DoResult{Action: "do", Steps: len(steps), Results: make([]StepResult, 0, len(steps))}
	failed := false
	for i, step := range steps {
		n := i + 1
		if len(step) != 1 {
			msg := fmt.Sprintf("step %d: expected exactly one action key, got %d", n, len(step))
			res.Results = append(res.Results, StepResult{Step: n, Error: msg})
			failed = true
			if stopOnError {
				res.Error = msg
				break
			}
			continue
		}
		for action, params := range step {
			r, err := s.Execute(action, params)
			r.Step = n
			if err != nil {
				r.Error = err.Error()
				failed = true
				if stopOnError {
					res.Error = fmt.Sprintf("step %d: %s", n, err)
				}
			} else {
				r.OK = true
				res.Completed++
			}
			res.Results = append(res.Results, r)
		}
		if failed && stopOnError {
			break
		}
	}
	res.OK = !failed
	return res
}

// StepsFromJSON converts a decoded JSON array of step objects.
func StepsFromJSON(raw interface{}) ([]Step, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("steps must be an array")
	}
	steps := make([]Step, 0, len(arr))
	for i, item := range arr {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("step %d must be an object", i+1)
		}
		step := Step{}
		for action, params := range obj {
			switch p := params.(type) {
			case map[string]interface{}:
				step[action] = p
			case nil:
				step[action] = map[string]interface{}{}
			default:
				return nil, fmt.Errorf("step %d: arguments of %q must be an object", i+1, action)
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}
