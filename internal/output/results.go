package output

import "github.com/mj1618/a11y-bridge/internal/model"

// ReadResult is the top-level output of the `read` command.
type ReadResult struct {
	App      string          `yaml:"app,omitempty"   json:"app,omitempty"`
	Focus    int             `yaml:"focus,omitempty" json:"focus,omitempty"`
	TS       int64           `yaml:"ts"              json:"ts"`
	Elements []model.Element `yaml:"elements"        json:"elements"`
}

// ReadFlatResult is the top-level output when --flat is used.
type ReadFlatResult struct {
	App      string              `yaml:"app,omitempty"   json:"app,omitempty"`
	Focus    int                 `yaml:"focus,omitempty" json:"focus,omitempty"`
	TS       int64               `yaml:"ts"              json:"ts"`
	Elements []model.FlatElement `yaml:"elements"        json:"elements"`
}

// ValueResult is the value quadruple of one element.
type ValueResult struct {
	ID        int    `yaml:"id"                 json:"id"`
	Role      string `yaml:"role"               json:"role"`
	Current   string `yaml:"current"            json:"current"`
	Minimum   string `yaml:"minimum"            json:"minimum"`
	Maximum   string `yaml:"maximum"            json:"maximum"`
	Increment string `yaml:"increment"          json:"increment"`
	Text      bool   `yaml:"text,omitempty"     json:"text,omitempty"`
	Writable  bool   `yaml:"writable,omitempty" json:"writable,omitempty"`
}

// ImageResult is the image metadata of one element.
type ImageResult struct {
	ID          int    `yaml:"id"                    json:"id"`
	Role        string `yaml:"role"                  json:"role"`
	Width       int    `yaml:"width"                 json:"width"`
	Height      int    `yaml:"height"                json:"height"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ActionInfo describes one action of an element.
type ActionInfo struct {
	Index       int    `yaml:"index"                 json:"index"`
	Name        string `yaml:"name"                  json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ActionsResult lists an element's actions.
type ActionsResult struct {
	ID      int          `yaml:"id"      json:"id"`
	Role    string       `yaml:"role"    json:"role"`
	Actions []ActionInfo `yaml:"actions" json:"actions"`
}

// DescribeResult is one element with its position in the hierarchy and the
// capabilities it exposes.
type DescribeResult struct {
	model.Element `yaml:",inline"`
	Capabilities  []string `yaml:"caps,flow,omitempty" json:"caps,omitempty"`
	Parent        int      `yaml:"parent,omitempty"    json:"parent,omitempty"`
	Index         int      `yaml:"index"               json:"index"`
	ChildCount    int      `yaml:"child_count"         json:"child_count"`
}
