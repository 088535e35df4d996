package model

// Window is a top-level window as listed by the list command.
type Window struct {
	ID        int      `yaml:"id"                     json:"id"`
	Role      string   `yaml:"role"                   json:"role"`
	Title     string   `yaml:"title"                  json:"title"`
	Focused   bool     `yaml:"focused,omitempty"      json:"focused,omitempty"`
	Maximized bool     `yaml:"maximized,omitempty"    json:"maximized,omitempty"`
	Minimized bool     `yaml:"minimized,omitempty"    json:"minimized,omitempty"`
	Actions   []string `yaml:"actions,flow,omitempty" json:"actions,omitempty"`
}
