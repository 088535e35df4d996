package memtk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"gopkg.in/yaml.v3"
)

// BackendName is the name memtk registers under in the toolkit backend registry.
const BackendName = "memtk"

func init() {
	toolkit.Register(BackendName, func(source string) (toolkit.Toolkit, error) {
		if source == "" {
			return New("a11y-bridge"), nil
		}
		return LoadFile(source)
	})
}

// Fixture is the YAML description of an application's widget tree.
//
//	app: Maps
//	focus: search
//	widgets:
//	  - kind: window
//	    props: {title: Maps}
//	    children:
//	      - kind: entry
//	        id: search
//	        props: {placeholder: Search}
type Fixture struct {
	App     string       `yaml:"app"`
	Focus   string       `yaml:"focus,omitempty"`
	Widgets []WidgetSpec `yaml:"widgets"`
}

// WidgetSpec describes one widget and its native children.
type WidgetSpec struct {
	ID       string         `yaml:"id,omitempty"`
	Kind     toolkit.Kind   `yaml:"kind"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []WidgetSpec   `yaml:"children,omitempty"`
}

// LoadFile loads a fixture file. Relative image sources resolve against the
// fixture's directory.
func LoadFile(path string) (*Toolkit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return LoadFixture(f, filepath.Dir(path))
}

// LoadFixture decodes a YAML fixture and builds the widget tree it describes.
func LoadFixture(r io.Reader, baseDir string) (*Toolkit, error) {
	var fx Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return Build(fx, baseDir)
}

// Build creates a toolkit from an already decoded fixture.
func Build(fx Fixture, baseDir string) (*Toolkit, error) {
	tk := New(fx.App)
	tk.baseDir = baseDir
	for i, spec := range fx.Widgets {
		if err := tk.build(tk.root, spec, fmt.Sprintf("widgets[%d]", i)); err != nil {
			return nil, err
		}
	}
	if fx.Focus != "" {
		h, ok := tk.Lookup(fx.Focus)
		if !ok {
			return nil, fmt.Errorf("fixture focus: no widget with id %q", fx.Focus)
		}
		if err := tk.Focus(h); err != nil {
			return nil, fmt.Errorf("fixture focus: %w", err)
		}
	}
	return tk, nil
}

func (tk *Toolkit) build(parent toolkit.Handle, spec WidgetSpec, path string) error {
	if spec.Kind == "" {
		return fmt.Errorf("%s: kind is required", path)
	}
	h, err := tk.create(parent, spec.Kind, spec.ID, spec.Props)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for i, child := range spec.Children {
		if err := tk.build(h, child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}
