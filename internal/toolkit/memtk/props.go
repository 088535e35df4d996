package memtk

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Image formats accepted as picture sources.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mitchellh/mapstructure"
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// CommonProps are accepted by every kind.
type CommonProps struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

type titledProps struct {
	CommonProps `mapstructure:",squash"`
	Title       string `mapstructure:"title"`
}

type boxProps struct {
	CommonProps `mapstructure:",squash"`
	Title       string `mapstructure:"title"`
	Modal       bool   `mapstructure:"modal"`
}

type overlayProps struct {
	CommonProps `mapstructure:",squash"`
	Content     string `mapstructure:"content"`
}

type buttonProps struct {
	CommonProps `mapstructure:",squash"`
	Label       string `mapstructure:"label"`
	Insensitive bool   `mapstructure:"insensitive"`
	Checked     bool   `mapstructure:"checked"`
}

type textProps struct {
	CommonProps `mapstructure:",squash"`
	Text        string `mapstructure:"text"`
	Placeholder string `mapstructure:"placeholder"`
	ReadOnly    bool   `mapstructure:"read_only"`
}

type scaleProps struct {
	CommonProps `mapstructure:",squash"`
	Label       string  `mapstructure:"label"`
	Value       float64 `mapstructure:"value"`
	Min         float64 `mapstructure:"min"`
	Max         float64 `mapstructure:"max"`
	Step        float64 `mapstructure:"step"`
}

type pictureProps struct {
	CommonProps `mapstructure:",squash"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	Source      string `mapstructure:"source"`
}

type routeProps struct {
	CommonProps `mapstructure:",squash"`
	Points      []toolkit.Point `mapstructure:"points"`
	Position    int             `mapstructure:"position"`
	Resolution  float64         `mapstructure:"resolution"`
}

type preferenceProps struct {
	CommonProps `mapstructure:",squash"`
	Title       string `mapstructure:"title"`
	Value       string `mapstructure:"value"`
}

// defaultRouteResolution is one micro-degree.
const defaultRouteResolution = 1e-6

type constructor func(b base, props map[string]any, baseDir string) (toolkit.Widget, error)

var constructors = map[toolkit.Kind]constructor{
	KindWindow: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p titledProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Window{base: b, Title: p.Title}, nil
	},
	KindBox: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p boxProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Box{base: b, Title: p.Title, Modal: p.Modal}, nil
	},
	KindOverlay: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p overlayProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Overlay{base: b, contentID: p.Content}, nil
	},
	KindLayer:     plainConstructor,
	KindSection:   plainConstructor,
	KindSeparator: plainConstructor,
	KindButton: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p buttonProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Button{base: b, Text: p.Label, Insensitive: p.Insensitive}, nil
	},
	KindCheck: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p buttonProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Check{base: b, Text: p.Label, Checked: p.Checked}, nil
	},
	KindLabel: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p textProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Label{base: b, Content: p.Text}, nil
	},
	KindEntry: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p textProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Entry{base: b, Placeholder: p.Placeholder, Content: p.Text, ReadOnly: p.ReadOnly}, nil
	},
	KindSlider: scaleConstructor,
	KindSpin:   scaleConstructor,
	KindImage: func(b base, props map[string]any, baseDir string) (toolkit.Widget, error) {
		return pictureConstructor(b, props, baseDir, false)
	},
	KindMap: func(b base, props map[string]any, baseDir string) (toolkit.Widget, error) {
		return pictureConstructor(b, props, baseDir, true)
	},
	KindRoute: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p routeProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		if p.Position < 0 || (len(p.Points) > 0 && p.Position >= len(p.Points)) {
			return nil, fmt.Errorf("route position %d out of range for %d points", p.Position, len(p.Points))
		}
		if p.Resolution <= 0 {
			p.Resolution = defaultRouteResolution
		}
		b.name, b.description = p.Name, p.Description
		return &Route{base: b, points: p.Points, position: p.Position, resolution: p.Resolution}, nil
	},
	KindPreferences: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p titledProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Preferences{base: b, Title: p.Title}, nil
	},
	KindPreference: func(b base, props map[string]any, _ string) (toolkit.Widget, error) {
		var p preferenceProps
		if err := decodeProps(props, &p); err != nil {
			return nil, err
		}
		b.name, b.description = p.Name, p.Description
		return &Preference{base: b, Title: p.Title, Setting: p.Value}, nil
	},
}

func plainConstructor(b base, props map[string]any, _ string) (toolkit.Widget, error) {
	var p titledProps
	if err := decodeProps(props, &p); err != nil {
		return nil, err
	}
	b.name, b.description = p.Name, p.Description
	return &Plain{base: b, Title: p.Title}, nil
}

func scaleConstructor(b base, props map[string]any, _ string) (toolkit.Widget, error) {
	p := scaleProps{Max: 100, Step: 1}
	if err := decodeProps(props, &p); err != nil {
		return nil, err
	}
	if p.Min > p.Max {
		return nil, fmt.Errorf("min %v greater than max %v", p.Min, p.Max)
	}
	b.name, b.description = p.Name, p.Description
	s := &Scale{base: b, Text: p.Label, min: p.Min, max: p.Max, step: p.Step}
	if err := s.SetValue(p.Value); err != nil {
		return nil, err
	}
	return s, nil
}

func pictureConstructor(b base, props map[string]any, baseDir string, focusable bool) (toolkit.Widget, error) {
	var p pictureProps
	if err := decodeProps(props, &p); err != nil {
		return nil, err
	}
	if p.Source != "" && p.Width == 0 && p.Height == 0 {
		w, h, err := imageSize(resolvePath(baseDir, p.Source))
		if err != nil {
			return nil, err
		}
		p.Width, p.Height = w, h
	}
	b.name, b.description = p.Name, p.Description
	return &Picture{base: b, width: p.Width, height: p.Height, focusable: focusable}, nil
}

// decodeProps decodes loosely typed fixture properties into out.
// Unknown keys are rejected so fixture typos surface early.
func decodeProps(props map[string]any, out any) error {
	if len(props) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(props); err != nil {
		return fmt.Errorf("decode props: %w", err)
	}
	return nil
}

// imageSize reads only the image header to get its pixel dimensions.
func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open image source: %w", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image source %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}

func resolvePath(baseDir, p string) string {
	if baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
