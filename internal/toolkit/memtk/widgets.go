package memtk

import (
	"errors"
	"fmt"
	"math"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Widget kinds provided by memtk.
const (
	KindApplication = toolkit.KindApplication
	KindWindow      = toolkit.KindWindow
	KindBox         = toolkit.KindBox
	KindOverlay     = toolkit.KindOverlay
	KindLayer       = toolkit.KindLayer
	KindButton      = toolkit.KindButton
	KindCheck       = toolkit.KindCheck
	KindLabel       = toolkit.KindLabel
	KindEntry       = toolkit.KindEntry
	KindSlider      = toolkit.KindSlider
	KindSpin        = toolkit.KindSpin
	KindImage       = toolkit.KindImage
	KindMap         = toolkit.KindMap
	KindRoute       = toolkit.KindRoute
	KindPreferences = toolkit.KindPreferences
	KindSection     = toolkit.KindSection
	KindPreference  = toolkit.KindPreference
	KindSeparator   = toolkit.KindSeparator
)

// ErrInsensitive is returned when an operation targets a disabled widget.
var ErrInsensitive = errors.New("widget is insensitive")

// base carries the fields every widget shares.
type base struct {
	h           toolkit.Handle
	kind        toolkit.Kind
	tk          *Toolkit
	name        string
	description string
}

func (b *base) Handle() toolkit.Handle { return b.h }
func (b *base) Kind() toolkit.Kind { return b.kind }
func (b *base) AccessibleName() string { return b.name }
func (b *base) AccessibleDescription() string { return b.description }

// focus asks the owning toolkit to move native focus here.
func (b *base) focus() error {
	if b.tk == nil {
		return ErrNotFocusable
	}
	return b.tk.Focus(b.h)
}

// Application is the root object of the widget tree.
type Application struct {
	base
	Title string
}

func (a *Application) Label() string { return a.Title }

// Window is a top-level window.
type Window struct {
	base
	Title     string
	maximized bool
	minimized bool
}

func (w *Window) Label() string { return w.Title }
func (w *Window) IsMaximized() bool { return w.maximized }
func (w *Window) IsMinimized() bool { return w.minimized }
func (w *Window) CanFocus() bool { return !w.minimized }
func (w *Window) Focus() error { return w.focus() }

// Maximize is a no-op on an already maximized window.
func (w *Window) Maximize() error {
	w.maximized = true
	w.minimized = false
	return nil
}

// Minimize is a no-op on an already minimized window.
func (w *Window) Minimize() error {
	w.minimized = true
	return nil
}

// Box is a generic container. A modal box is presented as a dialog.
type Box struct {
	base
	Title string
	Modal bool
}

func (b *Box) Label() string { return b.Title }
func (b *Box) IsModal() bool { return b.Modal }

// Overlay stacks layers over a content widget.
type Overlay struct {
	base
	contentID string
}

// Content returns the explicitly configured content widget, or else the
// first descendant that is not purely structural.
func (o *Overlay) Content() (toolkit.Handle, bool) {
	if o.contentID != "" {
		return o.tk.Lookup(o.contentID)
	}
	var found toolkit.Handle
	o.tk.descendants(o.h, func(h toolkit.Handle) bool {
		if w, _ := o.tk.Widget(h); !isPlain(w) {
			found = h
			return false
		}
		return true
	})
	return found, found != 0
}

// Plain covers purely structural kinds (layer, section, separator).
type Plain struct {
	base
	Title string
}

func (p *Plain) Label() string { return p.Title }

func isPlain(w toolkit.Widget) bool {
	_, ok := w.(*Plain)
	return ok
}

// Button is a push button.
type Button struct {
	base
	Text        string
	Insensitive bool
	Presses     int
}

func (b *Button) Label() string { return b.Text }
func (b *Button) CanFocus() bool { return !b.Insensitive }
func (b *Button) Focus() error { return b.focus() }

func (b *Button) Press() error {
	if b.Insensitive {
		return ErrInsensitive
	}
	b.Presses++
	return nil
}

// Check is a check box.
type Check struct {
	base
	Text    string
	Checked bool
}

func (c *Check) Label() string { return c.Text }
func (c *Check) IsChecked() bool { return c.Checked }
func (c *Check) CanFocus() bool { return true }
func (c *Check) Focus() error { return c.focus() }

func (c *Check) Toggle() error {
	c.Checked = !c.Checked
	return nil
}

// Label displays static text.
type Label struct {
	base
	Content string
}

func (l *Label) Label() string { return l.Content }
func (l *Label) Text() string { return l.Content }

// Entry is a single-line text field.
type Entry struct {
	base
	Placeholder string
	Content     string
	ReadOnly    bool
	Activations int
}

func (e *Entry) Label() string { return e.Placeholder }
func (e *Entry) Text() string { return e.Content }
func (e *Entry) CanFocus() bool { return true }
func (e *Entry) Focus() error { return e.focus() }
func (e *Entry) IsEditable() bool { return !e.ReadOnly }

func (e *Entry) Activate() error {
	e.Activations++
	return nil
}

func (e *Entry) SetText(s string) error {
	if e.ReadOnly {
		return ErrInsensitive
	}
	e.Content = s
	return nil
}

// Scale backs both sliders and spin buttons.
type Scale struct {
	base
	Text  string
	value float64
	min   float64
	max   float64
	step  float64
}

func (s *Scale) Label() string { return s.Text }
func (s *Scale) Value() float64 { return s.value }
func (s *Scale) Min() float64 { return s.min }
func (s *Scale) Max() float64 { return s.max }
func (s *Scale) Step() float64 { return s.step }
func (s *Scale) CanFocus() bool { return true }
func (s *Scale) Focus() error { return s.focus() }

// SetValue clamps v to [min, max].
func (s *Scale) SetValue(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("invalid value %v", v)
	}
	s.value = math.Max(s.min, math.Min(s.max, v))
	return nil
}

// Picture backs images and maps.
type Picture struct {
	base
	width     int
	height    int
	focusable bool
}

func (p *Picture) NaturalSize() (int, int) { return p.width, p.height }
func (p *Picture) CanFocus() bool { return p.focusable }
func (p *Picture) Focus() error { return p.focus() }

// Resize changes the natural size, e.g. after loading a new tile set.
func (p *Picture) Resize(width, height int) {
	p.width, p.height = width, height
}

// Route displays a geographic path. It has no keyboard interaction.
type Route struct {
	base
	points     []toolkit.Point
	position   int
	resolution float64
}

func (r *Route) Position() toolkit.Point {
	if len(r.points) == 0 {
		return toolkit.Point{}
	}
	return r.points[r.position]
}

func (r *Route) Start() toolkit.Point {
	if len(r.points) == 0 {
		return toolkit.Point{}
	}
	return r.points[0]
}

func (r *Route) End() toolkit.Point {
	if len(r.points) == 0 {
		return toolkit.Point{}
	}
	return r.points[len(r.points)-1]
}

func (r *Route) Resolution() float64 { return r.resolution }

// Advance moves the current position along the route, stopping at the end.
func (r *Route) Advance(steps int) {
	r.position += steps
	if r.position >= len(r.points) {
		r.position = len(r.points) - 1
	}
	if r.position < 0 {
		r.position = 0
	}
}

// Preferences is a structured settings page. Its items are the preference
// widgets below it, however deeply sections nest them.
type Preferences struct {
	base
	Title string
}

func (p *Preferences) Label() string { return p.Title }

func (p *Preferences) Items() []toolkit.Handle {
	var items []toolkit.Handle
	p.tk.descendants(p.h, func(h toolkit.Handle) bool {
		if k, _ := p.tk.Kind(h); k == KindPreference {
			items = append(items, h)
		}
		return true
	})
	return items
}

// Preference is one configuration item.
type Preference struct {
	base
	Title   string
	Setting string
}

func (p *Preference) Label() string { return p.Title }
func (p *Preference) Text() string { return p.Setting }
