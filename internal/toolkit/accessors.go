package toolkit

// Labeled widgets display a text label.
type Labeled interface {
	Label() string
}

// Named widgets carry an explicit accessible name set by the application.
// An empty string means no override.
type Named interface {
	AccessibleName() string
}

// Described widgets carry an accessible description (tooltip-like text).
type Described interface {
	AccessibleDescription() string
}

// Modal containers may present as dialogs.
type Modal interface {
	IsModal() bool
}

// Windowed is implemented by top-level windows.
type Windowed interface {
	Maximize() error
	Minimize() error
	IsMaximized() bool
	IsMinimized() bool
}

// Pressable widgets can be clicked.
type Pressable interface {
	Press() error
}

// Toggleable widgets have a binary checked state.
type Toggleable interface {
	Toggle() error
	IsChecked() bool
}

// Activatable widgets have a default activation (e.g. Enter in an entry).
type Activatable interface {
	Activate() error
}

// Focusable widgets can take keyboard focus.
type Focusable interface {
	CanFocus() bool
	// Focus moves native focus to the widget. The toolkit reports the change
	// through its listeners before Focus returns.
	Focus() error
}

// Ranged widgets expose a numeric value inside a range.
type Ranged interface {
	Value() float64
	Min() float64
	Max() float64
	Step() float64
}

// RangeSetter is implemented by ranged widgets whose value can be written.
type RangeSetter interface {
	SetValue(v float64) error
}

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lon float64 `yaml:"lon" json:"lon"`
}

// Routed widgets display a geographic path.
type Routed interface {
	// Position is the current point along the route.
	Position() Point
	Start() Point
	End() Point
	// Resolution is the smallest coordinate change the route represents.
	Resolution() float64
}

// Pictured widgets render image content.
type Pictured interface {
	// NaturalSize returns the pixel dimensions of the backing content.
	NaturalSize() (width, height int)
}

// OverlayHost widgets present exactly one content widget, however many
// native layers wrap it.
type OverlayHost interface {
	Content() (Handle, bool)
}

// ItemContainer widgets declare a flat list of logical items independent of
// the native nesting used to render them.
type ItemContainer interface {
	Items() []Handle
}

// TextHolder widgets hold text content.
type TextHolder interface {
	Text() string
}

// Editable is implemented by text widgets whose content can be written.
type Editable interface {
	IsEditable() bool
	SetText(s string) error
}

// FocusReporter is implemented by toolkits that can report which widget
// holds native focus. The bridge uses it to seed its focus slot on attach.
type FocusReporter interface {
	Focused() (Handle, bool)
}
