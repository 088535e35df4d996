package a11y

import "github.com/mj1618/a11y-bridge/internal/toolkit"

// ImageSize reports the natural pixel size at call time.
func (a *Adapter) ImageSize() (width, height int, ok bool) {
	const op = "image size"
	w, err := a.widget(op)
	if err != nil {
		return 0, 0, false
	}
	if !a.caps.Has(CapImage) {
		a.fail(op, ErrUnsupported)
		return 0, 0, false
	}
	width, height = w.(toolkit.Pictured).NaturalSize()
	return width, height, true
}

// ImageDescription returns the description set through SetImageDescription,
// else the widget's own description.
func (a *Adapter) ImageDescription() (string, bool) {
	const op = "image description"
	w, err := a.widget(op)
	if err != nil {
		return "", false
	}
	if !a.caps.Has(CapImage) {
		a.fail(op, ErrUnsupported)
		return "", false
	}
	if a.imageDesc != nil {
		return *a.imageDesc, true
	}
	if d, ok := w.(toolkit.Described); ok && d.AccessibleDescription() != "" {
		return d.AccessibleDescription(), true
	}
	return "", false
}

// SetImageDescription overrides the description reported for the image.
func (a *Adapter) SetImageDescription(s string) bool {
	const op = "set image description"
	if _, err := a.widget(op); err != nil {
		return false
	}
	if !a.caps.Has(CapImage) {
		a.fail(op, ErrUnsupported)
		return false
	}
	a.imageDesc = &s
	return true
}
