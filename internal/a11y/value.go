package a11y

import (
	"fmt"
	"strconv"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Value is a numeric or textual accessible value.
type Value struct {
	Number float64
	Text   string
	IsText bool
}

// Number wraps a numeric value.
func Number(f float64) Value { return Value{Number: f} }

// Text wraps a textual value.
func Text(s string) Value { return Value{Text: s, IsText: true} }

func (v Value) String() string {
	if v.IsText {
		return v.Text
	}
	return strconv.FormatFloat(v.Number, 'g', -1, 64)
}

// Float returns the numeric form of v. Text values are parsed.
func (v Value) Float() (float64, bool) {
	if !v.IsText {
		return v.Number, true
	}
	f, err := strconv.ParseFloat(v.Text, 64)
	return f, err == nil
}

// ValueRange is the value quadruple read in one pass.
type ValueRange struct {
	Current   Value
	Minimum   Value
	Maximum   Value
	Increment Value
}

// FormatPoint renders a coordinate as "lat, lon" with six decimals.
func FormatPoint(p toolkit.Point) string {
	return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lon)
}

func (a *Adapter) valueRange(op string) (ValueRange, error) {
	w, err := a.widget(op)
	if err != nil {
		return ValueRange{}, err
	}
	if !a.caps.Has(CapValue) {
		return ValueRange{}, a.fail(op, ErrUnsupported)
	}
	vr, ok := a.desc.Value.Read(w)
	if !ok {
		return ValueRange{}, a.fail(op, ErrUnsupported)
	}
	return vr, nil
}

// Range returns all four values together.
func (a *Adapter) Range() (ValueRange, bool) {
	vr, err := a.valueRange("value")
	return vr, err == nil
}

// CurrentValue reads the widget's value.
func (a *Adapter) CurrentValue() (Value, bool) {
	vr, err := a.valueRange("current value")
	return vr.Current, err == nil
}

// MinimumValue is the lower bound of the value range.
func (a *Adapter) MinimumValue() (Value, bool) {
	vr, err := a.valueRange("minimum value")
	return vr.Minimum, err == nil
}

// MaximumValue is the upper bound of the value range.
func (a *Adapter) MaximumValue() (Value, bool) {
	vr, err := a.valueRange("maximum value")
	return vr.Maximum, err == nil
}

// MinimumIncrement is the smallest step the widget moves by.
func (a *Adapter) MinimumIncrement() (Value, bool) {
	vr, err := a.valueRange("minimum increment")
	return vr.Increment, err == nil
}

// WritableValue reports whether SetCurrentValue can succeed.
func (a *Adapter) WritableValue() bool {
	return a.caps.Has(CapValue) && a.desc.Value.Write != nil && !a.Defunct()
}

// SetCurrentValue writes v. Numeric widgets clamp it to their range.
func (a *Adapter) SetCurrentValue(v Value) bool {
	return a.TrySetCurrentValue(v) == nil
}

// TrySetCurrentValue is SetCurrentValue with the failure reason.
func (a *Adapter) TrySetCurrentValue(v Value) error {
	const op = "set current value"
	w, err := a.widget(op)
	if err != nil {
		return err
	}
	if !a.caps.Has(CapValue) || a.desc.Value.Write == nil {
		return a.fail(op, ErrUnsupported)
	}
	if err := a.desc.Value.Write(w, v); err != nil {
		return a.fail(op, err)
	}
	return nil
}
