package a11y

import (
	"errors"
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

var (
	// ErrUnsupportedWidgetKind is returned for widgets whose kind has no
	// descriptor. Such widgets are never exposed.
	ErrUnsupportedWidgetKind = errors.New("unsupported widget kind")

	// ErrUnsupported is returned when an adapter lacks the capability an
	// operation needs.
	ErrUnsupported = errors.New("operation not supported")

	// ErrIndexOutOfRange is returned for a bad action or child index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStaleAdapter is returned when the backing widget is gone.
	ErrStaleAdapter = errors.New("stale adapter")

	// ErrFocusDesync reports that the focus slot names a handle the identity
	// map no longer holds.
	ErrFocusDesync = errors.New("focus tracker out of sync with identity map")
)

// Error describes a failed adapter operation.
type Error struct {
	Op     string
	Handle toolkit.Handle
	Kind   toolkit.Kind
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s handle=%d: %v", e.Op, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s handle=%d kind=%s: %v", e.Op, e.Handle, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, h toolkit.Handle, kind toolkit.Kind, err error) error {
	return &Error{Op: op, Handle: h, Kind: kind, Err: err}
}
