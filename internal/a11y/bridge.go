// Package a11y adapts a native widget tree to an assistive-technology object
// model: one adapter per live exposed widget, a logical hierarchy derived
// from the native one, capability operations dispatched to widget behavior,
// and a single global focus slot.
//
// A Bridge is not safe for concurrent use. Every call, including the
// toolkit's notifications, must happen on the toolkit's event loop.
package a11y

import (
	"log/slog"

	"github.com/mj1618/a11y-bridge/internal/logging"
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Bridge is the root accessor and the sink for toolkit notifications.
type Bridge struct {
	tk        toolkit.Toolkit
	reg       *Registry
	ids       *IdentityMap
	focus     *FocusTracker
	logger    *slog.Logger
	strict    bool
	observers []Observer

	// epoch advances on every structural change and invalidates cached
	// parent keys.
	epoch uint64
}

type Option func(*Bridge)

// WithRegistry replaces the stock kind registry.
func WithRegistry(r *Registry) Option {
	return func(b *Bridge) { b.reg = r }
}

// WithLogger sets the logger used for adapter and focus events.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithStrict makes focus tracker desynchronization panic.
func WithStrict(strict bool) Option {
	return func(b *Bridge) { b.strict = strict }
}

// WithObserver adds an observer. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(b *Bridge) {
		if o != nil {
			b.observers = append(b.observers, o)
		}
	}
}

// New attaches a bridge to tk and subscribes it to tk's notifications. When
// tk can report its focused widget, the focus slot starts there.
func New(tk toolkit.Toolkit, opts ...Option) *Bridge {
	b := &Bridge{
		tk:     tk,
		logger: logging.NewNop(),
		epoch:  1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.reg == nil {
		b.reg = DefaultRegistry()
	}
	b.ids = newIdentityMap(b)
	b.focus = &FocusTracker{b: b}
	tk.Subscribe(b)
	if fr, ok := tk.(toolkit.FocusReporter); ok {
		if h, ok := fr.Focused(); ok {
			b.WidgetFocusGained(h)
		}
	}
	return b
}

// Root returns the adapter for the application object.
func (b *Bridge) Root() (*Adapter, error) {
	return b.ids.AdapterFor(b.tk.Root())
}

// AdapterFor returns the adapter for a live widget, creating it on first use.
func (b *Bridge) AdapterFor(h toolkit.Handle) (*Adapter, error) {
	return b.ids.AdapterFor(h)
}

// Release drops the adapter for h and empties the focus slot if it named h.
func (b *Bridge) Release(h toolkit.Handle) bool {
	return b.ids.Release(h)
}

// CurrentFocus returns the focused adapter, if any.
func (b *Bridge) CurrentFocus() (*Adapter, bool) {
	return b.focus.Current()
}

func (b *Bridge) Registry() *Registry { return b.reg }
func (b *Bridge) Toolkit() toolkit.Toolkit { return b.tk }
func (b *Bridge) Identity() *IdentityMap { return b.ids }
func (b *Bridge) Focus() *FocusTracker { return b.focus }

// Epoch is the current structure epoch.
func (b *Bridge) Epoch() uint64 { return b.epoch }

func (b *Bridge) WidgetCreated(h toolkit.Handle, kind toolkit.Kind) {
	b.epoch++
	b.logger.Debug("widget created", "handle", h, "kind", kind, "exposed", b.reg.Known(kind))
}

// WidgetDestroyed drops the identity entry, which clears focus first so the
// slot never names a missing adapter.
func (b *Bridge) WidgetDestroyed(h toolkit.Handle) {
	b.ids.Release(h)
	b.epoch++
}

func (b *Bridge) WidgetReparented(h toolkit.Handle, newParent toolkit.Handle) {
	b.epoch++
	b.logger.Debug("widget reparented", "handle", h, "parent", newParent)
}

// WidgetFocusGained moves the slot to h. Focus landing on a widget that is
// not exposed, or that the hierarchy hides, leaves the slot empty.
func (b *Bridge) WidgetFocusGained(h toolkit.Handle) {
	a, err := b.ids.AdapterFor(h)
	if err != nil {
		b.logger.Debug("focus on unexposed widget", "handle", h, "error", err)
		b.focus.Set(nil)
		return
	}
	if !b.Reachable(a) {
		b.logger.Debug("focus on hidden widget", "handle", h)
		b.focus.Set(nil)
		return
	}
	b.focus.Set(a)
}

// WidgetFocusLost empties the slot if it still names h.
func (b *Bridge) WidgetFocusLost(h toolkit.Handle) {
	b.focus.Lost(h)
}
