// Package session binds a toolkit backend to a bridge and resolves the
// elements that commands and MCP tools address.
package session

import (
	"log/slog"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/logging"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
)

// Options configures Open.
type Options struct {
	// Backend is the toolkit backend name. Defaults to memtk.
	Backend string
	// Source is passed to the backend (a fixture path for memtk).
	Source    string
	Strict    bool
	Logger    *slog.Logger
	Observers []a11y.Observer
}

// Session is one bridge over one toolkit. It is not safe for concurrent
// use; the MCP server serialises access.
type Session struct {
	Bridge *a11y.Bridge
	App    string
	logger *slog.Logger
}

// Open opens the backend and attaches a bridge to it.
func Open(opts Options) (*Session, error) {
	backend := opts.Backend
	if backend == "" {
		backend = memtk.BackendName
	}
	tk, err := toolkit.Open(backend, opts.Source)
	if err != nil {
		return nil, err
	}
	return New(tk, opts), nil
}

// New attaches a bridge to an already open toolkit.
func New(tk toolkit.Toolkit, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	bopts := []a11y.Option{a11y.WithLogger(logger), a11y.WithStrict(opts.Strict)}
	for _, o := range opts.Observers {
		bopts = append(bopts, a11y.WithObserver(o))
	}
	s := &Session{Bridge: a11y.New(tk, bopts...), logger: logger}
	if root, err := s.Bridge.Root(); err == nil {
		s.App, _ = root.Name()
	}
	return s
}

// Snapshot walks the whole accessible tree with refs. depth 0 is unlimited.
func (s *Session) Snapshot(depth int) (*a11y.Tree, error) {
	return s.Bridge.Snapshot(nil, a11y.SnapshotOptions{Depth: depth, Refs: true})
}

// Windows lists the top-level accessible children of the application. IDs
// match those of a full Snapshot.
func (s *Session) Windows() ([]model.Window, error) {
	tree, err := s.Snapshot(0)
	if err != nil {
		return nil, err
	}
	windows := []model.Window{}
	for _, el := range tree.Elements[0].Children {
		a, _ := tree.Adapter(el.ID)
		st := a.States()
		windows = append(windows, model.Window{
			ID:        el.ID,
			Role:      el.Role,
			Title:     el.Title,
			Focused:   containsFocus(s.Bridge, a),
			Maximized: st.Has(a11y.StateMaximized),
			Minimized: st.Has(a11y.StateMinimized),
			Actions:   el.Actions,
		})
	}
	return windows, nil
}

// Focused describes the adapter holding focus, if any.
func (s *Session) Focused() (*model.Element, bool) {
	a, ok := s.Bridge.CurrentFocus()
	if !ok {
		return nil, false
	}
	el := s.Bridge.Describe(a)
	return &el, true
}

func containsFocus(b *a11y.Bridge, a *a11y.Adapter) bool {
	f, ok := b.CurrentFocus()
	for ok {
		if f == a {
			return true
		}
		f, ok = b.Parent(f)
	}
	return false
}
