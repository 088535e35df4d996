package toolkit

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by Open for names that were never registered.
var ErrUnknownBackend = errors.New("unknown toolkit backend")

// OpenFunc opens a toolkit backend. The meaning of source is backend specific
// (a fixture path for the in-memory toolkit).
type OpenFunc func(source string) (Toolkit, error)

var (
	backendsMu sync.RWMutex
	backends   = map[string]OpenFunc{}
)

// Register makes a backend available by name. Backends call it from init().
// Registering the same name twice panics.
func Register(name string, open OpenFunc) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if open == nil {
		panic("toolkit: Register open func is nil")
	}
	if _, dup := backends[name]; dup {
		panic("toolkit: Register called twice for backend " + name)
	}
	backends[name] = open
}

// Open opens the named backend.
func Open(name, source string) (Toolkit, error) {
	backendsMu.RLock()
	open, ok := backends[name]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBackend, name, Backends())
	}
	return open(source)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
