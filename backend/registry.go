package backend

import (
	"fmt"
	"sync"
)

// Factory opens a backend device.
type Factory func() (Device, error)

// registry holds registered backend factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)

	// Priority order for backend selection (first available wins).
	priority = []string{"wgpu", "software"}
)

// Register registers a backend factory under the given name.
// This is typically called from init functions in backend packages.
// A factory registered under an existing name replaces the old one.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get opens the backend registered under name.
func Get(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q is not registered", ErrBackendNotAvailable, name)
	}
	return factory()
}

// Default opens the first backend that is registered and opens successfully,
// in priority order, then falls back to any remaining registered backend.
func Default() (Device, error) {
	tried := make(map[string]bool)

	for _, name := range priority {
		if !IsRegistered(name) {
			continue
		}
		tried[name] = true
		if dev, err := Get(name); err == nil {
			return dev, nil
		}
	}

	registryMu.RLock()
	var rest []string
	for name := range factories {
		if !tried[name] {
			rest = append(rest, name)
		}
	}
	registryMu.RUnlock()

	for _, name := range rest {
		if dev, err := Get(name); err == nil {
			return dev, nil
		}
	}

	return nil, fmt.Errorf("%w: no backend could be opened", ErrBackendNotAvailable)
}
