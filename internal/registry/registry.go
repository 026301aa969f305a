// Package registry provides a global registry of atom layouts.
// Built-in layouts register themselves in init() functions and file-based
// layouts are registered at startup, so the CLI and the platform can offer
// them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

// Layout describes where the atoms of a game are placed.
type Layout interface {
	// ID returns a unique identifier for this layout (e.g., "classic").
	// Used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Atoms returns the atom coordinates for a new game.
	// Fixed layouts ignore the seed; generated layouts must be
	// deterministic for a given seed.
	Atoms(seed int64) []core.Coord
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a layout.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	if err := TryRegister(id, f); err != nil {
		panic(err.Error())
	}
}

// TryRegister is Register for layouts that come from user files, where a
// clash is an input error rather than a programming error.
func TryRegister(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: layout %q already registered", id)
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
	return nil
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a layout by its ID.
// Returns an error if the layout ID is not registered.
func Create(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
