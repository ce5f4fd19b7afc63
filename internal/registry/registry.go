// Package registry provides a global registry for grid seed strategies.
// Strategies register themselves in init() functions, allowing drivers
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Seeder produces a fresh grid for a new run.
// Seeders are the only way drivers replace the current grid wholesale
// outside of stepping.
type Seeder interface {
	// ID returns a unique identifier (e.g., "blank", "random").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Seed builds a width x height grid. Strategies that need randomness
	// draw from src; deterministic strategies ignore it.
	Seed(width, height int, src life.Source) (*life.Grid, error)
}

// Options carries strategy parameters supplied by the driver.
type Options struct {
	Density float64 // Live-cell probability for randomized strategies
}

// SeederInfo contains metadata about a registered strategy.
type SeederInfo struct {
	ID    string
	Title string
}

// Factory creates a seeder configured with the given options.
type Factory func(opts Options) Seeder

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a seeder factory to the registry.
// Typically called from an init() function.
// Panics if a seeder with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: seeder %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(Options{}).Title()
}

// List returns information about all registered seeders, sorted by ID.
func List() []SeederInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SeederInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SeederInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a seeder by its ID.
// Returns an error if the ID is not registered.
func Create(id string, opts Options) (Seeder, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown seeder %q", id)
	}

	return f(opts), nil
}

// Exists checks if a seeder with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
