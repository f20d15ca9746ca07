// Package registry provides a global registry for automaton rule factories.
// Rules register themselves in init() functions, allowing the CLI and the
// viewer to discover and instantiate rules without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridlab/internal/automaton"
)

// RuleInfo contains metadata about a registered rule.
type RuleInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a rule.
type Factory func() automaton.Rule

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a rule factory to the registry.
// Typically called from a rule package's init() function.
// Panics if a rule with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: rule %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered rules, sorted by ID.
func List() []RuleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RuleInfo, 0, len(factories))
	for id := range factories {
		result = append(result, RuleInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new rule by its ID.
func Create(id string) (automaton.Rule, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown rule %q", id)
	}

	return f(), nil
}

// Exists checks if a rule with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
