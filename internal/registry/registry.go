// Package registry keeps the playable Pong variants. Each variant
// registers a factory from an init function so the CLI, the menu and the
// SSH server can list and start them without importing game packages
// directly.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal
// state; the platform maps keys to actions, measures time and displays
// the screen.
type Game interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset (re)starts the game for the given screen and config path.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by dt of wall time. Input holds the actions
	// triggered since the previous step.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current frame into dst. The screen is cleared
	// before the call.
	Render(dst *core.Screen)

	// State returns the current score and result.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string
)

// Register adds a variant. Panics if the ID is empty or already taken.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}

	entries[info.ID] = entry{info: info, factory: f}
	order = append(order, info.ID)
}

// List returns every registered variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, entries[id].info)
	}
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// unregisterAll clears the registry. Tests only.
func unregisterAll() {
	mu.Lock()
	defer mu.Unlock()

	entries = make(map[string]entry)
	order = nil
}
