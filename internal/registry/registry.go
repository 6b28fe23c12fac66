// Package registry provides a global registry of named rule presets.
// Presets register themselves in init() functions so hosts and the CLI can
// list and select rules by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Preset is a named rule set.
type Preset struct {
	ID    string
	Title string
	Rules life.RuleSet
}

// Notation returns the preset's rule in B/S notation.
func (p Preset) Notation() string {
	return p.Rules.String()
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset parsed from B/S notation.
// Panics if the ID is taken or the notation does not parse.
func Register(id, title, notation string) {
	rules, err := life.ParseRule(notation)
	if err != nil {
		panic(fmt.Sprintf("registry: preset %q: %v", id, err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}
	presets[id] = Preset{ID: id, Title: title, Rules: rules}
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		p.Rules = p.Rules.Clone()
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a preset by ID.
// Returns an error if the ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	p.Rules = p.Rules.Clone()
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// Next returns the preset after id in List order, wrapping around.
// An unknown id yields the first preset.
func Next(id string) Preset {
	all := List()
	if len(all) == 0 {
		return Preset{ID: "conway", Title: "Conway's Life", Rules: life.Conway()}
	}
	for i, p := range all {
		if p.ID == id {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Lookup finds the preset whose rule equals rules, if any.
func Lookup(rules life.RuleSet) (Preset, bool) {
	want := rules.String()
	for _, p := range List() {
		if p.Notation() == want {
			return p, true
		}
	}
	return Preset{}, false
}
