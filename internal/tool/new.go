// Package tool holds the static registry of downstream capability
// handlers the router can select. The registry is loaded once at startup
// and is read-only for the process lifetime; adding or removing a tool
// requires a restart.
package tool

import (
	"fmt"
	"sort"

	"multilingual-tool-router/internal/model"
)

// Registry is the immutable tool table plus its intent mapping.
type Registry struct {
	byID     map[model.ToolID]Metadata
	byIntent map[model.Intent]model.ToolID
	ordered  []Metadata // sorted by ID for deterministic iteration
}

// NewRegistry builds the built-in registry with the given base threshold.
// A threshold of 0 selects DefaultBaseThreshold.
func NewRegistry(baseThreshold float64) (*Registry, error) {
	if baseThreshold == 0 {
		baseThreshold = DefaultBaseThreshold
	}
	return newRegistry(builtinMetadata(baseThreshold))
}

// newRegistry validates the intent<->tool bijection. An unmapped intent
// or a duplicate mapping is a configuration error, not a runtime
// condition.
func newRegistry(entries []Metadata) (*Registry, error) {
	r := &Registry{
		byID:     make(map[model.ToolID]Metadata, len(entries)),
		byIntent: make(map[model.Intent]model.ToolID, len(entries)),
	}

	for _, m := range entries {
		if m.BaseThreshold <= 0 || m.BaseThreshold > 1 {
			return nil, fmt.Errorf("tool %s: base threshold %.3f out of range (0, 1]", m.ID, m.BaseThreshold)
		}
		if _, dup := r.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %s", m.ID)
		}
		if prev, dup := r.byIntent[m.Intent]; dup {
			return nil, fmt.Errorf("intent %s mapped to both %s and %s", m.Intent, prev, m.ID)
		}

		// The static switch and the registry table must agree.
		mapped, ok := model.ToolForIntent(m.Intent)
		if !ok || mapped != m.ID {
			return nil, fmt.Errorf("intent %s: registry says %s, static mapping says %s", m.Intent, m.ID, mapped)
		}

		r.byID[m.ID] = m
		r.byIntent[m.Intent] = m.ID
		r.ordered = append(r.ordered, m)
	}

	for _, intent := range model.Intents() {
		if _, ok := r.byIntent[intent]; !ok {
			return nil, fmt.Errorf("intent %s has no tool", intent)
		}
	}

	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].ID < r.ordered[j].ID })

	return r, nil
}

// ByID returns the metadata for a tool id.
func (r *Registry) ByID(id model.ToolID) (Metadata, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// ByIntent returns the tool mapped to an intent label.
func (r *Registry) ByIntent(intent model.Intent) (model.ToolID, bool) {
	id, ok := r.byIntent[intent]
	return id, ok
}

// All returns every tool sorted by id. Callers must not mutate the
// returned slice.
func (r *Registry) All() []Metadata {
	return r.ordered
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.ordered)
}
