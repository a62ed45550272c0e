// Package catalog resolves action ids to their definitions. The engine
// only ever reads through the Source interface; campaigns compose local
// overrides over a shared base with TwoTier.
package catalog

import (
	"sort"
	"sync"

	"github.com/Interzoneism/tactica/internal/combat"
)

//go:generate mockgen -destination=mock/mock_source.go -package=catalogmock github.com/Interzoneism/tactica/internal/catalog Source

// Source resolves an action id to its catalog definition.
type Source interface {
	GetAction(id string) (*combat.ActionDefinition, bool)
}

// Registry is an in-memory Source backed by a mutex-guarded map.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]*combat.ActionDefinition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*combat.ActionDefinition)}
}

// Register adds or replaces a definition.
func (r *Registry) Register(def *combat.ActionDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[def.ID] = def
}

// GetAction implements Source.
func (r *Registry) GetAction(id string) (*combat.ActionDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.actions[id]
	return def, ok
}

// List returns all registered ids, sorted for stable output.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TwoTier composes a campaign-local source over a shared base. Local
// definitions shadow base ones with the same id.
type TwoTier struct {
	local Source
	base  Source
}

// NewTwoTier builds the layered source.
func NewTwoTier(local, base Source) *TwoTier {
	return &TwoTier{local: local, base: base}
}

// GetAction implements Source with local precedence.
func (t *TwoTier) GetAction(id string) (*combat.ActionDefinition, bool) {
	if t.local != nil {
		if def, ok := t.local.GetAction(id); ok {
			return def, true
		}
	}
	if t.base != nil {
		return t.base.GetAction(id)
	}
	return nil, false
}
