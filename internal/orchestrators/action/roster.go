package action

import (
	"sort"
	"sync"

	"github.com/Interzoneism/tactica/internal/combat/actor"
)

// MapRoster is an in-memory Roster.
type MapRoster struct {
	mu     sync.RWMutex
	actors map[string]*actor.Actor
}

// NewMapRoster builds a roster from the given actors.
func NewMapRoster(actors ...*actor.Actor) *MapRoster {
	r := &MapRoster{actors: make(map[string]*actor.Actor, len(actors))}
	for _, a := range actors {
		r.actors[a.ID] = a
	}
	return r
}

// Add inserts or replaces an actor, e.g. a fresh summon.
func (r *MapRoster) Add(a *actor.Actor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actors[a.ID] = a
}

// GetActor implements Roster.
func (r *MapRoster) GetActor(id string) (*actor.Actor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actors[id]
	return a, ok
}

// ActorIDs implements Roster with stable ordering.
func (r *MapRoster) ActorIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.actors))
	for id := range r.actors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
