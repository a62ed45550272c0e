// Package status exposes active condition state to the resolution
// pipeline. The engine consults statuses for action blocking, roll
// advantage, and save auto-failure; it applies and removes them through
// the Store when effects resolve.
package status

import (
	"sync"

	"github.com/Interzoneism/tactica/internal/combat"
)

//go:generate mockgen -destination=mock/mock_status.go -package=statusmock github.com/Interzoneism/tactica/internal/status Oracle

// Well-known status tags the engine branches on.
const (
	TagIncapacitated = "incapacitated"
	TagSilenced      = "silenced"
)

// View is the engine-facing projection of one active condition.
type View struct {
	ID   string
	Name string

	// Tags are free-form markers; the engine keys on TagIncapacitated
	// and TagSilenced, rule modules may key on others.
	Tags []string

	// BlockedActionTypes lists economy charges the afflicted actor may
	// not spend while the condition holds.
	BlockedActionTypes []combat.ActionType
	BlocksAllActions   bool

	// AutoFailSaves lists save types the actor automatically fails.
	AutoFailSaves []combat.SaveType

	// Roll shaping for the afflicted actor's own attacks.
	AttackAdvantage    bool
	AttackDisadvantage bool

	// GrantsAdvantageToAttackers shapes rolls made against the actor.
	GrantsAdvantageToAttackers bool

	// Remaining is the rounds left for timed conditions; 0 means
	// indefinite.
	Remaining int
}

// HasTag reports whether the view carries the tag.
func (v *View) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Oracle is the read-only surface the engine consults during resolution.
type Oracle interface {
	HasStatus(actorID, tag string) bool
	ActiveStatuses(actorID string) []*View
}

// Store is an in-memory Oracle that also accepts writes from the effect
// pipeline.
type Store struct {
	mu     sync.RWMutex
	active map[string][]*View
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{active: make(map[string][]*View)}
}

// Apply adds a condition to the actor, replacing a same-id condition so
// re-application refreshes duration instead of stacking.
func (s *Store) Apply(actorID string, view *View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.active[actorID]
	for i, v := range list {
		if v.ID == view.ID {
			list[i] = view
			return
		}
	}
	s.active[actorID] = append(list, view)
}

// Remove drops the condition by id. Returns whether it was present.
func (s *Store) Remove(actorID, statusID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.active[actorID]
	for i, v := range list {
		if v.ID == statusID {
			s.active[actorID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// HasStatus implements Oracle. It matches both condition ids and tags.
func (s *Store) HasStatus(actorID, tag string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.active[actorID] {
		if v.ID == tag || v.HasTag(tag) {
			return true
		}
	}
	return false
}

// ActiveStatuses implements Oracle.
func (s *Store) ActiveStatuses(actorID string) []*View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.active[actorID]
	out := make([]*View, len(list))
	copy(out, list)
	return out
}

// TickRound decrements timed conditions for every actor and removes the
// expired ones. Returns the removed views keyed by actor for event
// publication.
func (s *Store) TickRound() map[string][]*View {
	s.mu.Lock()
	defer s.mu.Unlock()
	expired := make(map[string][]*View)
	for actorID, list := range s.active {
		kept := list[:0]
		for _, v := range list {
			if v.Remaining > 0 {
				v.Remaining--
				if v.Remaining == 0 {
					expired[actorID] = append(expired[actorID], v)
					continue
				}
			}
			kept = append(kept, v)
		}
		s.active[actorID] = kept
	}
	return expired
}
