// Package cooldown tracks limited-use charges per actor and action, with
// turn- or round-based recovery countdowns.
package cooldown

import (
	"fmt"
	"sync"

	"github.com/Interzoneism/tactica/internal/combat"
)

// Unit is the clock a cooldown counts against.
type Unit string

// Recovery clocks
const (
	UnitTurn  Unit = "turn"
	UnitRound Unit = "round"
)

// State is the ledger entry for one actor/action pair. It is exported so
// the persistence layer can round-trip the whole ledger between sessions.
type State struct {
	ActorID  string `json:"actor_id"`
	ActionID string `json:"action_id"`

	MaxCharges     int `json:"max_charges"`
	CurrentCharges int `json:"current_charges"`

	// RemainingCooldown counts down to the next charge recovery. Zero
	// while at max charges.
	RemainingCooldown int  `json:"remaining_cooldown"`
	Cooldown          int  `json:"cooldown"`
	Unit              Unit `json:"unit"`
}

// Tracker holds the in-memory cooldown ledger for one combat. Entries are
// created lazily on first consume.
type Tracker struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewTracker returns an empty ledger.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[string]*State)}
}

func key(actorID, actionID string) string {
	return fmt.Sprintf("%s:%s", actorID, actionID)
}

// Available reports whether the actor has a charge of the action left.
// Actions with no cooldown spec are always available.
func (t *Tracker) Available(actorID string, def *combat.ActionDefinition) bool {
	if !def.Cooldown.Defined() {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[key(actorID, def.ID)]
	if !ok {
		return true
	}
	return st.CurrentCharges > 0
}

// Charges returns the remaining charges, initializing the entry lazily.
func (t *Tracker) Charges(actorID string, def *combat.ActionDefinition) int {
	if !def.Cooldown.Defined() {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[key(actorID, def.ID)]
	if !ok {
		return def.Cooldown.MaxCharges
	}
	return st.CurrentCharges
}

// Consume spends one charge, starting the recovery countdown once the
// ledger drops below max. Returns false when no charge remains.
func (t *Tracker) Consume(actorID string, def *combat.ActionDefinition) bool {
	if !def.Cooldown.Defined() {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	k := key(actorID, def.ID)
	st, ok := t.states[k]
	if !ok {
		st = newState(actorID, def)
		t.states[k] = st
	}
	if st.CurrentCharges < 1 {
		return false
	}
	st.CurrentCharges--
	if st.RemainingCooldown == 0 {
		st.RemainingCooldown = st.Cooldown
	}
	return true
}

func newState(actorID string, def *combat.ActionDefinition) *State {
	unit := UnitTurn
	cd := def.Cooldown.TurnCooldown
	if def.Cooldown.RoundCooldown > 0 {
		unit = UnitRound
		cd = def.Cooldown.RoundCooldown
	}
	return &State{
		ActorID:        actorID,
		ActionID:       def.ID,
		MaxCharges:     def.Cooldown.MaxCharges,
		CurrentCharges: def.Cooldown.MaxCharges,
		Cooldown:       cd,
		Unit:           unit,
	}
}

// TickTurnStart advances turn-clocked countdowns for one actor. When a
// countdown reaches zero a charge recovers; if the ledger is still below
// max the countdown restarts immediately.
func (t *Tracker) TickTurnStart(actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, st := range t.states {
		if st.ActorID == actorID && st.Unit == UnitTurn {
			tick(st)
		}
	}
}

// TickRoundEnd advances round-clocked countdowns for every actor.
func (t *Tracker) TickRoundEnd() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, st := range t.states {
		if st.Unit == UnitRound {
			tick(st)
		}
	}
}

func tick(st *State) {
	if st.RemainingCooldown == 0 {
		return
	}
	st.RemainingCooldown--
	if st.RemainingCooldown > 0 {
		return
	}
	if st.CurrentCharges < st.MaxCharges {
		st.CurrentCharges++
	}
	if st.CurrentCharges < st.MaxCharges {
		st.RemainingCooldown = st.Cooldown
	}
}

// Export snapshots the ledger for persistence.
func (t *Tracker) Export() []*State {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*State, 0, len(t.states))
	for _, st := range t.states {
		cp := *st
		out = append(out, &cp)
	}
	return out
}

// Import replaces the ledger with a persisted snapshot.
func (t *Tracker) Import(states []*State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = make(map[string]*State, len(states))
	for _, st := range states {
		cp := *st
		t.states[key(st.ActorID, st.ActionID)] = &cp
	}
}
