// Package budget tracks the per-turn action economy of one combatant:
// action, bonus action, and reaction charges, a fractional movement pool,
// and the multi-attack sub-pool carved out of the action charge.
package budget

import (
	"fmt"
	"sync"

	"github.com/Interzoneism/tactica/internal/combat"
)

// Observer is notified synchronously after every successful mutation.
// Implementations must not call back into the budget.
type Observer interface {
	BudgetChanged(actorID string, b *Budget)
}

// Config configures a fresh budget.
type Config struct {
	ActorID     string
	MaxMovement float64
	// MaxAttacks is the size of the weapon-attack sub-pool per action
	// charge. Zero defaults to one.
	MaxAttacks int
	Observer   Observer
}

// Budget is the mutable per-turn economy state. All spending is
// all-or-nothing: a check that fails leaves every counter untouched.
type Budget struct {
	mu sync.Mutex

	actorID  string
	observer Observer

	actions      int
	bonusActions int
	reactions    int

	movement    float64
	maxMovement float64

	attacksRemaining int
	maxAttacks       int

	// usedOnce guards once-per-turn markers keyed by ability id.
	usedOnce map[string]bool
}

// New returns a budget with one of each charge, a full movement pool, and
// a full attack sub-pool.
func New(cfg *Config) *Budget {
	maxAttacks := cfg.MaxAttacks
	if maxAttacks <= 0 {
		maxAttacks = 1
	}
	return &Budget{
		actorID:          cfg.ActorID,
		observer:         cfg.Observer,
		actions:          1,
		bonusActions:     1,
		reactions:        1,
		movement:         cfg.MaxMovement,
		maxMovement:      cfg.MaxMovement,
		attacksRemaining: maxAttacks,
		maxAttacks:       maxAttacks,
		usedOnce:         make(map[string]bool),
	}
}

func (b *Budget) notify() {
	if b.observer != nil {
		b.observer.BudgetChanged(b.actorID, b)
	}
}

// Actions returns remaining action charges.
func (b *Budget) Actions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.actions
}

// BonusActions returns remaining bonus action charges.
func (b *Budget) BonusActions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bonusActions
}

// Reactions returns remaining reaction charges.
func (b *Budget) Reactions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reactions
}

// Movement returns the remaining movement pool.
func (b *Budget) Movement() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.movement
}

// AttacksRemaining returns the remaining weapon-attack sub-pool.
func (b *Budget) AttacksRemaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attacksRemaining
}

// CanPay checks the full cost without spending. The returned string names
// the first failing component when the check fails.
func (b *Budget) CanPay(cost combat.ActionCost) (bool, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.canPayLocked(cost)
}

func (b *Budget) canPayLocked(cost combat.ActionCost) (bool, string) {
	if cost.UsesAction && b.actions < 1 {
		return false, "no action remaining"
	}
	if cost.UsesBonusAction && b.bonusActions < 1 {
		return false, "no bonus action remaining"
	}
	if cost.UsesReaction && b.reactions < 1 {
		return false, "no reaction remaining"
	}
	if cost.MovementCost > b.movement {
		return false, fmt.Sprintf("movement %.1f exceeds remaining %.1f", cost.MovementCost, b.movement)
	}
	return true, ""
}

// Consume spends every component of the cost, or nothing at all.
func (b *Budget) Consume(cost combat.ActionCost) (bool, string) {
	b.mu.Lock()
	ok, why := b.canPayLocked(cost)
	if !ok {
		b.mu.Unlock()
		return false, why
	}
	if cost.UsesAction {
		b.actions--
	}
	if cost.UsesBonusAction {
		b.bonusActions--
	}
	if cost.UsesReaction {
		b.reactions--
	}
	b.movement -= cost.MovementCost
	b.mu.Unlock()
	b.notify()
	return true, ""
}

// ConsumeMovement spends from the movement pool only.
func (b *Budget) ConsumeMovement(distance float64) bool {
	b.mu.Lock()
	if distance > b.movement {
		b.mu.Unlock()
		return false
	}
	b.movement -= distance
	b.mu.Unlock()
	b.notify()
	return true
}

// ConsumeReaction spends the reaction charge.
func (b *Budget) ConsumeReaction() bool {
	b.mu.Lock()
	if b.reactions < 1 {
		b.mu.Unlock()
		return false
	}
	b.reactions--
	b.mu.Unlock()
	b.notify()
	return true
}

// ConsumeAttack spends one weapon attack from the sub-pool. The action
// charge backing the pool is only deducted when the pool empties, so a
// two-attack budget costs a single action across both swings. Returns
// whether an action charge was spent and whether the attack was paid.
func (b *Budget) ConsumeAttack() (actionSpent, ok bool) {
	b.mu.Lock()
	if b.attacksRemaining < 1 || b.actions < 1 {
		b.mu.Unlock()
		return false, false
	}
	b.attacksRemaining--
	if b.attacksRemaining == 0 {
		b.actions--
		actionSpent = true
	}
	b.mu.Unlock()
	b.notify()
	return actionSpent, true
}

// ResetAttacks empties the attack sub-pool so a non-attack action cannot
// leave stale swings behind.
func (b *Budget) ResetAttacks() {
	b.mu.Lock()
	b.attacksRemaining = 0
	b.mu.Unlock()
	b.notify()
}

// GrantAdditionalAction adds action charges mid-turn (haste-like effects)
// and refills the attack sub-pool.
func (b *Budget) GrantAdditionalAction(n int) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	b.actions += n
	b.attacksRemaining = b.maxAttacks
	b.mu.Unlock()
	b.notify()
}

// GrantAdditionalBonusAction adds bonus action charges mid-turn.
func (b *Budget) GrantAdditionalBonusAction(n int) {
	if n <= 0 {
		return
	}
	b.mu.Lock()
	b.bonusActions += n
	b.mu.Unlock()
	b.notify()
}

// Dash trades an action charge for a full extra movement pool.
func (b *Budget) Dash() bool {
	b.mu.Lock()
	if b.actions < 1 {
		b.mu.Unlock()
		return false
	}
	b.actions--
	b.movement += b.maxMovement
	b.mu.Unlock()
	b.notify()
	return true
}

// MarkUsedOnce records a once-per-turn use of the given ability.
func (b *Budget) MarkUsedOnce(abilityID string) {
	b.mu.Lock()
	b.usedOnce[abilityID] = true
	b.mu.Unlock()
}

// HasUsedOnce reports whether the ability was already used this turn.
func (b *Budget) HasUsedOnce(abilityID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.usedOnce[abilityID]
}

// ResetForTurn restores the turn-scoped counters at the start of the
// actor's turn. The reaction charge is round-scoped and is left alone.
func (b *Budget) ResetForTurn() {
	b.mu.Lock()
	b.actions = 1
	b.bonusActions = 1
	b.movement = b.maxMovement
	b.attacksRemaining = b.maxAttacks
	b.usedOnce = make(map[string]bool)
	b.mu.Unlock()
	b.notify()
}

// ResetReactionForRound restores the reaction charge at the round boundary.
func (b *Budget) ResetReactionForRound() {
	b.mu.Lock()
	b.reactions = 1
	b.mu.Unlock()
	b.notify()
}

// ResetFull restores everything, reaction included.
func (b *Budget) ResetFull() {
	b.ResetForTurn()
	b.ResetReactionForRound()
}
