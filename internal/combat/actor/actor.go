// Package actor models a combatant: hit points, position, named resource
// pools, and the per-turn action budget.
package actor

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/budget"
)

// Actor is one combatant. The engine mutates it through the resolution
// pipeline; it is not safe for concurrent use.
type Actor struct {
	ID   string
	Name string
	Team string

	HP    int
	MaxHP int
	AC    int

	// Grid position in cells; forced movement shifts these.
	X, Y int

	Budget *budget.Budget

	// Resources holds named pools like "spell_slot_2" or "ki_points".
	Resources map[string]int

	SaveBonuses map[combat.SaveType]int
}

// Alive reports whether the actor can still act.
func (a *Actor) Alive() bool {
	return a.HP > 0
}

// CanSpendResource checks a single named pool without mutating it.
func (a *Actor) CanSpendResource(key string, amount int) bool {
	if amount <= 0 {
		return true
	}
	return a.Resources[key] >= amount
}

// SpendResource deducts from a named pool. Returns false (and leaves the
// pool untouched) when the balance is insufficient.
func (a *Actor) SpendResource(key string, amount int) bool {
	if amount <= 0 {
		return true
	}
	if a.Resources[key] < amount {
		return false
	}
	a.Resources[key] -= amount
	return true
}

// ApplyDamage reduces HP, clamping at zero.
func (a *Actor) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
}

// Heal restores HP, clamping at MaxHP.
func (a *Actor) Heal(amount int) {
	if amount <= 0 {
		return
	}
	a.HP += amount
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
}

// SaveBonus returns the actor's modifier for the given save type.
func (a *Actor) SaveBonus(save combat.SaveType) int {
	return a.SaveBonuses[save]
}

// Entity adapts the actor for the toolkit event bus.
func (a *Actor) Entity() core.Entity {
	return entity{id: a.ID}
}

type entity struct {
	id string
}

func (e entity) GetID() string   { return e.id }
func (e entity) GetType() string { return "actor" }
