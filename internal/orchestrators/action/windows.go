package action

import (
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
)

// Engine-owned event topics. Roll and damage windows reuse the toolkit's
// combat topics so rule modules written against the toolkit plug in
// unchanged.
const (
	// EventActionDeclared opens before any cost is spent; cancelling it
	// aborts the invocation for free.
	EventActionDeclared = "tactica.action.declared"

	// EventActionResolved closes every invocation, failed or not.
	EventActionResolved = "tactica.action.resolved"

	// EventRoundEnded fires after round-boundary bookkeeping.
	EventRoundEnded = "tactica.round.ended"
)

// Context keys used on engine events.
const (
	ContextKeyActionID    = "action_id"
	ContextKeyVariantID   = "variant_id"
	ContextKeyUpcastLevel = "upcast_level"
	ContextKeyAttackBonus = "attack_bonus"
	ContextKeyTargetAC    = "target_ac"
	ContextKeySaveDC      = "save_dc"
	ContextKeyDamage      = "damage"
	ContextKeyStatusID    = "status_id"
	ContextKeySuccess     = "success"
	ContextKeyReason      = "reason"
)

// intFromContext reads an int context value, tolerating absent keys and
// foreign types.
func intFromContext(event rpgevents.Event, key string, fallback int) int {
	v, ok := event.Context().Get(key)
	if !ok {
		return fallback
	}
	n, ok := v.(int)
	if !ok {
		return fallback
	}
	return n
}
