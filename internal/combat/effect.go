package combat

// EffectType is the dispatch key for effect handlers. The dispatcher maps
// each type to a registered handler; unknown types are skipped with a
// warning rather than failing the whole action.
type EffectType string

// Built-in effect types
const (
	EffectDamage         EffectType = "damage"
	EffectHeal           EffectType = "heal"
	EffectApplyStatus    EffectType = "apply_status"
	EffectForcedMovement EffectType = "forced_movement"
	EffectSummon         EffectType = "summon"
)

// TargetScope distinguishes single-target effects from area effects.
type TargetScope string

// Target scopes
const (
	ScopeSingle TargetScope = "single"
	ScopeArea   TargetScope = "area"
	ScopeSelf   TargetScope = "self"
)

// EffectDefinition describes one consequence of a resolved action. Like
// the action definition it is catalog-owned; invocation-time shaping
// (variants, upcast scaling) operates on clones.
type EffectDefinition struct {
	Type EffectType

	// Value is a flat magnitude: healing amount, push distance in cells,
	// status stacks.
	Value int

	// DiceFormula, when set, is rolled instead of (or in addition to)
	// Value, e.g. "2d6+3" or "8d6".
	DiceFormula string

	DamageType string
	StatusID   string
	Scope      TargetScope

	// SaveTakesHalf halves damage on a successful save instead of
	// negating the effect.
	SaveTakesHalf bool

	// Duration is measured in rounds for timed statuses; 0 means
	// instantaneous or indefinite depending on the status.
	Duration int

	// Params carries handler-specific extras (summon template id,
	// movement mode) without widening the shared struct.
	Params map[string]string
}

// Clone returns a deep copy for per-invocation mutation.
func (e *EffectDefinition) Clone() *EffectDefinition {
	if e == nil {
		return nil
	}
	out := *e
	if e.Params != nil {
		out.Params = make(map[string]string, len(e.Params))
		for k, v := range e.Params {
			out.Params[k] = v
		}
	}
	return &out
}

// CloneEffects deep-copies a definition's effect list.
func CloneEffects(effects []*EffectDefinition) []*EffectDefinition {
	if effects == nil {
		return nil
	}
	out := make([]*EffectDefinition, len(effects))
	for i, e := range effects {
		out[i] = e.Clone()
	}
	return out
}
