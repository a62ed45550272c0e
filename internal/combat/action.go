// Package combat holds the shared data model for the action resolution
// engine: action definitions, costs, effects, variants, and results.
// These types are owned by an external catalog; the engine only reads them.
package combat

// ActionType classifies which action-economy charge an invocation spends.
type ActionType string

// Action economy charge kinds
const (
	ActionTypeAction      ActionType = "action"
	ActionTypeBonusAction ActionType = "bonus_action"
	ActionTypeReaction    ActionType = "reaction"
)

// AttackType classifies how an action's attack roll is made, if it has one.
type AttackType string

// Attack kinds
const (
	AttackTypeNone         AttackType = ""
	AttackTypeMeleeWeapon  AttackType = "melee_weapon"
	AttackTypeRangedWeapon AttackType = "ranged_weapon"
	AttackTypeMeleeSpell   AttackType = "melee_spell"
	AttackTypeRangedSpell  AttackType = "ranged_spell"
)

// IsWeapon reports whether the attack draws from the attack sub-pool.
func (t AttackType) IsWeapon() bool {
	return t == AttackTypeMeleeWeapon || t == AttackTypeRangedWeapon
}

// SaveType names the defensive attribute a saving throw is rolled against.
type SaveType string

// Saving throw attributes
const (
	SaveNone         SaveType = ""
	SaveStrength     SaveType = "strength"
	SaveDexterity    SaveType = "dexterity"
	SaveConstitution SaveType = "constitution"
	SaveIntelligence SaveType = "intelligence"
	SaveWisdom       SaveType = "wisdom"
	SaveCharisma     SaveType = "charisma"
)

// ActionCost is the declarative requirement of an ability. It is immutable
// per definition; an effective cost is derived per invocation by the cost
// model (variant overrides, upcast remapping).
type ActionCost struct {
	UsesAction      bool
	UsesBonusAction bool
	UsesReaction    bool
	MovementCost    float64

	// ResourceCosts maps named pools to amounts, e.g. "spell_slot_2": 1.
	// Leveled keys use the <bucket>_<level> convention so upcasting can
	// shift them to a higher bucket.
	ResourceCosts map[string]int
}

// Clone returns a deep copy so per-invocation mutation never touches the
// catalog-owned definition.
func (c ActionCost) Clone() ActionCost {
	out := c
	if c.ResourceCosts != nil {
		out.ResourceCosts = make(map[string]int, len(c.ResourceCosts))
		for k, v := range c.ResourceCosts {
			out.ResourceCosts[k] = v
		}
	}
	return out
}

// ActionKind returns which economy charge the cost spends, preferring
// action over bonus action over reaction when several flags are set.
func (c ActionCost) ActionKind() (ActionType, bool) {
	switch {
	case c.UsesAction:
		return ActionTypeAction, true
	case c.UsesBonusAction:
		return ActionTypeBonusAction, true
	case c.UsesReaction:
		return ActionTypeReaction, true
	default:
		return "", false
	}
}

// CooldownSpec declares limited-use recovery for an action. MaxCharges == 0
// means the action has no cooldown ledger at all.
type CooldownSpec struct {
	TurnCooldown  int
	RoundCooldown int
	MaxCharges    int
}

// Defined reports whether the action carries a cooldown ledger.
func (s CooldownSpec) Defined() bool {
	return s.MaxCharges > 0
}

// Requirement is a named predicate the source actor must satisfy (or must
// not, when Inverted) before the action can be paid for.
type Requirement struct {
	Key      string
	Inverted bool
}

// ActionVariant is an alternate configuration of an ability selected at
// invocation time: an action-type override, added costs, added or reshaped
// effects.
type ActionVariant struct {
	ID string

	// ActionTypeOverride, when set, clears all three action-type flags on
	// the base cost and sets only the overridden one.
	ActionTypeOverride ActionType

	// AdditionalCost is OR'd (flags) and added (movement, resources) on
	// top of the base cost.
	AdditionalCost *ActionCost

	// ReplaceDamageType rewrites the damage type of every damage effect.
	ReplaceDamageType string

	// AddedEffects are appended (cloned) to the action's effect list.
	AddedEffects []*EffectDefinition
}

// UpcastScaling declares how an ability grows when cast from a higher-level
// resource bucket.
type UpcastScaling struct {
	// MaxLevels bounds how far above its base level the ability may be cast.
	MaxLevels int

	// ResourcePerLevel is the generic per-level resource delta applied when
	// the base cost has no leveled <bucket>_<level> key to remap.
	ResourcePerLevel map[string]int

	// DicePerLevel is an XdY term added to damage/heal formulas per level.
	DicePerLevel string

	// DurationPerLevel extends timed effects per level.
	DurationPerLevel int
}

// ActionDefinition is the catalog entry for one ability. The engine treats
// it as read-only; per-invocation changes operate on clones.
type ActionDefinition struct {
	ID   string
	Name string

	Cost     ActionCost
	Cooldown CooldownSpec

	Effects []*EffectDefinition

	AttackType    AttackType
	AttackBonus   int
	CritThreshold int // 0 means the natural-20 default

	SaveType SaveType
	SaveDC   int

	// SpellTag marks the action as spell-like: it opens the cast-cancel
	// reaction window unless Uncounterable is set.
	SpellTag        bool
	Uncounterable   bool
	VerbalComponent bool

	// Concentration marks the action as maintained. The tracked status id
	// is ConcentrationStatusID when set, otherwise the first apply-status
	// effect's status id, otherwise the action id.
	Concentration         bool
	ConcentrationStatusID string

	Requirements []Requirement
	Variants     []ActionVariant
	Upcast       *UpcastScaling
}

// Variant resolves a declared variant by id.
func (d *ActionDefinition) Variant(id string) (*ActionVariant, bool) {
	for i := range d.Variants {
		if d.Variants[i].ID == id {
			return &d.Variants[i], true
		}
	}
	return nil, false
}
