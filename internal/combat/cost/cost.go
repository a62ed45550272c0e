// Package cost derives the effective price and effect list of one
// invocation from a catalog definition, a selected variant, and an upcast
// level. All functions are pure; definitions are never mutated.
package cost

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/errors"
)

// leveledKey matches resource keys of the form <bucket>_<level>,
// e.g. spell_slot_2.
var leveledKey = regexp.MustCompile(`^(.+)_(\d+)$`)

// BuildEffective computes the cost the budget and resource pools will be
// charged for this invocation.
func BuildEffective(def *combat.ActionDefinition, variant *combat.ActionVariant, upcastLevel int) (combat.ActionCost, error) {
	eff := def.Cost.Clone()

	if variant != nil {
		if variant.ActionTypeOverride != "" {
			eff.UsesAction = false
			eff.UsesBonusAction = false
			eff.UsesReaction = false
			switch variant.ActionTypeOverride {
			case combat.ActionTypeAction:
				eff.UsesAction = true
			case combat.ActionTypeBonusAction:
				eff.UsesBonusAction = true
			case combat.ActionTypeReaction:
				eff.UsesReaction = true
			default:
				return combat.ActionCost{}, errors.InvalidArgumentf(
					"variant %s: unknown action type override %q", variant.ID, variant.ActionTypeOverride)
			}
		}
		if add := variant.AdditionalCost; add != nil {
			eff.UsesAction = eff.UsesAction || add.UsesAction
			eff.UsesBonusAction = eff.UsesBonusAction || add.UsesBonusAction
			eff.UsesReaction = eff.UsesReaction || add.UsesReaction
			eff.MovementCost += add.MovementCost
			for k, v := range add.ResourceCosts {
				if eff.ResourceCosts == nil {
					eff.ResourceCosts = make(map[string]int)
				}
				eff.ResourceCosts[k] += v
			}
		}
	}

	if upcastLevel > 0 {
		if def.Upcast == nil {
			return combat.ActionCost{}, errors.InvalidArgumentf("action %s does not support upcasting", def.ID)
		}
		if upcastLevel > def.Upcast.MaxLevels {
			return combat.ActionCost{}, errors.InvalidArgumentf(
				"action %s: upcast level %d exceeds maximum %d", def.ID, upcastLevel, def.Upcast.MaxLevels)
		}
		remapLeveledCosts(&eff, def.Upcast, upcastLevel)
	}

	return eff, nil
}

// remapLeveledCosts shifts each <bucket>_<level> key up by upcastLevel.
// When no leveled key exists, the generic per-level delta applies instead,
// never both.
func remapLeveledCosts(eff *combat.ActionCost, upcast *combat.UpcastScaling, upcastLevel int) {
	remapped := false
	if eff.ResourceCosts != nil {
		out := make(map[string]int, len(eff.ResourceCosts))
		for key, amount := range eff.ResourceCosts {
			m := leveledKey.FindStringSubmatch(key)
			if m == nil {
				out[key] += amount
				continue
			}
			level, err := strconv.Atoi(m[2])
			if err != nil {
				out[key] += amount
				continue
			}
			out[fmt.Sprintf("%s_%d", m[1], level+upcastLevel)] += amount
			remapped = true
		}
		eff.ResourceCosts = out
	}
	if remapped {
		return
	}
	for k, perLevel := range upcast.ResourcePerLevel {
		if eff.ResourceCosts == nil {
			eff.ResourceCosts = make(map[string]int)
		}
		eff.ResourceCosts[k] += perLevel * upcastLevel
	}
}

// ApplyModifiers shapes the invocation's effect list: variant damage-type
// replacement and added effects, then upcast dice/value/duration scaling.
// The returned effects are clones; the definition is untouched.
func ApplyModifiers(def *combat.ActionDefinition, variant *combat.ActionVariant, upcastLevel int) []*combat.EffectDefinition {
	effects := combat.CloneEffects(def.Effects)

	if variant != nil {
		if variant.ReplaceDamageType != "" {
			for _, e := range effects {
				if e.Type == combat.EffectDamage {
					e.DamageType = variant.ReplaceDamageType
				}
			}
		}
		for _, added := range variant.AddedEffects {
			effects = append(effects, added.Clone())
		}
	}

	if upcastLevel > 0 && def.Upcast != nil {
		for _, e := range effects {
			scaleEffect(e, def.Upcast, upcastLevel)
		}
	}

	return effects
}

func scaleEffect(e *combat.EffectDefinition, upcast *combat.UpcastScaling, upcastLevel int) {
	if upcast.DicePerLevel != "" && e.DiceFormula != "" &&
		(e.Type == combat.EffectDamage || e.Type == combat.EffectHeal) {
		e.DiceFormula = appendScaledDice(e.DiceFormula, upcast.DicePerLevel, upcastLevel)
	}
	if upcast.DurationPerLevel > 0 && e.Duration > 0 {
		e.Duration += upcast.DurationPerLevel * upcastLevel
	}
}

var diceTerm = regexp.MustCompile(`^(\d+)d(\d+)$`)

// appendScaledDice appends perLevel repeated levels times, collapsing
// "1d6" at three levels into "+3d6" rather than three separate terms.
func appendScaledDice(formula, perLevel string, levels int) string {
	if m := diceTerm.FindStringSubmatch(perLevel); m != nil {
		count, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%s+%dd%s", formula, count*levels, m[2])
	}
	out := formula
	for i := 0; i < levels; i++ {
		out += "+" + perLevel
	}
	return out
}
