package effects

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/errors"
	"github.com/Interzoneism/tactica/internal/pkg/idgen"
	"github.com/Interzoneism/tactica/internal/status"
)

// DamageHandler rolls and applies hit point damage. Criticals double the
// dice, reaction multipliers scale the total, and a successful save
// halves it when the effect allows.
type DamageHandler struct {
	roller dice.Roller
}

// NewDamageHandler creates the handler.
func NewDamageHandler(roller dice.Roller) *DamageHandler {
	return &DamageHandler{roller: roller}
}

// Execute implements Handler.
func (h *DamageHandler) Execute(_ context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	if inv.Target == nil {
		return nil, errors.InvalidArgument("damage effect requires a target")
	}

	total := def.Value
	if def.DiceFormula != "" {
		formula := def.DiceFormula
		if inv.Critical {
			formula = doubleDiceCounts(formula)
		}
		rolled, err := EvalFormula(h.roller, formula)
		if err != nil {
			return nil, err
		}
		total += rolled
	}

	// A passed save negates the damage unless the effect downgrades to
	// half instead.
	if inv.Save != nil && inv.Save.Success {
		if def.SaveTakesHalf {
			total /= 2
		} else {
			total = 0
		}
	}
	if inv.DamageMultiplier > 0 && inv.DamageMultiplier != 1.0 {
		total = int(math.Floor(float64(total) * inv.DamageMultiplier))
	}
	if total < 0 {
		total = 0
	}

	inv.Target.ApplyDamage(total)

	return []combat.EffectOutcome{{
		EffectType:  combat.EffectDamage,
		TargetID:    inv.Target.ID,
		Damage:      total,
		DamageType:  def.DamageType,
		Description: fmt.Sprintf("%d %s damage", total, def.DamageType),
	}}, nil
}

// Preview implements Previewer.
func (h *DamageHandler) Preview(def *combat.EffectDefinition) (int, int, float64, error) {
	if def.DiceFormula == "" {
		return def.Value, def.Value, float64(def.Value), nil
	}
	minimum, maximum, mean, err := FormulaBounds(def.DiceFormula)
	if err != nil {
		return 0, 0, 0, err
	}
	return minimum + def.Value, maximum + def.Value, mean + float64(def.Value), nil
}

// HealHandler restores hit points, capped at the target's maximum.
type HealHandler struct {
	roller dice.Roller
}

// NewHealHandler creates the handler.
func NewHealHandler(roller dice.Roller) *HealHandler {
	return &HealHandler{roller: roller}
}

// Execute implements Handler.
func (h *HealHandler) Execute(_ context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	if inv.Target == nil {
		return nil, errors.InvalidArgument("heal effect requires a target")
	}

	total := def.Value
	if def.DiceFormula != "" {
		rolled, err := EvalFormula(h.roller, def.DiceFormula)
		if err != nil {
			return nil, err
		}
		total += rolled
	}
	if total < 0 {
		total = 0
	}

	inv.Target.Heal(total)

	return []combat.EffectOutcome{{
		EffectType:  combat.EffectHeal,
		TargetID:    inv.Target.ID,
		Healing:     total,
		Description: fmt.Sprintf("%d healing", total),
	}}, nil
}

// Preview implements Previewer.
func (h *HealHandler) Preview(def *combat.EffectDefinition) (int, int, float64, error) {
	if def.DiceFormula == "" {
		return def.Value, def.Value, float64(def.Value), nil
	}
	minimum, maximum, mean, err := FormulaBounds(def.DiceFormula)
	if err != nil {
		return 0, 0, 0, err
	}
	return minimum + def.Value, maximum + def.Value, mean + float64(def.Value), nil
}

// StatusLibrary resolves a status id to its full condition template.
type StatusLibrary interface {
	GetStatus(id string) (*status.View, bool)
}

// StatusHandler applies conditions through the status store. A successful
// save negates the condition unless the effect says otherwise.
type StatusHandler struct {
	store   *status.Store
	library StatusLibrary
}

// NewStatusHandler creates the handler. library may be nil; unknown ids
// then apply as bare timed conditions.
func NewStatusHandler(store *status.Store, library StatusLibrary) *StatusHandler {
	return &StatusHandler{store: store, library: library}
}

// Execute implements Handler.
func (h *StatusHandler) Execute(_ context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	if inv.Target == nil {
		return nil, errors.InvalidArgument("status effect requires a target")
	}
	if def.StatusID == "" {
		return nil, errors.InvalidArgument("status effect requires a status id")
	}

	if inv.Save != nil && inv.Save.Success {
		return []combat.EffectOutcome{{
			EffectType:  combat.EffectApplyStatus,
			TargetID:    inv.Target.ID,
			StatusID:    def.StatusID,
			Description: fmt.Sprintf("%s resisted", def.StatusID),
		}}, nil
	}

	view := &status.View{ID: def.StatusID, Name: def.StatusID}
	if h.library != nil {
		if template, ok := h.library.GetStatus(def.StatusID); ok {
			cp := *template
			view = &cp
		}
	}
	view.Remaining = def.Duration

	h.store.Apply(inv.Target.ID, view)

	return []combat.EffectOutcome{{
		EffectType:  combat.EffectApplyStatus,
		TargetID:    inv.Target.ID,
		StatusID:    def.StatusID,
		Description: fmt.Sprintf("%s applied", def.StatusID),
	}}, nil
}

// PushHandler shoves the target away from the source along the straight
// line between them, one axis step per cell of distance.
type PushHandler struct{}

// NewPushHandler creates the handler.
func NewPushHandler() *PushHandler {
	return &PushHandler{}
}

// Execute implements Handler.
func (h *PushHandler) Execute(_ context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	if inv.Source == nil || inv.Target == nil {
		return nil, errors.InvalidArgument("forced movement requires a source and a target")
	}

	distance := def.Value
	if inv.Save != nil && inv.Save.Success {
		distance = 0
	}

	dx := sign(inv.Target.X - inv.Source.X)
	dy := sign(inv.Target.Y - inv.Source.Y)
	if dx == 0 && dy == 0 {
		// Overlapping positions push along x by convention.
		dx = 1
	}
	inv.Target.X += dx * distance
	inv.Target.Y += dy * distance

	return []combat.EffectOutcome{{
		EffectType:  combat.EffectForcedMovement,
		TargetID:    inv.Target.ID,
		Distance:    distance,
		Description: fmt.Sprintf("pushed %d cells", distance),
	}}, nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Spawner places a summoned creature into the world.
type Spawner interface {
	Spawn(ctx context.Context, templateID, summonID string, x, y int) error
}

// SummonHandler creates a new combatant next to the source.
type SummonHandler struct {
	idGen   idgen.Generator
	spawner Spawner
}

// NewSummonHandler creates the handler.
func NewSummonHandler(idGen idgen.Generator, spawner Spawner) *SummonHandler {
	return &SummonHandler{idGen: idGen, spawner: spawner}
}

// Execute implements Handler.
func (h *SummonHandler) Execute(ctx context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	if inv.Source == nil {
		return nil, errors.InvalidArgument("summon effect requires a source")
	}
	templateID := def.Params["template_id"]
	if templateID == "" {
		return nil, errors.InvalidArgument("summon effect requires a template_id param")
	}

	summonID := h.idGen.Generate()
	if err := h.spawner.Spawn(ctx, templateID, summonID, inv.Source.X+1, inv.Source.Y); err != nil {
		return nil, errors.Wrapf(err, "spawning %s", templateID)
	}

	return []combat.EffectOutcome{{
		EffectType:  combat.EffectSummon,
		TargetID:    inv.Source.ID,
		SummonID:    summonID,
		Description: fmt.Sprintf("summoned %s", templateID),
	}}, nil
}
