package action_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/catalog"
	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
	"github.com/Interzoneism/tactica/internal/combat/budget"
	"github.com/Interzoneism/tactica/internal/combat/cooldown"
	"github.com/Interzoneism/tactica/internal/effects"
	"github.com/Interzoneism/tactica/internal/oracle"
	"github.com/Interzoneism/tactica/internal/orchestrators/action"
	"github.com/Interzoneism/tactica/internal/pkg/idgen"
	"github.com/Interzoneism/tactica/internal/reaction"
	"github.com/Interzoneism/tactica/internal/status"
	"github.com/Interzoneism/tactica/internal/testutils"
)

type fixture struct {
	engine   action.Service
	bus      *rpgevents.Bus
	registry *catalog.Registry
	roller   *testutils.ScriptedRoller
	statuses *status.Store
	broker   *reaction.TableBroker
	tracker  *cooldown.Tracker
	roster   *action.MapRoster
	fighter  *actor.Actor
	goblin   *actor.Actor
}

func newActor(id string, hp, ac int, maxAttacks int) *actor.Actor {
	return &actor.Actor{
		ID:    id,
		Name:  id,
		HP:    hp,
		MaxHP: hp,
		AC:    ac,
		Budget: budget.New(&budget.Config{
			ActorID:     id,
			MaxMovement: 6.0,
			MaxAttacks:  maxAttacks,
		}),
		Resources:   map[string]int{},
		SaveBonuses: map[combat.SaveType]int{},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bus:      rpgevents.NewBus(),
		registry: catalog.NewRegistry(),
		roller:   testutils.NewScriptedRoller(),
		statuses: status.NewStore(),
		broker:   reaction.NewTableBroker(),
		tracker:  cooldown.NewTracker(),
	}

	f.fighter = newActor("fighter", 30, 16, 2)
	f.goblin = newActor("goblin", 15, 12, 1)
	f.roster = action.NewMapRoster(f.fighter, f.goblin)

	dispatcher, err := effects.NewDispatcher(&effects.Config{EventBus: f.bus})
	require.NoError(t, err)
	dispatcher.Register(combat.EffectDamage, effects.NewDamageHandler(f.roller))
	dispatcher.Register(combat.EffectHeal, effects.NewHealHandler(f.roller))
	dispatcher.Register(combat.EffectApplyStatus, effects.NewStatusHandler(f.statuses, nil))

	rollOracle, err := oracle.New(&oracle.Config{Roller: f.roller})
	require.NoError(t, err)

	engine, err := action.NewOrchestrator(&action.Config{
		Catalog:       f.registry,
		Oracle:        rollOracle,
		Statuses:      f.statuses,
		Reactions:     f.broker,
		Concentration: action.NewConcentrationTracker(),
		Dispatcher:    dispatcher,
		Cooldowns:     f.tracker,
		Roster:        f.roster,
		EventBus:      f.bus,
		IDGenerator:   idgen.NewSequential("inv"),
		Predicates: map[string]action.Predicate{
			"wielding_melee_weapon": func(_ *actor.Actor) bool { return true },
			"raging":                func(_ *actor.Actor) bool { return false },
		},
	})
	require.NoError(t, err)
	f.engine = engine
	return f
}

func (f *fixture) register(def *combat.ActionDefinition) {
	f.registry.Register(def)
}

func longsword() *combat.ActionDefinition {
	return &combat.ActionDefinition{
		ID:          "longsword",
		Name:        "Longsword",
		Cost:        combat.ActionCost{UsesAction: true},
		AttackType:  combat.AttackTypeMeleeWeapon,
		AttackBonus: 5,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "1d8", Value: 3, DamageType: "slashing"},
		},
	}
}

func fireball() *combat.ActionDefinition {
	return &combat.ActionDefinition{
		ID:       "fireball",
		Name:     "Fireball",
		Cost:     combat.ActionCost{UsesAction: true, ResourceCosts: map[string]int{"spell_slot_3": 1}},
		SaveType: combat.SaveDexterity,
		SaveDC:   15,
		SpellTag: true,
		Upcast:   &combat.UpcastScaling{MaxLevels: 6, DicePerLevel: "1d6"},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "2d6", DamageType: "fire", SaveTakesHalf: true},
		},
	}
}

func TestExecute_WeaponAttackHitSharesActionAcrossPool(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())
	// Attack roll 12 (+5 vs AC 12 hits), damage die 4.
	f.roller.Push(12, 4)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	require.Len(t, out.Result.Attack, 1)
	assert.True(t, out.Result.Attack[0].Hit)
	require.Len(t, out.Result.Effects, 1)
	assert.Equal(t, 7, out.Result.Effects[0].Damage)
	assert.Equal(t, 8, f.goblin.HP)

	// Two-attack pool: first swing leaves the action charge intact.
	assert.Equal(t, 1, f.fighter.Budget.Actions())
	assert.Equal(t, 1, f.fighter.Budget.AttacksRemaining())

	f.roller.Push(3, 4)
	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)
	assert.False(t, out.Result.Attack[0].Hit, "natural 3 + 5 misses AC 12")
	assert.Empty(t, out.Result.Effects, "missed attacks apply no effects")

	// Second swing empties the pool and spends the action.
	assert.Equal(t, 0, f.fighter.Budget.Actions())

	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureInsufficientBudget, out.Result.Reason)
}

func TestExecute_MovementCostSpendsFromPool(t *testing.T) {
	f := newFixture(t)
	f.register(&combat.ActionDefinition{
		ID:   "lunge",
		Cost: combat.ActionCost{UsesAction: true, MovementCost: 1.5},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, Value: 2, DamageType: "piercing"},
		},
	})

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "lunge",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	assert.Equal(t, 0, f.fighter.Budget.Actions())
	assert.InDelta(t, 4.5, f.fighter.Budget.Movement(), 0.001)
	// A non-attack action drains the leftover swings.
	assert.Equal(t, 0, f.fighter.Budget.AttacksRemaining())
}

func TestExecute_UnknownActionAndVariant(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter",
		ActionID: "moonbeam",
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureUnknownAction, out.Result.Reason)

	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		VariantID: "throw",
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureUnknownVariant, out.Result.Reason)
}

func TestExecute_UpcastValidation(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())
	f.register(fireball())

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:    "fighter",
		ActionID:    "longsword",
		UpcastLevel: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureUpcastNotSupported, out.Result.Reason)

	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:    "fighter",
		ActionID:    "fireball",
		UpcastLevel: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureUpcastLevelExceeded, out.Result.Reason)
}

func TestExecute_UpcastRemapsSlotAndScalesDice(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())
	f.fighter.Resources["spell_slot_3"] = 1
	f.fighter.Resources["spell_slot_5"] = 1

	// Goblin save 10+0 fails DC 15; 2d6+2d6 damage dice.
	f.roller.Push(10, 3, 4, 5, 6)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:    "fighter",
		ActionID:    "fireball",
		UpcastLevel: 2,
		TargetIDs:   []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	assert.Equal(t, 1, f.fighter.Resources["spell_slot_3"], "base slot untouched")
	assert.Equal(t, 0, f.fighter.Resources["spell_slot_5"], "remapped slot spent")
	require.Len(t, out.Result.Effects, 1)
	assert.Equal(t, 18, out.Result.Effects[0].Damage)
}

func TestExecute_SaveHalvesDamage(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())
	f.fighter.Resources["spell_slot_3"] = 1
	f.goblin.SaveBonuses[combat.SaveDexterity] = 3

	// Save 13+3=16 passes DC 15; 2d6 rolls 6,6 halved to 6.
	f.roller.Push(13, 6, 6)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	require.Len(t, out.Result.Saves, 1)
	assert.True(t, out.Result.Saves[0].Success)
	assert.Equal(t, 6, out.Result.Effects[0].Damage)
	assert.Equal(t, 9, f.goblin.HP)
}

func TestExecute_AutoFailSave(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())
	f.fighter.Resources["spell_slot_3"] = 1
	f.statuses.Apply("goblin", &status.View{
		ID:            "paralyzed",
		AutoFailSaves: []combat.SaveType{combat.SaveDexterity},
	})

	// No save roll consumed; only 2d6 damage.
	f.roller.Push(1, 2)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	require.Len(t, out.Result.Saves, 1)
	assert.True(t, out.Result.Saves[0].AutoFailed)
	assert.Equal(t, 3, out.Result.Effects[0].Damage)
}

func TestExecute_CooldownCharges(t *testing.T) {
	f := newFixture(t)
	f.register(&combat.ActionDefinition{
		ID:       "second_wind",
		Cost:     combat.ActionCost{UsesBonusAction: true},
		Cooldown: combat.CooldownSpec{MaxCharges: 1, TurnCooldown: 3},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectHeal, DiceFormula: "1d10", Value: 1},
		},
	})
	f.fighter.HP = 10
	f.roller.Push(7)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter",
		ActionID: "second_wind",
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)
	assert.Equal(t, 18, f.fighter.HP, "untargeted actions resolve against the source")

	// New turn restores the bonus action but not the charge.
	_, err = f.engine.BeginTurn(context.Background(), &action.BeginTurnInput{ActorID: "fighter"})
	require.NoError(t, err)

	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter",
		ActionID: "second_wind",
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureOnCooldown, out.Result.Reason)

	// Two more turn starts complete the three-turn countdown.
	for i := 0; i < 2; i++ {
		_, err = f.engine.BeginTurn(context.Background(), &action.BeginTurnInput{ActorID: "fighter"})
		require.NoError(t, err)
	}

	f.roller.Push(5)
	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter",
		ActionID: "second_wind",
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Success)
}

func TestExecute_CounteredSpellKeepsCost(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())
	f.fighter.Resources["spell_slot_3"] = 1
	f.broker.RegisterRule(reaction.Rule{
		ActorID:    "goblin",
		ReactionID: "counterspell",
		Matches:    func(tr *reaction.Trigger) bool { return tr.Kind == reaction.TriggerSpellCast },
		Cancels:    true,
	})

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	assert.Equal(t, combat.FailureCounteredByReaction, out.Result.Reason)
	assert.Equal(t, 0, f.fighter.Resources["spell_slot_3"], "slot stays spent")
	assert.Equal(t, 0, f.fighter.Budget.Actions(), "action stays spent")
	assert.Equal(t, 0, f.goblin.Budget.Reactions(), "counterspeller paid their reaction")
	assert.Equal(t, 15, f.goblin.HP, "no damage landed")
}

func TestExecute_CounteredSpellKeepsCooldownCharge(t *testing.T) {
	f := newFixture(t)
	def := fireball()
	def.Cooldown = combat.CooldownSpec{MaxCharges: 1, TurnCooldown: 3}
	f.register(def)
	f.fighter.Resources["spell_slot_3"] = 1
	f.broker.RegisterRule(reaction.Rule{
		ActorID:    "goblin",
		ReactionID: "counterspell",
		Matches:    func(tr *reaction.Trigger) bool { return tr.Kind == reaction.TriggerSpellCast },
		Cancels:    true,
	})

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	assert.Equal(t, combat.FailureCounteredByReaction, out.Result.Reason)
	assert.Equal(t, 1, f.tracker.Charges("fighter", def), "countered casts do not burn a charge")
}

func TestExecute_DamageReactionHalves(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())
	f.broker.RegisterRule(reaction.Rule{
		ActorID:          "goblin",
		ReactionID:       "uncanny_dodge",
		Matches:          func(tr *reaction.Trigger) bool { return tr.Kind == reaction.TriggerBeforeDamage },
		DamageMultiplier: 0.5,
	})
	// Hit with 15, damage die 5: (5+3)/2 = 4.
	f.roller.Push(15, 5)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)

	assert.Equal(t, 4, out.Result.Effects[0].Damage)
	assert.Equal(t, 0, f.goblin.Budget.Reactions())
}

func TestExecute_DeclareWindowCancelKeepsCostSpent(t *testing.T) {
	f := newFixture(t)
	f.register(&combat.ActionDefinition{
		ID:   "rally",
		Cost: combat.ActionCost{UsesAction: true},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectHeal, Value: 5},
		},
	})
	f.fighter.HP = 20
	f.bus.SubscribeFunc(action.EventActionDeclared, 0, func(_ context.Context, e rpgevents.Event) error {
		e.Cancel()
		return nil
	})

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter",
		ActionID: "rally",
	})
	require.NoError(t, err)

	assert.Equal(t, combat.FailureCancelledByRule, out.Result.Reason)
	assert.Equal(t, 0, f.fighter.Budget.Actions(), "vetoed declarations keep the charge spent")
	assert.Equal(t, 20, f.fighter.HP, "no effects land after a veto")
}

// budgetObserverFunc adapts a func to budget.Observer.
type budgetObserverFunc func(actorID string, b *budget.Budget)

func (fn budgetObserverFunc) BudgetChanged(actorID string, b *budget.Budget) { fn(actorID, b) }

func TestExecute_PoolDrainedMidCommitIsNotRolledBack(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())

	// A budget observer drains the slot when the action charge is spent,
	// after the gate check but before the pool spend.
	f.fighter.Budget = budget.New(&budget.Config{
		ActorID:     "fighter",
		MaxMovement: 6.0,
		MaxAttacks:  2,
		Observer: budgetObserverFunc(func(_ string, _ *budget.Budget) {
			f.fighter.Resources["spell_slot_3"] = 0
		}),
	})
	f.fighter.Resources["spell_slot_3"] = 1

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	assert.Equal(t, combat.FailureInsufficientResource, out.Result.Reason)
	assert.Equal(t, 0, f.fighter.Budget.Actions(), "action charge stays spent")
}

func TestExecute_StatusGates(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())
	f.register(fireball())
	f.fighter.Resources["spell_slot_3"] = 2

	f.statuses.Apply("fighter", &status.View{ID: "stunned", Tags: []string{status.TagIncapacitated}})
	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureSourceIncapacitated, out.Result.Reason)
	f.statuses.Remove("fighter", "stunned")

	f.statuses.Apply("fighter", &status.View{
		ID:                 "grappled_arm",
		BlockedActionTypes: []combat.ActionType{combat.ActionTypeAction},
	})
	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureStatusBlocked, out.Result.Reason)
	f.statuses.Remove("fighter", "grappled_arm")

	verbal := fireball()
	verbal.VerbalComponent = true
	f.register(verbal)
	f.statuses.Apply("fighter", &status.View{ID: "silence_zone", Tags: []string{status.TagSilenced}})
	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "fireball", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureStatusBlocked, out.Result.Reason)
}

func TestExecute_RequirementGate(t *testing.T) {
	f := newFixture(t)
	def := longsword()
	def.Requirements = []combat.Requirement{{Key: "raging"}}
	f.register(def)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.Equal(t, combat.FailureRequirementNotMet, out.Result.Reason)

	// Inverted requirements accept the opposite answer.
	def2 := longsword()
	def2.ID = "calm_strike"
	def2.Requirements = []combat.Requirement{{Key: "raging", Inverted: true}}
	f.register(def2)
	f.roller.Push(10, 4)

	out, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "calm_strike", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.True(t, out.Result.Success)
}

func TestExecute_InsufficientResource(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "fireball",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	assert.Equal(t, combat.FailureInsufficientResource, out.Result.Reason)
	assert.Equal(t, 1, f.fighter.Budget.Actions(), "gate failures spend nothing")
}

func TestExecute_AttackBonusWindowIsMutable(t *testing.T) {
	f := newFixture(t)
	f.register(longsword())
	f.bus.SubscribeFunc(rpgevents.EventBeforeAttackRoll, 0, func(_ context.Context, e rpgevents.Event) error {
		e.Context().Set(action.ContextKeyAttackBonus, 0)
		return nil
	})
	// Roll 11 + modified bonus 0 misses AC 12.
	f.roller.Push(11)

	out, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID:  "fighter",
		ActionID:  "longsword",
		TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	require.True(t, out.Result.Success)
	assert.False(t, out.Result.Attack[0].Hit)
}

func TestExecute_ConcentrationReplacesPrevious(t *testing.T) {
	f := newFixture(t)
	f.register(&combat.ActionDefinition{
		ID:            "hex",
		Cost:          combat.ActionCost{UsesBonusAction: true},
		Concentration: true,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectApplyStatus, StatusID: "hexed", Duration: 10},
		},
	})
	f.register(&combat.ActionDefinition{
		ID:            "bless",
		Cost:          combat.ActionCost{UsesAction: true},
		Concentration: true,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectApplyStatus, StatusID: "blessed", Duration: 10},
		},
	})

	_, err := f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "hex", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)
	assert.True(t, f.statuses.HasStatus("goblin", "hexed"))

	_, err = f.engine.Execute(context.Background(), &action.ExecuteInput{
		SourceID: "fighter", ActionID: "bless", TargetIDs: []string{"goblin"},
	})
	require.NoError(t, err)

	assert.False(t, f.statuses.HasStatus("goblin", "hexed"), "new concentration drops the old status")
	assert.True(t, f.statuses.HasStatus("goblin", "blessed"))
}

func TestEndRound_RestoresReactionsAndExpiresStatuses(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.goblin.Budget.ConsumeReaction())
	f.statuses.Apply("goblin", &status.View{ID: "burning", Remaining: 1})

	out, err := f.engine.EndRound(context.Background(), &action.EndRoundInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, f.goblin.Budget.Reactions())
	assert.Equal(t, []string{"burning"}, out.ExpiredStatuses["goblin"])
	assert.False(t, f.statuses.HasStatus("goblin", "burning"))
}

func TestPreview_CostAndBounds(t *testing.T) {
	f := newFixture(t)
	f.register(fireball())

	out, err := f.engine.Preview(context.Background(), &action.PreviewInput{
		ActionID:    "fireball",
		UpcastLevel: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"spell_slot_4": 1}, out.Cost.ResourceCosts)
	require.Len(t, out.Effects, 1)
	assert.Equal(t, 3, out.Effects[0].Minimum)
	assert.Equal(t, 18, out.Effects[0].Maximum)
}
