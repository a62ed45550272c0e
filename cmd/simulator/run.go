package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/Interzoneism/tactica/internal/catalog"
	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
	"github.com/Interzoneism/tactica/internal/combat/budget"
	"github.com/Interzoneism/tactica/internal/combat/cooldown"
	"github.com/Interzoneism/tactica/internal/effects"
	"github.com/Interzoneism/tactica/internal/oracle"
	"github.com/Interzoneism/tactica/internal/orchestrators/action"
	"github.com/Interzoneism/tactica/internal/pkg/clock"
	"github.com/Interzoneism/tactica/internal/pkg/idgen"
	"github.com/Interzoneism/tactica/internal/reaction"
	cooldownledger "github.com/Interzoneism/tactica/internal/repositories/cooldown_ledger"
	redisclient "github.com/Interzoneism/tactica/internal/redis"
	"github.com/Interzoneism/tactica/internal/status"
)

var (
	rounds    int
	redisAddr string
	combatID  string
	verbose   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted skirmish",
	Long:  `Run a small scripted skirmish through the resolution engine and print each invocation's outcome.`,
	RunE:  runSkirmish,
}

func init() {
	runCmd.Flags().IntVar(&rounds, "rounds", 3, "number of rounds to simulate")
	runCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis endpoint for cooldown ledger persistence (optional)")
	runCmd.Flags().StringVar(&combatID, "combat-id", "skirmish_demo", "combat ID for ledger persistence")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// rosterSpawner places summons straight into the roster with a minimal
// stat line.
type rosterSpawner struct {
	roster *action.MapRoster
}

func (s *rosterSpawner) Spawn(_ context.Context, templateID, summonID string, x, y int) error {
	s.roster.Add(&actor.Actor{
		ID:    summonID,
		Name:  templateID,
		Team:  "blue",
		HP:    11,
		MaxHP: 11,
		AC:    13,
		X:     x,
		Y:     y,
		Budget: budget.New(&budget.Config{
			ActorID:     summonID,
			MaxMovement: 8.0,
		}),
		Resources: map[string]int{},
	})
	return nil
}

func runSkirmish(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := cmd.Context()

	bus := rpgevents.NewBus()
	budgetEvents := action.NewBudgetPublisher(bus)

	fighter := &actor.Actor{
		ID: "fighter", Name: "Sera", Team: "blue",
		HP: 34, MaxHP: 34, AC: 17, X: 0, Y: 0,
		Budget:      budget.New(&budget.Config{ActorID: "fighter", MaxMovement: 6.0, MaxAttacks: 2, Observer: budgetEvents}),
		Resources:   map[string]int{},
		SaveBonuses: map[combat.SaveType]int{combat.SaveDexterity: 1},
	}
	mage := &actor.Actor{
		ID: "mage", Name: "Orin", Team: "blue",
		HP: 22, MaxHP: 22, AC: 12, X: 1, Y: 1,
		Budget:      budget.New(&budget.Config{ActorID: "mage", MaxMovement: 6.0, Observer: budgetEvents}),
		Resources:   map[string]int{"spell_slot_3": 1, "spell_slot_4": 1},
		SaveBonuses: map[combat.SaveType]int{combat.SaveDexterity: 2},
	}
	ogre := &actor.Actor{
		ID: "ogre", Name: "Gnash", Team: "red",
		HP: 59, MaxHP: 59, AC: 11, X: 4, Y: 0,
		Budget:      budget.New(&budget.Config{ActorID: "ogre", MaxMovement: 8.0, Observer: budgetEvents}),
		Resources:   map[string]int{},
		SaveBonuses: map[combat.SaveType]int{combat.SaveDexterity: -1},
	}
	roster := action.NewMapRoster(fighter, mage, ogre)

	statuses := status.NewStore()
	roller := dice.DefaultRoller

	dispatcher, err := effects.NewDispatcher(&effects.Config{EventBus: bus})
	if err != nil {
		return err
	}
	dispatcher.Register(combat.EffectDamage, effects.NewDamageHandler(roller))
	dispatcher.Register(combat.EffectHeal, effects.NewHealHandler(roller))
	dispatcher.Register(combat.EffectApplyStatus, effects.NewStatusHandler(statuses, nil))
	dispatcher.Register(combat.EffectForcedMovement, effects.NewPushHandler())
	dispatcher.Register(combat.EffectSummon, effects.NewSummonHandler(idgen.NewUUID("summon"), &rosterSpawner{roster: roster}))

	rollOracle, err := oracle.New(&oracle.Config{Roller: roller})
	if err != nil {
		return err
	}

	broker := reaction.NewTableBroker()
	broker.CanReact = func(actorID string) bool {
		a, ok := roster.GetActor(actorID)
		return ok && a.Alive() && a.Budget.Reactions() > 0
	}
	broker.RegisterRule(reaction.Rule{
		ActorID:    "mage",
		ReactionID: "shield_ally",
		Matches: func(tr *reaction.Trigger) bool {
			return tr.Kind == reaction.TriggerBeforeDamage && tr.SourceID == "ogre"
		},
		DamageMultiplier: 0.5,
	})

	tracker := cooldown.NewTracker()
	ledger, err := openLedger(ctx, tracker)
	if err != nil {
		return err
	}

	engine, err := action.NewOrchestrator(&action.Config{
		Catalog:       demoCatalog(),
		Oracle:        rollOracle,
		Statuses:      statuses,
		Reactions:     broker,
		Concentration: action.NewConcentrationTracker(),
		Dispatcher:    dispatcher,
		Cooldowns:     tracker,
		Roster:        roster,
		EventBus:      bus,
		IDGenerator:   idgen.NewUUID("inv"),
		Predicates: map[string]action.Predicate{
			"wielding_melee_weapon": func(a *actor.Actor) bool { return a.ID == "fighter" || a.ID == "ogre" },
		},
	})
	if err != nil {
		return err
	}

	script := map[string][][]*action.ExecuteInput{
		"fighter": {
			{{SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"ogre"}}, {SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"ogre"}}},
			{{SourceID: "fighter", ActionID: "second_wind"}, {SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"ogre"}}},
			{{SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"ogre"}}, {SourceID: "fighter", ActionID: "longsword", TargetIDs: []string{"ogre"}}},
		},
		"mage": {
			{{SourceID: "mage", ActionID: "fireball", UpcastLevel: 1, TargetIDs: []string{"ogre"}}},
			{{SourceID: "mage", ActionID: "summon_wolf"}},
			{{SourceID: "mage", ActionID: "firebolt", TargetIDs: []string{"ogre"}}},
		},
		"ogre": {
			{{SourceID: "ogre", ActionID: "greatclub", TargetIDs: []string{"fighter"}}},
			{{SourceID: "ogre", ActionID: "shove", TargetIDs: []string{"fighter"}}},
			{{SourceID: "ogre", ActionID: "greatclub", TargetIDs: []string{"mage"}}},
		},
	}

	order := []string{"fighter", "mage", "ogre"}
	for round := 0; round < rounds; round++ {
		fmt.Printf("--- round %d ---\n", round+1)
		for _, actorID := range order {
			a, _ := roster.GetActor(actorID)
			if !a.Alive() {
				continue
			}
			if _, err := engine.BeginTurn(ctx, &action.BeginTurnInput{ActorID: actorID}); err != nil {
				return err
			}
			turns := script[actorID]
			if round >= len(turns) {
				continue
			}
			for _, input := range turns[round] {
				out, err := engine.Execute(ctx, input)
				if err != nil {
					return err
				}
				printResult(out.Result)
			}
		}
		if _, err := engine.EndRound(ctx, &action.EndRoundInput{}); err != nil {
			return err
		}
	}

	if ledger != nil {
		if _, err := ledger.Save(ctx, cooldownledger.SaveInput{CombatID: combatID, States: tracker.Export()}); err != nil {
			return err
		}
		slog.Info("cooldown ledger saved", "combat_id", combatID)
	}

	fmt.Println("--- final state ---")
	for _, id := range roster.ActorIDs() {
		a, _ := roster.GetActor(id)
		fmt.Printf("%-12s %3d/%3d HP\n", a.Name, a.HP, a.MaxHP)
	}
	return nil
}

// openLedger connects the optional redis-backed cooldown ledger and
// restores any persisted state for the combat.
func openLedger(ctx context.Context, tracker *cooldown.Tracker) (cooldownledger.Repository, error) {
	if redisAddr == "" {
		return nil, nil
	}
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	repo, err := cooldownledger.NewRedisRepository(&cooldownledger.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}
	loaded, err := repo.Load(ctx, cooldownledger.LoadInput{CombatID: combatID})
	if err != nil {
		return nil, err
	}
	if len(loaded.States) > 0 {
		tracker.Import(loaded.States)
		slog.Info("cooldown ledger restored", "combat_id", combatID, "entries", len(loaded.States))
	}
	return repo, nil
}

func printResult(r *combat.ActionExecutionResult) {
	if !r.Success {
		fmt.Printf("  %s: %s failed (%s: %s)\n", r.SourceID, r.ActionID, r.Reason, r.Message)
		return
	}
	fmt.Printf("  %s: %s", r.SourceID, r.ActionID)
	for _, atk := range r.Attack {
		outcome := "miss"
		if atk.Critical {
			outcome = "crit"
		} else if atk.Hit {
			outcome = "hit"
		}
		fmt.Printf(" [%d vs %s: %s]", atk.Total, atk.TargetID, outcome)
	}
	for _, save := range r.Saves {
		outcome := "failed"
		if save.Success {
			outcome = "saved"
		}
		fmt.Printf(" [%s %s DC %d: %s]", save.TargetID, save.SaveType, save.DC, outcome)
	}
	for _, eff := range r.Effects {
		fmt.Printf(" -> %s: %s", eff.TargetID, eff.Description)
	}
	fmt.Println()
}

func demoCatalog() catalog.Source {
	base := catalog.NewRegistry()
	base.Register(&combat.ActionDefinition{
		ID:          "longsword",
		Name:        "Longsword",
		Cost:        combat.ActionCost{UsesAction: true},
		AttackType:  combat.AttackTypeMeleeWeapon,
		AttackBonus: 6,
		Requirements: []combat.Requirement{
			{Key: "wielding_melee_weapon"},
		},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "1d8", Value: 4, DamageType: "slashing"},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:          "greatclub",
		Name:        "Greatclub",
		Cost:        combat.ActionCost{UsesAction: true},
		AttackType:  combat.AttackTypeMeleeWeapon,
		AttackBonus: 6,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "2d8", Value: 4, DamageType: "bludgeoning"},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:       "shove",
		Name:     "Shove",
		Cost:     combat.ActionCost{UsesAction: true},
		SaveType: combat.SaveStrength,
		SaveDC:   14,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectForcedMovement, Value: 2},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:          "firebolt",
		Name:        "Fire Bolt",
		Cost:        combat.ActionCost{UsesAction: true},
		AttackType:  combat.AttackTypeRangedSpell,
		AttackBonus: 7,
		SpellTag:    true,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "2d10", DamageType: "fire"},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:              "fireball",
		Name:            "Fireball",
		Cost:            combat.ActionCost{UsesAction: true, ResourceCosts: map[string]int{"spell_slot_3": 1}},
		SaveType:        combat.SaveDexterity,
		SaveDC:          15,
		SpellTag:        true,
		VerbalComponent: true,
		Upcast:          &combat.UpcastScaling{MaxLevels: 6, DicePerLevel: "1d6"},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectDamage, DiceFormula: "8d6", DamageType: "fire", SaveTakesHalf: true},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:       "second_wind",
		Name:     "Second Wind",
		Cost:     combat.ActionCost{UsesBonusAction: true},
		Cooldown: combat.CooldownSpec{MaxCharges: 1, RoundCooldown: 2},
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectHeal, DiceFormula: "1d10", Value: 5},
		},
	})
	base.Register(&combat.ActionDefinition{
		ID:            "summon_wolf",
		Name:          "Summon Wolf",
		Cost:          combat.ActionCost{UsesAction: true},
		SpellTag:      true,
		Concentration: true,
		Effects: []*combat.EffectDefinition{
			{Type: combat.EffectSummon, Params: map[string]string{"template_id": "wolf"}},
		},
	})

	// Campaign layer: house-ruled dash costs a bonus action.
	local := catalog.NewRegistry()
	local.Register(&combat.ActionDefinition{
		ID:   "cunning_dash",
		Name: "Cunning Dash",
		Cost: combat.ActionCost{UsesBonusAction: true},
	})
	return catalog.NewTwoTier(local, base)
}
