package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Interzoneism/tactica/internal/catalog"
	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
	"github.com/Interzoneism/tactica/internal/combat/cooldown"
	costmodel "github.com/Interzoneism/tactica/internal/combat/cost"
	"github.com/Interzoneism/tactica/internal/effects"
	"github.com/Interzoneism/tactica/internal/errors"
	"github.com/Interzoneism/tactica/internal/oracle"
	"github.com/Interzoneism/tactica/internal/pkg/idgen"
	"github.com/Interzoneism/tactica/internal/reaction"
	"github.com/Interzoneism/tactica/internal/status"
)

// Config holds the orchestrator's dependencies.
type Config struct {
	Catalog       catalog.Source
	Oracle        oracle.Oracle
	Statuses      *status.Store
	Reactions     reaction.Broker
	Concentration ConcentrationTracker
	Dispatcher    *effects.Dispatcher
	Cooldowns     *cooldown.Tracker
	Roster        Roster
	EventBus      rpgevents.EventBus
	IDGenerator   idgen.Generator

	// Predicates backs named requirement checks; optional.
	Predicates map[string]Predicate
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Oracle == nil {
		vb.RequiredField("Oracle")
	}
	if c.Statuses == nil {
		vb.RequiredField("Statuses")
	}
	if c.Reactions == nil {
		vb.RequiredField("Reactions")
	}
	if c.Concentration == nil {
		vb.RequiredField("Concentration")
	}
	if c.Dispatcher == nil {
		vb.RequiredField("Dispatcher")
	}
	if c.Cooldowns == nil {
		vb.RequiredField("Cooldowns")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	catalog       catalog.Source
	oracle        oracle.Oracle
	statuses      *status.Store
	reactions     reaction.Broker
	concentration ConcentrationTracker
	dispatcher    *effects.Dispatcher
	cooldowns     *cooldown.Tracker
	roster        Roster
	eventBus      rpgevents.EventBus
	idGen         idgen.Generator
	predicates    map[string]Predicate
}

// NewOrchestrator creates the resolution engine.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{
		catalog:       cfg.Catalog,
		oracle:        cfg.Oracle,
		statuses:      cfg.Statuses,
		reactions:     cfg.Reactions,
		concentration: cfg.Concentration,
		dispatcher:    cfg.Dispatcher,
		cooldowns:     cfg.Cooldowns,
		roster:        cfg.Roster,
		eventBus:      cfg.EventBus,
		idGen:         cfg.IDGenerator,
		predicates:    cfg.Predicates,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// Execute implements Service.
func (o *orchestrator) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	source, ok := o.roster.GetActor(input.SourceID)
	if !ok {
		return nil, errors.NotFoundf("actor %s not found", input.SourceID)
	}

	invocationID := o.idGen.Generate()
	log := slog.With(
		"invocation_id", invocationID,
		"source_id", input.SourceID,
		"action_id", input.ActionID,
	)

	def, ok := o.catalog.GetAction(input.ActionID)
	if !ok {
		return o.fail(ctx, log, input, combat.FailureUnknownAction,
			fmt.Sprintf("action %s is not in the catalog", input.ActionID))
	}

	var variant *combat.ActionVariant
	if input.VariantID != "" {
		variant, ok = def.Variant(input.VariantID)
		if !ok {
			return o.fail(ctx, log, input, combat.FailureUnknownVariant,
				fmt.Sprintf("action %s has no variant %s", input.ActionID, input.VariantID))
		}
	}

	if input.UpcastLevel > 0 {
		if def.Upcast == nil {
			return o.fail(ctx, log, input, combat.FailureUpcastNotSupported,
				fmt.Sprintf("action %s does not support upcasting", input.ActionID))
		}
		if input.UpcastLevel > def.Upcast.MaxLevels {
			return o.fail(ctx, log, input, combat.FailureUpcastLevelExceeded,
				fmt.Sprintf("upcast level %d exceeds maximum %d", input.UpcastLevel, def.Upcast.MaxLevels))
		}
	}

	effective, err := costmodel.BuildEffective(def, variant, input.UpcastLevel)
	if err != nil {
		return nil, errors.Wrap(err, "deriving effective cost")
	}
	effectDefs := costmodel.ApplyModifiers(def, variant, input.UpcastLevel)

	if reason, msg := o.gate(source, def, effective); reason != combat.FailureNone {
		return o.fail(ctx, log, input, reason, msg)
	}

	if reason, msg := o.commit(source, def, effective); reason != combat.FailureNone {
		// Commit failures past the economy check leave spent charges
		// spent; partial payment is visible to the caller.
		return o.fail(ctx, log, input, reason, msg)
	}

	// Declaration follows commitment: a veto here does not refund the
	// spent charges.
	if o.declareCancelled(ctx, source, def, input) {
		return o.fail(ctx, log, input, combat.FailureCancelledByRule, "declaration vetoed")
	}

	if def.SpellTag && !def.Uncounterable {
		countered, reactors, rerr := o.castWindow(ctx, source, def, input)
		if rerr != nil {
			return nil, rerr
		}
		if countered {
			return o.fail(ctx, log, input, combat.FailureCounteredByReaction,
				fmt.Sprintf("countered by %s", reactors))
		}
	}

	result := &combat.ActionExecutionResult{
		Success:     true,
		ActionID:    input.ActionID,
		VariantID:   input.VariantID,
		UpcastLevel: input.UpcastLevel,
		SourceID:    input.SourceID,
		TargetIDs:   input.TargetIDs,
	}

	targetIDs := input.TargetIDs
	if len(targetIDs) == 0 {
		// Untargeted actions resolve against the source.
		targetIDs = []string{input.SourceID}
	}

	for _, targetID := range targetIDs {
		target, ok := o.roster.GetActor(targetID)
		if !ok {
			return nil, errors.NotFoundf("target %s not found", targetID)
		}
		if err := o.resolveTarget(ctx, log, def, effectDefs, source, target, input, result); err != nil {
			return nil, err
		}
	}

	// Cooldown charges are spent after effect dispatch, so an aborted
	// invocation (countered, drained pool) does not burn one.
	if !o.cooldowns.Consume(source.ID, def) {
		// Availability was gated before commit; reaching this means the
		// ledger changed mid-resolution.
		slog.Warn("cooldown charge missing at consumption", "action_id", def.ID, "source_id", source.ID)
	}

	if def.Concentration {
		o.beginConcentration(ctx, source, def, effectDefs)
	}

	o.publishResolved(ctx, source, input, result)
	log.Info("action resolved",
		"targets", len(targetIDs),
		"effects", len(result.Effects),
	)

	return &ExecuteOutput{Result: result}, nil
}

// gate runs every precondition that must hold before anything is spent.
// Order matters: the reported reason is the first gate that fails.
func (o *orchestrator) gate(source *actor.Actor, def *combat.ActionDefinition, effective combat.ActionCost) (combat.FailureReason, string) {
	if !o.cooldowns.Available(source.ID, def) {
		return combat.FailureOnCooldown, fmt.Sprintf("%s has no charges left", def.ID)
	}

	for _, req := range def.Requirements {
		pred, ok := o.predicates[req.Key]
		if !ok {
			return combat.FailureRequirementNotMet, fmt.Sprintf("unknown requirement %s", req.Key)
		}
		held := pred(source)
		if req.Inverted {
			held = !held
		}
		if !held {
			return combat.FailureRequirementNotMet, fmt.Sprintf("requirement %s not met", req.Key)
		}
	}

	if !source.Alive() || o.statuses.HasStatus(source.ID, status.TagIncapacitated) {
		return combat.FailureSourceIncapacitated, "source cannot act"
	}

	kind, hasKind := effective.ActionKind()
	for _, view := range o.statuses.ActiveStatuses(source.ID) {
		if view.BlocksAllActions {
			return combat.FailureStatusBlocked, fmt.Sprintf("blocked by %s", view.ID)
		}
		if hasKind {
			for _, blocked := range view.BlockedActionTypes {
				if blocked == kind {
					return combat.FailureStatusBlocked, fmt.Sprintf("%s blocks %s actions", view.ID, kind)
				}
			}
		}
	}
	if def.SpellTag && def.VerbalComponent && o.statuses.HasStatus(source.ID, status.TagSilenced) {
		return combat.FailureStatusBlocked, "silenced: verbal spells unavailable"
	}

	if reason, msg := o.checkEconomy(source, def, effective); reason != combat.FailureNone {
		return reason, msg
	}

	for key, amount := range effective.ResourceCosts {
		if !source.CanSpendResource(key, amount) {
			return combat.FailureInsufficientResource,
				fmt.Sprintf("need %d %s, have %d", amount, key, source.Resources[key])
		}
	}

	return combat.FailureNone, ""
}

func (o *orchestrator) checkEconomy(source *actor.Actor, def *combat.ActionDefinition, effective combat.ActionCost) (combat.FailureReason, string) {
	if def.AttackType.IsWeapon() && effective.UsesAction {
		if source.Budget.AttacksRemaining() < 1 || source.Budget.Actions() < 1 {
			return combat.FailureInsufficientBudget, "no attacks remaining"
		}
		stripped := effective
		stripped.UsesAction = false
		if ok, why := source.Budget.CanPay(stripped); !ok {
			return combat.FailureInsufficientBudget, why
		}
		return combat.FailureNone, ""
	}
	if ok, why := source.Budget.CanPay(effective); !ok {
		return combat.FailureInsufficientBudget, why
	}
	return combat.FailureNone, ""
}

// commit spends the effective cost. Weapon attacks draw from the attack
// sub-pool; any other action charge drains the pool so leftover swings
// never leak past a non-attack action. Once spending starts there is no
// rollback.
func (o *orchestrator) commit(source *actor.Actor, def *combat.ActionDefinition, effective combat.ActionCost) (combat.FailureReason, string) {
	if def.AttackType.IsWeapon() && effective.UsesAction {
		if _, ok := source.Budget.ConsumeAttack(); !ok {
			return combat.FailureInsufficientBudget, "no attacks remaining"
		}
		stripped := effective
		stripped.UsesAction = false
		if ok, why := source.Budget.Consume(stripped); !ok {
			return combat.FailureInsufficientBudget, why
		}
	} else {
		if effective.UsesAction {
			source.Budget.ResetAttacks()
		}
		if ok, why := source.Budget.Consume(effective); !ok {
			return combat.FailureInsufficientBudget, why
		}
	}

	for key, amount := range effective.ResourceCosts {
		if !source.SpendResource(key, amount) {
			return combat.FailureInsufficientResource,
				fmt.Sprintf("pool %s ran dry mid-commit", key)
		}
	}

	return combat.FailureNone, ""
}

func (o *orchestrator) declareCancelled(ctx context.Context, source *actor.Actor, def *combat.ActionDefinition, input *ExecuteInput) bool {
	event := rpgevents.NewGameEvent(EventActionDeclared, source.Entity(), nil)
	event.Context().Set(ContextKeyActionID, input.ActionID)
	event.Context().Set(ContextKeyVariantID, input.VariantID)
	event.Context().Set(ContextKeyUpcastLevel, input.UpcastLevel)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("declare window publish failed", "error", err)
	}
	return event.IsCancelled()
}

// castWindow opens the counterspell window and charges each reactor's
// reaction. The source's cost stays spent even when countered.
func (o *orchestrator) castWindow(ctx context.Context, source *actor.Actor, def *combat.ActionDefinition, input *ExecuteInput) (bool, []string, error) {
	trigger := &reaction.Trigger{
		Kind:       reaction.TriggerSpellCast,
		ActionID:   input.ActionID,
		SourceID:   input.SourceID,
		TargetIDs:  input.TargetIDs,
		SpellLevel: input.UpcastLevel,
	}
	resolution, err := o.reactions.ResolveTrigger(ctx, trigger)
	if err != nil {
		return false, nil, errors.Wrap(err, "resolving cast window")
	}
	names := o.chargeReactors(resolution.Reactors)

	event := rpgevents.NewGameEvent(rpgevents.EventOnSpellCast, source.Entity(), nil)
	event.Context().Set(ContextKeyActionID, input.ActionID)
	event.Context().Set(ContextKeyUpcastLevel, input.UpcastLevel)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("spell cast publish failed", "error", err)
	}

	return resolution.Cancelled, names, nil
}

func (o *orchestrator) chargeReactors(reactors []reaction.Reactor) []string {
	names := make([]string, 0, len(reactors))
	for _, r := range reactors {
		names = append(names, r.ActorID)
		a, ok := o.roster.GetActor(r.ActorID)
		if !ok {
			continue
		}
		if !a.Budget.ConsumeReaction() {
			slog.Warn("reactor had no reaction charge", "actor_id", r.ActorID, "reaction_id", r.ReactionID)
		}
	}
	return names
}

func (o *orchestrator) resolveTarget(
	ctx context.Context,
	log *slog.Logger,
	def *combat.ActionDefinition,
	effectDefs []*combat.EffectDefinition,
	source, target *actor.Actor,
	input *ExecuteInput,
	result *combat.ActionExecutionResult,
) error {
	inv := &effects.Invocation{
		ActionID:         input.ActionID,
		Source:           source,
		Target:           target,
		UpcastLevel:      input.UpcastLevel,
		DamageMultiplier: 1.0,
	}

	if def.AttackType != combat.AttackTypeNone {
		attack, err := o.rollAttack(ctx, def, source, target)
		if err != nil {
			return err
		}
		result.Attack = append(result.Attack, *attack)
		if !attack.Hit {
			log.Debug("attack missed", "target_id", target.ID, "roll", attack.Roll)
			return nil
		}
		inv.Critical = attack.Critical
	} else if def.SaveType != combat.SaveNone {
		save, err := o.rollSave(ctx, def, target)
		if err != nil {
			return err
		}
		result.Saves = append(result.Saves, combat.SaveRollResult{
			TargetID:   target.ID,
			SaveType:   def.SaveType,
			Roll:       save.Roll,
			Total:      save.Total,
			DC:         def.SaveDC,
			Success:    save.Success,
			AutoFailed: save.AutoFailed,
		})
		inv.Save = save
	}

	if hasDamage(effectDefs) {
		multiplier, err := o.damageWindow(ctx, source, target, input)
		if err != nil {
			return err
		}
		inv.DamageMultiplier = multiplier
	}

	outcomes, err := o.dispatcher.Dispatch(ctx, effectDefs, inv)
	if err != nil {
		return errors.Wrapf(err, "dispatching effects for %s", input.ActionID)
	}
	result.Effects = append(result.Effects, outcomes...)
	return nil
}

func (o *orchestrator) rollAttack(ctx context.Context, def *combat.ActionDefinition, source, target *actor.Actor) (*combat.AttackRollResult, error) {
	before := rpgevents.NewGameEvent(rpgevents.EventBeforeAttackRoll, source.Entity(), target.Entity())
	before.Context().Set(ContextKeyActionID, def.ID)
	before.Context().Set(ContextKeyAttackBonus, def.AttackBonus)
	before.Context().Set(ContextKeyTargetAC, target.AC)
	if err := o.eventBus.Publish(ctx, before); err != nil {
		slog.Warn("before attack roll publish failed", "error", err)
	}

	query := &oracle.AttackQuery{
		AttackerID:    source.ID,
		TargetID:      target.ID,
		AttackBonus:   intFromContext(before, ContextKeyAttackBonus, def.AttackBonus),
		TargetAC:      target.AC,
		CritThreshold: def.CritThreshold,
	}
	for _, view := range o.statuses.ActiveStatuses(source.ID) {
		if view.AttackAdvantage {
			query.AdvantageSources = append(query.AdvantageSources, view.ID)
		}
		if view.AttackDisadvantage {
			query.DisadvantageSources = append(query.DisadvantageSources, view.ID)
		}
	}
	for _, view := range o.statuses.ActiveStatuses(target.ID) {
		if view.GrantsAdvantageToAttackers {
			query.AdvantageSources = append(query.AdvantageSources, view.ID)
		}
	}

	res, err := o.oracle.RollAttack(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "attack roll failed")
	}

	after := rpgevents.NewGameEvent(rpgevents.EventAfterAttackRoll, source.Entity(), target.Entity())
	after.Context().Set(ContextKeyActionID, def.ID)
	after.Context().Set(ContextKeySuccess, res.Hit)
	if err := o.eventBus.Publish(ctx, after); err != nil {
		slog.Warn("after attack roll publish failed", "error", err)
	}

	return &combat.AttackRollResult{
		TargetID: target.ID,
		Roll:     res.Roll,
		Total:    res.Total,
		Hit:      res.Hit,
		Critical: res.Critical,
		Fumble:   res.Fumble,
	}, nil
}

func (o *orchestrator) rollSave(ctx context.Context, def *combat.ActionDefinition, target *actor.Actor) (*oracle.SaveResult, error) {
	before := rpgevents.NewGameEvent(rpgevents.EventBeforeSavingThrow, target.Entity(), nil)
	before.Context().Set(ContextKeyActionID, def.ID)
	before.Context().Set(ContextKeySaveDC, def.SaveDC)
	if err := o.eventBus.Publish(ctx, before); err != nil {
		slog.Warn("before saving throw publish failed", "error", err)
	}

	query := &oracle.SaveQuery{
		ActorID:  target.ID,
		SaveType: def.SaveType,
		Bonus:    target.SaveBonus(def.SaveType),
		DC:       intFromContext(before, ContextKeySaveDC, def.SaveDC),
	}
	for _, view := range o.statuses.ActiveStatuses(target.ID) {
		for _, autoFail := range view.AutoFailSaves {
			if autoFail == def.SaveType {
				query.AutoFail = true
			}
		}
	}

	res, err := o.oracle.RollSave(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "saving throw failed")
	}

	after := rpgevents.NewGameEvent(rpgevents.EventAfterSavingThrow, target.Entity(), nil)
	after.Context().Set(ContextKeyActionID, def.ID)
	after.Context().Set(ContextKeySuccess, res.Success)
	if err := o.eventBus.Publish(ctx, after); err != nil {
		slog.Warn("after saving throw publish failed", "error", err)
	}

	return res, nil
}

// damageWindow lets defenders react before damage lands and returns the
// aggregate multiplier.
func (o *orchestrator) damageWindow(ctx context.Context, source, target *actor.Actor, input *ExecuteInput) (float64, error) {
	trigger := &reaction.Trigger{
		Kind:      reaction.TriggerBeforeDamage,
		ActionID:  input.ActionID,
		SourceID:  source.ID,
		TargetIDs: []string{target.ID},
	}
	resolution, err := o.reactions.ResolveTrigger(ctx, trigger)
	if err != nil {
		return 0, errors.Wrap(err, "resolving damage window")
	}
	o.chargeReactors(resolution.Reactors)

	event := rpgevents.NewGameEvent(rpgevents.EventBeforeTakeDamage, source.Entity(), target.Entity())
	event.Context().Set(ContextKeyActionID, input.ActionID)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("before take damage publish failed", "error", err)
	}

	return resolution.DamageMultiplier, nil
}

func hasDamage(effectDefs []*combat.EffectDefinition) bool {
	for _, e := range effectDefs {
		if e.Type == combat.EffectDamage {
			return true
		}
	}
	return false
}

// beginConcentration records the maintained status, tearing down the
// previously held one across the roster.
func (o *orchestrator) beginConcentration(ctx context.Context, source *actor.Actor, def *combat.ActionDefinition, effectDefs []*combat.EffectDefinition) {
	statusID := concentrationStatusID(def, effectDefs)
	previous, replaced := o.concentration.Begin(source.ID, statusID)
	if !replaced {
		return
	}
	for _, actorID := range o.roster.ActorIDs() {
		if o.statuses.Remove(actorID, previous) {
			o.publishConditionRemoved(ctx, actorID, previous)
		}
	}
	slog.Debug("concentration replaced", "actor_id", source.ID, "previous", previous, "current", statusID)
}

func concentrationStatusID(def *combat.ActionDefinition, effectDefs []*combat.EffectDefinition) string {
	if def.ConcentrationStatusID != "" {
		return def.ConcentrationStatusID
	}
	for _, e := range effectDefs {
		if e.Type == combat.EffectApplyStatus && e.StatusID != "" {
			return e.StatusID
		}
	}
	return def.ID
}

func (o *orchestrator) publishConditionRemoved(ctx context.Context, actorID, statusID string) {
	event := rpgevents.NewGameEvent(rpgevents.EventOnConditionRemoved, rosterEntity(actorID), nil)
	event.Context().Set(ContextKeyStatusID, statusID)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("condition removed publish failed", "error", err)
	}
}

func (o *orchestrator) publishResolved(ctx context.Context, source *actor.Actor, input *ExecuteInput, result *combat.ActionExecutionResult) {
	event := rpgevents.NewGameEvent(EventActionResolved, source.Entity(), nil)
	event.Context().Set(ContextKeyActionID, input.ActionID)
	event.Context().Set(ContextKeySuccess, result.Success)
	event.Context().Set(ContextKeyReason, string(result.Reason))
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("action resolved publish failed", "error", err)
	}
}

func (o *orchestrator) fail(ctx context.Context, log *slog.Logger, input *ExecuteInput, reason combat.FailureReason, message string) (*ExecuteOutput, error) {
	result := combat.Failed(input.ActionID, input.SourceID, reason, message)
	result.VariantID = input.VariantID
	result.UpcastLevel = input.UpcastLevel
	result.TargetIDs = input.TargetIDs

	if source, ok := o.roster.GetActor(input.SourceID); ok {
		o.publishResolved(ctx, source, input, result)
	}
	log.Info("action failed", "reason", reason, "message", message)
	return &ExecuteOutput{Result: result}, nil
}

// Preview implements Service.
func (o *orchestrator) Preview(_ context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	def, ok := o.catalog.GetAction(input.ActionID)
	if !ok {
		return nil, errors.NotFoundf("action %s not found", input.ActionID)
	}
	var variant *combat.ActionVariant
	if input.VariantID != "" {
		variant, ok = def.Variant(input.VariantID)
		if !ok {
			return nil, errors.NotFoundf("variant %s not found", input.VariantID)
		}
	}
	if input.UpcastLevel > 0 {
		if def.Upcast == nil {
			return nil, errors.InvalidArgumentf("action %s does not support upcasting", input.ActionID)
		}
		if input.UpcastLevel > def.Upcast.MaxLevels {
			return nil, errors.InvalidArgumentf("upcast level %d exceeds maximum %d", input.UpcastLevel, def.Upcast.MaxLevels)
		}
	}

	effective, err := costmodel.BuildEffective(def, variant, input.UpcastLevel)
	if err != nil {
		return nil, err
	}
	previews, err := o.dispatcher.Preview(costmodel.ApplyModifiers(def, variant, input.UpcastLevel))
	if err != nil {
		return nil, err
	}
	return &PreviewOutput{Cost: effective, Effects: previews}, nil
}

// BeginTurn implements Service.
func (o *orchestrator) BeginTurn(ctx context.Context, input *BeginTurnInput) (*BeginTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	a, ok := o.roster.GetActor(input.ActorID)
	if !ok {
		return nil, errors.NotFoundf("actor %s not found", input.ActorID)
	}

	a.Budget.ResetForTurn()
	o.cooldowns.TickTurnStart(input.ActorID)

	event := rpgevents.NewGameEvent(rpgevents.EventOnTurnStart, a.Entity(), nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("turn start publish failed", "error", err)
	}

	return &BeginTurnOutput{}, nil
}

// EndRound implements Service.
func (o *orchestrator) EndRound(ctx context.Context, _ *EndRoundInput) (*EndRoundOutput, error) {
	for _, actorID := range o.roster.ActorIDs() {
		if a, ok := o.roster.GetActor(actorID); ok {
			a.Budget.ResetReactionForRound()
		}
	}
	o.cooldowns.TickRoundEnd()

	expired := o.statuses.TickRound()
	out := &EndRoundOutput{ExpiredStatuses: make(map[string][]string, len(expired))}
	for actorID, views := range expired {
		for _, v := range views {
			out.ExpiredStatuses[actorID] = append(out.ExpiredStatuses[actorID], v.ID)
			o.publishConditionRemoved(ctx, actorID, v.ID)
		}
	}

	// Concentration whose status expired everywhere is broken.
	for _, actorID := range o.roster.ActorIDs() {
		statusID, ok := o.concentration.Active(actorID)
		if !ok {
			continue
		}
		held := false
		for _, otherID := range o.roster.ActorIDs() {
			if o.statuses.HasStatus(otherID, statusID) {
				held = true
				break
			}
		}
		if !held {
			o.concentration.Break(actorID)
		}
	}

	event := rpgevents.NewGameEvent(EventRoundEnded, nil, nil)
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("round ended publish failed", "error", err)
	}

	return out, nil
}

func rosterEntity(id string) core.Entity {
	return simpleEntity{id: id}
}

type simpleEntity struct {
	id string
}

func (e simpleEntity) GetID() string   { return e.id }
func (e simpleEntity) GetType() string { return "actor" }
