// Package reaction brokers interrupt windows: when an action is declared,
// a spell is cast, or damage is about to land, eligible opponents may
// spend their reaction to cancel or reshape the outcome.
package reaction

import (
	"context"
	"sync"
)

//go:generate mockgen -destination=mock/mock_broker.go -package=reactionmock github.com/Interzoneism/tactica/internal/reaction Broker

// TriggerKind names the interrupt window being opened.
type TriggerKind string

// Interrupt windows
const (
	TriggerActionDeclared TriggerKind = "action_declared"
	TriggerSpellCast      TriggerKind = "spell_cast"
	TriggerBeforeDamage   TriggerKind = "before_damage"
)

// Trigger describes the event offered to reactors.
type Trigger struct {
	Kind TriggerKind

	ActionID  string
	SourceID  string
	TargetIDs []string

	// SpellLevel is the effective cast level for spell_cast triggers.
	SpellLevel int

	// Damage and DamageType are set for before_damage triggers.
	Damage     int
	DamageType string
}

// Reactor identifies one actor's committed reaction.
type Reactor struct {
	ActorID    string
	ReactionID string
}

// Resolution is the combined outcome of a window. DamageMultiplier is 1.0
// when no reaction touched the damage.
type Resolution struct {
	Cancelled        bool
	DamageMultiplier float64
	Reactors         []Reactor
}

// Broker decides which actors react to a trigger and with what outcome.
// Implementations must not mutate budgets; the engine charges the
// reaction cost for each returned reactor.
type Broker interface {
	EligibleReactors(ctx context.Context, trigger *Trigger) []Reactor
	ResolveTrigger(ctx context.Context, trigger *Trigger) (*Resolution, error)
}

// Rule is one registered reaction policy for TableBroker.
type Rule struct {
	ActorID    string
	ReactionID string

	// Matches decides whether the rule fires for the trigger.
	Matches func(trigger *Trigger) bool

	// Cancels aborts the triggering action outright (counterspell).
	Cancels bool

	// DamageMultiplier scales before_damage triggers; zero means leave
	// the damage alone. Multipliers from several reactors multiply.
	DamageMultiplier float64
}

// TableBroker resolves triggers against a registered rule table. It is a
// deterministic broker for simulations and tests; an interactive build
// would prompt players instead.
type TableBroker struct {
	mu    sync.RWMutex
	rules []Rule

	// CanReact gates a rule on the actor still having a reaction charge.
	// Nil means every registered rule is live.
	CanReact func(actorID string) bool
}

// NewTableBroker returns an empty broker.
func NewTableBroker() *TableBroker {
	return &TableBroker{}
}

// RegisterRule adds a reaction policy.
func (b *TableBroker) RegisterRule(rule Rule) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append(b.rules, rule)
}

func (b *TableBroker) matching(trigger *Trigger) []Rule {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Rule
	for _, r := range b.rules {
		// The triggering actor never reacts to itself.
		if r.ActorID == trigger.SourceID {
			continue
		}
		if b.CanReact != nil && !b.CanReact(r.ActorID) {
			continue
		}
		if r.Matches != nil && !r.Matches(trigger) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// EligibleReactors implements Broker.
func (b *TableBroker) EligibleReactors(_ context.Context, trigger *Trigger) []Reactor {
	rules := b.matching(trigger)
	out := make([]Reactor, 0, len(rules))
	for _, r := range rules {
		out = append(out, Reactor{ActorID: r.ActorID, ReactionID: r.ReactionID})
	}
	return out
}

// ResolveTrigger implements Broker. The first cancelling rule wins and
// stops further reactions; damage multipliers stack multiplicatively.
func (b *TableBroker) ResolveTrigger(_ context.Context, trigger *Trigger) (*Resolution, error) {
	res := &Resolution{DamageMultiplier: 1.0}
	for _, r := range b.matching(trigger) {
		res.Reactors = append(res.Reactors, Reactor{ActorID: r.ActorID, ReactionID: r.ReactionID})
		if r.DamageMultiplier > 0 {
			res.DamageMultiplier *= r.DamageMultiplier
		}
		if r.Cancels {
			res.Cancelled = true
			break
		}
	}
	return res, nil
}
