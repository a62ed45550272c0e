// Package effects materializes resolved actions into world changes:
// damage, healing, conditions, forced movement, summons. Handlers are
// registered per effect type; the dispatcher routes each definition to
// its handler and aggregates the outcomes.
package effects

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
	"github.com/Interzoneism/tactica/internal/errors"
	"github.com/Interzoneism/tactica/internal/oracle"
)

// EventEffectUnhandled is published when no handler is registered for an
// effect type, so rule modules can observe the gap.
const EventEffectUnhandled = "tactica.effect.unhandled"

// Invocation is the per-dispatch context a handler receives alongside the
// effect definition.
type Invocation struct {
	ActionID string
	Source   *actor.Actor
	Target   *actor.Actor

	UpcastLevel int

	// DamageMultiplier aggregates reaction-window scaling; 1.0 when no
	// reaction touched the damage.
	DamageMultiplier float64

	// Critical doubles dice terms of damage formulas.
	Critical bool

	// Save is the target's saving throw for save-gated actions, nil for
	// attack-rolled or automatic ones.
	Save *oracle.SaveResult
}

// Handler materializes one effect type.
type Handler interface {
	Execute(ctx context.Context, def *combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error)
}

// Previewer is an optional handler capability: expected outcome bounds
// without rolling or mutating anything.
type Previewer interface {
	Preview(def *combat.EffectDefinition) (minimum, maximum int, mean float64, err error)
}

// Config configures a dispatcher.
type Config struct {
	EventBus events.EventBus
}

// Validate checks required dependencies.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// Dispatcher routes effect definitions to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[combat.EffectType]Handler
	eventBus events.EventBus
}

// NewDispatcher creates a dispatcher with no handlers registered.
func NewDispatcher(cfg *Config) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Dispatcher{
		handlers: make(map[combat.EffectType]Handler),
		eventBus: cfg.EventBus,
	}, nil
}

// Register binds a handler to an effect type, replacing any previous one.
func (d *Dispatcher) Register(effectType combat.EffectType, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[effectType] = handler
}

func (d *Dispatcher) handler(effectType combat.EffectType) (Handler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handlers[effectType]
	return h, ok
}

// Dispatch runs every effect in order. Unknown effect types are logged,
// announced on the bus, and skipped; one exotic effect must not void the
// rest of the action.
func (d *Dispatcher) Dispatch(ctx context.Context, defs []*combat.EffectDefinition, inv *Invocation) ([]combat.EffectOutcome, error) {
	var outcomes []combat.EffectOutcome
	for _, def := range defs {
		h, ok := d.handler(def.Type)
		if !ok {
			slog.Warn("no handler registered for effect type",
				"effect_type", def.Type,
				"action_id", inv.ActionID,
			)
			d.publishUnhandled(ctx, def, inv)
			continue
		}
		out, err := h.Execute(ctx, def, inv)
		if err != nil {
			return outcomes, errors.Wrapf(err, "effect %s of action %s", def.Type, inv.ActionID)
		}
		outcomes = append(outcomes, out...)
	}
	return outcomes, nil
}

func (d *Dispatcher) publishUnhandled(ctx context.Context, def *combat.EffectDefinition, inv *Invocation) {
	var source, target core.Entity
	if inv.Source != nil {
		source = inv.Source.Entity()
	}
	if inv.Target != nil {
		target = inv.Target.Entity()
	}
	event := events.NewGameEvent(EventEffectUnhandled, source, target)
	event.Context().Set("effect_type", string(def.Type))
	event.Context().Set("action_id", inv.ActionID)
	if err := d.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish unhandled effect event", "error", err)
	}
}

// PreviewResult is the expected outcome envelope of one effect.
type PreviewResult struct {
	EffectType combat.EffectType
	Minimum    int
	Maximum    int
	Mean       float64
}

// Preview computes expected bounds without rolling or mutating world
// state. Effects whose handler does not implement Previewer are skipped.
func (d *Dispatcher) Preview(defs []*combat.EffectDefinition) ([]PreviewResult, error) {
	var out []PreviewResult
	for _, def := range defs {
		h, ok := d.handler(def.Type)
		if !ok {
			continue
		}
		p, ok := h.(Previewer)
		if !ok {
			continue
		}
		minimum, maximum, mean, err := p.Preview(def)
		if err != nil {
			return nil, errors.Wrapf(err, "previewing effect %s", def.Type)
		}
		out = append(out, PreviewResult{
			EffectType: def.Type,
			Minimum:    minimum,
			Maximum:    maximum,
			Mean:       mean,
		})
	}
	return out, nil
}
