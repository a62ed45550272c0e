package action

import (
	"context"
	"log/slog"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/Interzoneism/tactica/internal/combat/budget"
)

// EventBudgetChanged fires after every successful budget mutation.
const EventBudgetChanged = "tactica.budget.changed"

// Budget event context keys.
const (
	ContextKeyActions      = "actions"
	ContextKeyBonusActions = "bonus_actions"
	ContextKeyReactions    = "reactions"
	ContextKeyMovement     = "movement"
)

// BudgetPublisher bridges budget observer callbacks onto the event bus so
// rule modules and UIs can watch economy changes without polling.
type BudgetPublisher struct {
	eventBus rpgevents.EventBus
}

// NewBudgetPublisher creates the bridge.
func NewBudgetPublisher(eventBus rpgevents.EventBus) *BudgetPublisher {
	return &BudgetPublisher{eventBus: eventBus}
}

var _ budget.Observer = (*BudgetPublisher)(nil)

// BudgetChanged implements budget.Observer. Publication is fire-and-forget;
// the budget mutation has already happened.
func (p *BudgetPublisher) BudgetChanged(actorID string, b *budget.Budget) {
	event := rpgevents.NewGameEvent(EventBudgetChanged, rosterEntity(actorID), nil)
	event.Context().Set(ContextKeyActions, b.Actions())
	event.Context().Set(ContextKeyBonusActions, b.BonusActions())
	event.Context().Set(ContextKeyReactions, b.Reactions())
	event.Context().Set(ContextKeyMovement, b.Movement())
	if err := p.eventBus.Publish(context.Background(), event); err != nil {
		slog.Warn("budget changed publish failed", "actor_id", actorID, "error", err)
	}
}
