package action_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/budget"
	"github.com/Interzoneism/tactica/internal/orchestrators/action"
)

func TestBudgetPublisher_PublishesOnSpend(t *testing.T) {
	bus := rpgevents.NewBus()

	var got []int
	bus.SubscribeFunc(action.EventBudgetChanged, 0, func(_ context.Context, e rpgevents.Event) error {
		v, ok := e.Context().Get(action.ContextKeyActions)
		require.True(t, ok)
		got = append(got, v.(int))
		return nil
	})

	b := budget.New(&budget.Config{
		ActorID:     "fighter",
		MaxMovement: 6.0,
		Observer:    action.NewBudgetPublisher(bus),
	})

	ok, _ := b.Consume(combat.ActionCost{UsesAction: true})
	require.True(t, ok)
	ok, _ = b.Consume(combat.ActionCost{UsesBonusAction: true})
	require.True(t, ok)

	assert.Equal(t, []int{0, 0}, got)

	// Failed spends stay silent.
	ok, _ = b.Consume(combat.ActionCost{UsesAction: true})
	require.False(t, ok)
	assert.Len(t, got, 2)
}
