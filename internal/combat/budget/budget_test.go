package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/budget"
)

func newBudget(maxMovement float64, maxAttacks int) *budget.Budget {
	return budget.New(&budget.Config{
		ActorID:     "actor_1",
		MaxMovement: maxMovement,
		MaxAttacks:  maxAttacks,
	})
}

func TestConsume_ActionAndMovement(t *testing.T) {
	b := newBudget(9.0, 1)

	ok, why := b.Consume(combat.ActionCost{UsesAction: true, MovementCost: 1.5})
	require.True(t, ok, why)

	assert.Equal(t, 0, b.Actions())
	assert.Equal(t, 1, b.BonusActions())
	assert.InDelta(t, 7.5, b.Movement(), 0.001)
}

func TestConsume_AllOrNothing(t *testing.T) {
	b := newBudget(2.0, 1)

	// Movement exceeds the pool; the action charge must survive.
	ok, why := b.Consume(combat.ActionCost{UsesAction: true, MovementCost: 5.0})
	require.False(t, ok)
	assert.Contains(t, why, "movement")
	assert.Equal(t, 1, b.Actions())
	assert.InDelta(t, 2.0, b.Movement(), 0.001)
}

func TestConsume_SecondActionFails(t *testing.T) {
	b := newBudget(6.0, 1)

	ok, _ := b.Consume(combat.ActionCost{UsesAction: true})
	require.True(t, ok)

	ok, why := b.Consume(combat.ActionCost{UsesAction: true})
	assert.False(t, ok)
	assert.Contains(t, why, "no action")

	// Bonus action is a separate charge.
	ok, _ = b.Consume(combat.ActionCost{UsesBonusAction: true})
	assert.True(t, ok)
}

func TestConsumeAttack_PoolSpendsSingleAction(t *testing.T) {
	b := newBudget(6.0, 2)

	actionSpent, ok := b.ConsumeAttack()
	require.True(t, ok)
	assert.False(t, actionSpent, "first swing should leave the action charge intact")
	assert.Equal(t, 1, b.Actions())
	assert.Equal(t, 1, b.AttacksRemaining())

	actionSpent, ok = b.ConsumeAttack()
	require.True(t, ok)
	assert.True(t, actionSpent, "emptying the pool spends the action charge")
	assert.Equal(t, 0, b.Actions())

	_, ok = b.ConsumeAttack()
	assert.False(t, ok)
}

func TestResetAttacks_NonAttackActionDrainsPool(t *testing.T) {
	b := newBudget(6.0, 2)

	b.ResetAttacks()
	ok, _ := b.Consume(combat.ActionCost{UsesAction: true})
	require.True(t, ok)

	_, ok = b.ConsumeAttack()
	assert.False(t, ok, "attack pool must not survive a non-attack action")
}

func TestDash_DoublesMovement(t *testing.T) {
	b := newBudget(6.0, 1)

	require.True(t, b.ConsumeMovement(3.0))
	require.True(t, b.Dash())

	assert.Equal(t, 0, b.Actions())
	assert.InDelta(t, 9.0, b.Movement(), 0.001)

	assert.False(t, b.Dash(), "dash needs an action charge")
}

func TestResetForTurn_LeavesReactionAlone(t *testing.T) {
	b := newBudget(6.0, 2)

	require.True(t, b.ConsumeReaction())
	ok, _ := b.Consume(combat.ActionCost{UsesAction: true, UsesBonusAction: true, MovementCost: 4.0})
	require.True(t, ok)
	b.MarkUsedOnce("second_wind")

	b.ResetForTurn()

	assert.Equal(t, 1, b.Actions())
	assert.Equal(t, 1, b.BonusActions())
	assert.InDelta(t, 6.0, b.Movement(), 0.001)
	assert.Equal(t, 2, b.AttacksRemaining())
	assert.False(t, b.HasUsedOnce("second_wind"))
	assert.Equal(t, 0, b.Reactions(), "reaction recovery is round-scoped")

	b.ResetReactionForRound()
	assert.Equal(t, 1, b.Reactions())
}

func TestGrantAdditionalAction_RefillsAttackPool(t *testing.T) {
	b := newBudget(6.0, 2)

	b.ConsumeAttack()
	b.ConsumeAttack()
	require.Equal(t, 0, b.Actions())

	b.GrantAdditionalAction(1)
	assert.Equal(t, 1, b.Actions())
	assert.Equal(t, 2, b.AttacksRemaining())
}

type recordingObserver struct {
	calls int
	last  string
}

func (o *recordingObserver) BudgetChanged(actorID string, _ *budget.Budget) {
	o.calls++
	o.last = actorID
}

func TestObserver_NotifiedOnSpend(t *testing.T) {
	obs := &recordingObserver{}
	b := budget.New(&budget.Config{ActorID: "actor_9", MaxMovement: 6.0, Observer: obs})

	ok, _ := b.Consume(combat.ActionCost{UsesAction: true})
	require.True(t, ok)

	assert.Equal(t, 1, obs.calls)
	assert.Equal(t, "actor_9", obs.last)

	// Failed spends do not notify.
	ok, _ = b.Consume(combat.ActionCost{UsesAction: true})
	require.False(t, ok)
	assert.Equal(t, 1, obs.calls)
}
