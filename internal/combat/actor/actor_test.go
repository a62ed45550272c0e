package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
)

func TestApplyDamageAndHeal_Clamp(t *testing.T) {
	a := &actor.Actor{ID: "a1", HP: 10, MaxHP: 12}

	a.ApplyDamage(15)
	assert.Equal(t, 0, a.HP)
	assert.False(t, a.Alive())

	a.Heal(20)
	assert.Equal(t, 12, a.HP)
	assert.True(t, a.Alive())
}

func TestSpendResource(t *testing.T) {
	a := &actor.Actor{ID: "a1", Resources: map[string]int{"ki": 3}}

	assert.True(t, a.CanSpendResource("ki", 2))
	require.True(t, a.SpendResource("ki", 2))
	assert.Equal(t, 1, a.Resources["ki"])

	assert.False(t, a.SpendResource("ki", 2))
	assert.Equal(t, 1, a.Resources["ki"], "failed spends leave the pool alone")

	assert.True(t, a.SpendResource("missing", 0), "zero cost always passes")
}

func TestEntityAdapter(t *testing.T) {
	a := &actor.Actor{ID: "a1"}
	e := a.Entity()
	assert.Equal(t, "a1", e.GetID())
	assert.Equal(t, "actor", e.GetType())
}

func TestSaveBonus(t *testing.T) {
	a := &actor.Actor{
		ID:          "a1",
		SaveBonuses: map[combat.SaveType]int{combat.SaveWisdom: 4},
	}
	assert.Equal(t, 4, a.SaveBonus(combat.SaveWisdom))
	assert.Equal(t, 0, a.SaveBonus(combat.SaveDexterity))
}
