package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Interzoneism/tactica/internal/status"
)

func TestStore_ApplyRemove(t *testing.T) {
	s := status.NewStore()

	s.Apply("a1", &status.View{ID: "stunned", Tags: []string{status.TagIncapacitated}})

	assert.True(t, s.HasStatus("a1", "stunned"))
	assert.True(t, s.HasStatus("a1", status.TagIncapacitated), "tag lookup")
	assert.False(t, s.HasStatus("a2", "stunned"))

	require.True(t, s.Remove("a1", "stunned"))
	assert.False(t, s.HasStatus("a1", "stunned"))
	assert.False(t, s.Remove("a1", "stunned"))
}

func TestStore_ReapplyRefreshesInsteadOfStacking(t *testing.T) {
	s := status.NewStore()

	s.Apply("a1", &status.View{ID: "blessed", Remaining: 2})
	s.Apply("a1", &status.View{ID: "blessed", Remaining: 10})

	views := s.ActiveStatuses("a1")
	require.Len(t, views, 1)
	assert.Equal(t, 10, views[0].Remaining)
}

func TestStore_TickRound(t *testing.T) {
	s := status.NewStore()

	s.Apply("a1", &status.View{ID: "chilled", Remaining: 1})
	s.Apply("a1", &status.View{ID: "cursed", Remaining: 3})
	s.Apply("a1", &status.View{ID: "prone"}) // indefinite

	expired := s.TickRound()

	require.Len(t, expired["a1"], 1)
	assert.Equal(t, "chilled", expired["a1"][0].ID)

	views := s.ActiveStatuses("a1")
	require.Len(t, views, 2)
	assert.False(t, s.HasStatus("a1", "chilled"))
	assert.True(t, s.HasStatus("a1", "cursed"))
	assert.True(t, s.HasStatus("a1", "prone"))
}
