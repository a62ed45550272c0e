// Package action orchestrates the resolution of one ability invocation:
// catalog lookup, cost derivation, budget and resource commitment,
// interrupt windows, rolls, and effect dispatch.
package action

import (
	"context"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/combat/actor"
	"github.com/Interzoneism/tactica/internal/effects"
)

//go:generate mockgen -destination=mock/mock_service.go -package=actionmock github.com/Interzoneism/tactica/internal/orchestrators/action Service

// Service is the resolution engine's public surface.
type Service interface {
	// Execute resolves one invocation end to end. Rule failures come
	// back as a result with a FailureReason; errors are reserved for
	// infrastructure problems.
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error)

	// Preview reports the effective cost and expected effect bounds of
	// an invocation without mutating anything.
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)

	// BeginTurn resets the actor's turn-scoped budget and advances
	// their turn-clocked cooldowns.
	BeginTurn(ctx context.Context, input *BeginTurnInput) (*BeginTurnOutput, error)

	// EndRound restores reactions, advances round-clocked cooldowns,
	// and expires timed conditions.
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)
}

// ExecuteInput identifies the invocation to resolve.
type ExecuteInput struct {
	SourceID    string
	ActionID    string
	VariantID   string
	UpcastLevel int
	TargetIDs   []string
}

// ExecuteOutput carries the full invocation record.
type ExecuteOutput struct {
	Result *combat.ActionExecutionResult
}

// PreviewInput identifies the invocation to preview.
type PreviewInput struct {
	ActionID    string
	VariantID   string
	UpcastLevel int
}

// PreviewOutput carries the derived cost and per-effect outcome bounds.
type PreviewOutput struct {
	Cost    combat.ActionCost
	Effects []effects.PreviewResult
}

// BeginTurnInput names the actor whose turn starts.
type BeginTurnInput struct {
	ActorID string
}

// BeginTurnOutput is empty; declared for forward compatibility.
type BeginTurnOutput struct{}

// EndRoundInput is empty; declared for forward compatibility.
type EndRoundInput struct{}

// EndRoundOutput reports conditions that expired at the round boundary,
// keyed by actor.
type EndRoundOutput struct {
	ExpiredStatuses map[string][]string
}

// Roster resolves actor ids to live combatants.
type Roster interface {
	GetActor(id string) (*actor.Actor, bool)
	ActorIDs() []string
}

// Predicate answers a named requirement check against the source actor.
type Predicate func(a *actor.Actor) bool
