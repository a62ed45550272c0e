// Package cooldownledger persists the cooldown ledger of a combat so
// limited-use charges and countdowns survive process restarts and
// session handoffs.
package cooldownledger

import (
	"context"

	"github.com/Interzoneism/tactica/internal/combat/cooldown"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=cooldownledgermock github.com/Interzoneism/tactica/internal/repositories/cooldown_ledger Repository

// SaveInput stores one combat's full ledger snapshot.
type SaveInput struct {
	CombatID string
	States   []*cooldown.State
}

// SaveOutput is empty; declared for forward compatibility.
type SaveOutput struct{}

// LoadInput fetches a combat's ledger snapshot.
type LoadInput struct {
	CombatID string
}

// LoadOutput carries the persisted states. States is empty when the
// combat has no ledger yet.
type LoadOutput struct {
	States []*cooldown.State
}

// DeleteInput removes a combat's ledger, typically when combat ends.
type DeleteInput struct {
	CombatID string
}

// DeleteOutput is empty; declared for forward compatibility.
type DeleteOutput struct{}

// Repository persists cooldown ledgers keyed by combat.
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
