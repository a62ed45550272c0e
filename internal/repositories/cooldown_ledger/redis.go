package cooldownledger

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Interzoneism/tactica/internal/combat/cooldown"
	"github.com/Interzoneism/tactica/internal/errors"
	"github.com/Interzoneism/tactica/internal/pkg/clock"
	redisclient "github.com/Interzoneism/tactica/internal/redis"
)

const (
	// Key pattern: cooldown_ledger:{combat_id}
	ledgerKeyPrefix = "cooldown_ledger:"
	defaultTTL      = 24 * time.Hour

	errCombatIDEmpty = "combat ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL bounds how long an abandoned combat's ledger lingers. Zero
	// uses the default of 24 hours.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type persistedLedger struct {
	CombatID string            `json:"combat_id"`
	SavedAt  time.Time         `json:"saved_at"`
	States   []*cooldown.State `json:"states"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for cooldown ledgers
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func ledgerKey(combatID string) string {
	return ledgerKeyPrefix + combatID
}

// Save overwrites the combat's ledger snapshot
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.CombatID == "" {
		return nil, errors.InvalidArgument(errCombatIDEmpty)
	}

	ledger := &persistedLedger{
		CombatID: input.CombatID,
		SavedAt:  r.clock.Now(),
		States:   input.States,
	}

	data, err := json.Marshal(ledger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cooldown ledger")
	}

	if err := r.client.Set(ctx, ledgerKey(input.CombatID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to save cooldown ledger")
	}

	return &SaveOutput{}, nil
}

// Load fetches the combat's ledger snapshot; a missing key yields an
// empty ledger rather than an error
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.CombatID == "" {
		return nil, errors.InvalidArgument(errCombatIDEmpty)
	}

	data, err := r.client.Get(ctx, ledgerKey(input.CombatID)).Result()
	if err == redis.Nil {
		return &LoadOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cooldown ledger")
	}

	var ledger persistedLedger
	if err := json.Unmarshal([]byte(data), &ledger); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cooldown ledger")
	}

	return &LoadOutput{States: ledger.States}, nil
}

// Delete removes the combat's ledger
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CombatID == "" {
		return nil, errors.InvalidArgument(errCombatIDEmpty)
	}

	if err := r.client.Del(ctx, ledgerKey(input.CombatID)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete cooldown ledger")
	}

	return &DeleteOutput{}, nil
}
