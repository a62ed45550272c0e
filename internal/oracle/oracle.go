// Package oracle makes attack and saving throw rolls. Randomness lives
// behind the dice.Roller interface so tests can script outcomes.
package oracle

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Interzoneism/tactica/internal/combat"
	"github.com/Interzoneism/tactica/internal/errors"
)

//go:generate mockgen -destination=mock/mock_oracle.go -package=oraclemock github.com/Interzoneism/tactica/internal/oracle Oracle

// AttackQuery carries everything an attack roll needs. AdvantageSources
// and DisadvantageSources are labels for logging; presence of any entry
// grants the mode, and the two cancel out.
type AttackQuery struct {
	AttackerID string
	TargetID   string

	AttackBonus int
	TargetAC    int

	// CritThreshold is the natural roll at or above which the attack
	// crits. Zero means 20.
	CritThreshold int

	AdvantageSources    []string
	DisadvantageSources []string
}

// AttackResult is the resolved attack roll.
type AttackResult struct {
	Roll     int
	Total    int
	Hit      bool
	Critical bool
	Fumble   bool
}

// SaveQuery carries a target's saving throw against a DC.
type SaveQuery struct {
	ActorID  string
	SaveType combat.SaveType
	Bonus    int
	DC       int

	// AutoFail forces failure without rolling (paralyzed vs dexterity).
	AutoFail bool

	AdvantageSources    []string
	DisadvantageSources []string
}

// SaveResult is the resolved saving throw.
type SaveResult struct {
	Roll       int
	Total      int
	Success    bool
	AutoFailed bool
}

// Oracle resolves the engine's random checks.
type Oracle interface {
	RollAttack(ctx context.Context, query *AttackQuery) (*AttackResult, error)
	RollSave(ctx context.Context, query *SaveQuery) (*SaveResult, error)
}

// Config configures the dice-backed oracle.
type Config struct {
	Roller dice.Roller
}

// Validate checks required dependencies.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Roller == nil {
		return errors.InvalidArgument("roller is required")
	}
	return nil
}

// DiceOracle rolls d20s through a dice.Roller.
type DiceOracle struct {
	roller dice.Roller
}

// New creates a dice-backed oracle.
func New(cfg *Config) (*DiceOracle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DiceOracle{roller: cfg.Roller}, nil
}

// rollD20 applies the advantage/disadvantage ladder: both present cancel
// to a straight roll, otherwise roll twice and keep high or low.
func (o *DiceOracle) rollD20(advantage, disadvantage bool) (int, error) {
	first, err := o.roller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "d20 roll failed")
	}
	if advantage == disadvantage {
		return first, nil
	}
	second, err := o.roller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "d20 roll failed")
	}
	if advantage {
		if second > first {
			return second, nil
		}
		return first, nil
	}
	if second < first {
		return second, nil
	}
	return first, nil
}

// RollAttack implements Oracle. Natural rolls at or above the crit
// threshold hit regardless of AC; a natural 1 always misses.
func (o *DiceOracle) RollAttack(_ context.Context, query *AttackQuery) (*AttackResult, error) {
	if query == nil {
		return nil, errors.InvalidArgument("attack query is required")
	}

	roll, err := o.rollD20(len(query.AdvantageSources) > 0, len(query.DisadvantageSources) > 0)
	if err != nil {
		return nil, err
	}

	threshold := query.CritThreshold
	if threshold <= 0 {
		threshold = 20
	}

	result := &AttackResult{
		Roll:  roll,
		Total: roll + query.AttackBonus,
	}
	switch {
	case roll == 1:
		result.Fumble = true
	case roll >= threshold:
		result.Hit = true
		result.Critical = true
	default:
		result.Hit = result.Total >= query.TargetAC
	}
	return result, nil
}

// RollSave implements Oracle.
func (o *DiceOracle) RollSave(_ context.Context, query *SaveQuery) (*SaveResult, error) {
	if query == nil {
		return nil, errors.InvalidArgument("save query is required")
	}

	if query.AutoFail {
		return &SaveResult{AutoFailed: true}, nil
	}

	roll, err := o.rollD20(len(query.AdvantageSources) > 0, len(query.DisadvantageSources) > 0)
	if err != nil {
		return nil, err
	}

	total := roll + query.Bonus
	return &SaveResult{
		Roll:    roll,
		Total:   total,
		Success: total >= query.DC,
	}, nil
}
