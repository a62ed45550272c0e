package combat

// FailureReason is the machine-readable outcome category of a failed
// invocation. These are expected rule outcomes, not errors; callers branch
// on them to drive UI and AI decisions.
type FailureReason string

// Failure reasons, in roughly the order the resolution pipeline checks them.
const (
	FailureNone                 FailureReason = ""
	FailureUnknownAction        FailureReason = "unknown_action"
	FailureUnknownVariant       FailureReason = "unknown_variant"
	FailureUpcastNotSupported   FailureReason = "upcast_not_supported"
	FailureUpcastLevelExceeded  FailureReason = "upcast_level_exceeded"
	FailureRequirementNotMet    FailureReason = "requirement_not_met"
	FailureSourceIncapacitated  FailureReason = "source_incapacitated"
	FailureStatusBlocked        FailureReason = "status_blocked"
	FailureInsufficientBudget   FailureReason = "insufficient_budget"
	FailureInsufficientResource FailureReason = "insufficient_resource"
	FailureOnCooldown           FailureReason = "on_cooldown"
	FailureCancelledByRule      FailureReason = "cancelled_by_rule"
	FailureCounteredByReaction  FailureReason = "countered_by_reaction"
)

// AttackRollResult records a resolved attack roll against a single target.
type AttackRollResult struct {
	TargetID string
	Roll     int
	Total    int
	Hit      bool
	Critical bool
	Fumble   bool
}

// SaveRollResult records a target's saving throw against the action's DC.
type SaveRollResult struct {
	TargetID   string
	SaveType   SaveType
	Roll       int
	Total      int
	DC         int
	Success    bool
	AutoFailed bool
}

// EffectOutcome is one materialized consequence applied to a target.
type EffectOutcome struct {
	EffectType EffectType
	TargetID   string

	Damage     int
	DamageType string
	Healing    int
	StatusID   string
	Distance   int
	SummonID   string

	Description string
}

// ActionExecutionResult is the full record of one invocation, successful or
// not. A failed invocation carries a Reason; a successful one carries the
// rolls and effect outcomes that happened.
type ActionExecutionResult struct {
	Success     bool
	ActionID    string
	VariantID   string
	UpcastLevel int
	SourceID    string
	TargetIDs   []string

	Attack  []AttackRollResult
	Saves   []SaveRollResult
	Effects []EffectOutcome

	Reason  FailureReason
	Message string
}

// Failed builds a failure result with the given reason and message.
func Failed(actionID, sourceID string, reason FailureReason, message string) *ActionExecutionResult {
	return &ActionExecutionResult{
		ActionID: actionID,
		SourceID: sourceID,
		Reason:   reason,
		Message:  message,
	}
}
