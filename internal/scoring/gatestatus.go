package scoring

import "github.com/alexanderramin/compass/internal/domain"

// GateStatusKind is the closed set of gate evaluation outcomes.
type GateStatusKind string

const (
	GateMet        GateStatusKind = "met"
	GateClose      GateStatusKind = "close"
	GateUnmet      GateStatusKind = "unmet"
	GateUnknown    GateStatusKind = "unknown"
	GateOverridden GateStatusKind = "overridden"
)

// closeBand is the fixed buffer below the threshold that still reads as
// "close", independent of the assessment's rating scale.
const closeBand = 1.0

// GateEvaluation is the tagged result of evaluating one gate for one user
// milestone. CurrentScore is set for met/close/unmet; Override is set only
// for overridden. Gates are advisory: nothing blocks on this status.
type GateEvaluation struct {
	GateID       string
	Gate         domain.MilestoneGate
	Status       GateStatusKind
	CurrentScore *float64
	Override     *domain.GateOverride
}

// EvaluateGate applies the evaluation order, first match winning:
// override → overridden (score not considered); no score → unknown;
// score >= min → met; score >= min-1 → close; otherwise unmet.
func EvaluateGate(gate domain.MilestoneGate, currentScore *float64, override *domain.GateOverride) GateEvaluation {
	eval := GateEvaluation{GateID: gate.ID, Gate: gate}

	if override != nil {
		eval.Status = GateOverridden
		eval.Override = override
		return eval
	}
	if currentScore == nil {
		eval.Status = GateUnknown
		return eval
	}

	eval.CurrentScore = currentScore
	switch {
	case *currentScore >= gate.MinScore:
		eval.Status = GateMet
	case *currentScore >= gate.MinScore-closeBand:
		eval.Status = GateClose
	default:
		eval.Status = GateUnmet
	}
	return eval
}
