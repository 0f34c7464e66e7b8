package formatter

import (
	"testing"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestFormatGateEvaluations_IncludesLabelScoreAndOverride(t *testing.T) {
	score := 6.4
	evals := []scoring.GateEvaluation{
		{
			GateID:       "g1",
			Gate:         domain.MilestoneGate{ID: "g1", Label: "Communication ≥ 7", MinScore: 7},
			Status:       scoring.GateClose,
			CurrentScore: &score,
		},
		{
			GateID: "g2",
			Gate:   domain.MilestoneGate{ID: "g2", Label: "Focus ≥ 5", MinScore: 5},
			Status: scoring.GateOverridden,
			Override: &domain.GateOverride{
				GateID:       "g2",
				OverriddenBy: "coach-7",
				Reason:       "demonstrated in live session",
			},
		},
	}

	out := FormatGateEvaluations(evals)
	assert.Contains(t, out, "Communication ≥ 7")
	assert.Contains(t, out, "6.4")
	assert.Contains(t, out, "CLOSE")
	assert.Contains(t, out, "OVERRIDDEN")
	assert.Contains(t, out, "coach-7")
	assert.Contains(t, out, "demonstrated in live session")
}

func TestFormatGateEvaluations_EmptyMeansNoGates(t *testing.T) {
	out := FormatGateEvaluations(nil)
	assert.Contains(t, out, "No gates configured")
}
