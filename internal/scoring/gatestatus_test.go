package scoring

import (
	"testing"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateGate_Thresholds(t *testing.T) {
	t.Parallel()

	gate := domain.MilestoneGate{ID: "g1", MinScore: 7}

	tests := []struct {
		name  string
		score *float64
		want  GateStatusKind
	}{
		{"at threshold", floatPtr(7), GateMet},
		{"above threshold", floatPtr(9.5), GateMet},
		{"within close band", floatPtr(6.2), GateClose},
		{"bottom of close band", floatPtr(6), GateClose},
		{"below close band", floatPtr(5.9), GateUnmet},
		{"no score", nil, GateUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EvaluateGate(gate, tt.score, nil)
			if got.Status != tt.want {
				t.Errorf("EvaluateGate status = %q, want %q", got.Status, tt.want)
			}
			if tt.score != nil && got.CurrentScore == nil {
				t.Error("CurrentScore missing from scored evaluation")
			}
		})
	}
}

func TestEvaluateGate_OverrideWinsRegardlessOfScore(t *testing.T) {
	t.Parallel()

	gate := domain.MilestoneGate{ID: "g1", MinScore: 7}
	override := &domain.GateOverride{
		ID:           "o1",
		GateID:       "g1",
		OverriddenBy: "coach-1",
		Reason:       "demonstrated in live session",
		CreatedAt:    time.Now().UTC(),
	}

	for _, score := range []*float64{nil, floatPtr(2), floatPtr(10)} {
		got := EvaluateGate(gate, score, override)
		if got.Status != GateOverridden {
			t.Errorf("EvaluateGate with override = %q, want overridden", got.Status)
		}
		if got.Override == nil || got.Override.ID != "o1" {
			t.Error("override payload missing from evaluation")
		}
		if got.CurrentScore != nil {
			t.Error("score must not be considered when overridden")
		}
	}
}
