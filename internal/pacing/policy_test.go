package pacing

import (
	"testing"

	"github.com/alexanderramin/compass/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestResolveDays_PaceSpecificHints(t *testing.T) {
	t.Parallel()

	mt := domain.MilestoneTemplate{
		DaysMin:     intPtr(5),
		DaysOptimal: intPtr(10),
		DaysMax:     intPtr(20),
	}

	tests := []struct {
		pace domain.Pace
		want int
	}{
		{domain.PaceIntensive, 5},
		{domain.PaceStandard, 10},
		{domain.PacePartTime, 20},
	}
	for _, tt := range tests {
		if got := ResolveDays(mt, tt.pace); got != tt.want {
			t.Errorf("ResolveDays(%s) = %d, want %d", tt.pace, got, tt.want)
		}
	}
}

func TestResolveDays_FallbackOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mt   domain.MilestoneTemplate
		pace domain.Pace
		want int
	}{
		{"only optimal set, all paces resolve to it", domain.MilestoneTemplate{DaysOptimal: intPtr(10)}, domain.PaceIntensive, 10},
		{"only optimal set, part-time", domain.MilestoneTemplate{DaysOptimal: intPtr(10)}, domain.PacePartTime, 10},
		{"only max set, intensive falls through optimal to max", domain.MilestoneTemplate{DaysMax: intPtr(7)}, domain.PaceIntensive, 7},
		{"only min set, standard falls through to min", domain.MilestoneTemplate{DaysMin: intPtr(3)}, domain.PaceStandard, 3},
		{"all unset, default", domain.MilestoneTemplate{}, domain.PaceStandard, DefaultDays},
		{"all unset, intensive default", domain.MilestoneTemplate{}, domain.PaceIntensive, DefaultDays},
		{"all unset, part-time default", domain.MilestoneTemplate{}, domain.PacePartTime, DefaultDays},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveDays(tt.mt, tt.pace); got != tt.want {
				t.Errorf("ResolveDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveDays_MalformedHintsPassThrough(t *testing.T) {
	t.Parallel()

	// Inverted min/max is untrusted input, not an error.
	mt := domain.MilestoneTemplate{
		DaysMin:     intPtr(30),
		DaysOptimal: intPtr(10),
		DaysMax:     intPtr(2),
	}
	if got := ResolveDays(mt, domain.PaceIntensive); got != 30 {
		t.Errorf("ResolveDays(intensive) = %d, want 30", got)
	}
	if got := ResolveDays(mt, domain.PacePartTime); got != 2 {
		t.Errorf("ResolveDays(part_time) = %d, want 2", got)
	}

	zero := domain.MilestoneTemplate{DaysOptimal: intPtr(0)}
	if got := ResolveDays(zero, domain.PaceStandard); got != 0 {
		t.Errorf("ResolveDays(zero optimal) = %d, want 0", got)
	}
}

func TestMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pace domain.Pace
		want float64
	}{
		{domain.PaceIntensive, 0.7},
		{domain.PaceStandard, 1.0},
		{domain.PacePartTime, 1.5},
	}
	for _, tt := range tests {
		if got := Multiplier(tt.pace); got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.pace, got, tt.want)
		}
	}
}

func TestParsePace(t *testing.T) {
	t.Parallel()

	if _, err := ParsePace("standard"); err != nil {
		t.Fatalf("ParsePace(standard): %v", err)
	}
	if _, err := ParsePace("leisurely"); err == nil {
		t.Fatal("expected error for unknown pace")
	}
}

func TestParseRequiredDate(t *testing.T) {
	t.Parallel()

	got, err := ParseRequiredDate("2026-01-01", "start")
	if err != nil {
		t.Fatalf("ParseRequiredDate: %v", err)
	}
	if got.Year() != 2026 || got.Month() != 1 || got.Day() != 1 {
		t.Errorf("ParseRequiredDate = %v", got)
	}
	if _, err := ParseRequiredDate("01/01/2026", "start"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}
