package pacing

import (
	"fmt"
	"time"

	"github.com/alexanderramin/compass/internal/domain"
)

const dateLayout = "2006-01-02"

// DefaultDays is used when a milestone template carries no duration hints at all.
const DefaultDays = 14

// ResolveDays maps a milestone template and a pace to a day count.
// Resolution order: the pace-specific hint first (intensive→min,
// standard→optimal, part-time→max), then optimal, then max, then min, then
// DefaultDays. The function is total: malformed hints (negative, inverted
// min/max) pass through without error.
func ResolveDays(mt domain.MilestoneTemplate, pace domain.Pace) int {
	var preferred *int
	switch pace {
	case domain.PaceIntensive:
		preferred = mt.DaysMin
	case domain.PacePartTime:
		preferred = mt.DaysMax
	default:
		preferred = mt.DaysOptimal
	}
	return domain.IntFromPtrWithDefault(DefaultDays, preferred, mt.DaysOptimal, mt.DaysMax, mt.DaysMin)
}

// Multiplier returns the informational pace multiplier stored on an
// Instantiation. It does not participate in date arithmetic.
func Multiplier(pace domain.Pace) float64 {
	switch pace {
	case domain.PaceIntensive:
		return 0.7
	case domain.PacePartTime:
		return 1.5
	default:
		return 1.0
	}
}

// ParsePace validates a pace string from user input.
func ParsePace(value string) (domain.Pace, error) {
	if !domain.ValidPaces[value] {
		return "", fmt.Errorf("invalid pace %q (expected intensive, standard, or part_time)", value)
	}
	return domain.Pace(value), nil
}

// ParseRequiredDate parses a required YYYY-MM-DD date with field-aware errors.
func ParseRequiredDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
	}
	return t, nil
}
