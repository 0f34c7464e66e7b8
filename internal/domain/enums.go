package domain

// Pace selects how aggressively milestone duration hints are applied when a
// path template is expanded into a dated plan.
type Pace string

const (
	PaceIntensive Pace = "intensive"
	PaceStandard  Pace = "standard"
	PacePartTime  Pace = "part_time"
)

// ValidPaces is the canonical set of accepted pace strings.
var ValidPaces = map[string]bool{
	"intensive": true, "standard": true, "part_time": true,
}

type InstantiationStatus string

const (
	// InstantiationBuilding marks a plan whose expansion walk has started but
	// not yet committed. A row left in this state indicates an interrupted walk.
	InstantiationBuilding InstantiationStatus = "building"
	InstantiationActive   InstantiationStatus = "active"
	InstantiationFailed   InstantiationStatus = "failed"
)

type Timeframe string

const (
	TimeframeShort  Timeframe = "short"
	TimeframeMedium Timeframe = "medium"
	TimeframeLong   Timeframe = "long"
)

// legacyTimeframes maps long-form timeframe names still present in older
// templates to their short-form equivalents.
var legacyTimeframes = map[string]Timeframe{
	"short_term":  TimeframeShort,
	"medium_term": TimeframeMedium,
	"long_term":   TimeframeLong,
}

// NormalizeTimeframe remaps legacy long-form timeframe names; any other value
// passes through unchanged.
func NormalizeTimeframe(raw string) Timeframe {
	if tf, ok := legacyTimeframes[raw]; ok {
		return tf
	}
	return Timeframe(raw)
}

// DefaultCategory is assigned when a goal template carries a category outside
// the closed set.
const DefaultCategory = "general"

// ValidCategories is the closed category set for instantiated goals.
var ValidCategories = map[string]bool{
	"career": true, "health": true, "relationships": true,
	"finance": true, "learning": true, "mindset": true,
	"general": true,
}

// NormalizeCategory validates a template category against the closed set,
// falling back to DefaultCategory for unrecognized values.
func NormalizeCategory(raw string) string {
	if ValidCategories[raw] {
		return raw
	}
	return DefaultCategory
}

// Quadrant is the importance/urgency classification bucket for a task.
type Quadrant string

const (
	QuadrantImportantUrgent       Quadrant = "important_urgent"
	QuadrantImportantNotUrgent    Quadrant = "important_not_urgent"
	QuadrantNotImportantUrgent    Quadrant = "not_important_urgent"
	QuadrantNotImportantNotUrgent Quadrant = "not_important_not_urgent"
)

// QuadrantFor derives the quadrant from the two independent template flags.
func QuadrantFor(importance, urgency bool) Quadrant {
	switch {
	case importance && urgency:
		return QuadrantImportantUrgent
	case importance:
		return QuadrantImportantNotUrgent
	case urgency:
		return QuadrantNotImportantUrgent
	default:
		return QuadrantNotImportantNotUrgent
	}
}
