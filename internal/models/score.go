package models

// Band is a named quality tier derived from a completeness percentage.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandNeedsWork Band = "needs_work"
	BandPoor      Band = "poor"
)

// BandForPercentage maps a rounded percentage to its quality band. Boundaries
// are inclusive on the lower bound of each band and identical across
// categories.
func BandForPercentage(p float64) Band {
	switch {
	case p >= 90:
		return BandExcellent
	case p >= 70:
		return BandGood
	case p >= 50:
		return BandNeedsWork
	default:
		return BandPoor
	}
}

// FailedItem is one checklist predicate the document did not satisfy.
type FailedItem struct {
	ItemID string `json:"item_id"`
	Weight int    `json:"weight"`
	Reason string `json:"reason"`
}

// ScoreReport is the outcome of evaluating a rendered document against its
// category's weighted checklist. It is purely derived from the document and
// never mutated after creation; re-scoring produces a new report.
type ScoreReport struct {
	TemplateID     string  `json:"template_id"`
	TotalWeight    int     `json:"total_weight"`
	AchievedWeight int     `json:"achieved_weight"`
	Percentage     float64 `json:"percentage"`
	Band           Band    `json:"band"`

	// FailedItems is sorted by descending weight so callers can present
	// the highest-impact gap first. Checklist failures are data, not
	// errors; a low score is a valid result.
	FailedItems []FailedItem `json:"failed_items"`
}
