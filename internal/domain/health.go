package domain

// HealthTier is the four-level ordinal summary of an audit run, plus an
// explicit indeterminate tier for runs where no rule produced a record.
type HealthTier string

const (
	TierExcellent HealthTier = "EXCELLENT"
	TierGood      HealthTier = "GOOD"
	TierFair      HealthTier = "FAIR"
	TierPoor      HealthTier = "POOR"
	TierUnknown   HealthTier = "UNKNOWN"
)

// Healthy reports whether the tier counts as a passing audit.
// Callers exit non-zero for anything else.
func (t HealthTier) Healthy() bool {
	return t == TierExcellent || t == TierGood
}

// TierFor maps a health percentage to its tier. Boundary values belong to
// the higher tier: 90 is EXCELLENT, not GOOD.
func TierFor(pct float64) HealthTier {
	switch {
	case pct >= 90:
		return TierExcellent
	case pct >= 70:
		return TierGood
	case pct >= 50:
		return TierFair
	default:
		return TierPoor
	}
}

// ComputeHealth aggregates a validation mapping into a tier plus the
// passed/total counts behind it. Only rules that actually ran appear in the
// mapping; an empty mapping is indeterminate, not POOR.
func ComputeHealth(records map[string]ValidationRecord) (tier HealthTier, passed, total int) {
	total = len(records)
	if total == 0 {
		return TierUnknown, 0, 0
	}
	for _, r := range records {
		if r.Status == StatusPassed {
			passed++
		}
	}
	return TierFor(float64(passed) / float64(total) * 100), passed, total
}
