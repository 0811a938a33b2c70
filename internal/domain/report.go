package domain

import "time"

// StatusPassed is the only status the evaluator records. A rule that fails
// produces Issues instead of a ValidationRecord, never both.
const StatusPassed = "PASSED"

// Severity classifies an unresolved Issue for remediation priority.
// It is advisory: nothing acts on it automatically.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// ValidSeverities enumerates all recognized severities, highest first.
var ValidSeverities = []Severity{
	SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow,
}

// Rank returns a numeric rank for sorting severities (lower is more severe).
func (s Severity) Rank() int {
	for i, v := range ValidSeverities {
		if s == v {
			return i
		}
	}
	return len(ValidSeverities)
}

// ValidationRecord marks one component as having passed its check.
// Records are never mutated after creation; re-recording the same component
// replaces the mapping entry (last write wins).
type ValidationRecord struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Issue describes a gap found during evaluation, with suggested remediation.
type Issue struct {
	Description string    `json:"issue"`
	Severity    Severity  `json:"severity"`
	Remediation string    `json:"solution"`
	Timestamp   time.Time `json:"timestamp"`
}

// Repair records one mutating fix that was actually applied.
// Order reflects application order.
type Repair struct {
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// RepairFailure records a repair attempt that could not complete. Failures
// never abort the run; the gap resurfaces as an Issue on the next audit.
type RepairFailure struct {
	Description string    `json:"description"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}

// Report is the immutable result of one audit run. It is assembled once,
// after evaluation and repair have run to completion, and is owned
// exclusively by the run that produced it.
type Report struct {
	RunID             string                      `json:"run_id"`
	ProjectPath       string                      `json:"project_path"`
	CommitHash        string                      `json:"commit_hash,omitempty"`
	ValidationResults map[string]ValidationRecord `json:"validation_results"`
	RepairsApplied    []Repair                    `json:"repairs_applied"`
	IssuesFound       []Issue                     `json:"issues_found"`
	RepairFailures    []RepairFailure             `json:"repair_failures,omitempty"`
	OverallHealth     HealthTier                  `json:"overall_health"`
	Passed            int                         `json:"passed"`
	Total             int                         `json:"total"`
	Timestamp         time.Time                   `json:"timestamp"`
}
