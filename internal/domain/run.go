package domain

import "time"

// RunContext accumulates the outcome of a single audit run. It is owned
// exclusively by the caller for the run's duration; no state is shared
// across runs. A second concurrent run against the same project root is
// not supported.
type RunContext struct {
	records  map[string]ValidationRecord
	issues   []Issue
	repairs  []Repair
	failures []RepairFailure
	now      func() time.Time
}

// NewRunContext creates an empty run context using the wall clock.
func NewRunContext() *RunContext {
	return NewRunContextAt(time.Now)
}

// NewRunContextAt creates a run context with an injected clock.
func NewRunContextAt(now func() time.Time) *RunContext {
	return &RunContext{
		records:  make(map[string]ValidationRecord),
		issues:   []Issue{},
		repairs:  []Repair{},
		failures: []RepairFailure{},
		now:      now,
	}
}

// RecordValidation marks a component as passed. Recording the same
// component again replaces the earlier entry.
func (rc *RunContext) RecordValidation(component, message string) {
	rc.records[component] = ValidationRecord{
		Status:    StatusPassed,
		Message:   message,
		Timestamp: rc.now(),
	}
}

// RecordIssue appends an issue. Issues are never deduplicated or removed.
func (rc *RunContext) RecordIssue(description string, severity Severity, remediation string) {
	rc.issues = append(rc.issues, Issue{
		Description: description,
		Severity:    severity,
		Remediation: remediation,
		Timestamp:   rc.now(),
	})
}

// RecordRepair appends a successfully applied repair.
func (rc *RunContext) RecordRepair(description string) {
	rc.repairs = append(rc.repairs, Repair{
		Description: description,
		Timestamp:   rc.now(),
	})
}

// RecordRepairFailure appends a repair attempt that could not complete.
func (rc *RunContext) RecordRepairFailure(description, reason string) {
	rc.failures = append(rc.failures, RepairFailure{
		Description: description,
		Reason:      reason,
		Timestamp:   rc.now(),
	})
}

// Validations returns the validation mapping accumulated so far.
func (rc *RunContext) Validations() map[string]ValidationRecord { return rc.records }

// Issues returns the issues in recording order.
func (rc *RunContext) Issues() []Issue { return rc.issues }

// Repairs returns the applied repairs in application order.
func (rc *RunContext) Repairs() []Repair { return rc.repairs }

// Failures returns the repair failures in recording order.
func (rc *RunContext) Failures() []RepairFailure { return rc.failures }
