package domain

import "fmt"

// RuleKind identifies how a rule inspects its artifact.
type RuleKind string

const (
	// RuleFileExists checks that a file is present under the project root.
	RuleFileExists RuleKind = "file_exists"
	// RuleDirExists checks that a directory is present.
	RuleDirExists RuleKind = "dir_exists"
	// RuleFileContains checks that a text artifact contains every keyword.
	// All missing keywords accumulate into a single Issue.
	RuleFileContains RuleKind = "file_contains"
)

// ValidRuleKinds enumerates all recognized rule kinds.
var ValidRuleKinds = []RuleKind{RuleFileExists, RuleDirExists, RuleFileContains}

// Rule binds one project component to an artifact-presence or content
// predicate. Rules are immutable once the checklist is loaded.
type Rule struct {
	Component    string   `yaml:"component"              json:"component"`
	Kind         RuleKind `yaml:"kind"                   json:"kind"`
	Path         string   `yaml:"path"                   json:"path"`
	Keywords     []string `yaml:"keywords,omitempty"     json:"keywords,omitempty"`
	Severity     Severity `yaml:"severity,omitempty"     json:"severity,omitempty"`
	Remediation  string   `yaml:"remediation,omitempty"  json:"remediation,omitempty"`
	Foundational bool     `yaml:"foundational,omitempty" json:"foundational,omitempty"`
}

// EffectiveSeverity resolves the severity an Issue from this rule carries.
// Foundational artifacts are always CRITICAL regardless of configuration.
func (r Rule) EffectiveSeverity() Severity {
	if r.Foundational {
		return SeverityCritical
	}
	if r.Severity != "" {
		return r.Severity
	}
	if r.Kind == RuleFileContains {
		return SeverityHigh
	}
	return SeverityMedium
}

// EffectiveRemediation resolves the remediation text for this rule,
// falling back to a generic suggestion.
func (r Rule) EffectiveRemediation() string {
	if r.Remediation != "" {
		return r.Remediation
	}
	switch r.Kind {
	case RuleDirExists:
		return fmt.Sprintf("Create directory %s", r.Path)
	case RuleFileContains:
		return fmt.Sprintf("Add the missing elements to %s", r.Path)
	default:
		return fmt.Sprintf("Create %s", r.Path)
	}
}

// Checklist is an ordered set of rules, evaluated in declaration order.
type Checklist []Rule

// Validate checks the checklist for malformed rules and returns a
// descriptive error naming the first offender.
func (c Checklist) Validate() error {
	for i, r := range c {
		if r.Component == "" {
			return fmt.Errorf("checklist[%d]: component must not be empty", i)
		}
		if r.Path == "" {
			return fmt.Errorf("checklist[%d] (%s): path must not be empty", i, r.Component)
		}
		if !isValidRuleKind(r.Kind) {
			return fmt.Errorf("checklist[%d] (%s): unknown kind %q (valid: file_exists, dir_exists, file_contains)", i, r.Component, r.Kind)
		}
		if r.Kind == RuleFileContains && len(r.Keywords) == 0 {
			return fmt.Errorf("checklist[%d] (%s): file_contains rule needs at least one keyword", i, r.Component)
		}
		if r.Kind != RuleFileContains && len(r.Keywords) > 0 {
			return fmt.Errorf("checklist[%d] (%s): keywords are only valid on file_contains rules", i, r.Component)
		}
		if r.Severity != "" && !isValidSeverity(r.Severity) {
			return fmt.Errorf("checklist[%d] (%s): unknown severity %q (valid: CRITICAL, HIGH, MEDIUM, LOW)", i, r.Component, r.Severity)
		}
	}
	return nil
}

func isValidRuleKind(k RuleKind) bool {
	for _, v := range ValidRuleKinds {
		if k == v {
			return true
		}
	}
	return false
}

func isValidSeverity(s Severity) bool {
	for _, v := range ValidSeverities {
		if s == v {
			return true
		}
	}
	return false
}
