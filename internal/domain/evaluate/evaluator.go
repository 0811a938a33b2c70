// Package evaluate runs checklist rules against an artifact tree.
//
// Evaluation is strictly read-only: every rule yields either exactly one
// ValidationRecord or at least one Issue, and nothing else. Expected gaps
// (missing files, missing keywords) are recorded, never raised; only an
// unexpected I/O failure aborts the run.
package evaluate

import (
	"fmt"
	"strings"

	"github.com/checkmend/checkmend/internal/domain"
)

// Run evaluates every rule in declaration order, appending outcomes to rc.
// The returned error means the run is aborted and no report may be
// assembled from rc.
func Run(rules domain.Checklist, store domain.ArtifactStore, rc *domain.RunContext) error {
	for _, rule := range rules {
		if err := evaluateRule(rule, store, rc); err != nil {
			return fmt.Errorf("evaluating %s: %w", rule.Component, err)
		}
	}
	return nil
}

func evaluateRule(rule domain.Rule, store domain.ArtifactStore, rc *domain.RunContext) error {
	switch rule.Kind {
	case domain.RuleFileExists:
		return evaluateFileExists(rule, store, rc)
	case domain.RuleDirExists:
		return evaluateDirExists(rule, store, rc)
	case domain.RuleFileContains:
		return evaluateFileContains(rule, store, rc)
	default:
		return fmt.Errorf("unknown rule kind %q", rule.Kind)
	}
}

func evaluateFileExists(rule domain.Rule, store domain.ArtifactStore, rc *domain.RunContext) error {
	ok, err := store.Exists(rule.Path)
	if err != nil {
		return err
	}
	if !ok {
		rc.RecordIssue(fmt.Sprintf("%s missing", rule.Path), rule.EffectiveSeverity(), rule.EffectiveRemediation())
		return nil
	}
	rc.RecordValidation(rule.Component, fmt.Sprintf("%s present", rule.Path))
	return nil
}

func evaluateDirExists(rule domain.Rule, store domain.ArtifactStore, rc *domain.RunContext) error {
	isDir, err := store.IsDir(rule.Path)
	if err != nil {
		return err
	}
	if !isDir {
		ok, err := store.Exists(rule.Path)
		if err != nil {
			return err
		}
		if ok {
			rc.RecordIssue(fmt.Sprintf("%s is not a directory", rule.Path), rule.EffectiveSeverity(), rule.EffectiveRemediation())
		} else {
			rc.RecordIssue(fmt.Sprintf("%s missing", rule.Path), rule.EffectiveSeverity(), rule.EffectiveRemediation())
		}
		return nil
	}
	rc.RecordValidation(rule.Component, fmt.Sprintf("%s present", rule.Path))
	return nil
}

func evaluateFileContains(rule domain.Rule, store domain.ArtifactStore, rc *domain.RunContext) error {
	ok, err := store.Exists(rule.Path)
	if err != nil {
		return err
	}
	if !ok {
		// The artifact is a prerequisite for every keyword sub-check:
		// record one CRITICAL issue and short-circuit the rest.
		rc.RecordIssue(fmt.Sprintf("%s missing", rule.Path), domain.SeverityCritical, fmt.Sprintf("Create %s", rule.Path))
		return nil
	}

	data, err := store.ReadFile(rule.Path)
	if err != nil {
		return err
	}
	content := string(data)

	// All missing keywords land in one issue to keep closely related
	// sub-checks from inflating the issue count.
	var missing []string
	for _, kw := range rule.Keywords {
		if !strings.Contains(content, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		rc.RecordIssue(
			fmt.Sprintf("%s: missing required elements: %s", rule.Path, strings.Join(missing, ", ")),
			rule.EffectiveSeverity(),
			rule.EffectiveRemediation(),
		)
		return nil
	}

	rc.RecordValidation(rule.Component, fmt.Sprintf("%s contains all required elements", rule.Path))
	return nil
}
