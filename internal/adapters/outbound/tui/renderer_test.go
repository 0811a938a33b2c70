package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/checkmend/checkmend/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:       "run-1",
		ProjectPath: "/tmp/project",
		ValidationResults: map[string]domain.ValidationRecord{
			"swift_package": {Status: domain.StatusPassed, Message: "Package.swift found"},
			"container_build": {Status: domain.StatusPassed, Message: "Dockerfile hardened"},
		},
		IssuesFound: []domain.Issue{
			{Description: "README.md missing", Severity: domain.SeverityMedium, Remediation: "Write a README.md"},
			{Description: "go.mod missing", Severity: domain.SeverityCritical, Remediation: "Initialize the module manifest"},
		},
		RepairsApplied: []domain.Repair{
			{Description: "Created directory: docs"},
		},
		RepairFailures: []domain.RepairFailure{
			{Description: "Created file: docker-compose.yml", Reason: "permission denied"},
		},
		OverallHealth: domain.TierFair,
		Passed:        2,
		Total:         4,
		Timestamp:     time.Now(),
	}
}

func TestRenderReport_ContainsTierAndCounts(t *testing.T) {
	out := RenderReport(sampleReport())

	assert.Contains(t, out, "checkmend")
	assert.Contains(t, out, "FAIR")
	assert.Contains(t, out, "2/4 checks passed")
}

func TestRenderReport_HumanizesComponentNames(t *testing.T) {
	out := RenderReport(sampleReport())

	assert.Contains(t, out, "Swift Package")
	assert.Contains(t, out, "Container Build")
}

func TestRenderReport_ListsIssuesWithRemediation(t *testing.T) {
	out := RenderReport(sampleReport())

	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "go.mod missing")
	assert.Contains(t, out, "Write a README.md")
}

func TestRenderReport_ListsRepairsAndFailures(t *testing.T) {
	out := RenderReport(sampleReport())

	assert.Contains(t, out, "Repairs applied")
	assert.Contains(t, out, "Created directory: docs")
	assert.Contains(t, out, "Repairs skipped")
	assert.Contains(t, out, "permission denied")
}

func TestRenderReport_NoIssues(t *testing.T) {
	report := sampleReport()
	report.IssuesFound = nil

	assert.Contains(t, RenderReport(report), "No issues found.")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, RenderHistory(nil), "No audit history found.")
}

func TestRenderHistory_ShowsEntriesAndDiffs(t *testing.T) {
	entries := []domain.AuditEntry{
		{Timestamp: "2026-08-01T10:00:00Z", CommitHash: "abcdef1234567890", Passed: 5, Total: 7, Tier: domain.TierGood},
		{Timestamp: "2026-08-02T10:00:00Z", Passed: 7, Total: 7, Tier: domain.TierExcellent},
	}

	out := RenderHistory(entries)

	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "abcdef1") // short hash
	assert.Contains(t, out, "5/7")
	assert.Contains(t, out, "EXCELLENT")
	assert.Contains(t, out, "↑2")
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"swift_package":   "Swift Package",
		"ci-workflows":    "Ci Workflows",
		"ContainerBuild":  "Container Build",
		"readme":          "Readme",
		"module_manifest": "Module Manifest",
	}
	for in, want := range cases {
		assert.Equal(t, want, humanize(in), in)
	}
}

func TestSortedIssues_SeverityOrder(t *testing.T) {
	issues := []domain.Issue{
		{Description: "low", Severity: domain.SeverityLow},
		{Description: "critical", Severity: domain.SeverityCritical},
		{Description: "high", Severity: domain.SeverityHigh},
	}

	sorted := sortedIssues(issues)

	assert.Equal(t, "critical", sorted[0].Description)
	assert.Equal(t, "high", sorted[1].Description)
	assert.Equal(t, "low", sorted[2].Description)
	// Input order untouched.
	assert.Equal(t, "low", issues[0].Description)
}
