package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"

	"github.com/checkmend/checkmend/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	tierColors = map[domain.HealthTier]lipgloss.Color{
		domain.TierExcellent: success,
		domain.TierGood:      lipgloss.Color("#A3E635"), // lime
		domain.TierFair:      warning,
		domain.TierPoor:      danger,
		domain.TierUnknown:   dim,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	criticalTag   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderReport formats an audit report for terminal output.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	tierStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(tierColor(report.OverallHealth)).
		Render(string(report.OverallHealth))
	summary := dimStyle.Render(fmt.Sprintf("%d/%d checks passed", report.Passed, report.Total))

	title := headerStyle.Render("checkmend")
	subtitle := dimStyle.Render("Artifact Audit Report")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + tierStyled + "\n" + summary))
	b.WriteString("\n\n")

	// ── Validations ──
	if len(report.ValidationResults) > 0 {
		b.WriteString("  " + titleStyle.Render("Passed") + "\n\n")
		for _, component := range sortedComponents(report.ValidationResults) {
			rec := report.ValidationResults[component]
			fmt.Fprintf(&b, "    %s %s  %s\n",
				passStyle.Render("✓"),
				humanize(component),
				faintStyle.Render(rec.Message),
			)
		}
		b.WriteString("\n")
	}

	// ── Issues ──
	b.WriteString("  " + separatorLine + "\n\n")
	if len(report.IssuesFound) > 0 {
		b.WriteString("  " + titleStyle.Render("Issues") + "  " + severityCounts(report.IssuesFound) + "\n\n")
		for _, issue := range sortedIssues(report.IssuesFound) {
			fmt.Fprintf(&b, "    %s %s\n", severityTag(issue.Severity), dimStyle.Render(issue.Description))
			fmt.Fprintf(&b, "         %s\n", faintStyle.Render(issue.Remediation))
		}
	} else {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}
	b.WriteString("\n")

	// ── Repairs ──
	if len(report.RepairsApplied) > 0 {
		b.WriteString("  " + titleStyle.Render("Repairs applied") + "\n\n")
		for _, r := range report.RepairsApplied {
			fmt.Fprintf(&b, "    %s %s\n", passStyle.Render("+"), dimStyle.Render(r.Description))
		}
		b.WriteString("\n")
	}
	if len(report.RepairFailures) > 0 {
		b.WriteString("  " + warnStyle.Render("Repairs skipped") + "\n\n")
		for _, f := range report.RepairFailures {
			fmt.Fprintf(&b, "    %s %s  %s\n", warnStyle.Render("!"), dimStyle.Render(f.Description), faintStyle.Render(f.Reason))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHistory formats audit history for terminal output.
func RenderHistory(entries []domain.AuditEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No audit history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Audit History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		tierStyled := lipgloss.NewStyle().
			Foreground(tierColor(e.Tier)).
			Render(string(e.Tier))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			dimStyle.Render(fmt.Sprintf("%d/%d", e.Passed, e.Total)),
			tierStyled,
		)

		if i > 0 {
			diff := e.Passed - entries[i-1].Passed
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// humanize turns a component id like "swift_package" or "ContainerBuild"
// into display words.
func humanize(component string) string {
	parts := strings.FieldsFunc(component, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})

	var words []string
	for _, p := range parts {
		words = append(words, camelcase.Split(p)...)
	}

	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func severityTag(s domain.Severity) string {
	switch s {
	case domain.SeverityCritical:
		return criticalTag.Render("CRITICAL")
	case domain.SeverityHigh:
		return failStyle.Render("HIGH    ")
	case domain.SeverityMedium:
		return warnStyle.Render("MEDIUM  ")
	default:
		return infoStyle.Render("LOW     ")
	}
}

func severityCounts(issues []domain.Issue) string {
	counts := make(map[domain.Severity]int)
	for _, i := range issues {
		counts[i.Severity]++
	}

	var parts []string
	for _, s := range domain.ValidSeverities {
		if n := counts[s]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(string(s))))
		}
	}
	return dimStyle.Render(strings.Join(parts, ", "))
}

func sortedIssues(issues []domain.Issue) []domain.Issue {
	out := make([]domain.Issue, len(issues))
	copy(out, issues)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Severity.Rank() < out[j-1].Severity.Rank(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func sortedComponents(records map[string]domain.ValidationRecord) []string {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func tierColor(t domain.HealthTier) lipgloss.Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return fg
}
