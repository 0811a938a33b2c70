package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/checkmend/checkmend/internal/adapters/outbound/artifact"
	"github.com/checkmend/checkmend/internal/adapters/outbound/config"
	"github.com/checkmend/checkmend/internal/adapters/outbound/gitinfo"
	"github.com/checkmend/checkmend/internal/adapters/outbound/history"
	"github.com/checkmend/checkmend/internal/adapters/outbound/tui"
	"github.com/checkmend/checkmend/internal/application"
	"github.com/checkmend/checkmend/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		noRepair    bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit a project tree and apply safe repairs",
		Long:  "Evaluate the checklist against a project tree, apply the repair catalog, and report health. Exits non-zero unless overall health is EXCELLENT or GOOD.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(
				artifact.NewProvider(),
				config.New(),
				gitinfo.New(),
			)

			var report *domain.Report
			if noRepair {
				report, err = svc.Inspect(absPath)
			} else {
				report, err = svc.Audit(absPath)
			}
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// Save to history
			hist := history.New()
			entry := domain.AuditEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Passed:     report.Passed,
				Total:      report.Total,
				Tier:       report.OverallHealth,
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.OverallHealth.Healthy() {
				return fmt.Errorf("overall health %s: %d issue(s) unresolved", report.OverallHealth, len(report.IssuesFound))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&noRepair, "no-repair", false, "Evaluate only, without touching the artifact tree")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history instead of the report")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
