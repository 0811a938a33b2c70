package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/checkmend/checkmend/internal/adapters/outbound/artifact"
	"github.com/checkmend/checkmend/internal/adapters/outbound/config"
	"github.com/checkmend/checkmend/internal/adapters/outbound/gitinfo"
	"github.com/checkmend/checkmend/internal/application"
)

func newRepairCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "repair [path]",
		Short: "Apply the repair catalog without auditing",
		Long:  "Create whatever the repair catalog expects and is absent. Repairs are idempotent: re-running with no external change applies nothing.",
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

			report, err := svc.Repair(absPath)
			if err != nil {
				return fmt.Errorf("repair failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}

			if len(report.RepairsApplied) == 0 && len(report.RepairFailures) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to repair.")
				return nil
			}
			for _, r := range report.RepairsApplied {
				fmt.Fprintf(cmd.OutOrStdout(), "  + %s\n", r.Description)
			}
			for _, f := range report.RepairFailures {
				fmt.Fprintf(cmd.OutOrStdout(), "  ! %s (%s)\n", f.Description, f.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the repair report as JSON")

	return cmd
}
