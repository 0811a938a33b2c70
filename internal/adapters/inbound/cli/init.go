package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/checkmend/checkmend/internal/adapters/outbound/config"
	"github.com/checkmend/checkmend/internal/domain"
)

const configFileName = ".checkmend.yaml"

func newInitCmd() *cobra.Command {
	var (
		projectType string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .checkmend.yaml configuration file",
		Long:  "Create a .checkmend.yaml preloaded with the built-in checklist and repair catalog for your project type.",
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

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			pt := domain.ProjectType(projectType)
			if projectType != "" {
				valid := false
				for _, vt := range domain.ValidProjectTypes {
					if pt == vt {
						valid = true
						break
					}
				}
				if !valid {
					return fmt.Errorf("unknown project type %q (valid: service, library, bridge)", projectType)
				}
			}

			content, err := config.Generate(pt)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectType, "type", "service", "Project type (service, library, bridge)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .checkmend.yaml")

	return cmd
}
