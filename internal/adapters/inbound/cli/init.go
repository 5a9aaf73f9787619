package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modgen/modgen/internal/domain"
)

const configFileName = ".modgen.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .modgen.yaml configuration file",
		Long:  "Create a .modgen.yaml with the default output root and layout mode.",
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

			if err := os.WriteFile(dest, []byte(defaultConfigYAML()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .modgen.yaml")

	return cmd
}

func defaultConfigYAML() string {
	cfg := domain.DefaultConfig()

	return fmt.Sprintf(`# modgen configuration

# Directory all generated files are written under.
output_root: %s

# Default layout mode. One of:
#   split-route       - routes/ tree separate from modules/, no service layer
#   colocated         - everything in one module directory, stub controllers
#   colocated-service - one module directory with a service layer
layout: %s
`, cfg.OutputRoot, cfg.Layout)
}
