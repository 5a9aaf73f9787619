package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	configAdapter "github.com/modgen/modgen/internal/adapters/outbound/config"
	"github.com/modgen/modgen/internal/adapters/outbound/gitinfo"
	historyAdapter "github.com/modgen/modgen/internal/adapters/outbound/history"
	"github.com/modgen/modgen/internal/adapters/outbound/tui"
	"github.com/modgen/modgen/internal/adapters/outbound/writer"
	"github.com/modgen/modgen/internal/application"
	"github.com/modgen/modgen/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		layoutFlag  string
		rootFlag    string
		projectPath string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:     "generate <resource-path>",
		Aliases: []string{"g"},
		Short:   "Generate boilerplate files for a resource",
		Long: "Generate the route, controller, service, model, interface and validation " +
			"files for a resource. The resource may be nested under sub-folders, e.g. " +
			"\"billing/invoices/order\". Existing files are overwritten without confirmation.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configAdapter.New().Load(projectPath)
			if err != nil {
				return err
			}
			if layoutFlag != "" {
				cfg.Layout = layoutFlag
			}
			if rootFlag != "" {
				cfg.OutputRoot = rootFlag
			}

			mode, err := domain.ParseLayoutMode(cfg.Layout)
			if err != nil {
				return err
			}

			outputRoot := cfg.OutputRoot
			if !filepath.IsAbs(outputRoot) {
				outputRoot = filepath.Join(projectPath, outputRoot)
			}

			svc := application.NewGenerateService(writer.New(outputRoot), log.Logger)

			if dryRun {
				artifacts, err := svc.Plan(args[0], mode)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlan(cfg.OutputRoot, artifacts))
				return nil
			}

			report, genErr := svc.Generate(args[0], mode)
			// Show the partial report even when a write failed midway, so the
			// user knows which files are already on disk.
			if len(report) > 0 || genErr == nil {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(cfg.OutputRoot, report))
			}
			if genErr != nil {
				return genErr
			}

			saveHistory(projectPath, args[0], mode, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&layoutFlag, "layout", "", "Layout mode (split-route, colocated, colocated-service)")
	cmd.Flags().StringVar(&rootFlag, "root", "", "Output root directory (default from .modgen.yaml, else \"src\")")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding .modgen.yaml and the output root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan and render without writing files")

	return cmd
}

// saveHistory appends a generation record, stamped with the current commit
// when the project is a git repository. History failures never fail the run.
func saveHistory(projectPath, resource string, mode domain.LayoutMode, report domain.GenerationReport) {
	record := domain.GenerationRecord{
		Timestamp: time.Now().UTC(),
		Resource:  resource,
		Layout:    string(mode),
		Files:     report,
	}

	gi := gitinfo.New()
	if gi.IsGitRepo(projectPath) {
		if hash, err := gi.CommitHash(projectPath); err == nil {
			record.CommitHash = hash
		}
	}

	if err := historyAdapter.New().Save(projectPath, record); err != nil {
		log.Warn().Err(err).Msg("could not save generation history")
	}
}
