package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	historyAdapter "github.com/modgen/modgen/internal/adapters/outbound/history"
	"github.com/modgen/modgen/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past generations",
		Long:  "List the generation records stored under .modgen/history, oldest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := historyAdapter.New().Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path holding the history store")

	return cmd
}
