package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/twich/internal/cli/model"
)

func newTesterCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tester",
		Short:       "Type URLs and see gatekeeper verdicts live",
		Args:        cobra.NoArgs,
		Annotations: withApp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := model.NewTesterModel(app.Theme, app.Filters.Gatekeeper)
			_, err := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			return err
		},
	}
}
