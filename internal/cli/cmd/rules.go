package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/twich/internal/filtering"
)

func newRulesCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:         "rules",
		Short:       "List the active block and sanitize rules",
		Long:        "List the built-in rules followed by the ones added in config.toml, in matching order.",
		Args:        cobra.NoArgs,
		Annotations: withApp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := app.Filters.Rules
			if asJSON {
				data, err := filtering.ContentBlockerJSON(rules.Block)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RulesTable(rules.Block, rules.Sanitize))
			return err
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the compiled WebKit content-blocker JSON instead")
	return c
}
