package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mixguard/mixguard/internal/tui"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive check session",
		Long: `Open an interactive session: enter pairs of chemicals and see verdicts
along with a short history of recent checks.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := newResolver(cmd.Context())
			if err != nil {
				return err
			}

			return tui.Run(tui.Config{
				Resolver:     resolver,
				HistoryLimit: viper.GetInt("history.limit"),
			})
		},
	}
}
