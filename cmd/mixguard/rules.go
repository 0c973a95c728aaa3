package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mixguard/mixguard/internal/tui"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the reaction rule table",
	}

	cmd.AddCommand(rulesListCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all precomputed reaction rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			knowledge, err := loadKnowledgeBase(cmd.Context())
			if err != nil {
				return err
			}

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Println(headerStyle.Render(fmt.Sprintf("%-35s %-12s %s", "Pair", "Level", "Title")))

			for _, rule := range knowledge.Rules() {
				levelStyle := lipgloss.NewStyle().Bold(true).Foreground(tui.LevelColor(rule.Outcome.Level))
				pair := rule.ChemicalA + " + " + rule.ChemicalB
				fmt.Printf("%-35s %-12s %s\n", pair, levelStyle.Render(string(rule.Outcome.Level)), rule.Outcome.Title)
			}

			return nil
		},
	}
}
