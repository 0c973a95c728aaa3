package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mixguard/mixguard/internal/model"
)

func chemicalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chemicals",
		Short: "Inspect the chemical identity table",
	}

	cmd.AddCommand(chemicalsListCmd())
	cmd.AddCommand(chemicalsSearchCmd())

	return cmd
}

func chemicalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known chemicals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			knowledge, err := loadKnowledgeBase(cmd.Context())
			if err != nil {
				return err
			}

			printChemicals(knowledge.Chemicals())
			return nil
		},
	}
}

func chemicalsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search chemicals by name, formula, or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			knowledge, err := loadKnowledgeBase(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.ToLower(strings.TrimSpace(args[0]))
			var matches []model.ChemicalIdentity
			for _, chem := range knowledge.Chemicals() {
				haystack := strings.ToLower(chem.Name + " " + chem.Formula + " " + strings.Join(chem.Aliases, " "))
				if strings.Contains(haystack, query) {
					matches = append(matches, chem)
				}
			}

			if len(matches) == 0 {
				fmt.Printf("No chemicals match %q\n", args[0])
				return nil
			}

			printChemicals(matches)
			return nil
		},
	}
}

func printChemicals(chemicals []model.ChemicalIdentity) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-20s %-10s %s", "Name", "Formula", "Aliases")))
	for _, chem := range chemicals {
		aliases := strings.Join(chem.Aliases, ", ")
		if aliases == "" {
			aliases = dimStyle.Render("(none)")
		}
		fmt.Printf("%-20s %-10s %s\n", chem.Name, chem.Formula, aliases)
	}
}
