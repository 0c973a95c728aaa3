package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mixguard/mixguard/internal/model"
	"github.com/mixguard/mixguard/internal/tui"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <chemical1> <chemical2>",
		Short: "Check whether two chemicals are safe to mix",
		Long: `Check a pair of chemicals against the local knowledge base, falling back
to the remote analysis service when the pair is not covered locally.
Always prints a verdict; an Unknown verdict means "treat with caution."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := newResolver(cmd.Context())
			if err != nil {
				return err
			}

			result := resolver.Resolve(cmd.Context(), args[0], args[1])
			printResult(result)
			return nil
		},
	}
}

func printResult(result model.ReactionResult) {
	levelStyle := lipgloss.NewStyle().Bold(true).Foreground(tui.LevelColor(result.Level))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Printf("%s + %s\n", result.Chemical1, result.Chemical2)
	fmt.Printf("%s  %s\n\n", levelStyle.Render(string(result.Level)), result.Title)
	fmt.Println(result.Explanation)
	if len(result.Recommendations) > 0 {
		fmt.Println()
		for _, rec := range result.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
	}
	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("source: %s  checked: %s", result.Source, result.CheckedAt.Format("2006-01-02 15:04:05"))))
}
