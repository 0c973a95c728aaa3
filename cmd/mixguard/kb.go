package main

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mixguard/mixguard/internal/common"
	"github.com/mixguard/mixguard/internal/kb"
	"github.com/mixguard/mixguard/internal/model"
	"github.com/mixguard/mixguard/internal/storage"
)

func kbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage the reaction knowledge base",
	}

	cmd.AddCommand(kbInitCmd())
	cmd.AddCommand(kbVerifyCmd())

	return cmd
}

func kbInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a SQLite knowledge base seeded with the embedded tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath := viper.GetString("kb.path")
			if dbPath == "" {
				return fmt.Errorf("%w: kb init requires --kb-path (or kb.path in config)", common.ErrMissingConfig)
			}

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}

			defaults := kb.Default()
			if err := store.Seed(cmd.Context(), defaults.Chemicals(), defaults.Rules()); err != nil {
				return err
			}

			fmt.Printf("Seeded %s with %d chemicals and %d rules\n",
				dbPath, len(defaults.Chemicals()), len(defaults.Rules()))
			return nil
		},
	}
}

func kbVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the knowledge base for collisions",
		Long: `Scan the chemical and rule tables for integrity violations: lookup keys
claimed by more than one chemical, and duplicate rules for the same pair.
Lookups assume a collision-free table; fix anything reported here.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Read the tables without the usual load-time validation; the
			// whole point is to report collisions instead of failing on the
			// first one.
			chemicals, rules, err := loadRawTables(cmd)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(chemicals)+len(rules),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Verifying knowledge base...[reset]"),
			)

			violations := verifyTables(chemicals, rules, func() { _ = bar.Add(1) })
			_ = bar.Finish()
			fmt.Println()

			if len(violations) == 0 {
				fmt.Printf("OK: %d chemicals, %d rules, no collisions\n", len(chemicals), len(rules))
				return nil
			}

			for _, v := range violations {
				fmt.Println("  ✗ " + v)
			}
			return fmt.Errorf("%d integrity violation(s) found", len(violations))
		},
	}
}

// loadRawTables reads the configured tables without integrity validation.
func loadRawTables(cmd *cobra.Command) ([]model.ChemicalIdentity, []model.ReactionRule, error) {
	dbPath := viper.GetString("kb.path")
	if dbPath == "" {
		chemicals, rules := kb.DefaultTables()
		return chemicals, rules, nil
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = store.Close() }()

	chemicals, err := store.ListChemicals(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	rules, err := store.ListRules(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return chemicals, rules, nil
}

// verifyTables reports every collision instead of stopping at the first, so
// a broken table can be fixed in one pass. step is called once per scanned
// entry.
func verifyTables(chemicals []model.ChemicalIdentity, rules []model.ReactionRule, step func()) []string {
	var violations []string

	keys := make(map[string]string)
	for i := range chemicals {
		chem := &chemicals[i]
		for _, key := range append([]string{chem.Name, chem.Formula}, chem.Aliases...) {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			if prev, ok := keys[key]; ok && prev != chem.ID {
				violations = append(violations, fmt.Sprintf("lookup key %q claimed by both %q and %q", key, prev, chem.ID))
				continue
			}
			keys[key] = chem.ID
		}
		step()
	}

	pairs := make(map[string]int)
	for i := range rules {
		a, b := rules[i].ChemicalA, rules[i].ChemicalB
		if a > b {
			a, b = b, a
		}
		key := a + "+" + b
		if prev, ok := pairs[key]; ok {
			violations = append(violations, fmt.Sprintf("rules %d and %d both cover the pair %s", prev, i, key))
		} else {
			pairs[key] = i
		}
		step()
	}

	return violations
}
