package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mixguard/mixguard/internal/kb"
	"github.com/mixguard/mixguard/internal/model"
)

// SaveRule inserts or replaces a reaction rule.
func (s *SQLiteStorage) SaveRule(ctx context.Context, rule model.ReactionRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(rule.ChemicalA, "rule chemical_a"); err != nil {
		return err
	}
	if err := validateString(rule.ChemicalB, "rule chemical_b"); err != nil {
		return err
	}
	if !rule.Outcome.Level.Valid() {
		return fmt.Errorf("rule %s+%s has invalid level %q", rule.ChemicalA, rule.ChemicalB, rule.Outcome.Level)
	}

	recommendations, err := json.Marshal(rule.Outcome.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rules (chemical_a, chemical_b, level, title, explanation, recommendations)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(chemical_a, chemical_b) DO UPDATE SET
			level = excluded.level,
			title = excluded.title,
			explanation = excluded.explanation,
			recommendations = excluded.recommendations
	`, rule.ChemicalA, rule.ChemicalB, string(rule.Outcome.Level), rule.Outcome.Title, rule.Outcome.Explanation, string(recommendations))
	if err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}

	return nil
}

// ListRules returns the rule table in insertion order.
func (s *SQLiteStorage) ListRules(ctx context.Context) ([]model.ReactionRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT chemical_a, chemical_b, level, title, explanation, recommendations
		FROM rules
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.ReactionRule
	for rows.Next() {
		var rule model.ReactionRule
		var level, recommendations string
		if err := rows.Scan(&rule.ChemicalA, &rule.ChemicalB, &level, &rule.Outcome.Title, &rule.Outcome.Explanation, &recommendations); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		parsed, ok := model.ParseSafetyLevel(level)
		if !ok {
			return nil, fmt.Errorf("rule %s+%s has invalid level %q", rule.ChemicalA, rule.ChemicalB, level)
		}
		rule.Outcome.Level = parsed
		if err := json.Unmarshal([]byte(recommendations), &rule.Outcome.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendations for %s+%s: %w", rule.ChemicalA, rule.ChemicalB, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}

	return rules, nil
}

// Seed populates the database with the given tables. Existing entries with
// the same keys are overwritten.
func (s *SQLiteStorage) Seed(ctx context.Context, chemicals []model.ChemicalIdentity, rules []model.ReactionRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	for _, chem := range chemicals {
		if err := s.SaveChemical(ctx, chem); err != nil {
			return err
		}
	}
	for _, rule := range rules {
		if err := s.SaveRule(ctx, rule); err != nil {
			return err
		}
	}

	return nil
}

// LoadKnowledgeBase reads both tables and builds a validated knowledge base.
func (s *SQLiteStorage) LoadKnowledgeBase(ctx context.Context) (*kb.KnowledgeBase, error) {
	chemicals, err := s.ListChemicals(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.ListRules(ctx)
	if err != nil {
		return nil, err
	}
	return kb.New(chemicals, rules)
}
