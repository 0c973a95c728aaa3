package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mixguard/mixguard/internal/model"
)

// SaveChemical inserts or replaces a chemical identity.
func (s *SQLiteStorage) SaveChemical(ctx context.Context, chem model.ChemicalIdentity) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(chem.ID, "chemical id"); err != nil {
		return err
	}
	if err := validateString(chem.Name, "chemical name"); err != nil {
		return err
	}

	aliases, err := json.Marshal(chem.Aliases)
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chemicals (id, name, formula, aliases)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			formula = excluded.formula,
			aliases = excluded.aliases
	`, chem.ID, chem.Name, chem.Formula, string(aliases))
	if err != nil {
		return fmt.Errorf("failed to save chemical: %w", err)
	}

	return nil
}

// ListChemicals returns the identity table in insertion order.
func (s *SQLiteStorage) ListChemicals(ctx context.Context) ([]model.ChemicalIdentity, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, formula, aliases
		FROM chemicals
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list chemicals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chemicals []model.ChemicalIdentity
	for rows.Next() {
		var chem model.ChemicalIdentity
		var aliases string
		if err := rows.Scan(&chem.ID, &chem.Name, &chem.Formula, &aliases); err != nil {
			return nil, fmt.Errorf("failed to scan chemical: %w", err)
		}
		if err := json.Unmarshal([]byte(aliases), &chem.Aliases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aliases for %s: %w", chem.ID, err)
		}
		chemicals = append(chemicals, chem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chemicals: %w", err)
	}

	return chemicals, nil
}
