// Package kb holds the static reaction knowledge base: the chemical identity
// table and the precomputed reaction rules, with lookup helpers for the
// resolution pipeline.
package kb

import (
	"fmt"
	"strings"

	"github.com/mixguard/mixguard/internal/common"
	"github.com/mixguard/mixguard/internal/model"
)

// KnowledgeBase is the immutable identity and rule tables, loaded once at
// startup. Lookups are read-only and safe for concurrent use.
type KnowledgeBase struct {
	chemicals []model.ChemicalIdentity
	rules     []model.ReactionRule
}

// New creates a knowledge base from the given tables and validates their
// integrity. Collisions (a lookup key shared by two identities, or two rules
// for the same unordered pair) are a load-time error, never resolved silently
// at lookup time.
func New(chemicals []model.ChemicalIdentity, rules []model.ReactionRule) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{chemicals: chemicals, rules: rules}
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrKnowledgeBase, err)
	}
	return kb, nil
}

// Default returns a knowledge base built from the embedded tables.
func Default() *KnowledgeBase {
	kb, err := New(DefaultTables())
	if err != nil {
		// The embedded tables are checked by tests; a collision here is a bug.
		panic(fmt.Sprintf("embedded knowledge base invalid: %v", err))
	}
	return kb
}

// DefaultTables returns the embedded tables without validation, for callers
// that scan the raw data instead of looking identities up.
func DefaultTables() ([]model.ChemicalIdentity, []model.ReactionRule) {
	return defaultChemicals(), defaultRules()
}

// Chemicals returns the identity table in load order.
func (kb *KnowledgeBase) Chemicals() []model.ChemicalIdentity {
	return kb.chemicals
}

// Rules returns the rule table in load order.
func (kb *KnowledgeBase) Rules() []model.ReactionRule {
	return kb.rules
}

// Normalize maps a raw text token to a known chemical identity. It trims and
// lowercases the input, then matches the canonical name, the formula, or any
// alias, case-insensitively. The first identity in table order wins. Returns
// nil when the input is empty after trimming or matches nothing; absence of a
// match is an expected outcome, not an error.
func (kb *KnowledgeBase) Normalize(raw string) *model.ChemicalIdentity {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return nil
	}

	for i := range kb.chemicals {
		chem := &kb.chemicals[i]
		if strings.ToLower(chem.Name) == needle || strings.ToLower(chem.Formula) == needle {
			return chem
		}
		for _, alias := range chem.Aliases {
			if strings.ToLower(alias) == needle {
				return chem
			}
		}
	}

	return nil
}

// Match finds the precomputed outcome for a pair of recognized identities.
// Identical identities short-circuit to the fixed "Same Substance" outcome
// before the rule table is consulted, taking priority over any rule entry.
// Otherwise the first rule matching the unordered pair wins. Returns nil on a
// miss, which signals "defer to remote analysis".
func (kb *KnowledgeBase) Match(a, b *model.ChemicalIdentity) *model.ReactionOutcome {
	if a == nil || b == nil {
		return nil
	}

	if a.ID == b.ID {
		outcome := SameSubstanceOutcome(a)
		return &outcome
	}

	for i := range kb.rules {
		if kb.rules[i].Matches(a.ID, b.ID) {
			outcome := kb.rules[i].Outcome
			return &outcome
		}
	}

	return nil
}

// SameSubstanceOutcome is the fixed outcome for mixing a substance with itself.
func SameSubstanceOutcome(chem *model.ChemicalIdentity) model.ReactionOutcome {
	return model.ReactionOutcome{
		Level:       model.LevelSafe,
		Title:       "Same Substance",
		Explanation: fmt.Sprintf("Both inputs are %s. Mixing a substance with itself causes no reaction.", chem.Name),
		Recommendations: []string{
			"No special precautions needed.",
		},
	}
}

// Validate checks the data-integrity preconditions the lookup code assumes:
// no lookup key (name, formula, or alias) shared by two identities, no
// duplicate identity IDs, and no two rules covering the same unordered pair.
func (kb *KnowledgeBase) Validate() error {
	ids := make(map[string]string, len(kb.chemicals))
	keys := make(map[string]string, len(kb.chemicals)*3)

	for i := range kb.chemicals {
		chem := &kb.chemicals[i]
		if chem.ID == "" {
			return fmt.Errorf("chemical %q has an empty id", chem.Name)
		}
		if prev, ok := ids[chem.ID]; ok {
			return fmt.Errorf("duplicate chemical id %q (held by %q and %q)", chem.ID, prev, chem.Name)
		}
		ids[chem.ID] = chem.Name

		for _, key := range append([]string{chem.Name, chem.Formula}, chem.Aliases...) {
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				continue
			}
			if prev, ok := keys[key]; ok && prev != chem.ID {
				return fmt.Errorf("lookup key %q is claimed by both %q and %q", key, prev, chem.ID)
			}
			keys[key] = chem.ID
		}
	}

	seen := make(map[string]int, len(kb.rules))
	for i := range kb.rules {
		rule := &kb.rules[i]
		if _, ok := ids[rule.ChemicalA]; !ok {
			return fmt.Errorf("rule %d references unknown chemical %q", i, rule.ChemicalA)
		}
		if _, ok := ids[rule.ChemicalB]; !ok {
			return fmt.Errorf("rule %d references unknown chemical %q", i, rule.ChemicalB)
		}
		key := pairKey(rule.ChemicalA, rule.ChemicalB)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("rules %d and %d both cover the pair %s", prev, i, key)
		}
		seen[key] = i
	}

	return nil
}

// pairKey canonicalizes an unordered pair of identity IDs.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "+" + b
}
