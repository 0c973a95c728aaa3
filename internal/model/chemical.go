// Package model defines the core domain models used throughout the application.
package model

// ChemicalIdentity represents a known chemical substance from the knowledge base.
// Identities are immutable after load; lookup matches the canonical name, the
// formula, or any alias, case-insensitively.
type ChemicalIdentity struct {
	ID      string
	Name    string
	Formula string
	Aliases []string
}

// ReactionRule is a precomputed safety outcome for an unordered pair of
// chemical identities. ChemicalA and ChemicalB are identity IDs; matching is
// order-independent.
type ReactionRule struct {
	ChemicalA string
	ChemicalB string
	Outcome   ReactionOutcome
}

// Matches reports whether the rule covers the given pair of identity IDs,
// in either order.
func (r ReactionRule) Matches(a, b string) bool {
	return (r.ChemicalA == a && r.ChemicalB == b) || (r.ChemicalA == b && r.ChemicalB == a)
}
