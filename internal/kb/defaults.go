package kb

import "github.com/mixguard/mixguard/internal/model"

// defaultChemicals is the embedded identity table, used when no SQLite
// knowledge base is configured.
func defaultChemicals() []model.ChemicalIdentity {
	return []model.ChemicalIdentity{
		{
			ID:      "bleach",
			Name:    "Bleach",
			Formula: "NaClO",
			Aliases: []string{"sodium hypochlorite", "chlorine bleach", "liquid bleach"},
		},
		{
			ID:      "ammonia",
			Name:    "Ammonia",
			Formula: "NH3",
			Aliases: []string{"ammonium hydroxide", "ammonia solution", "household ammonia"},
		},
		{
			ID:      "vinegar",
			Name:    "Vinegar",
			Formula: "CH3COOH",
			Aliases: []string{"acetic acid", "white vinegar", "distilled vinegar"},
		},
		{
			ID:      "baking-soda",
			Name:    "Baking Soda",
			Formula: "NaHCO3",
			Aliases: []string{"sodium bicarbonate", "bicarbonate of soda", "bicarb"},
		},
		{
			ID:      "hydrogen-peroxide",
			Name:    "Hydrogen Peroxide",
			Formula: "H2O2",
			Aliases: []string{"peroxide"},
		},
		{
			ID:      "rubbing-alcohol",
			Name:    "Rubbing Alcohol",
			Formula: "C3H8O",
			Aliases: []string{"isopropyl alcohol", "isopropanol", "ipa"},
		},
		{
			ID:      "water",
			Name:    "Water",
			Formula: "H2O",
			Aliases: []string{"distilled water", "tap water"},
		},
		{
			ID:      "table-salt",
			Name:    "Table Salt",
			Formula: "NaCl",
			Aliases: []string{"sodium chloride", "salt"},
		},
		{
			ID:      "drain-cleaner",
			Name:    "Drain Cleaner",
			Formula: "NaOH",
			Aliases: []string{"sodium hydroxide", "lye", "caustic soda"},
		},
		{
			ID:      "citric-acid",
			Name:    "Citric Acid",
			Formula: "C6H8O7",
			Aliases: []string{"lemon salt", "sour salt"},
		},
	}
}

// defaultRules is the embedded rule table. Pairs are unordered.
func defaultRules() []model.ReactionRule {
	return []model.ReactionRule{
		{
			ChemicalA: "bleach",
			ChemicalB: "ammonia",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelDangerous,
				Title:       "Chloramine Gas Formation",
				Explanation: "Bleach and ammonia react to release chloramine vapors, which are toxic to breathe even in small concentrations.",
				Recommendations: []string{
					"Never mix these substances.",
					"Ventilate the area immediately if combined.",
					"Seek fresh air and medical attention if exposed.",
				},
			},
		},
		{
			ChemicalA: "bleach",
			ChemicalB: "vinegar",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelDangerous,
				Title:       "Chlorine Gas Formation",
				Explanation: "Acidifying bleach liberates chlorine gas, a severe respiratory irritant that was used as a chemical weapon.",
				Recommendations: []string{
					"Never mix these substances.",
					"Leave the area and ventilate if combined.",
					"Call poison control if exposed.",
				},
			},
		},
		{
			ChemicalA: "bleach",
			ChemicalB: "rubbing-alcohol",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelDangerous,
				Title:       "Chloroform Formation",
				Explanation: "Bleach oxidizes isopropyl alcohol into chloroform and other chlorinated compounds that depress the central nervous system.",
				Recommendations: []string{
					"Never mix these substances.",
					"Store bleach and solvents separately.",
					"Ventilate thoroughly if combined.",
				},
			},
		},
		{
			ChemicalA: "vinegar",
			ChemicalB: "baking-soda",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelMild,
				Title:       "Acid-Base Neutralization",
				Explanation: "Acetic acid and sodium bicarbonate neutralize each other, fizzing off carbon dioxide. Harmless at household scale.",
				Recommendations: []string{
					"Expect foaming; use a large container.",
					"Safe for cleaning drains and surfaces.",
				},
			},
		},
		{
			ChemicalA: "vinegar",
			ChemicalB: "hydrogen-peroxide",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelDangerous,
				Title:       "Peracetic Acid Formation",
				Explanation: "Mixing vinegar with hydrogen peroxide produces peracetic acid, corrosive to skin, eyes, and airways.",
				Recommendations: []string{
					"Do not combine in the same container.",
					"Use sequentially with a rinse in between instead.",
					"Wear gloves and eye protection.",
				},
			},
		},
		{
			ChemicalA: "drain-cleaner",
			ChemicalB: "vinegar",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelExothermic,
				Title:       "Exothermic Neutralization",
				Explanation: "Sodium hydroxide and acetic acid neutralize violently, releasing enough heat to splatter the caustic solution.",
				Recommendations: []string{
					"Avoid mixing concentrated amounts.",
					"Wear gloves and eye protection.",
					"Add slowly and allow heat to dissipate if neutralizing.",
				},
			},
		},
		{
			ChemicalA: "water",
			ChemicalB: "table-salt",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelSafe,
				Title:       "Simple Dissolution",
				Explanation: "Salt dissolves in water without reacting. The result is brine.",
				Recommendations: []string{
					"No precautions needed.",
				},
			},
		},
		{
			ChemicalA: "baking-soda",
			ChemicalB: "citric-acid",
			Outcome: model.ReactionOutcome{
				Level:       model.LevelMild,
				Title:       "Effervescent Reaction",
				Explanation: "Citric acid and sodium bicarbonate fizz off carbon dioxide when wet. This is the reaction inside bath bombs.",
				Recommendations: []string{
					"Keep dry until use to avoid premature fizzing.",
				},
			},
		},
	}
}
