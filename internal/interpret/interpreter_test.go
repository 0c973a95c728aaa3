package interpret

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixguard/mixguard/internal/backend"
	"github.com/mixguard/mixguard/internal/model"
)

func objectPayload(t *testing.T, raw string) backend.Payload {
	t.Helper()
	require.True(t, json.Valid([]byte(raw)))
	return backend.Payload{Result: json.RawMessage(raw)}
}

func stringPayload(t *testing.T, text string) backend.Payload {
	t.Helper()
	encoded, err := json.Marshal(text)
	require.NoError(t, err)
	return backend.Payload{Result: encoded}
}

func TestOutcomeStructuredIdempotence(t *testing.T) {
	payload := objectPayload(t, `{
		"type": "Dangerous",
		"title": "T",
		"explanation": "E",
		"recommendations": ["x"]
	}`)

	outcome := Outcome(payload)

	assert.Equal(t, model.LevelDangerous, outcome.Level)
	assert.Equal(t, "T", outcome.Title)
	assert.Equal(t, "E", outcome.Explanation)
	assert.Equal(t, []string{"x"}, outcome.Recommendations)
}

func TestOutcomeStructuredDefaults(t *testing.T) {
	outcome := Outcome(objectPayload(t, `{"type": "Mild"}`))

	assert.Equal(t, model.LevelMild, outcome.Level)
	assert.Equal(t, "Analysis Result", outcome.Title)
	assert.Equal(t, "No explanation provided.", outcome.Explanation)
	assert.Equal(t, []string{}, outcome.Recommendations)
}

func TestOutcomeLevelCoercion(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  model.SafetyLevel
	}{
		{name: "exact level passes through", label: "Extreme", want: model.LevelExtreme},
		{name: "near-miss safe label", label: "Generally Safe", want: model.LevelSafe},
		{name: "safe with qualifier", label: "safe-ish", want: model.LevelSafe},
		{name: "unrecognized label", label: "Catastrophic", want: model.LevelUnknown},
		{name: "empty label", label: "", want: model.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(map[string]string{"type": tt.label, "title": "t", "explanation": "e"})
			require.NoError(t, err)

			outcome := Outcome(backend.Payload{Result: encoded})
			assert.Equal(t, tt.want, outcome.Level)
		})
	}
}

func TestOutcomeStringEmbeddedJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "bare json string",
			text: `{"type": "Exothermic", "title": "Heat Release", "explanation": "Gets hot.", "recommendations": ["Use a heat-safe container"]}`,
		},
		{
			name: "fenced json",
			text: "Here is the analysis:\n```json\n{\"type\": \"Exothermic\", \"title\": \"Heat Release\", \"explanation\": \"Gets hot.\", \"recommendations\": [\"Use a heat-safe container\"]}\n```",
		},
		{
			name: "json with preamble",
			text: `The result follows. {"type": "Exothermic", "title": "Heat Release", "explanation": "Gets hot.", "recommendations": ["Use a heat-safe container"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Outcome(stringPayload(t, tt.text))

			assert.Equal(t, model.LevelExothermic, outcome.Level)
			assert.Equal(t, "Heat Release", outcome.Title)
			assert.Equal(t, "Gets hot.", outcome.Explanation)
			assert.Equal(t, []string{"Use a heat-safe container"}, outcome.Recommendations)
		})
	}
}

func TestOutcomeMarkdownMining(t *testing.T) {
	text := "**Category: Acid-Base Reaction**\n" +
		"Mixing these produces heat and salt. Generally safe at household concentrations.\n" +
		"**Precautions:**\n" +
		"1. Wear gloves\n" +
		"2. Ventilate"

	outcome := Outcome(stringPayload(t, text))

	assert.Equal(t, model.LevelSafe, outcome.Level)
	assert.Equal(t, "Acid-Base Reaction", outcome.Title)
	assert.Equal(t, "Mixing these produces heat and salt. Generally safe at household concentrations.", outcome.Explanation)
	assert.Equal(t, []string{"Wear gloves", "Ventilate"}, outcome.Recommendations)
}

func TestOutcomeKeywordPriority(t *testing.T) {
	// Danger vocabulary outranks "safe" no matter where it appears.
	outcome := Outcome(stringPayload(t, "This looks safe at first glance but the fumes are toxic."))
	assert.Equal(t, model.LevelDangerous, outcome.Level)

	tests := []struct {
		text string
		want model.SafetyLevel
	}{
		{text: "the mixture may explode", want: model.LevelDangerous},
		{text: "unsafe to combine", want: model.LevelDangerous},
		{text: "a mild but exothermic reaction", want: model.LevelExothermic},
		{text: "only a mild irritant", want: model.LevelMild},
		{text: "perfectly safe", want: model.LevelSafe},
		{text: "nothing conclusive here", want: model.LevelUnknown},
	}
	for _, tt := range tests {
		got := Outcome(stringPayload(t, tt.text))
		assert.Equal(t, tt.want, got.Level, "text: %q", tt.text)
	}
}

func TestOutcomeStrayJSONSpanStillMinesMarkdown(t *testing.T) {
	// An incidental JSON object inside prose must not preempt text mining.
	text := "This mixture is toxic at any dilution, where {\"ratio\": 2} applies.\n" +
		"**Precautions:**\n" +
		"1. Wear gloves"

	outcome := Outcome(stringPayload(t, text))

	assert.Equal(t, model.LevelDangerous, outcome.Level)
	assert.Contains(t, outcome.Explanation, "toxic")
	assert.Equal(t, []string{"Wear gloves"}, outcome.Recommendations)
}

func TestOutcomeEmptyObjectStringFallsThrough(t *testing.T) {
	outcome := Outcome(stringPayload(t, "Mixing these is perfectly safe. {} is the residue."))

	assert.Equal(t, model.LevelSafe, outcome.Level)
	assert.Equal(t, "Chemical Analysis", outcome.Title)
}

func TestOutcomeMarkdownDefaults(t *testing.T) {
	outcome := Outcome(stringPayload(t, "Some inconclusive prose without any markers."))

	assert.Equal(t, model.LevelUnknown, outcome.Level)
	assert.Equal(t, "Chemical Analysis", outcome.Title)
	assert.Equal(t, "Some inconclusive prose without any markers.", outcome.Explanation)
	assert.Equal(t, []string{"Proceed with caution."}, outcome.Recommendations)
}

func TestOutcomeMarkdownAlternateHeaders(t *testing.T) {
	for _, header := range []string{"Precautions", "Safety Considerations", "Safety Precautions", "SAFETY PRECAUTIONS"} {
		text := "Body text.\n**" + header + ":**\n- Keep ventilated\n"

		outcome := Outcome(stringPayload(t, text))

		assert.Equal(t, "Body text.", outcome.Explanation, "header: %q", header)
		assert.Equal(t, []string{"Keep ventilated"}, outcome.Recommendations, "header: %q", header)
	}
}

func TestOutcomeRecommendationMining(t *testing.T) {
	text := "Body.\n" +
		"**Precautions:**\n" +
		"Precautions:\n" + // header echo, discarded
		"\n" +
		"1. one\n" +
		"2) two\n" +
		"- three\n" +
		"* four\n" +
		"five\n" +
		"6. six\n" +
		"7. seven\n"

	outcome := Outcome(stringPayload(t, text))

	// Markers stripped, blanks and echoes dropped, capped at five in order.
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, outcome.Recommendations)
}

func TestOutcomeEmptyRecommendationSection(t *testing.T) {
	outcome := Outcome(stringPayload(t, "Body.\n**Precautions:**\n\n"))

	assert.Equal(t, "Body.", outcome.Explanation)
	assert.Equal(t, []string{"Proceed with caution."}, outcome.Recommendations)
}

func TestOutcomeInvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload backend.Payload
	}{
		{name: "nil result", payload: backend.Payload{}},
		{name: "null result", payload: backend.Payload{Result: json.RawMessage("null")}},
		{name: "number result", payload: backend.Payload{Result: json.RawMessage("42")}},
		{name: "array result", payload: backend.Payload{Result: json.RawMessage(`["a"]`)}},
		{name: "truncated object", payload: backend.Payload{Result: json.RawMessage(`{"type":`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Outcome(tt.payload)

			// Still a structurally valid outcome.
			assert.Equal(t, model.LevelUnknown, outcome.Level)
			assert.Equal(t, "Analysis Result", outcome.Title)
			assert.Equal(t, "No explanation provided.", outcome.Explanation)
			assert.Equal(t, []string{}, outcome.Recommendations)
		})
	}
}
