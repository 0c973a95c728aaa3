// Package interpret coerces the analysis backend's loosely-structured
// responses into the canonical outcome shape. Interpretation never fails:
// when the payload is not strictly structured it degrades to best-effort
// text mining and, past that, to fixed placeholder content.
package interpret

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mixguard/mixguard/internal/backend"
	"github.com/mixguard/mixguard/internal/model"
)

// Placeholder content used when parsing cannot recover a field.
const (
	defaultTitle       = "Analysis Result"
	defaultMiningTitle = "Chemical Analysis"
	defaultExplanation = "No explanation provided."
	defaultCaution     = "Proceed with caution."
)

// payloadKind is the tagged-union discriminator for the backend's dual-shape
// result field, resolved once up front so the interpretation branches stay
// exhaustive.
type payloadKind int

const (
	kindInvalid payloadKind = iota
	kindObject
	kindString
)

// wireOutcome is the structured outcome shape the backend may return.
type wireOutcome struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
}

// Outcome interprets a raw backend payload into a well-formed reaction
// outcome. It always succeeds; the result satisfies the outcome invariants
// regardless of how degraded the payload is.
func Outcome(p backend.Payload) model.ReactionOutcome {
	kind, text, wire := classify(p.Result)

	switch kind {
	case kindObject:
		return fromWire(wire)
	case kindString:
		if salvaged, ok := salvageJSON(text); ok {
			return fromWire(salvaged)
		}
		return mineMarkdown(text)
	default:
		return fromWire(wireOutcome{})
	}
}

// classify resolves the result field into one of the three payload shapes.
func classify(raw json.RawMessage) (payloadKind, string, wireOutcome) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return kindInvalid, "", wireOutcome{}
	}

	switch trimmed[0] {
	case '{':
		var wire wireOutcome
		if err := json.Unmarshal(raw, &wire); err != nil {
			return kindInvalid, "", wireOutcome{}
		}
		return kindObject, "", wire
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return kindInvalid, "", wireOutcome{}
		}
		return kindString, text, wireOutcome{}
	default:
		return kindInvalid, "", wireOutcome{}
	}
}

// salvageJSON attempts to recover a structured outcome embedded in free text:
// the whole string as JSON, then a fenced code block, then the first brace-
// delimited span. A candidate only counts when it is outcome-shaped; prose
// with an incidental JSON object in it still goes to markdown mining.
func salvageJSON(text string) (wireOutcome, bool) {
	for _, candidate := range jsonCandidates(text) {
		var wire wireOutcome
		if err := json.Unmarshal([]byte(candidate), &wire); err == nil && wire.hasContent() {
			return wire, true
		}
	}
	return wireOutcome{}, false
}

// hasContent reports whether the decoded object carries any outcome field.
func (w wireOutcome) hasContent() bool {
	return strings.TrimSpace(w.Type) != "" ||
		strings.TrimSpace(w.Title) != "" ||
		strings.TrimSpace(w.Explanation) != ""
}

func jsonCandidates(text string) []string {
	text = strings.TrimSpace(text)
	var candidates []string

	if strings.HasPrefix(text, "{") {
		candidates = append(candidates, text)
	}

	if idx := strings.Index(text, "```"); idx >= 0 {
		block := text[idx+3:]
		block = strings.TrimPrefix(block, "json")
		if end := strings.Index(block, "```"); end >= 0 {
			candidates = append(candidates, strings.TrimSpace(block[:end]))
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	return candidates
}

// fromWire post-validates a structured outcome into the canonical shape.
// Near-miss classification labels like "Generally Safe" coerce to Safe;
// anything else unrecognized coerces to Unknown.
func fromWire(wire wireOutcome) model.ReactionOutcome {
	level, ok := model.ParseSafetyLevel(wire.Type)
	if !ok {
		if strings.Contains(strings.ToLower(wire.Type), "safe") {
			level = model.LevelSafe
		} else {
			level = model.LevelUnknown
		}
	}

	title := strings.TrimSpace(wire.Title)
	if title == "" {
		title = defaultTitle
	}

	explanation := strings.TrimSpace(wire.Explanation)
	if explanation == "" {
		explanation = defaultExplanation
	}

	recommendations := wire.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return model.ReactionOutcome{
		Level:           level,
		Title:           title,
		Explanation:     explanation,
		Recommendations: recommendations,
	}
}

var (
	categoryMarker = regexp.MustCompile(`(?i)\*\*\s*category:\s*([^*]+)\*\*`)
	listMarker     = regexp.MustCompile(`^(\d+[.)]|[-*•])\s*`)
)

// sectionHeaders are the recognized precaution section labels, checked
// case-insensitively. Longer variants listed first so the earliest match
// covers the whole header.
var sectionHeaders = []string{
	"safety considerations",
	"safety precautions",
	"precautions",
}

// mineMarkdown extracts an outcome from markdown-style prose.
func mineMarkdown(text string) model.ReactionOutcome {
	level := classifyText(text)

	title := defaultMiningTitle
	if m := categoryMarker.FindStringSubmatch(text); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			title = t
		}
	}
	body := categoryMarker.ReplaceAllString(text, "")

	headerIdx, headerEnd := findSectionHeader(body)

	explanation := body
	var recommendations []string
	if headerIdx >= 0 {
		explanation = body[:headerIdx]
		recommendations = mineRecommendations(body[headerEnd:])
	}

	explanation = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(explanation), "*#-"))
	if explanation == "" {
		explanation = defaultExplanation
	}

	if len(recommendations) == 0 {
		recommendations = []string{defaultCaution}
	}

	return model.ReactionOutcome{
		Level:           level,
		Title:           title,
		Explanation:     explanation,
		Recommendations: recommendations,
	}
}

// classifyText scans the lowercased text for severity keywords. First match
// wins in priority order; danger vocabulary always outranks "safe".
func classifyText(text string) model.SafetyLevel {
	lower := strings.ToLower(text)

	for _, keyword := range []string{"unsafe", "danger", "toxic", "explode"} {
		if strings.Contains(lower, keyword) {
			return model.LevelDangerous
		}
	}
	switch {
	case strings.Contains(lower, "exothermic"):
		return model.LevelExothermic
	case strings.Contains(lower, "mild"):
		return model.LevelMild
	case strings.Contains(lower, "safe"):
		return model.LevelSafe
	default:
		return model.LevelUnknown
	}
}

// findSectionHeader locates the earliest precaution section header. It
// returns the index where the explanation should be cut and the index just
// past the header's line, or (-1, -1) when no header is present.
func findSectionHeader(text string) (int, int) {
	lower := strings.ToLower(text)

	start := -1
	for _, header := range sectionHeaders {
		if idx := strings.Index(lower, header); idx >= 0 && (start < 0 || idx < start) {
			start = idx
		}
	}
	if start < 0 {
		return -1, -1
	}

	end := start
	if nl := strings.Index(text[start:], "\n"); nl >= 0 {
		end = start + nl + 1
	} else {
		end = len(text)
	}

	return start, end
}

// mineRecommendations pulls list entries from the lines following a
// precaution header: list markers stripped, blanks and header echoes
// discarded, at most five kept in original order.
func mineRecommendations(text string) []string {
	var recommendations []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = listMarker.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isHeaderEcho(line) {
			continue
		}
		recommendations = append(recommendations, line)
		if len(recommendations) == 5 {
			break
		}
	}

	return recommendations
}

// isHeaderEcho reports whether a line merely repeats a section header.
func isHeaderEcho(line string) bool {
	norm := strings.Trim(strings.ToLower(line), "*#: \t")
	for _, header := range sectionHeaders {
		if norm == header {
			return true
		}
	}
	return false
}
