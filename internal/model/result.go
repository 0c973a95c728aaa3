package model

import (
	"strings"
	"time"
)

// SafetyLevel classifies the severity of mixing two chemicals. It is a
// nominal classification, not an ordering.
type SafetyLevel string

// Safety level constants. Unknown is the safe default and is never absent.
const (
	LevelSafe       SafetyLevel = "Safe"
	LevelMild       SafetyLevel = "Mild"
	LevelExothermic SafetyLevel = "Exothermic"
	LevelDangerous  SafetyLevel = "Dangerous"
	LevelExtreme    SafetyLevel = "Extreme"
	LevelUnknown    SafetyLevel = "Unknown"
)

// ParseSafetyLevel maps a raw label to a safety level, case-insensitively.
// The boolean reports whether the label named a known level.
func ParseSafetyLevel(raw string) (SafetyLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "safe":
		return LevelSafe, true
	case "mild":
		return LevelMild, true
	case "exothermic":
		return LevelExothermic, true
	case "dangerous":
		return LevelDangerous, true
	case "extreme":
		return LevelExtreme, true
	case "unknown":
		return LevelUnknown, true
	default:
		return LevelUnknown, false
	}
}

// Valid reports whether the level is one of the closed enumeration values.
func (l SafetyLevel) Valid() bool {
	switch l {
	case LevelSafe, LevelMild, LevelExothermic, LevelDangerous, LevelExtreme, LevelUnknown:
		return true
	default:
		return false
	}
}

// ReactionOutcome is the classified verdict for a pair of inputs.
// A well-formed outcome always has a non-empty title and explanation and a
// level drawn from the closed enumeration.
type ReactionOutcome struct {
	Level           SafetyLevel
	Title           string
	Explanation     string
	Recommendations []string
}

// ResultSource indicates which pipeline path produced a result.
type ResultSource string

// Result source constants.
const (
	SourceSameSubstance  ResultSource = "SAME_SUBSTANCE"
	SourceLocalRule      ResultSource = "LOCAL_RULE"
	SourceRemoteAnalysis ResultSource = "REMOTE_ANALYSIS"
	SourceFallback       ResultSource = "FALLBACK"
)

// ReactionResult is the unit returned to callers and stored in history.
// Chemical1 and Chemical2 hold the raw input strings as originally typed,
// not their normalized forms. Immutable once constructed.
type ReactionResult struct {
	CheckedAt time.Time
	Chemical1 string
	Chemical2 string
	Source    ResultSource
	ReactionOutcome
}
