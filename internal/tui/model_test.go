package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixguard/mixguard/internal/model"
)

func testResult(title string, level model.SafetyLevel) model.ReactionResult {
	return model.ReactionResult{
		Chemical1: "bleach",
		Chemical2: "ammonia",
		Source:    model.SourceLocalRule,
		CheckedAt: time.Now(),
		ReactionOutcome: model.ReactionOutcome{
			Level:           level,
			Title:           title,
			Explanation:     "explanation",
			Recommendations: []string{"one"},
		},
	}
}

func TestResultMsgUpdatesHistory(t *testing.T) {
	m := newModel(Config{HistoryLimit: 4})
	m.checking = true

	for i, title := range []string{"first", "second", "third", "fourth", "fifth"} {
		updated, _ := m.Update(resultMsg{result: testResult(title, model.LevelSafe)})
		m = updated.(Model)
		assert.False(t, m.checking, "iteration %d", i)
	}

	require.NotNil(t, m.latest)
	assert.Equal(t, "fifth", m.latest.Title)

	entries := m.history.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "fifth", entries[0].Title)
	assert.Equal(t, "second", entries[3].Title)
}

func TestTabSwitchesFocus(t *testing.T) {
	m := newModel(Config{})
	require.Equal(t, 0, m.focus)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, 1, m.focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, 0, m.focus)
}

func TestEnterIgnoredWithEmptyInputs(t *testing.T) {
	m := newModel(Config{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	assert.False(t, m.checking)
	assert.Nil(t, cmd)
}

func TestViewShowsResultAndHistory(t *testing.T) {
	m := newModel(Config{HistoryLimit: 4})
	updated, _ := m.Update(resultMsg{result: testResult("Chloramine Gas Formation", model.LevelDangerous)})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Chloramine Gas Formation")
	assert.Contains(t, view, "Dangerous")
	assert.Contains(t, view, "recent checks")
}

func TestLevelColorDistinguishesUnknown(t *testing.T) {
	seen := map[string]model.SafetyLevel{}
	for _, level := range []model.SafetyLevel{model.LevelSafe, model.LevelMild, model.LevelExothermic, model.LevelDangerous, model.LevelExtreme, model.LevelUnknown} {
		color := string(LevelColor(level))
		prev, dup := seen[color]
		assert.False(t, dup, "levels %s and %s share color %s", prev, level, color)
		seen[color] = level
	}
}
