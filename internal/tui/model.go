// Package tui implements the interactive check session: two chemical inputs,
// a result card, and the bounded history of recent checks. The session owns
// the history; the resolution pipeline never touches it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mixguard/mixguard/internal/model"
	"github.com/mixguard/mixguard/internal/pipeline"
)

// Config holds the dependencies for an interactive session.
type Config struct {
	Resolver     *pipeline.Resolver
	HistoryLimit int
}

// resultMsg delivers a completed check to the update loop.
type resultMsg struct {
	result model.ReactionResult
}

// Model holds the session state.
type Model struct {
	resolver *pipeline.Resolver
	history  *model.History
	inputs   [2]textinput.Model
	spinner  spinner.Model
	latest   *model.ReactionResult
	focus    int
	checking bool
	quitting bool
}

// newModel creates a session model with the given configuration.
func newModel(cfg Config) Model {
	var inputs [2]textinput.Model
	for i, placeholder := range []string{"first chemical", "second chemical"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 80
		in.Width = 32
		inputs[i] = in
	}
	inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		resolver: cfg.Resolver,
		history:  model.NewHistory(cfg.HistoryLimit),
		inputs:   inputs,
		spinner:  sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil

		case "enter":
			if m.checking {
				return m, nil
			}
			chem1 := strings.TrimSpace(m.inputs[0].Value())
			chem2 := strings.TrimSpace(m.inputs[1].Value())
			if chem1 == "" || chem2 == "" {
				return m, nil
			}
			m.checking = true
			return m, tea.Batch(m.spinner.Tick, m.check(chem1, chem2))
		}

	case resultMsg:
		m.checking = false
		m.latest = &msg.result
		m.history.Add(msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// check runs a resolution off the update loop. Resolve never fails, so the
// command always delivers a result.
func (m Model) check(chem1, chem2 string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.resolver.Resolve(context.Background(), chem1, chem2)}
	}
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("mixguard") + "  " + labelStyle.Render("can these be mixed?"))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[0].View() + "\n")
	b.WriteString(m.inputs[1].View() + "\n\n")

	if m.checking {
		b.WriteString(m.spinner.View() + " analyzing...\n\n")
	} else if m.latest != nil {
		b.WriteString(renderResult(*m.latest) + "\n\n")
	}

	if m.history.Len() > 0 {
		b.WriteString(labelStyle.Render("recent checks") + "\n")
		for _, entry := range m.history.Entries() {
			b.WriteString(fmt.Sprintf("  %s  %s + %s  %s\n",
				levelBadge(entry.Level),
				entry.Chemical1,
				entry.Chemical2,
				labelStyle.Render(entry.CheckedAt.Format("15:04:05"))))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: switch field • enter: check • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderResult renders a result card, bordered in the level's color.
func renderResult(result model.ReactionResult) string {
	var b strings.Builder
	b.WriteString(levelBadge(result.Level) + "  " + titleStyle.Render(result.Title) + "\n")
	b.WriteString(result.Explanation + "\n")
	for _, rec := range result.Recommendations {
		b.WriteString("  • " + rec + "\n")
	}

	return cardStyle.BorderForeground(LevelColor(result.Level)).Render(strings.TrimRight(b.String(), "\n"))
}
