// Package model holds the bubbletea models behind interactive CLI commands.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/twich/internal/cli/styles"
	"github.com/bnema/twich/internal/domain/entity"
)

const maxTesterEntries = 50

// Decider returns the gatekeeper verdict for a URL.
type Decider interface {
	Decide(rawURL string) entity.Verdict
}

type testerEntry struct {
	url     string
	verdict entity.Verdict
}

// TesterModel lets the user type URLs and see the verdict as they type.
type TesterModel struct {
	input   textinput.Model
	help    help.Model
	keys    styles.TesterKeyMap
	theme   *styles.Theme
	decider Decider

	live    entity.Verdict
	entries []testerEntry
	blocked int
	width   int
}

// NewTesterModel creates the tester model.
func NewTesterModel(theme *styles.Theme, decider Decider) TesterModel {
	in := styles.NewURLInput(theme)
	in.Focus()
	return TesterModel{
		input:   in,
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultTesterKeyMap(),
		theme:   theme,
		decider: decider,
	}
}

// Init implements tea.Model.
func (m TesterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m TesterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.entries = nil
			m.blocked = 0
			return m, nil
		case key.Matches(msg, m.keys.Record):
			m.record()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.live = m.decide(m.input.Value())
	return m, cmd
}

func (m *TesterModel) decide(raw string) entity.Verdict {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entity.Allow()
	}
	return m.decider.Decide(raw)
}

func (m *TesterModel) record() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}
	v := m.decider.Decide(raw)
	m.entries = append([]testerEntry{{url: raw, verdict: v}}, m.entries...)
	if v.Blocked {
		m.blocked++
	}
	if len(m.entries) > maxTesterEntries {
		dropped := m.entries[maxTesterEntries:]
		for _, e := range dropped {
			if e.verdict.Blocked {
				m.blocked--
			}
		}
		m.entries = m.entries[:maxTesterEntries]
	}
	m.input.Reset()
	m.live = entity.Allow()
}

// View implements tea.Model.
func (m TesterModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Gatekeeper tester"))
	b.WriteString("\n")
	b.WriteString(m.theme.InputBox(m.input.View(), true))
	b.WriteString("\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		b.WriteString(m.theme.RenderVerdict(strings.TrimSpace(m.input.Value()), m.live))
		b.WriteString("\n")
	}

	if len(m.entries) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtitle.Render(
			fmt.Sprintf("%d checked, %d blocked", len(m.entries), m.blocked)))
		b.WriteString("\n")
		for _, e := range m.entries {
			b.WriteString(m.theme.RenderVerdict(e.url, e.verdict))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
