// ============================================================================
// strcalc - String Calculator
// ============================================================================
//
// Package:     repl
// Description: Interactive bubbletea REPL evaluating lines with the calculator
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	scstringx "github.com/msto63/strcalc/foundation/utils/stringx"
	scslicex "github.com/msto63/strcalc/foundation/utils/slicex"
	"github.com/msto63/strcalc/internal/calculator"
)

const (
	// chrome is the number of lines taken by title, input box and help
	chrome = 6

	helpText = `Enter evaluate • ↑/↓ history • Ctrl+L clear • Esc quit • type \n for a newline`
)

// Model is the REPL state
type Model struct {
	calc *calculator.Calculator

	input    textinput.Model
	viewport viewport.Model

	entries []Entry
	// history holds submitted lines, oldest first; histPos == len(history)
	// means "not browsing"
	history []string
	histPos int
	draft   string

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a REPL model evaluating with calc; a nil calc uses the
// default rules
func New(calc *calculator.Calculator) Model {
	if calc == nil {
		calc = calculator.New()
	}

	ti := textinput.New()
	ti.Placeholder = `1,2\n3  or  //;\n1;2`
	ti.Prompt = PromptStyle.Render("› ")
	ti.CharLimit = 4096
	ti.Width = 76
	ti.Focus()

	return Model{
		calc:     calc,
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			if scstringx.IsBlank(line) {
				return m, nil
			}
			m.history = append(m.history, line)
			m.histPos = len(m.history)
			m.draft = ""
			m.input.Reset()
			return m, m.evaluate(line)

		case "up":
			m.recall(-1)
			return m, nil

		case "down":
			m.recall(1)
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.input.Width = max(msg.Width-8, 10)
		m.ready = true
		m.updateContent()
		return m, nil

	case evalResultMsg:
		m.entries = append(m.entries, msg.entry)
		m.updateContent()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// evaluate runs the calculator on line after interpreting \n style escapes
func (m Model) evaluate(line string) tea.Cmd {
	calc := m.calc
	return func() tea.Msg {
		start := time.Now()
		res, err := calc.Evaluate(scstringx.InterpretEscapes(line))
		return evalResultMsg{entry: Entry{
			Input:    line,
			Result:   res,
			Err:      err,
			Duration: time.Since(start),
		}}
	}
}

// recall moves through the submitted lines; moving past the newest line
// restores what was being typed
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}

	pos := m.histPos + step
	if pos < 0 || pos > len(m.history) {
		return
	}
	m.histPos = pos

	if pos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[pos])
	}
	m.input.CursorEnd()
}

func (m *Model) updateContent() {
	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(InputEchoStyle.Render("› " + e.Input))
		content.WriteString("\n")
		content.WriteString(renderOutcome(e))
		content.WriteString("\n\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func renderOutcome(e Entry) string {
	var out string
	if e.Err != nil {
		out = ErrorStyle.Render("error: " + e.Err.Error())
	} else {
		out = SumStyle.Render(fmt.Sprintf("= %d", e.Result.Sum))
		if len(e.Result.Ignored) > 0 {
			out += " " + IgnoredStyle.Render("(ignored: "+scslicex.Join(e.Result.Ignored, ", ")+")")
		}
	}
	if e.Duration > 0 {
		out += " " + DurationStyle.Render(e.Duration.Round(time.Microsecond).String())
	}
	return out
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(TitleStyle.Render("strcalc"))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(InputBoxStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(helpText))
	return s.String()
}

// Entries returns the evaluated lines, oldest first
func (m Model) Entries() []Entry {
	return m.entries
}

// Run starts the REPL on the terminal
func Run(calc *calculator.Calculator) error {
	p := tea.NewProgram(New(calc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
