package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/govalues/bigint/internal/calc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p := tea.NewProgram(newReplModel(cfg.Output.Prompt))
		_, err = p.Run()
		return err
	},
}

// historyLimit bounds how many past evaluations the view keeps.
const historyLimit = 100

type replEntry struct {
	expr   string
	result string
	err    error
}

type replModel struct {
	input   textinput.Model
	history []replEntry
	width   int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	exprStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

func newReplModel(prompt string) replModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "integer expression"
	ti.Focus()
	return replModel{input: ti, width: 80}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" {
				return m, nil
			}
			if expr == "exit" || expr == "quit" {
				return m, tea.Quit
			}
			entry := replEntry{expr: expr}
			if v, err := calc.Eval(expr); err != nil {
				entry.err = err
			} else {
				entry.result = v.String()
			}
			m.history = append(m.history, entry)
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
			m.input.SetValue("")
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("bigcalc"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(exprStyle.Render(truncate(entry.expr, m.width-2)))
		b.WriteString("\n")
		if entry.err != nil {
			b.WriteString(errorStyle.Render(truncate("  error: "+entry.err.Error(), m.width-2)))
		} else {
			b.WriteString(resultStyle.Render(truncate("  = "+entry.result, m.width-2)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter to evaluate, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// truncate trims value to the given display width, appending an ellipsis
// when anything was cut off. Results can easily outgrow a terminal line.
func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
