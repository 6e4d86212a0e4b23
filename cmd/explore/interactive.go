package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputAlts = iota
	inputValue
)

type interactiveModel struct {
	err      error
	result   *resolution
	inputs   []textinput.Model
	focusIdx int
}

func newInteractiveModel(alts, value string) *interactiveModel {
	m := &interactiveModel{inputs: make([]textinput.Model, 2)}

	for i, prompt := range []string{"alternatives: ", "value:        "} {
		ti := textinput.New()
		ti.Prompt = prompt
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[inputAlts].Placeholder = "int,float64,string"
	m.inputs[inputAlts].SetValue(alts)
	m.inputs[inputValue].Placeholder = "42"
	m.inputs[inputValue].SetValue(value)
	m.inputs[inputAlts].Focus()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab", "down":
			m.focus(1)
			return m, nil

		case "shift+tab", "up":
			m.focus(-1)
			return m, nil

		case "enter":
			m.resolve()
			return m, nil

		case "esc":
			m.result = nil
			m.err = nil
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// focus moves the cursor by step fields, wrapping at either end.
func (m *interactiveModel) focus(step int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = (m.focusIdx + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focusIdx].Focus()
}

func (m *interactiveModel) resolve() {
	m.result, m.err = resolve(m.inputs[inputAlts].Value(), m.inputs[inputValue].Value())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Variant Explorer"))
	b.WriteString("\n\n")

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	case m.result != nil:
		for _, l := range m.result.lines() {
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-13s", l[0]+":")))
			b.WriteString(" ")
			b.WriteString(resultStyle.Render(l[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab next field • enter resolve • esc clear • ctrl+c quit"))
	return b.String()
}

func runInteractive(alts, value string) error {
	p := tea.NewProgram(newInteractiveModel(alts, value), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
