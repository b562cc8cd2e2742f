package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/variant"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	layoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	err    error
	schema *variant.Schema
	names  []string
	input  textinput.Model
}

func newInspectModel() *inspectModel {
	input := textinput.New()
	input.Placeholder = "u32,string,f64"
	input.Focus()
	return &inspectModel{input: input}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			spec := m.input.Value()
			if strings.TrimSpace(spec) == "" {
				return m, tea.Quit
			}
			m.schema, m.names, m.err = buildSchema(spec)

		case "esc":
			m.input.SetValue("")
			m.schema = nil
			m.names = nil
			m.err = nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("variant schema inspector"))
	b.WriteString("\n\n")
	b.WriteString("Alternatives: ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")

	case m.schema != nil:
		for i, name := range m.names {
			typ, _ := m.schema.TypeAt(uint32(i))
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				indexStyle.Render(fmt.Sprintf("[%d]", i)),
				name,
				typeStyle.Render(fmt.Sprintf("Go %s (size %d, align %d)", typ, typ.Size(), typ.Align())),
			))
		}
		layout := m.schema.Layout()
		b.WriteString("\n")
		b.WriteString(layoutStyle.Render(fmt.Sprintf(
			"discriminant %d byte(s) | payload %d/%d | cell %d/%d",
			layout.DiscriminantSize,
			layout.PayloadSize, layout.PayloadAlign,
			layout.CellSize, layout.CellAlign,
		)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: compute | esc: clear | ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel())
	_, err := p.Run()
	return err
}
