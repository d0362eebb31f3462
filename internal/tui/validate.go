// Package tui provides the interactive ISBN validator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/isbncheck/internal/report"
)

const (
	defaultInputWidth = 40
	maxVisibleResults = 10
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

type model struct {
	input   textinput.Model
	results []report.Result
	color   bool
}

func newModel(color bool) *model {
	ti := textinput.New()
	ti.Placeholder = "978-0-306-40615-7"
	ti.Prompt = "ISBN> "
	ti.CharLimit = 64
	ti.Width = defaultInputWidth
	ti.Focus()

	return &model{input: ti, color: color}
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			value := m.input.Value()
			if strings.TrimSpace(value) == "" {
				return m, nil
			}
			m.results = append(m.results, report.EvaluateOne(value))
			m.input.Reset()
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.input.Width = clamp(defaultInputWidth, msg.Width-len(m.input.Prompt)-2, 10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Enter an ISBN-10 or ISBN-13"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	visible := m.results
	if len(visible) > maxVisibleResults {
		visible = visible[len(visible)-maxVisibleResults:]
	}
	for _, r := range visible {
		sb.WriteString(report.StyledLine(r, m.color))
		sb.WriteString("\n")
	}

	counts := report.Summary(m.results)
	sb.WriteString(helpStyle.Render(fmt.Sprintf("%s | Enter validate | Esc quit", counts)))
	return sb.String()
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Run starts the interactive validator and returns every result entered
// before the user quit.
func Run(color bool) ([]report.Result, error) {
	finalModel, err := runProgram(newModel(color))
	if err != nil {
		return nil, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.results, nil
	}

	return nil, fmt.Errorf("unexpected program result")
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
