package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type habitatModel struct {
	choices []string
	cursor  int
	chosen  string
}

func initialHabitatModel(choices []string) habitatModel {
	return habitatModel{choices: choices}
}

func (m habitatModel) Init() tea.Cmd {
	return nil
}

func (m habitatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.chosen = m.choices[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m habitatModel) View() string {
	s := strings.Builder{}
	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("? Which habitat do you want to list?"))
	s.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, choice))
	}

	s.WriteString("\n(Press [enter] to select, [q] to abort)\n")
	return s.String()
}

// PromptForHabitat asks interactively when --env was omitted on a TTY.
func PromptForHabitat(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no habitats configured")
	}

	p := tea.NewProgram(initialHabitatModel(choices))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	if hm, ok := m.(habitatModel); ok {
		return hm.chosen, nil
	}
	return "", nil
}
