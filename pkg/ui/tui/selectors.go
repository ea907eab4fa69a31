package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
	"github.com/aaronfloresserna/assistantUACH/pkg/ui/theme"
)

// materiaSelectView renders the subject-area selector.
func (m *ChatModel) materiaSelectView() string {
	options := make([]string, 0, len(conversation.Materias)+1)
	options = append(options, allMateriasLabel)
	options = append(options, conversation.Materias...)

	return m.selectorView("Filtrar por materia", options, m.selectedMateriaIdx, m.currentMateriaIndex())
}

// semesterSelectView renders the academic-level selector.
func (m *ChatModel) semesterSelectView() string {
	options := make([]string, 0, conversation.MaxSemesterLevel+1)
	options = append(options, allSemestersLabel)
	for level := conversation.MinSemesterLevel; level <= conversation.MaxSemesterLevel; level++ {
		options = append(options, fmt.Sprintf(semesterItemFormat, level))
	}

	return m.selectorView("Filtrar por semestre", options, m.selectedSemesterIdx, m.filters.Current().SemesterLevel)
}

// selectorView renders a vertical single-choice list with the cursor on
// selectedIdx and a "(actual)" marker on currentIdx.
func (m *ChatModel) selectorView(title string, options []string, selectedIdx, currentIdx int) string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan)).
		MarginBottom(1)
	content.WriteString(titleStyle.Render(title))
	content.WriteString(newlineChar)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorMuted)).
		Margin(0, 0, 1, 0)
	content.WriteString(helpStyle.Render("↑/↓: Navegar | Enter: Seleccionar | Esc/q: Cancelar"))
	content.WriteString(doubleNewline)

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColorCyan))
	currentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGreen))
	normalStyle := lipgloss.NewStyle()

	for i, option := range options {
		prefix := "  "
		if i == selectedIdx {
			prefix = "▶ "
		}

		label := prefix + option
		if i == currentIdx {
			label += " (actual)"
		}

		var line string
		switch {
		case i == selectedIdx:
			line = selectedStyle.Render(label)
		case i == currentIdx:
			line = currentStyle.Render(label)
		default:
			line = normalStyle.Render(label)
		}

		content.WriteString(line)
		content.WriteString(newlineChar)
	}

	return content.String()
}
