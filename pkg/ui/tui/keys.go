package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
)

// handleKeyMsg processes keyboard input and returns a command if the key was
// handled. Returns nil if the key should be passed to the textarea.
func (m *ChatModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	// Selector views stay fully operable even while a request is in flight:
	// the dispatcher snapshots the filters at submission, so a change here
	// only affects the next question.
	switch m.currentView {
	case viewModeMateriaSelect:
		return m.handleMateriaSelectKeys(msg)
	case viewModeSemesterSelect:
		return m.handleSemesterSelectKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+f":
		// Open materia selector, pre-selecting the active filter.
		m.currentView = viewModeMateriaSelect
		m.selectedMateriaIdx = m.currentMateriaIndex()
		return func() tea.Msg { return nil }
	case "ctrl+e":
		// Open semester selector, pre-selecting the active filter.
		m.currentView = viewModeSemesterSelect
		m.selectedSemesterIdx = m.filters.Current().SemesterLevel
		return func() tea.Msg { return nil }
	}

	if m.isLoading {
		// Only the question input is frozen while a request is pending.
		// Don't pass keys to the textarea.
		return func() tea.Msg { return nil }
	}

	switch msg.String() {
	case "shift+enter", "alt+enter":
		// Let textarea handle it (adds newline).
		return nil
	case "enter":
		// Plain Enter: send message. Empty and whitespace-only questions are
		// dropped by the dispatcher; skipping the round-trip here just avoids
		// a useless message.
		if m.textarea.Value() != "" {
			return m.sendMessage(m.textarea.Value())
		}
		// Don't send empty messages, but don't pass Enter to textarea either.
		return func() tea.Msg { return nil }
	}

	// Return nil to allow textarea to handle the key.
	return nil
}

// currentMateriaIndex maps the active materia filter onto its selector row.
// Row zero is "Todas las materias".
func (m *ChatModel) currentMateriaIndex() int {
	current := m.filters.Current().Materia
	for i, materia := range conversation.Materias {
		if materia == current {
			return i + 1
		}
	}
	return 0
}

// handleMateriaSelectKeys processes keyboard input for the materia selector.
func (m *ChatModel) handleMateriaSelectKeys(msg tea.KeyMsg) tea.Cmd {
	optionCount := len(conversation.Materias) + 1 // +1 for "all"

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		m.currentView = viewModeChat
		return func() tea.Msg { return nil }
	case "up", "k":
		m.selectedMateriaIdx--
		if m.selectedMateriaIdx < 0 {
			m.selectedMateriaIdx = optionCount - 1
		}
		return func() tea.Msg { return nil }
	case "down", "j":
		m.selectedMateriaIdx++
		if m.selectedMateriaIdx >= optionCount {
			m.selectedMateriaIdx = 0
		}
		return func() tea.Msg { return nil }
	case "enter":
		materia := ""
		if m.selectedMateriaIdx > 0 {
			materia = conversation.Materias[m.selectedMateriaIdx-1]
		}
		// Values come from the same list the selector renders, so this cannot
		// fail; the error return guards programmatic callers.
		_ = m.filters.SetMateria(materia)
		m.currentView = viewModeChat
		return func() tea.Msg { return nil }
	}

	return func() tea.Msg { return nil }
}

// handleSemesterSelectKeys processes keyboard input for the semester selector.
// Row zero is "Todos los semestres"; rows 1-10 are the semester levels.
func (m *ChatModel) handleSemesterSelectKeys(msg tea.KeyMsg) tea.Cmd {
	optionCount := conversation.MaxSemesterLevel + 1 // +1 for "all"

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "q":
		m.currentView = viewModeChat
		return func() tea.Msg { return nil }
	case "up", "k":
		m.selectedSemesterIdx--
		if m.selectedSemesterIdx < 0 {
			m.selectedSemesterIdx = optionCount - 1
		}
		return func() tea.Msg { return nil }
	case "down", "j":
		m.selectedSemesterIdx++
		if m.selectedSemesterIdx >= optionCount {
			m.selectedSemesterIdx = 0
		}
		return func() tea.Msg { return nil }
	case "enter":
		_ = m.filters.SetSemesterLevel(m.selectedSemesterIdx)
		m.currentView = viewModeChat
		return func() tea.Msg { return nil }
	}

	return func() tea.Msg { return nil }
}
