// Package tui implements the interactive chat interface for the Luis Amigo
// legal study assistant.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
	"github.com/aaronfloresserna/assistantUACH/pkg/ui/theme"
)

const (
	// DefaultViewportWidth is the default width for the chat viewport before window sizing.
	DefaultViewportWidth = 80
	// DefaultViewportHeight is the default height for the chat viewport before window sizing.
	DefaultViewportHeight = 20

	// Markdown rendering constants.
	minMarkdownWidth = 20
	newlineChar      = "\n"
	doubleNewline    = "\n\n"

	disclaimerText = "Esto es material académico y no constituye asesoría jurídica profesional."
)

// allFiltersLabel heads both selector lists and clears the corresponding filter.
const (
	allMateriasLabel   = "Todas las materias"
	allSemestersLabel  = "Todos los semestres"
	semesterItemFormat = "%d° Semestre"
)

// viewMode represents the current view mode of the TUI.
type viewMode int

const (
	viewModeChat viewMode = iota
	viewModeMateriaSelect
	viewModeSemesterSelect
)

// ChatModel represents the state of the chat TUI. The conversation log and the
// in-flight flag live in the dispatcher's store; the model only renders them.
type ChatModel struct {
	store      *conversation.Store
	dispatcher *conversation.Dispatcher
	filters    *conversation.FilterState

	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool
	width     int
	height    int
	ready     bool

	currentView         viewMode
	selectedMateriaIdx  int
	selectedSemesterIdx int
}

// NewChatModel creates a new chat model over the given conversation state.
func NewChatModel(store *conversation.Store, dispatcher *conversation.Dispatcher, filters *conversation.FilterState) (*ChatModel, error) {
	if store == nil {
		return nil, errUtils.ErrStoreNil
	}
	if dispatcher == nil {
		return nil, errUtils.ErrDispatcherNil
	}
	if filters == nil {
		filters = conversation.NewFilterState()
	}

	// Initialize viewport.
	vp := viewport.New(DefaultViewportWidth, DefaultViewportHeight)
	vp.SetContent("")

	// Initialize textarea.
	ta := textarea.New()
	ta.Placeholder = "Escribe tu pregunta jurídica... (Enter para enviar, Ctrl+C para salir)"
	ta.Focus()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	// Initialize spinner.
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorCyan))

	model := &ChatModel{
		store:       store,
		dispatcher:  dispatcher,
		filters:     filters,
		viewport:    vp,
		textarea:    ta,
		spinner:     s,
		isLoading:   false,
		currentView: viewModeChat,
	}

	return model, nil
}

// Init initializes the chat model.
func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// handleWindowResize processes window size changes and adjusts UI components.
func (m *ChatModel) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := lipgloss.Height(m.footerView())
	verticalMarginHeight := headerHeight + footerHeight

	if !m.ready {
		// Initialize viewport and textarea sizes.
		m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight-4) // -4 for textarea
		m.viewport.YPosition = headerHeight + 1
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(3)
		m.ready = true
	} else {
		// Adjust existing sizes.
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMarginHeight - 4
		m.textarea.SetWidth(msg.Width - 4)
	}

	m.updateViewportContent()
}

// Update handles messages and updates the model state.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Handle different message types.
	if handled, returnCmd := m.handleMessage(msg, &cmds); handled {
		if returnCmd != nil {
			return m, returnCmd
		}
	}

	// Update textarea only if not loading and in chat mode.
	if !m.isLoading && m.currentView == viewModeChat {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update viewport.
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleMessage processes different message types and returns whether it was handled.
func (m *ChatModel) handleMessage(msg tea.Msg, cmds *[]tea.Cmd) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return true, nil

	case tea.KeyMsg:
		return m.handleKeyMessage(msg)

	case sendMessageMsg:
		return m.handleSendMessage(msg)

	case answerMsg:
		return m.handleAnswer(), nil

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg, cmds), nil
	}

	return false, nil
}

// handleKeyMessage handles keyboard input.
func (m *ChatModel) handleKeyMessage(msg tea.KeyMsg) (bool, tea.Cmd) {
	if keyCmd := m.handleKeyMsg(msg); keyCmd != nil {
		return true, keyCmd
	}
	// Fall through to update textarea with the key.
	return false, nil
}

// handleSendMessage submits the typed question. The dispatcher owns validation
// and the single-in-flight guard; a dropped submission leaves the view as-is.
func (m *ChatModel) handleSendMessage(msg sendMessageMsg) (bool, tea.Cmd) {
	request, accepted := m.dispatcher.Submit(string(msg), m.filters.Current())
	if !accepted {
		return true, nil
	}

	m.textarea.Reset()
	m.isLoading = true
	m.updateViewportContent()
	return true, tea.Batch(
		m.spinner.Tick,
		m.awaitAnswer(request),
	)
}

// handleAnswer re-renders once the dispatcher appended the assistant message.
func (m *ChatModel) handleAnswer() bool {
	m.isLoading = false
	m.updateViewportContent()
	return true
}

// handleSpinnerTick handles spinner animation updates.
func (m *ChatModel) handleSpinnerTick(msg spinner.TickMsg, cmds *[]tea.Cmd) bool {
	if m.isLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		*cmds = append(*cmds, cmd)
	}
	return true
}

// View renders the chat interface.
func (m *ChatModel) View() string {
	if !m.ready {
		return "\n  Iniciando Luis Amigo..."
	}

	switch m.currentView {
	case viewModeMateriaSelect:
		return m.materiaSelectView()
	case viewModeSemesterSelect:
		return m.semesterSelectView()
	default:
		return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
	}
}

func (m *ChatModel) headerView() string {
	title := "Luis Amigo"
	subtitle := "Asistente Jurídico UACH"

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorCyan)).
		Bold(true).
		Padding(0, 1)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorMuted)).
		Padding(0, 1)

	filterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Italic(true).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		subtitleStyle.Render(subtitle),
		filterStyle.Render(m.filterLine()),
	)
}

// filterLine summarizes the active filters in the header.
func (m *ChatModel) filterLine() string {
	current := m.filters.Current()

	materia := strings.ToLower(allMateriasLabel)
	if current.Materia != "" {
		materia = current.Materia
	}

	semester := strings.ToLower(allSemestersLabel)
	if current.SemesterLevel != 0 {
		semester = fmt.Sprintf(semesterItemFormat, current.SemesterLevel)
	}

	return fmt.Sprintf("Materia: %s | Semestre: %s", materia, semester)
}

func (m *ChatModel) footerView() string {
	var content string

	if m.isLoading {
		content = fmt.Sprintf("%s Pensando...", m.spinner.View())
	} else {
		helpStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ColorMuted)).
			Italic(true)

		help := helpStyle.Render("Ctrl+F: Materia | Ctrl+E: Semestre | Ctrl+C: Salir")
		disclaimer := helpStyle.Render(disclaimerText)
		content = fmt.Sprintf("%s\n%s\n%s", m.textarea.View(), help, disclaimer)
	}

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.ColorBorder)).
		Padding(1, 0)

	return footerStyle.Render(content)
}

// updateViewportContent re-renders the conversation log into the viewport.
func (m *ChatModel) updateViewportContent() {
	messages := m.store.Snapshot()
	if len(messages) == 0 {
		m.viewport.SetContent(m.welcomeView())
		return
	}

	var contentParts []string

	for _, msg := range messages {
		var style lipgloss.Style
		var prefix string

		switch msg.Role {
		case conversation.RoleUser:
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ColorGreen)).
				Bold(true)
			prefix = "Tú:"
		case conversation.RoleAssistant:
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.ColorCyan))
			prefix = "Luis Amigo:"
		}

		timestamp := msg.Timestamp.Format("15:04")
		timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorMuted))

		header := fmt.Sprintf("%s %s", style.Render(prefix), timeStyle.Render(timestamp))

		// Assistant answers are markdown; user questions stay plain.
		var renderedContent string
		if msg.Role == conversation.RoleAssistant {
			renderedContent = m.renderMarkdown(msg.Content)
		} else {
			contentStyle := lipgloss.NewStyle().
				PaddingLeft(2).
				Width(m.viewport.Width - 4)
			renderedContent = contentStyle.Render(msg.Content)
		}

		contentParts = append(contentParts, header)
		contentParts = append(contentParts, renderedContent)

		if sources := m.renderSources(msg); sources != "" {
			contentParts = append(contentParts, sources)
		}
		if metadata := renderMetadata(msg); metadata != "" {
			contentParts = append(contentParts, metadata)
		}

		contentParts = append(contentParts, "") // Empty line between messages
	}

	m.viewport.SetContent(strings.Join(contentParts, newlineChar))
	m.viewport.GotoBottom()
}

func (m *ChatModel) welcomeView() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorCyan)).
		Bold(true).
		Padding(1, 2)
	bodyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ColorGray)).
		Padding(0, 2).
		Width(m.viewport.Width - 4)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("¡Hola! Soy Luis Amigo ⚖️"),
		bodyStyle.Render("Tu asistente jurídico académico. Pregúntame sobre leyes, "+
			"artículos constitucionales, conceptos jurídicos y más. "+
			"Estoy aquí para ayudarte con tus estudios."),
	)
}

// renderMarkdown renders markdown content with syntax highlighting using glamour.
func (m *ChatModel) renderMarkdown(content string) string {
	width := m.viewport.Width - 4
	if width < minMarkdownWidth {
		width = minMarkdownWidth
	}

	fallback := lipgloss.NewStyle().
		PaddingLeft(2).
		Width(m.viewport.Width - 4)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback.Render(content)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return fallback.Render(content)
	}

	// Add left padding to match other messages.
	paddedLines := make([]string, 0)
	for _, line := range strings.Split(rendered, newlineChar) {
		paddedLines = append(paddedLines, "  "+line)
	}

	return strings.TrimRight(strings.Join(paddedLines, newlineChar), newlineChar)
}

// Custom message types.
type sendMessageMsg string

// answerMsg signals that the dispatcher finished a request and the assistant
// (or fallback) message is already in the store.
type answerMsg conversation.Message

func (m *ChatModel) sendMessage(content string) tea.Cmd {
	return func() tea.Msg {
		return sendMessageMsg(content)
	}
}

// awaitAnswer resolves an accepted request off the UI loop. The dispatcher
// bounds the call with its own timeout and always releases the busy flag.
func (m *ChatModel) awaitAnswer(request *conversation.Request) tea.Cmd {
	return func() tea.Msg {
		return answerMsg(m.dispatcher.Resolve(context.Background(), request))
	}
}

// RunChat starts the chat TUI over the given conversation state.
func RunChat(store *conversation.Store, dispatcher *conversation.Dispatcher, filters *conversation.FilterState) error {
	model, err := NewChatModel(store, dispatcher, filters)
	if err != nil {
		return fmt.Errorf("failed to create chat model: %w", err)
	}

	model.updateViewportContent()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
