package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
	"github.com/aaronfloresserna/assistantUACH/pkg/api"
	"github.com/aaronfloresserna/assistantUACH/pkg/conversation"
)

// mockAsker is a scriptable assistant service for TUI tests.
type mockAsker struct {
	mu       sync.Mutex
	requests []api.AskRequest
	response *api.AskResponse
	err      error
}

func (m *mockAsker) Ask(_ context.Context, request api.AskRequest) (*api.AskResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, request)
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func newTestModel(t *testing.T, service *mockAsker) (*ChatModel, *conversation.Store) {
	t.Helper()

	store := conversation.NewStore()
	dispatcher, err := conversation.NewDispatcher(store, service, 0, 0)
	require.NoError(t, err)

	model, err := NewChatModel(store, dispatcher, conversation.NewFilterState())
	require.NoError(t, err)
	return model, store
}

func TestNewChatModel(t *testing.T) {
	store := conversation.NewStore()
	dispatcher, err := conversation.NewDispatcher(store, &mockAsker{}, 0, 0)
	require.NoError(t, err)

	t.Run("requires a store", func(t *testing.T) {
		model, err := NewChatModel(nil, dispatcher, nil)

		assert.Nil(t, model)
		assert.ErrorIs(t, err, errUtils.ErrStoreNil)
	})

	t.Run("requires a dispatcher", func(t *testing.T) {
		model, err := NewChatModel(store, nil, nil)

		assert.Nil(t, model)
		assert.ErrorIs(t, err, errUtils.ErrDispatcherNil)
	})

	t.Run("creates filters when nil", func(t *testing.T) {
		model, err := NewChatModel(store, dispatcher, nil)

		require.NoError(t, err)
		assert.NotNil(t, model.filters)
		assert.Equal(t, viewModeChat, model.currentView)
		assert.False(t, model.isLoading)
	})
}

func TestChatModel_Init(t *testing.T) {
	model, _ := newTestModel(t, &mockAsker{})

	assert.NotNil(t, model.Init())
}

func TestChatModel_WindowResize(t *testing.T) {
	model, _ := newTestModel(t, &mockAsker{})
	require.False(t, model.ready)

	model.handleWindowResize(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, model.ready)
	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
	assert.Equal(t, 100, model.viewport.Width)
}

func TestChatModel_View(t *testing.T) {
	t.Run("shows startup text before the first resize", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})

		assert.Contains(t, model.View(), "Iniciando Luis Amigo")
	})

	t.Run("renders the chat frame once ready", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.handleWindowResize(tea.WindowSizeMsg{Width: 100, Height: 40})

		view := model.View()

		assert.Contains(t, view, "Luis Amigo")
		assert.Contains(t, view, "Asistente Jurídico UACH")
		assert.Contains(t, view, disclaimerText)
	})
}

func TestChatModel_SendMessage(t *testing.T) {
	t.Run("accepted submission starts loading", func(t *testing.T) {
		model, store := newTestModel(t, &mockAsker{response: &api.AskResponse{Answer: "respuesta"}})
		model.handleWindowResize(tea.WindowSizeMsg{Width: 100, Height: 40})
		model.textarea.SetValue("¿Qué es el amparo?")

		handled, cmd := model.handleSendMessage(sendMessageMsg("¿Qué es el amparo?"))

		assert.True(t, handled)
		require.NotNil(t, cmd)
		assert.True(t, model.isLoading)
		assert.Empty(t, model.textarea.Value())
		require.Equal(t, 1, store.Len())
		assert.Equal(t, conversation.RoleUser, store.Snapshot()[0].Role)
	})

	t.Run("dropped submission leaves the view untouched", func(t *testing.T) {
		model, store := newTestModel(t, &mockAsker{response: &api.AskResponse{Answer: "respuesta"}})
		model.handleWindowResize(tea.WindowSizeMsg{Width: 100, Height: 40})

		// Occupy the dispatcher so the next submission is dropped.
		_, accepted := model.dispatcher.Submit("primera", conversation.FilterSnapshot{})
		require.True(t, accepted)
		model.textarea.SetValue("segunda")

		handled, cmd := model.handleSendMessage(sendMessageMsg("segunda"))

		assert.True(t, handled)
		assert.Nil(t, cmd)
		assert.False(t, model.isLoading)
		assert.Equal(t, "segunda", model.textarea.Value())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("answer message stops loading", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{response: &api.AskResponse{Answer: "respuesta"}})
		model.handleWindowResize(tea.WindowSizeMsg{Width: 100, Height: 40})
		model.isLoading = true

		model.handleAnswer()

		assert.False(t, model.isLoading)
	})
}

func TestChatModel_Keys(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("enter with text sends the question", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{response: &api.AskResponse{Answer: "respuesta"}})
		model.textarea.SetValue("pregunta")

		cmd := model.handleKeyMsg(enter)

		require.NotNil(t, cmd)
		msg := cmd()
		assert.Equal(t, sendMessageMsg("pregunta"), msg)
	})

	t.Run("enter with an empty textarea does nothing", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})

		cmd := model.handleKeyMsg(enter)

		require.NotNil(t, cmd)
		assert.Nil(t, cmd())
	})

	t.Run("ctrl+f opens the materia selector pre-selected", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		require.NoError(t, model.filters.SetMateria("penal"))

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlF})

		assert.Equal(t, viewModeMateriaSelect, model.currentView)
		// "penal" is the third materia; row zero is "all".
		assert.Equal(t, 3, model.selectedMateriaIdx)
	})

	t.Run("ctrl+e opens the semester selector pre-selected", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		require.NoError(t, model.filters.SetSemesterLevel(5))

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlE})

		assert.Equal(t, viewModeSemesterSelect, model.currentView)
		assert.Equal(t, 5, model.selectedSemesterIdx)
	})

	t.Run("loading freezes the input but not quit or the selectors", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.isLoading = true
		model.textarea.SetValue("pregunta")

		// Enter must not submit while a request is pending.
		cmd := model.handleKeyMsg(enter)
		require.NotNil(t, cmd)
		assert.Nil(t, cmd())

		// The selectors stay reachable.
		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlF})
		assert.Equal(t, viewModeMateriaSelect, model.currentView)
		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlE})
		assert.Equal(t, viewModeSemesterSelect, model.currentView)
		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})

		quit := model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, quit)
		assert.Equal(t, tea.Quit(), quit())
	})

	t.Run("filters can change while a request is pending", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.isLoading = true

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlF})
		require.Equal(t, viewModeMateriaSelect, model.currentView)
		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
		model.handleKeyMsg(enter)

		assert.Equal(t, viewModeChat, model.currentView)
		assert.Equal(t, conversation.Materias[0], model.filters.Current().Materia)

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlE})
		require.Equal(t, viewModeSemesterSelect, model.currentView)
		model.selectedSemesterIdx = 4
		model.handleKeyMsg(enter)

		assert.Equal(t, 4, model.filters.Current().SemesterLevel)
		assert.True(t, model.isLoading)
	})
}

func TestChatModel_MateriaSelector(t *testing.T) {
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("navigation wraps around", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.currentView = viewModeMateriaSelect
		model.selectedMateriaIdx = 0

		model.handleKeyMsg(up)
		assert.Equal(t, len(conversation.Materias), model.selectedMateriaIdx)

		model.handleKeyMsg(down)
		assert.Equal(t, 0, model.selectedMateriaIdx)
	})

	t.Run("enter applies the highlighted materia", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.currentView = viewModeMateriaSelect
		model.selectedMateriaIdx = 1

		model.handleKeyMsg(enter)

		assert.Equal(t, viewModeChat, model.currentView)
		assert.Equal(t, conversation.Materias[0], model.filters.Current().Materia)
	})

	t.Run("row zero clears the filter", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		require.NoError(t, model.filters.SetMateria("civil"))
		model.currentView = viewModeMateriaSelect
		model.selectedMateriaIdx = 0

		model.handleKeyMsg(enter)

		assert.Empty(t, model.filters.Current().Materia)
	})

	t.Run("escape cancels without changing the filter", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		require.NoError(t, model.filters.SetMateria("civil"))
		model.currentView = viewModeMateriaSelect
		model.selectedMateriaIdx = 4

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, viewModeChat, model.currentView)
		assert.Equal(t, "civil", model.filters.Current().Materia)
	})
}

func TestChatModel_SemesterSelector(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("navigation wraps around", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.currentView = viewModeSemesterSelect
		model.selectedSemesterIdx = conversation.MaxSemesterLevel

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
		assert.Equal(t, 0, model.selectedSemesterIdx)

		model.handleKeyMsg(tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, conversation.MaxSemesterLevel, model.selectedSemesterIdx)
	})

	t.Run("enter applies the highlighted level", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		model.currentView = viewModeSemesterSelect
		model.selectedSemesterIdx = 7

		model.handleKeyMsg(enter)

		assert.Equal(t, viewModeChat, model.currentView)
		assert.Equal(t, 7, model.filters.Current().SemesterLevel)
	})

	t.Run("row zero clears the filter", func(t *testing.T) {
		model, _ := newTestModel(t, &mockAsker{})
		require.NoError(t, model.filters.SetSemesterLevel(3))
		model.currentView = viewModeSemesterSelect
		model.selectedSemesterIdx = 0

		model.handleKeyMsg(enter)

		assert.Zero(t, model.filters.Current().SemesterLevel)
	})
}
